// THIS FILE IS AUTO-GENERATED
package characteristic

const TypeHue = "13"

type Hue struct {
	*Characteristic
}

func NewHue() *Hue {
	c := New(TypeHue, FormatFloat)
	c.Perms = []Permission{PermRead, PermWrite, PermEvents}
	c.Unit = UnitArcDegrees
	c.SetMinValue(0)
	c.SetMaxValue(360)
	c.SetStepValue(1)
	c.SetValue(0.0)

	return &Hue{c}
}
