// THIS FILE IS AUTO-GENERATED
package characteristic

const TypeSaturation = "2F"

type Saturation struct {
	*Characteristic
}

func NewSaturation() *Saturation {
	c := New(TypeSaturation, FormatFloat)
	c.Perms = []Permission{PermRead, PermWrite, PermEvents}
	c.Unit = UnitPercentage
	c.SetMinValue(0)
	c.SetMaxValue(100)
	c.SetStepValue(1)
	c.SetValue(0.0)

	return &Saturation{c}
}
