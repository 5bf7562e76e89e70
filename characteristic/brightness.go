// THIS FILE IS AUTO-GENERATED
package characteristic

const TypeBrightness = "8"

type Brightness struct {
	*Characteristic
}

func NewBrightness() *Brightness {
	c := New(TypeBrightness, FormatInt)
	c.Perms = []Permission{PermRead, PermWrite, PermEvents}
	c.Unit = UnitPercentage
	c.SetMinValue(0)
	c.SetMaxValue(100)
	c.SetStepValue(1)
	c.SetValue(0)

	return &Brightness{c}
}
