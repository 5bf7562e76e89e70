// THIS FILE IS AUTO-GENERATED
package characteristic

const TypeCurrentAmbientLightLevel = "6B"

type CurrentAmbientLightLevel struct {
	*Characteristic
}

func NewCurrentAmbientLightLevel() *CurrentAmbientLightLevel {
	c := New(TypeCurrentAmbientLightLevel, FormatFloat)
	c.Perms = []Permission{PermRead, PermEvents}
	c.Unit = UnitLux
	c.SetMinValue(0.0001)
	c.SetMaxValue(100000)
	c.SetStepValue(0.0001)
	c.SetValue(0.0001)

	return &CurrentAmbientLightLevel{c}
}
