// THIS FILE IS AUTO-GENERATED
package characteristic

const TypeOn = "25"

// On is the primary state characteristic of switches, lightbulbs, and outlets.
type On struct {
	*Characteristic
}

func NewOn() *On {
	c := New(TypeOn, FormatBool)
	c.Perms = []Permission{PermRead, PermWrite, PermEvents}
	c.SetValue(false)

	return &On{c}
}
