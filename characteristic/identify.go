// THIS FILE IS AUTO-GENERATED
package characteristic

const TypeIdentify = "14"

// Identify triggers the accessory's identification routine (e.g. blink).
// It is write-only and carries no persisted value of interest.
type Identify struct {
	*Characteristic
}

func NewIdentify() *Identify {
	c := New(TypeIdentify, FormatBool)
	c.Perms = []Permission{PermWrite}
	c.SetValue(false)

	return &Identify{c}
}
