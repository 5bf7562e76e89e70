// THIS FILE IS AUTO-GENERATED
package characteristic

const TypeName = "23"

type Name struct {
	*Characteristic
}

func NewName() *Name {
	c := New(TypeName, FormatString)
	c.Perms = []Permission{PermRead}
	c.SetMaxLen(64)
	c.SetValue("undefined")

	return &Name{c}
}
