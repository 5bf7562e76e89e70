// THIS FILE IS AUTO-GENERATED
package characteristic

const TypeModel = "21"

type Model struct {
	*Characteristic
}

func NewModel() *Model {
	c := New(TypeModel, FormatString)
	c.Perms = []Permission{PermRead}
	c.SetMaxLen(64)
	c.SetValue("undefined")

	return &Model{c}
}
