// THIS FILE IS AUTO-GENERATED
package characteristic

const TypeManufacturer = "20"

type Manufacturer struct {
	*Characteristic
}

func NewManufacturer() *Manufacturer {
	c := New(TypeManufacturer, FormatString)
	c.Perms = []Permission{PermRead}
	c.SetMaxLen(64)
	c.SetValue("undefined")

	return &Manufacturer{c}
}
