// THIS FILE IS AUTO-GENERATED
package characteristic

const TypeSerialNumber = "30"

type SerialNumber struct {
	*Characteristic
}

func NewSerialNumber() *SerialNumber {
	c := New(TypeSerialNumber, FormatString)
	c.Perms = []Permission{PermRead}
	c.SetMaxLen(64)
	c.SetValue("undefined")

	return &SerialNumber{c}
}
