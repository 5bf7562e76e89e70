// THIS FILE IS AUTO-GENERATED
package characteristic

const TypeFirmwareRevision = "52"

type FirmwareRevision struct {
	*Characteristic
}

func NewFirmwareRevision() *FirmwareRevision {
	c := New(TypeFirmwareRevision, FormatString)
	c.Perms = []Permission{PermRead}
	c.SetMaxLen(64)
	c.SetValue("1.0")

	return &FirmwareRevision{c}
}
