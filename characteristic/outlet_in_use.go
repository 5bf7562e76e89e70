// THIS FILE IS AUTO-GENERATED
package characteristic

const TypeOutletInUse = "26"

type OutletInUse struct {
	*Characteristic
}

func NewOutletInUse() *OutletInUse {
	c := New(TypeOutletInUse, FormatBool)
	c.Perms = []Permission{PermRead, PermEvents}
	c.SetValue(false)

	return &OutletInUse{c}
}
