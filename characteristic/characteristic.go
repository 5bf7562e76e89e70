// Package characteristic implements the HAP characteristic object model:
// a typed value cell with metadata, permissions, and notification state.
package characteristic

import "fmt"

// Format tags a characteristic's value type, matching the HAP wire format.
type Format string

const (
	FormatBool   Format = "bool"
	FormatUInt8  Format = "uint8"
	FormatUInt16 Format = "uint16"
	FormatUInt32 Format = "uint32"
	FormatUInt64 Format = "uint64"
	FormatInt    Format = "int"
	FormatFloat  Format = "float"
	FormatString Format = "string"
	FormatTLV8   Format = "tlv8"
	FormatData   Format = "data"
)

// Permission is one entry of a characteristic's permission set.
type Permission string

const (
	PermRead                    Permission = "pr"
	PermWrite                   Permission = "pw"
	PermEvents                  Permission = "ev"
	PermAdditionalAuthorization Permission = "aa"
	PermTimedWrite              Permission = "tw"
	PermHidden                  Permission = "hd"
)

// Unit is an optional physical unit attached to a numeric characteristic.
type Unit string

const (
	UnitCelsius    Unit = "celsius"
	UnitPercentage Unit = "percentage"
	UnitArcDegrees Unit = "arcdegrees"
	UnitLux        Unit = "lux"
	UnitSeconds    Unit = "seconds"
)

// Characteristic is the smallest addressable stateful element in the
// accessory tree, e.g. a lightbulb's On characteristic.
type Characteristic struct {
	ID     uint64
	Type   string
	Format Format
	Perms  []Permission
	Unit   Unit

	MinValue  *float64
	MaxValue  *float64
	StepValue *float64
	MaxLen    *int

	Events bool

	value interface{}
}

// New creates a characteristic of the given HAP type and format with
// value zeroed to the format's default.
func New(hapType string, format Format) *Characteristic {
	return &Characteristic{
		Type:   hapType,
		Format: format,
		value:  zeroValue(format),
	}
}

func zeroValue(f Format) interface{} {
	switch f {
	case FormatBool:
		return false
	case FormatUInt8, FormatUInt16, FormatUInt32, FormatUInt64:
		return uint64(0)
	case FormatInt:
		return int(0)
	case FormatFloat:
		return float64(0)
	case FormatString:
		return ""
	case FormatTLV8, FormatData:
		return []byte{}
	default:
		return nil
	}
}

// ValuesEqual reports whether two characteristic values are equal,
// handling []byte (tlv8/data formats) specially since byte slices are
// not comparable with ==.
func ValuesEqual(a, b interface{}) bool {
	ab, aok := a.([]byte)
	bb, bok := b.([]byte)
	if aok || bok {
		if aok != bok || len(ab) != len(bb) {
			return false
		}
		for i := range ab {
			if ab[i] != bb[i] {
				return false
			}
		}
		return true
	}
	return a == b
}

// HasPerm reports whether the given permission is present.
func (c *Characteristic) HasPerm(p Permission) bool {
	for _, have := range c.Perms {
		if have == p {
			return true
		}
	}
	return false
}

// Value returns the characteristic's current value.
func (c *Characteristic) Value() interface{} {
	return c.value
}

// SetMinValue sets the characteristic's minimum numeric bound.
func (c *Characteristic) SetMinValue(v float64) { c.MinValue = &v }

// SetMaxValue sets the characteristic's maximum numeric bound.
func (c *Characteristic) SetMaxValue(v float64) { c.MaxValue = &v }

// SetStepValue sets the characteristic's numeric step.
func (c *Characteristic) SetStepValue(v float64) { c.StepValue = &v }

// SetMaxLen sets the maximum length of a string/data value.
func (c *Characteristic) SetMaxLen(n int) { c.MaxLen = &n }

// SetValue coerces and validates v against the characteristic's format
// and bounds, then assigns it. It does not publish any event; callers
// needing CharacteristicValueChanged semantics go through
// db.AccessoryList.Write, the only place changed-value events are
// emitted.
func (c *Characteristic) SetValue(v interface{}) error {
	coerced, err := coerce(c.Format, v)
	if err != nil {
		return err
	}
	if err := c.checkBounds(coerced); err != nil {
		return err
	}
	c.value = coerced
	return nil
}

func (c *Characteristic) checkBounds(v interface{}) error {
	f, ok := toFloat(v)
	if !ok {
		if s, ok := v.(string); ok && c.MaxLen != nil && len(s) > *c.MaxLen {
			return fmt.Errorf("value exceeds max length %d", *c.MaxLen)
		}
		return nil
	}
	if c.MinValue != nil && f < *c.MinValue {
		return fmt.Errorf("value %v below minimum %v", f, *c.MinValue)
	}
	if c.MaxValue != nil && f > *c.MaxValue {
		return fmt.Errorf("value %v above maximum %v", f, *c.MaxValue)
	}
	return nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case uint64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

func coerce(format Format, v interface{}) (interface{}, error) {
	switch format {
	case FormatBool:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("value %v is not a bool", v)
		}
		return b, nil
	case FormatUInt8, FormatUInt16, FormatUInt32, FormatUInt64:
		switch n := v.(type) {
		case uint64:
			return n, nil
		case int:
			if n < 0 {
				return nil, fmt.Errorf("value %d is negative for unsigned format", n)
			}
			return uint64(n), nil
		case float64:
			if n < 0 {
				return nil, fmt.Errorf("value %v is negative for unsigned format", n)
			}
			return uint64(n), nil
		default:
			return nil, fmt.Errorf("value %v is not numeric", v)
		}
	case FormatInt:
		switch n := v.(type) {
		case int:
			return n, nil
		case float64:
			return int(n), nil
		case uint64:
			return int(n), nil
		default:
			return nil, fmt.Errorf("value %v is not numeric", v)
		}
	case FormatFloat:
		switch n := v.(type) {
		case float64:
			return n, nil
		case int:
			return float64(n), nil
		case uint64:
			return float64(n), nil
		default:
			return nil, fmt.Errorf("value %v is not numeric", v)
		}
	case FormatString:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("value %v is not a string", v)
		}
		return s, nil
	case FormatTLV8, FormatData:
		b, ok := v.([]byte)
		if !ok {
			return nil, fmt.Errorf("value %v is not bytes", v)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
