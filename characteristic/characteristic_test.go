package characteristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewZeroesValue(t *testing.T) {
	c := New("25", FormatBool)
	assert.Equal(t, false, c.Value())

	c = New("13", FormatString)
	assert.Equal(t, "", c.Value())
}

func TestSetValueCoercesNumericFormats(t *testing.T) {
	c := New("23", FormatUInt8)
	assert.NoError(t, c.SetValue(1))
	assert.Equal(t, uint64(1), c.Value())

	c = New("23", FormatUInt8)
	assert.Error(t, c.SetValue(-1))
}

func TestSetValueRejectsWrongType(t *testing.T) {
	c := New("25", FormatBool)
	assert.Error(t, c.SetValue("not a bool"))
}

func TestSetValueEnforcesBounds(t *testing.T) {
	c := New("8", FormatUInt8)
	c.SetMinValue(0)
	c.SetMaxValue(100)

	assert.NoError(t, c.SetValue(uint64(50)))
	assert.Error(t, c.SetValue(uint64(101)))
}

func TestSetValueEnforcesMaxLen(t *testing.T) {
	c := New("23", FormatString)
	c.SetMaxLen(3)

	assert.NoError(t, c.SetValue("abc"))
	assert.Error(t, c.SetValue("abcd"))
}

func TestHasPerm(t *testing.T) {
	c := New("25", FormatBool)
	c.Perms = []Permission{PermRead, PermWrite}

	assert.True(t, c.HasPerm(PermRead))
	assert.False(t, c.HasPerm(PermEvents))
}

func TestValuesEqualHandlesByteSlices(t *testing.T) {
	assert.True(t, ValuesEqual([]byte{1, 2, 3}, []byte{1, 2, 3}))
	assert.False(t, ValuesEqual([]byte{1, 2, 3}, []byte{1, 2, 4}))
	assert.False(t, ValuesEqual([]byte{1, 2, 3}, []byte{1, 2}))
	assert.True(t, ValuesEqual(uint64(5), uint64(5)))
	assert.False(t, ValuesEqual(uint64(5), uint64(6)))
}

func TestSetValueDoesNotEmitEvents(t *testing.T) {
	// SetValue is a pure value-cell mutation; event emission is the
	// exclusive responsibility of db.AccessoryList.Write. This only
	// documents that SetValue succeeds without any emitter wired in.
	c := New("25", FormatBool)
	assert.NoError(t, c.SetValue(true))
	assert.Equal(t, true, c.Value())
}
