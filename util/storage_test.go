package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorageRoundTrips(t *testing.T) {
	s, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Set("key", []byte("value")))
	got, err := s.Get("key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), got)

	require.NoError(t, s.Delete("key"))
	_, err = s.Get("key")
	assert.Error(t, err)
}

func TestDeleteMissingKeyIsNoOp(t *testing.T) {
	s, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, s.Delete("missing"))
}

func TestKeysWithSuffix(t *testing.T) {
	s, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Set("a.key", nil))
	require.NoError(t, s.Set("b.key", nil))
	require.NoError(t, s.Set("c.other", nil))

	keys, err := s.KeysWithSuffix(".key")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.key", "b.key"}, keys)
}

func TestMAC48Address(t *testing.T) {
	assert.Equal(t, "01:23:45:67:89:ab", MAC48Address("0123456789abcdef"))
}

func TestRandomHexStringLength(t *testing.T) {
	assert.Len(t, RandomHexString(), 32)
}
