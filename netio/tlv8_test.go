package netio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeTLV8RoundTrips(t *testing.T) {
	in := TLV8{
		0x06: []byte{0x01},
		0x00: []byte{0x02},
	}

	encoded := EncodeTLV8(in)
	out, err := DecodeTLV8(encoded)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestEncodeTLV8OrdersTagsAscending(t *testing.T) {
	in := TLV8{
		0x06: []byte{0x01},
		0x00: []byte{0x02},
	}

	encoded := EncodeTLV8(in)
	// Tag 0x00 sorts before tag 0x06.
	assert.True(t, bytes.Equal(encoded[:3], []byte{0x00, 0x01, 0x02}))
}

func TestEncodeTLV8FragmentsLongValues(t *testing.T) {
	value := bytes.Repeat([]byte{0xAB}, 300)
	encoded := EncodeTLV8(TLV8{0x01: value})

	decoded, err := DecodeTLV8(encoded)
	require.NoError(t, err)
	assert.Equal(t, value, decoded[0x01])
}

func TestDecodeTLV8RejectsTruncatedInput(t *testing.T) {
	_, err := DecodeTLV8([]byte{0x01})
	assert.Error(t, err)
}

func TestDecodeTLV8RejectsOverrunLength(t *testing.T) {
	_, err := DecodeTLV8([]byte{0x01, 0x05, 0x01})
	assert.Error(t, err)
}
