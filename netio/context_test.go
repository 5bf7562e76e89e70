package netio

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRegistersSessionAndConnection(t *testing.T) {
	c := NewContext()
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	sess := c.Add(server)
	require.NotNil(t, sess)

	key := ConnectionKey(server)
	assert.Equal(t, sess, c.Get(key))
	assert.Equal(t, server, c.ConnectionForSession(key))
	assert.Contains(t, c.ActiveConnections(), server)
}

func TestRemoveDropsSessionAndConnection(t *testing.T) {
	c := NewContext()
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	c.Add(server)
	key := ConnectionKey(server)

	c.Remove(key)

	assert.Nil(t, c.Get(key))
	assert.Nil(t, c.ConnectionForSession(key))
}

func TestGetUnknownKeyReturnsNil(t *testing.T) {
	c := NewContext()
	assert.Nil(t, c.Get("unknown"))
}
