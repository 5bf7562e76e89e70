package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testAddr struct {
	addr string
}

func newAddr(addr string) testAddr {
	return testAddr{addr: addr}
}

func (a testAddr) Network() string {
	return "tcp"
}

func (a testAddr) String() string {
	return a.addr
}

func TestExtractPort(t *testing.T) {
	port := ExtractPort(newAddr("[::]:12345"))
	assert.Equal(t, "12345", port)
}

func TestExtractPort_malformed(t *testing.T) {
	port := ExtractPort(newAddr("not-an-address"))
	assert.Equal(t, "", port)
}
