package netio

import (
	"bytes"
	"fmt"
)

// FixProtocolSpecifier rewrites an HTTP/1.1 status line into the
// EVENT/1.0 framing HAP uses for unsolicited characteristic-change
// notifications.
func FixProtocolSpecifier(b []byte) []byte {
	return bytes.Replace(b, []byte("HTTP/1.1"), []byte("EVENT/1.0"), 1)
}

// EventFrame builds a complete EVENT/1.0 frame carrying body as its
// application/hap+json payload.
func EventFrame(body []byte) []byte {
	header := fmt.Sprintf("HTTP/1.1 200 OK\r\n"+
		"Content-Type: application/hap+json\r\n"+
		"Content-Length: %d\r\n", len(body))
	frame := append([]byte(header+"\r\n"), body...)
	return FixProtocolSpecifier(frame)
}
