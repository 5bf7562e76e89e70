package hap

import (
	"bufio"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhearth/hap/event"
	"github.com/openhearth/hap/netio"
	"github.com/openhearth/hap/subscription"
)

type pipeAddr string

func (a pipeAddr) Network() string { return "tcp" }
func (a pipeAddr) String() string  { return string(a) }

// addrConn wraps one end of a net.Pipe with a stable remote address so
// netio.Context can key a session by it.
type addrConn struct {
	net.Conn
	remote string
}

func (c addrConn) RemoteAddr() net.Addr { return pipeAddr(c.remote) }

func TestNotifyDeliversOnlyToSubscribedSessions(t *testing.T) {
	ctx := netio.NewContext()
	subs := subscription.NewRegistry()

	subscribedServer, subscribedClient := net.Pipe()
	defer subscribedServer.Close()
	defer subscribedClient.Close()
	unsubscribedServer, unsubscribedClient := net.Pipe()
	defer unsubscribedServer.Close()
	defer unsubscribedClient.Close()

	ctx.Add(addrConn{Conn: subscribedServer, remote: "sess-1"})
	ctx.Add(addrConn{Conn: unsubscribedServer, remote: "sess-2"})
	subs.Subscribe("sess-1", 2, 10)

	tr := &Transport{context: ctx, subscriptions: subs}

	done := make(chan struct{})
	go func() {
		defer close(done)
		tr.notifyOnCharacteristicChange(event.CharacteristicValueChanged{AID: 2, IID: 10, Value: true})
	}()

	frame := make([]byte, 4096)
	subscribedClient.SetReadDeadline(time.Now().Add(time.Second))
	n, err := subscribedClient.Read(frame)
	require.NoError(t, err)
	assert.Contains(t, string(frame[:n]), "EVENT/1.0 200 OK")
	assert.Contains(t, string(frame[:n]), `"value":true`)

	<-done

	// The unsubscribed session's pipe must stay silent.
	unsubscribedClient.SetReadDeadline(time.Now().Add(50 * time.Millisecond))
	_, err = unsubscribedClient.Read(frame)
	assert.Error(t, err)
}

func TestNotifyIgnoresOtherEvents(t *testing.T) {
	tr := &Transport{context: netio.NewContext(), subscriptions: subscription.NewRegistry()}
	tr.notifyOnCharacteristicChange(event.DevicePaired{})
}

func TestEventFrameParsesAsHTTPResponse(t *testing.T) {
	body, err := encodeChangedValue(event.CharacteristicValueChanged{AID: 2, IID: 10, Value: false})
	require.NoError(t, err)

	frame := netio.EventFrame(body)
	asHTTP := strings.Replace(string(frame), "EVENT/1.0", "HTTP/1.1", 1)

	resp, err := http.ReadResponse(bufio.NewReader(strings.NewReader(asHTTP)), nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "application/hap+json", resp.Header.Get("Content-Type"))
}
