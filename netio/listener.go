package netio

import "net"

// HAPTCPListener wraps a net.Listener and registers/unregisters each
// accepted connection's Session in a Context. It only tracks session
// identity and active connections for the notification fan-out and the
// unauthorized-session gate. It does not decrypt frames: accepted
// connections are handed to the HTTP server as plaintext.
type HAPTCPListener struct {
	inner   net.Listener
	context *Context
}

// NewHAPTCPListener wraps inner, tracking connections in context.
func NewHAPTCPListener(inner net.Listener, context *Context) *HAPTCPListener {
	return &HAPTCPListener{inner: inner, context: context}
}

// Accept blocks for the next connection and registers it in the Context.
func (l *HAPTCPListener) Accept() (net.Conn, error) {
	conn, err := l.inner.Accept()
	if err != nil {
		return nil, err
	}
	l.context.Add(conn)
	return &trackedConn{Conn: conn, context: l.context}, nil
}

func (l *HAPTCPListener) Close() error   { return l.inner.Close() }
func (l *HAPTCPListener) Addr() net.Addr { return l.inner.Addr() }

// trackedConn removes its session from the Context on Close, so that
// subscription.Registry.DropSession can be called from the server's
// connection-close hook without the session lingering in
// ActiveConnections.
type trackedConn struct {
	net.Conn
	context *Context
}

func (c *trackedConn) Close() error {
	c.context.Remove(ConnectionKey(c.Conn))
	return c.Conn.Close()
}
