// Package netio implements the HAP session layer: per-connection
// session state, the session-tracking TCP listener, the pair-setup and
// pair-verify controller seams, and the encrypted session cipher.
package netio

import (
	"net"
	"sync"

	"github.com/openhearth/hap/netio/pair"
)

// Session holds the per-connection state the HAP handshake and
// subsequent encrypted traffic need: whether pair-verify has completed
// (Verified), the in-progress pair-setup/pair-verify controllers, and
// the session identity used as the subscription.Registry key.
type Session struct {
	ID       string
	Verified bool

	Cipher *Cipher

	pairSetup  pair.SetupController
	pairVerify pair.VerifyController

	mu sync.Mutex
}

func newSession(id string) *Session {
	return &Session{ID: id}
}

// PairSetupController returns the session's in-progress pair-setup
// controller, or nil if none has been created yet.
func (s *Session) PairSetupController() pair.SetupController {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pairSetup
}

// SetPairSetupController installs the session's pair-setup controller.
func (s *Session) SetPairSetupController(c pair.SetupController) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pairSetup = c
}

// PairVerifyController returns the session's in-progress pair-verify
// controller, or nil if none has been created yet.
func (s *Session) PairVerifyController() pair.VerifyController {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pairVerify
}

// SetPairVerifyController installs the session's pair-verify controller.
func (s *Session) SetPairVerifyController(c pair.VerifyController) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pairVerify = c
}

// Context maps active connections to their Session.
type Context struct {
	mu       sync.Mutex
	sessions map[string]*Session
	conns    map[string]net.Conn
	onClose  func(sessionID string)
}

// NewContext constructs an empty Context.
func NewContext() *Context {
	return &Context{
		sessions: make(map[string]*Session),
		conns:    make(map[string]net.Conn),
	}
}

// OnSessionClose installs a hook invoked with the session id whenever a
// session is removed, e.g. to drop its subscriptions.
func (c *Context) OnSessionClose(fn func(sessionID string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onClose = fn
}

// ConnectionKey derives the session key for a connection from its
// remote address.
func ConnectionKey(conn net.Conn) string {
	return conn.RemoteAddr().String()
}

// Add registers conn and returns its freshly created Session.
func (c *Context) Add(conn net.Conn) *Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := ConnectionKey(conn)
	s := newSession(key)
	c.sessions[key] = s
	c.conns[key] = conn
	return s
}

// Get returns the Session for key, or nil if key is unknown.
func (c *Context) Get(key string) *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessions[key]
}

// Remove drops the session and connection registered under key and
// fires the OnSessionClose hook if the session existed.
func (c *Context) Remove(key string) {
	c.mu.Lock()
	_, existed := c.sessions[key]
	delete(c.sessions, key)
	delete(c.conns, key)
	onClose := c.onClose
	c.mu.Unlock()

	if existed && onClose != nil {
		onClose(key)
	}
}

// ActiveConnections returns every currently registered connection.
func (c *Context) ActiveConnections() []net.Conn {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]net.Conn, 0, len(c.conns))
	for _, conn := range c.conns {
		out = append(out, conn)
	}
	return out
}

// ConnectionForSession returns the net.Conn registered for a session id,
// or nil if the session has since been dropped.
func (c *Context) ConnectionForSession(sessionID string) net.Conn {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conns[sessionID]
}
