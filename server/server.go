// Package server implements the HAP HTTP server: a thin wrapper
// around net/http.Server that tracks sessions per connection.
package server

import (
	"net"
	"net/http"

	"github.com/openhearth/hap/db"
	"github.com/openhearth/hap/event"
	"github.com/openhearth/hap/netio"
	"github.com/openhearth/hap/netio/controller"
	"github.com/openhearth/hap/netio/endpoint"
	"github.com/openhearth/hap/netio/pair"
	"github.com/openhearth/hap/subscription"
)

// Server provides a similar interface as http.Server to start and stop
// a TCP server.
type Server interface {
	ListenAndServe() error
	Port() string
	Stop()
}

// Config collects everything the HAP HTTP surface needs to dispatch
// requests against the shared accessory tree.
type Config struct {
	Port          string
	Context       *netio.Context
	Database      *db.Database
	AccessoryList *db.AccessoryList
	Subscriptions *subscription.Registry
	LongTermKey   *pair.LongTermKey
	Pin           string
	Emitter       *event.Emitter
}

type hkServer struct {
	context *netio.Context

	mux         *http.ServeMux
	port        string
	listener    *net.TCPListener
	hapListener *netio.HAPTCPListener
	httpServer  *http.Server
}

// NewServer returns a Server, binding to the port requested in c (or any
// free port, if c.Port is empty).
func NewServer(c Config) (Server, error) {
	ln, err := net.Listen("tcp", c.Port)
	if err != nil {
		return nil, err
	}

	_, port, err := net.SplitHostPort(ln.Addr().String())
	if err != nil {
		return nil, err
	}

	s := &hkServer{
		context:  c.Context,
		mux:      http.NewServeMux(),
		listener: ln.(*net.TCPListener),
		port:     port,
	}

	s.setupEndpoints(c)

	return s, nil
}

func (s *hkServer) ListenAndServe() error {
	server := &http.Server{Addr: s.addrString(), Handler: s.mux}
	listener := netio.NewHAPTCPListener(s.listener, s.context)
	s.hapListener = listener
	s.httpServer = server
	return server.Serve(listener)
}

func (s *hkServer) Stop() {
	for _, c := range s.context.ActiveConnections() {
		c.Close()
	}
	if s.httpServer != nil {
		// Closing the http.Server makes Serve return http.ErrServerClosed.
		s.httpServer.Close()
	}
	if s.hapListener != nil {
		s.hapListener.Close()
	}
}

func (s *hkServer) Port() string {
	return s.port
}

func (s *hkServer) addrString() string {
	return ":" + s.port
}

// setupEndpoints creates controller objects and wires them onto the mux.
func (s *hkServer) setupEndpoints(c Config) {
	accessoryController := controller.NewAccessoryController(c.AccessoryList)
	characteristicController := controller.NewCharacteristicController(c.AccessoryList, c.Subscriptions)

	s.mux.Handle("/pair-setup", endpoint.NewPairSetup(c.Context, c.LongTermKey, c.Pin, c.Database))
	s.mux.Handle("/pair-verify", endpoint.NewPairVerify(c.Context))
	s.mux.Handle("/accessories", endpoint.NewAccessories(accessoryController, c.Context))
	s.mux.Handle("/characteristics", endpoint.NewCharacteristics(c.Context, characteristicController))
	s.mux.Handle("/pairings", endpoint.NewPairing(c.Context, c.Database, c.Emitter))
	s.mux.Handle("/identify", endpoint.NewIdentify(accessoryController))
}

// ExtractPort pulls the numeric port out of a net.Addr's string form.
func ExtractPort(addr net.Addr) string {
	_, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return ""
	}
	return port
}
