// Package mdns implements the mDNS/DNS-SD advertisement of the bridge
// and the state machine that flips its TXT records on pairing-lifecycle
// transitions.
package mdns

import (
	"context"
	"fmt"
	"net"

	"github.com/brutella/dnssd"

	"github.com/openhearth/hap/log"
)

const serviceType = "_hap._tcp."

// Responder publishes and updates the bridge's DNS-SD service instance.
type Responder struct {
	responder dnssd.Responder
	handle    dnssd.ServiceHandle
	cancel    context.CancelFunc

	name string
	ip   net.IP
	port int
}

// NewResponder builds a Responder for the given instance name, address
// and port; it does not publish until Start is called.
func NewResponder(name string, ip net.IP, port int) (*Responder, error) {
	responder, err := dnssd.NewResponder()
	if err != nil {
		return nil, fmt.Errorf("mdns: new responder: %w", err)
	}
	return &Responder{responder: responder, name: name, ip: ip, port: port}, nil
}

// Start publishes the service with the given initial TXT records and
// begins serving mDNS queries in the background.
func (r *Responder) Start(txt map[string]string) error {
	cfg := dnssd.Config{
		Name: r.name,
		Type: serviceType,
		Port: r.port,
		Text: txt,
	}
	if r.ip != nil {
		cfg.IPs = []net.IP{r.ip}
	}
	svc, err := dnssd.NewService(cfg)
	if err != nil {
		return fmt.Errorf("mdns: new service: %w", err)
	}

	handle, err := r.responder.Add(svc)
	if err != nil {
		return fmt.Errorf("mdns: add service: %w", err)
	}
	r.handle = handle

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	go func() {
		if err := r.responder.Respond(ctx); err != nil && ctx.Err() == nil {
			log.Errorf("mdns: responder stopped: %v", err)
		}
	}()

	return nil
}

// UpdateTXT republishes the full TXT record set. The update is
// best-effort: a failed announce is the responder's problem, never the
// pairing mutation's that triggered it.
func (r *Responder) UpdateTXT(txt map[string]string) {
	if r.handle == nil {
		return
	}
	r.handle.UpdateText(txt, r.responder)
}

// Stop unpublishes the service and stops responding to queries.
func (r *Responder) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
}
