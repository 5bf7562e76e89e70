// Package endpoint implements the HAP HTTP surface: one http.Handler
// per endpoint the server wires onto its mux.
package endpoint

import (
	"net/http"

	"github.com/openhearth/hap/netio"
	"github.com/openhearth/hap/netio/controller"
)

// Accessories serves GET /accessories.
type Accessories struct {
	controller *controller.AccessoryController
	context    *netio.Context
}

func NewAccessories(controller *controller.AccessoryController, context *netio.Context) *Accessories {
	return &Accessories{controller: controller, context: context}
}

func (h *Accessories) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !sessionVerified(h.context, r) {
		w.WriteHeader(470)
		return
	}

	body, err := h.controller.Serialize()
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/hap+json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// sessionVerified reports whether the connection this request arrived on
// has completed pair-verify. An unverified session gets HTTP 470 with an
// empty body.
func sessionVerified(context *netio.Context, r *http.Request) bool {
	key := r.RemoteAddr
	session := context.Get(key)
	return session != nil && session.Verified
}
