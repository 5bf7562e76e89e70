package endpoint

import (
	"io"
	"net/http"

	"github.com/openhearth/hap/db"
	"github.com/openhearth/hap/log"
	"github.com/openhearth/hap/netio"
	"github.com/openhearth/hap/netio/pair"
)

const contentTypePairingTLV8 = "application/pairing+tlv8"

// PairSetup serves POST /pair-setup, creating a per-session
// pair.SetupController on first contact and driving it with each
// subsequent request body.
type PairSetup struct {
	context  *netio.Context
	longTerm *pair.LongTermKey
	pin      string
	database *db.Database
}

func NewPairSetup(context *netio.Context, longTerm *pair.LongTermKey, pin string, database *db.Database) *PairSetup {
	return &PairSetup{context: context, longTerm: longTerm, pin: pin, database: database}
}

func (h *PairSetup) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", contentTypePairingTLV8)

	session := h.context.Get(r.RemoteAddr)
	if session == nil {
		http.Error(w, "unknown session", http.StatusInternalServerError)
		return
	}

	controller := session.PairSetupController()
	if controller == nil {
		var err error
		controller, err = pair.NewSetupController(h.pin, h.longTerm)
		if err != nil {
			log.Errorf("pair-setup: %v", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		session.SetPairSetupController(controller)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	resp, _, err := controller.HandleRequest(body)
	if err != nil {
		log.Errorf("pair-setup: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Write(resp)
}
