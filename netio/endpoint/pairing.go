package endpoint

import (
	"io"
	"net/http"

	"github.com/openhearth/hap/db"
	"github.com/openhearth/hap/event"
	"github.com/openhearth/hap/log"
	"github.com/openhearth/hap/netio"
)

// pairingMethod mirrors the single-byte TLV8 "Pairing Method" tag (0x00)
// values HAP's /pairings endpoint reads, simplified to the two this
// core drives end to end.
type pairingMethod byte

const (
	pairingMethodAddPairing    pairingMethod = 3
	pairingMethodRemovePairing pairingMethod = 4
)

// Pairing serves POST /pairings: add/remove controller pairing entries,
// emitting event.ControllerPaired/ControllerUnpaired and the
// DevicePaired/DeviceUnpaired edge events mdns.AdvertisementController
// listens for.
type Pairing struct {
	context  *netio.Context
	database *db.Database
	emitter  *event.Emitter
}

func NewPairing(context *netio.Context, database *db.Database, emitter *event.Emitter) *Pairing {
	return &Pairing{context: context, database: database, emitter: emitter}
}

func (h *Pairing) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", contentTypePairingTLV8)

	if !sessionVerified(h.context, r) {
		w.WriteHeader(470)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	tlv, err := netio.DecodeTLV8(body)
	if err != nil || len(tlv[0x00]) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch pairingMethod(tlv[0x00][0]) {
	case pairingMethodAddPairing:
		h.addPairing(tlv)
	case pairingMethodRemovePairing:
		h.removePairing(tlv)
	default:
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Pairing) addPairing(tlv netio.TLV8) {
	before, _ := h.database.CountPairings()

	name := string(tlv[0x01])
	if err := h.database.SaveEntity(db.Entity{Name: name, PublicKey: tlv[0x03]}); err != nil {
		log.Errorf("pairing: save entity: %v", err)
		return
	}

	h.emitter.Emit(event.ControllerPaired{ID: name})

	after, _ := h.database.CountPairings()
	if before == 0 && after > 0 {
		h.emitter.Emit(event.DevicePaired{})
	}
}

func (h *Pairing) removePairing(tlv netio.TLV8) {
	before, _ := h.database.CountPairings()

	name := string(tlv[0x01])
	if err := h.database.DeleteEntity(name); err != nil {
		log.Errorf("pairing: delete entity: %v", err)
		return
	}

	h.emitter.Emit(event.ControllerUnpaired{ID: name})

	after, _ := h.database.CountPairings()
	if before > 0 && after == 0 {
		h.emitter.Emit(event.DeviceUnpaired{})
	}
}
