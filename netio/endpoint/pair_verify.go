package endpoint

import (
	"io"
	"net/http"

	"github.com/openhearth/hap/log"
	"github.com/openhearth/hap/netio"
	"github.com/openhearth/hap/netio/pair"
)

// PairVerify serves POST /pair-verify. On successful completion it
// derives the session's ChaCha20-Poly1305 keys via pair.DeriveSessionKeys
// and marks the session Verified, which is what every other endpoint's
// 470 check gates on.
type PairVerify struct {
	context *netio.Context
}

func NewPairVerify(context *netio.Context) *PairVerify {
	return &PairVerify{context: context}
}

func (h *PairVerify) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", contentTypePairingTLV8)

	session := h.context.Get(r.RemoteAddr)
	if session == nil {
		http.Error(w, "unknown session", http.StatusInternalServerError)
		return
	}

	controller := session.PairVerifyController()
	if controller == nil {
		controller = pair.NewVerifyController()
		session.SetPairVerifyController(controller)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	resp, done, err := controller.HandleRequest(body)
	if err != nil {
		log.Errorf("pair-verify: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if done {
		encryptKey, decryptKey, err := pair.DeriveSessionKeys(controller.SharedSecret())
		if err != nil {
			log.Errorf("pair-verify: deriving session keys: %v", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		cipher, err := netio.NewCipher(encryptKey, decryptKey)
		if err != nil {
			log.Errorf("pair-verify: %v", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		session.Cipher = cipher
		session.Verified = true
	}

	w.Write(resp)
}
