package endpoint

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/openhearth/hap/db"
	"github.com/openhearth/hap/netio"
	"github.com/openhearth/hap/netio/controller"
)

// Characteristics serves GET/PUT /characteristics.
type Characteristics struct {
	context    *netio.Context
	controller *controller.CharacteristicController
}

func NewCharacteristics(context *netio.Context, controller *controller.CharacteristicController) *Characteristics {
	return &Characteristics{context: context, controller: controller}
}

func (h *Characteristics) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !sessionVerified(h.context, r) {
		w.WriteHeader(470)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.read(w, r)
	case http.MethodPut:
		h.write(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *Characteristics) read(w http.ResponseWriter, r *http.Request) {
	idParam := r.URL.Query().Get("id")
	if idParam == "" {
		http.Error(w, "missing required query parameter \"id\"", http.StatusBadRequest)
		return
	}

	ids, err := parseIDs(idParam)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	meta := queryBool(r, "meta")
	perms := queryBool(r, "perms")
	hapType := queryBool(r, "type")
	ev := queryBool(r, "ev")

	results := h.controller.Read(ids, meta, perms, hapType, ev)
	writeMultiStatus(w, map[string]interface{}{"characteristics": results}, anyNonZero(results))
}

func (h *Characteristics) write(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Characteristics []db.WriteObject `json:"characteristics"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}

	sessionID := r.RemoteAddr
	results := h.controller.Write(body.Characteristics, sessionID)

	allSuccess := true
	for _, res := range results {
		if res.Status != db.StatusSuccess {
			allSuccess = false
			break
		}
	}
	if allSuccess {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeMultiStatus(w, map[string]interface{}{"characteristics": results}, true)
}

func writeMultiStatus(w http.ResponseWriter, payload interface{}, multi bool) {
	w.Header().Set("Content-Type", "application/hap+json")
	if multi {
		w.WriteHeader(http.StatusMultiStatus)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	json.NewEncoder(w).Encode(payload)
}

func anyNonZero(results []db.ReadResponseObject) bool {
	for _, r := range results {
		if r.Status != db.StatusSuccess {
			return true
		}
	}
	return false
}

func queryBool(r *http.Request, key string) bool {
	return r.URL.Query().Get(key) == "1"
}

func parseIDs(param string) ([]controller.ReadID, error) {
	var ids []controller.ReadID
	for _, entry := range strings.Split(param, ",") {
		parts := strings.SplitN(entry, ".", 2)
		if len(parts) != 2 {
			return nil, errBadID(entry)
		}
		aid, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			return nil, errBadID(entry)
		}
		iid, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return nil, errBadID(entry)
		}
		ids = append(ids, controller.ReadID{AID: aid, IID: iid})
	}
	return ids, nil
}

func errBadID(entry string) error {
	return &badIDError{entry}
}

type badIDError struct{ entry string }

func (e *badIDError) Error() string {
	return "malformed id entry \"" + e.entry + "\""
}
