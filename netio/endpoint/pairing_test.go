package endpoint

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhearth/hap/db"
	"github.com/openhearth/hap/event"
	"github.com/openhearth/hap/netio"
	"github.com/openhearth/hap/util"
)

func newPairingHandler(t *testing.T) (*Pairing, *event.Emitter, *netio.Context) {
	t.Helper()
	storage, err := util.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	database := db.NewDatabaseWithStorage(storage)
	emitter := event.NewEmitter()
	ctx := verifiedContext("sess-1")
	return NewPairing(ctx, database, emitter), emitter, ctx
}

func pairingBody(method byte, name string) []byte {
	return netio.EncodeTLV8(netio.TLV8{
		0x00: {method},
		0x01: []byte(name),
		0x03: {0xAA, 0xBB},
	})
}

func TestAddPairingEmitsDevicePairedOnFirstController(t *testing.T) {
	h, emitter, _ := newPairingHandler(t)

	var devicePaired, controllerPaired int
	emitter.AddListener(func(ev event.Event) {
		switch ev.(type) {
		case event.DevicePaired:
			devicePaired++
		case event.ControllerPaired:
			controllerPaired++
		}
	})

	req := httptest.NewRequest(http.MethodPost, "/pairings", bytes.NewReader(pairingBody(3, "controller-1")))
	req.RemoteAddr = "sess-1"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, devicePaired)
	assert.Equal(t, 1, controllerPaired)

	// A second controller pairing must not re-emit DevicePaired.
	req = httptest.NewRequest(http.MethodPost, "/pairings", bytes.NewReader(pairingBody(3, "controller-2")))
	req.RemoteAddr = "sess-1"
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, 1, devicePaired)
	assert.Equal(t, 2, controllerPaired)
}

func TestRemoveLastPairingEmitsDeviceUnpaired(t *testing.T) {
	h, emitter, _ := newPairingHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/pairings", bytes.NewReader(pairingBody(3, "controller-1")))
	req.RemoteAddr = "sess-1"
	h.ServeHTTP(httptest.NewRecorder(), req)

	var deviceUnpaired int
	emitter.AddListener(func(ev event.Event) {
		if _, ok := ev.(event.DeviceUnpaired); ok {
			deviceUnpaired++
		}
	})

	req = httptest.NewRequest(http.MethodPost, "/pairings", bytes.NewReader(pairingBody(4, "controller-1")))
	req.RemoteAddr = "sess-1"
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, 1, deviceUnpaired)
}

func TestPairingsRejectsUnverifiedSession(t *testing.T) {
	h, _, _ := newPairingHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/pairings", bytes.NewReader(pairingBody(3, "controller-1")))
	req.RemoteAddr = "unknown-session"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, 470, rec.Code)
}
