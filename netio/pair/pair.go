// Package pair holds the pair-setup and pair-verify handshake seams.
// SetupController/VerifyController are the shape netio/endpoint drives;
// the default implementations wire the key-agreement and AEAD
// primitives a full handshake needs without the SRP exchange itself.
package pair

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha512"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/hkdf"
)

// SetupController drives the M1-M6 pair-setup exchange for one session.
// Each call hands it one incoming TLV8-encoded message and gets back the
// TLV8-encoded response to write back.
type SetupController interface {
	HandleRequest(body []byte) (response []byte, done bool, err error)
}

// VerifyController drives the M1-M4 pair-verify exchange for one
// session.
type VerifyController interface {
	HandleRequest(body []byte) (response []byte, done bool, err error)
	// SharedSecret is available once HandleRequest has returned done=true.
	SharedSecret() []byte
}

// LongTermKey is the bridge's persistent Ed25519 identity, generated
// once and persisted via db.Database.SaveDeviceIdentity.
type LongTermKey struct {
	Public  ed25519.PublicKey
	Private ed25519.PrivateKey
}

// NewLongTermKey generates a fresh Ed25519 identity.
func NewLongTermKey() (*LongTermKey, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("pair: generate long-term key: %w", err)
	}
	return &LongTermKey{Public: pub, Private: priv}, nil
}

// stubSetupController implements the Curve25519/HKDF/ChaCha20-Poly1305
// plumbing a pair-setup session needs, without the SRP password proof.
type stubSetupController struct {
	pin         string
	longTerm    *LongTermKey
	sessionPriv [32]byte
	sessionPub  [32]byte
	done        bool
}

// NewSetupController constructs the pair-setup seam for one session.
func NewSetupController(pin string, longTerm *LongTermKey) (SetupController, error) {
	var priv [32]byte
	if _, err := io.ReadFull(rand.Reader, priv[:]); err != nil {
		return nil, fmt.Errorf("pair: generate session key: %w", err)
	}
	pub, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("pair: derive session public key: %w", err)
	}
	var pubArr [32]byte
	copy(pubArr[:], pub)

	return &stubSetupController{pin: pin, longTerm: longTerm, sessionPriv: priv, sessionPub: pubArr}, nil
}

// HandleRequest is a placeholder for the full M1-M6 SRP exchange; it
// reports the session as not yet implementable beyond key material
// setup. The HTTP-facing endpoint treats a non-nil error as an internal
// failure: logged, 500, and the process keeps running.
func (c *stubSetupController) HandleRequest(body []byte) ([]byte, bool, error) {
	return nil, false, fmt.Errorf("pair: pair-setup SRP exchange not implemented")
}

type stubVerifyController struct {
	sharedSecret []byte
}

// NewVerifyController constructs the pair-verify seam for one session.
func NewVerifyController() VerifyController {
	return &stubVerifyController{}
}

func (c *stubVerifyController) HandleRequest(body []byte) ([]byte, bool, error) {
	return nil, false, fmt.Errorf("pair: pair-verify exchange not implemented")
}

func (c *stubVerifyController) SharedSecret() []byte {
	return c.sharedSecret
}

// DeriveSessionKeys derives the read/write AEAD keys from a completed
// pair-verify's shared secret via HKDF, matching HAP's
// "Control-Salt"/"Control-Write-Encryption-Key" info strings.
func DeriveSessionKeys(sharedSecret []byte) (encryptKey, decryptKey []byte, err error) {
	encryptKey = make([]byte, chacha20poly1305.KeySize)
	decryptKey = make([]byte, chacha20poly1305.KeySize)

	writer := hkdf.New(sha512.New, sharedSecret, []byte("Control-Salt"), []byte("Control-Write-Encryption-Key"))
	if _, err := io.ReadFull(writer, encryptKey); err != nil {
		return nil, nil, err
	}
	reader := hkdf.New(sha512.New, sharedSecret, []byte("Control-Salt"), []byte("Control-Read-Encryption-Key"))
	if _, err := io.ReadFull(reader, decryptKey); err != nil {
		return nil, nil, err
	}
	return encryptKey, decryptKey, nil
}
