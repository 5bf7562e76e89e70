package netio

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// Cipher encrypts/decrypts HAP session traffic with ChaCha20-Poly1305
// once pair-verify has completed, using the counter nonce scheme HAP's
// wire framing defines. It does not split a net.Conn's byte stream into
// length-prefixed frames; pair-verify stores it on the Session, and no
// code in this module applies it to connection traffic.
type Cipher struct {
	encryptKey   []byte
	decryptKey   []byte
	encryptCount uint64
	decryptCount uint64
}

// NewCipher wraps the two session keys pair.DeriveSessionKeys returns.
func NewCipher(encryptKey, decryptKey []byte) (*Cipher, error) {
	if len(encryptKey) != chacha20poly1305.KeySize || len(decryptKey) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("netio: session keys must be %d bytes", chacha20poly1305.KeySize)
	}
	return &Cipher{encryptKey: encryptKey, decryptKey: decryptKey}, nil
}

func nonceFor(counter uint64) []byte {
	nonce := make([]byte, chacha20poly1305.NonceSize)
	binary.LittleEndian.PutUint64(nonce[4:], counter)
	return nonce
}

// Seal encrypts plaintext with the next outgoing nonce.
func (c *Cipher) Seal(plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(c.encryptKey)
	if err != nil {
		return nil, err
	}
	out := aead.Seal(nil, nonceFor(c.encryptCount), plaintext, nil)
	c.encryptCount++
	return out, nil
}

// Open decrypts ciphertext with the next expected incoming nonce.
func (c *Cipher) Open(ciphertext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(c.decryptKey)
	if err != nil {
		return nil, err
	}
	out, err := aead.Open(nil, nonceFor(c.decryptCount), ciphertext, nil)
	if err != nil {
		return nil, err
	}
	c.decryptCount++
	return out, nil
}
