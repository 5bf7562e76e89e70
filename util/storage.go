// Package util provides the small storage abstraction the transport
// layer needs to persist pairing keys and the device id across
// restarts, plus the random-identifier helpers the transport seeds a
// fresh storage directory with.
package util

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	uuid "github.com/satori/go.uuid"
)

// Storage is a flat key-value store, keyed by string, valued by bytes.
type Storage interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	KeysWithSuffix(suffix string) ([]string, error)
}

// FileStorage persists each key as one file inside a directory.
type FileStorage struct {
	dir string
}

// NewFileStorage creates (if needed) dir and returns a Storage backed by
// one file per key inside it.
func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileStorage{dir: dir}, nil
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.dir, key)
}

func (s *FileStorage) Get(key string) ([]byte, error) {
	return os.ReadFile(s.path(key))
}

func (s *FileStorage) Set(key string, value []byte) error {
	return os.WriteFile(s.path(key), value, 0o600)
}

func (s *FileStorage) Delete(key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *FileStorage) KeysWithSuffix(suffix string) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), suffix) {
			out = append(out, e.Name())
		}
	}
	return out, nil
}

// RandomHexString returns a random 128-bit value hex-encoded, used to
// seed a device id the first time a storage directory is created.
func RandomHexString() string {
	id := uuid.NewV4()
	return hex.EncodeToString(id.Bytes())
}

// MAC48Address formats the first 12 hex digits of input as a MAC-48
// style identifier (XX:XX:XX:XX:XX:XX), the shape the `id` TXT record
// advertises.
func MAC48Address(input string) string {
	var sb strings.Builder
	sb.WriteString(input[:2])
	sb.WriteString(":")
	sb.WriteString(input[2:4])
	sb.WriteString(":")
	sb.WriteString(input[4:6])
	sb.WriteString(":")
	sb.WriteString(input[6:8])
	sb.WriteString(":")
	sb.WriteString(input[8:10])
	sb.WriteString(":")
	sb.WriteString(input[10:12])

	return sb.String()
}
