package db

import (
	"errors"

	"github.com/openhearth/hap/characteristic"
	"github.com/openhearth/hap/service"
)

// ErrDuplicateAccessory is returned by AccessoryList.Add when the same
// *accessory.Accessory pointer has already been added.
var ErrDuplicateAccessory = errors.New("db: accessory already added to this list")

// ErrNotFound is returned by AccessoryList.Remove when no accessory with
// the handle's AID is present.
var ErrNotFound = errors.New("db: accessory not found")

// AccessoryMember is the capability set AccessoryList needs from a
// member accessory: assigning/reading its id, walking its services, and
// reporting its category and name. Serialization is done by
// AccessoryList.Serialize. accessory.Accessory implements this interface; it is
// the Go analogue of the trait object the Rust source stores accessories
// behind (Design Notes §9).
type AccessoryMember interface {
	GetAID() uint64
	SetAID(uint64)
	Category() int
	Services() []*service.Service
	Name() string
}

// ReadResponseObject is the per-characteristic result of a read
// dispatch.
type ReadResponseObject struct {
	AID    uint64                `json:"aid"`
	IID    uint64                `json:"iid"`
	Status Status                `json:"status"`
	Value  interface{}           `json:"value,omitempty"`
	Format characteristic.Format `json:"format,omitempty"`
	Unit   characteristic.Unit   `json:"unit,omitempty"`

	MaxValue  *float64 `json:"maxValue,omitempty"`
	MinValue  *float64 `json:"minValue,omitempty"`
	StepValue *float64 `json:"minStep,omitempty"`
	MaxLen    *int     `json:"maxLen,omitempty"`

	Perms []characteristic.Permission `json:"perms,omitempty"`
	Type  string                      `json:"type,omitempty"`
	Ev    *bool                       `json:"ev,omitempty"`
}

// WriteObject is one entry of a PUT /characteristics request body.
type WriteObject struct {
	AID   uint64      `json:"aid"`
	IID   uint64      `json:"iid"`
	Value interface{} `json:"value,omitempty"`
	Ev    *bool       `json:"ev,omitempty"`
}

// WriteResponseObject is the per-characteristic result of a write
// dispatch.
type WriteResponseObject struct {
	AID    uint64 `json:"aid"`
	IID    uint64 `json:"iid"`
	Status Status `json:"status"`
}

// serializedCharacteristic fixes the field order of the /accessories
// document: iid, type, perms, format, value, then any populated
// metadata.
type serializedCharacteristic struct {
	IID    uint64                      `json:"iid"`
	Type   string                      `json:"type"`
	Perms  []characteristic.Permission `json:"perms"`
	Format characteristic.Format       `json:"format"`
	Value  interface{}                 `json:"value,omitempty"`

	Unit      characteristic.Unit `json:"unit,omitempty"`
	MaxValue  *float64            `json:"maxValue,omitempty"`
	MinValue  *float64            `json:"minValue,omitempty"`
	StepValue *float64            `json:"minStep,omitempty"`
	MaxLen    *int                `json:"maxLen,omitempty"`
}

type serializedService struct {
	IID             uint64                     `json:"iid"`
	Type            string                     `json:"type"`
	Characteristics []serializedCharacteristic `json:"characteristics"`
}

type serializedAccessory struct {
	AID      uint64              `json:"aid"`
	Services []serializedService `json:"services"`
}

type serializedDocument struct {
	Accessories []serializedAccessory `json:"accessories"`
}
