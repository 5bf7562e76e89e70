package db

import (
	"encoding/json"
	"fmt"

	"github.com/openhearth/hap/netio/pair"
	"github.com/openhearth/hap/util"
)

// Entity is a stored item in the pairings/keys database: a paired
// controller's public key. The transport's own identity is stored
// separately (see DeviceIdentity).
type Entity struct {
	Name      string `json:"name"`
	PublicKey []byte `json:"publicKey"`
	IsAdmin   bool   `json:"isAdmin"`
}

const entitiesKey = "entities"

// Database stores the transport's own identity plus every paired
// controller's Entity.
type Database struct {
	storage util.Storage
}

// NewDatabaseWithStorage wraps storage as a Database.
func NewDatabaseWithStorage(storage util.Storage) *Database {
	return &Database{storage: storage}
}

// Entities returns every stored Entity. The transport's own device
// identity is not among them; it is kept under its own storage key.
func (d *Database) Entities() ([]Entity, error) {
	raw, err := d.storage.Get(entitiesKey)
	if err != nil {
		return nil, nil
	}
	var entities []Entity
	if err := json.Unmarshal(raw, &entities); err != nil {
		return nil, err
	}
	return entities, nil
}

// SaveEntity upserts e by name.
func (d *Database) SaveEntity(e Entity) error {
	entities, err := d.Entities()
	if err != nil {
		return err
	}
	found := false
	for i, existing := range entities {
		if existing.Name == e.Name {
			entities[i] = e
			found = true
			break
		}
	}
	if !found {
		entities = append(entities, e)
	}
	raw, err := json.Marshal(entities)
	if err != nil {
		return err
	}
	return d.storage.Set(entitiesKey, raw)
}

// DeleteEntity removes the entity named name, if present.
func (d *Database) DeleteEntity(name string) error {
	entities, err := d.Entities()
	if err != nil {
		return err
	}
	for i, existing := range entities {
		if existing.Name == name {
			entities = append(entities[:i], entities[i+1:]...)
			raw, err := json.Marshal(entities)
			if err != nil {
				return err
			}
			return d.storage.Set(entitiesKey, raw)
		}
	}
	return fmt.Errorf("db: no entity named %q", name)
}

// CountPairings returns the number of paired controllers, i.e. every
// stored Entity except the transport's own device identity. This is the
// query mdns.AdvertisementController consults on every
// DevicePaired/DeviceUnpaired event.
func (d *Database) CountPairings() (int, error) {
	entities, err := d.Entities()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, e := range entities {
		if e.Name != deviceEntityName {
			count++
		}
	}
	return count, nil
}

const deviceEntityName = "_device"

const deviceIdentityKey = "device_identity"

// DeviceIdentity is the transport's own persistent device id and
// long-term Ed25519 key pair, stored separately from the paired
// controllers' Entity records so CountPairings never has to special-case
// it beyond the historical deviceEntityName reservation above.
type DeviceIdentity struct {
	ID       string
	LongTerm *pair.LongTermKey
}

type storedDeviceIdentity struct {
	ID         string `json:"id"`
	PublicKey  []byte `json:"publicKey"`
	PrivateKey []byte `json:"privateKey"`
}

// DeviceIdentity returns the transport's stored identity, or nil if none
// has been saved yet.
func (d *Database) DeviceIdentity() (*DeviceIdentity, error) {
	raw, err := d.storage.Get(deviceIdentityKey)
	if err != nil || len(raw) == 0 {
		return nil, nil
	}
	var stored storedDeviceIdentity
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, err
	}
	return &DeviceIdentity{
		ID: stored.ID,
		LongTerm: &pair.LongTermKey{
			Public:  stored.PublicKey,
			Private: stored.PrivateKey,
		},
	}, nil
}

// SaveDeviceIdentity persists the transport's device id and long-term key.
func (d *Database) SaveDeviceIdentity(id string, key *pair.LongTermKey) error {
	raw, err := json.Marshal(storedDeviceIdentity{
		ID:         id,
		PublicKey:  key.Public,
		PrivateKey: key.Private,
	})
	if err != nil {
		return err
	}
	return d.storage.Set(deviceIdentityKey, raw)
}
