// Package db implements the owner of every accessory in the bridge: the
// AID/IID allocator, the permission-checked read/write dispatcher, the
// JSON serializer, and the pairing/device-key store (db.Database).
package db

import (
	"encoding/json"
	"sync"

	"github.com/openhearth/hap/characteristic"
	"github.com/openhearth/hap/event"
	"github.com/openhearth/hap/subscription"
)

type characteristicKey struct {
	aid uint64
	iid uint64
}

// AccessoryList is the owner of every accessory the bridge exposes. It
// assigns AIDs on Add (starting at 1, never reused within a process
// lifetime) and IIDs depth-first within each accessory, dispatches
// permission-checked reads and writes, and serializes the whole tree to
// the /accessories JSON document.
type AccessoryList struct {
	mu          sync.Mutex
	accessories []AccessoryMember
	nextAID     uint64
	emitter     *event.Emitter

	// index is the (aid,iid)->characteristic fast path for dispatch;
	// it is rebuilt on every Add/Remove.
	index map[characteristicKey]*characteristic.Characteristic
}

// NewAccessoryList constructs an empty list. AIDs start at 1 so the
// first accessory added (conventionally the bridge) receives AID 1.
func NewAccessoryList(emitter *event.Emitter) *AccessoryList {
	return &AccessoryList{
		nextAID: 1,
		emitter: emitter,
		index:   make(map[characteristicKey]*characteristic.Characteristic),
	}
}

// Add assigns the accessory the next AID, walks its services and
// characteristics assigning IIDs depth-first starting at 1, appends it
// to the list, and rebuilds the lookup index.
func (l *AccessoryList) Add(a AccessoryMember) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, existing := range l.accessories {
		if existing == a {
			return ErrDuplicateAccessory
		}
	}

	a.SetAID(l.nextAID)
	l.nextAID++

	var iid uint64 = 1
	for _, s := range a.Services() {
		s.ID = iid
		iid++
		for _, c := range s.Characteristics {
			c.ID = iid
			iid++
		}
	}

	l.accessories = append(l.accessories, a)
	l.rebuildIndex()
	return nil
}

// Remove finds the accessory whose AID matches handle's current AID and
// removes it, dropping every subscription that pointed at its IIDs.
func (l *AccessoryList) Remove(handle AccessoryMember, subs *subscription.Registry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	aid := handle.GetAID()
	for i, a := range l.accessories {
		if a.GetAID() == aid {
			l.accessories = append(l.accessories[:i], l.accessories[i+1:]...)
			l.rebuildIndex()
			if subs != nil {
				subs.DropAccessory(aid)
			}
			return nil
		}
	}
	return ErrNotFound
}

func (l *AccessoryList) rebuildIndex() {
	l.index = make(map[characteristicKey]*characteristic.Characteristic)
	for _, a := range l.accessories {
		for _, s := range a.Services() {
			for _, c := range s.Characteristics {
				l.index[characteristicKey{aid: a.GetAID(), iid: c.ID}] = c
			}
		}
	}
}

func (l *AccessoryList) find(aid, iid uint64) *characteristic.Characteristic {
	return l.index[characteristicKey{aid: aid, iid: iid}]
}

// Read locates (aid,iid) and returns a populated ReadResponseObject.
// Read never mutates observable state.
func (l *AccessoryList) Read(aid, iid uint64, meta, perms, hapType, ev bool) ReadResponseObject {
	l.mu.Lock()
	defer l.mu.Unlock()

	resp := ReadResponseObject{AID: aid, IID: iid, Status: StatusSuccess}

	c := l.find(aid, iid)
	if c == nil {
		resp.Status = StatusResourceDoesNotExist
		return resp
	}

	if !c.HasPerm(characteristic.PermRead) {
		resp.Status = StatusWriteOnlyCharacteristic
		return resp
	}

	resp.Value = c.Value()
	if meta {
		resp.Format = c.Format
		resp.Unit = c.Unit
		resp.MaxValue = c.MaxValue
		resp.MinValue = c.MinValue
		resp.StepValue = c.StepValue
		resp.MaxLen = c.MaxLen
	}
	if perms {
		resp.Perms = c.Perms
	}
	if hapType {
		resp.Type = c.Type
	}
	if ev {
		evFlag := c.Events
		resp.Ev = &evFlag
	}

	return resp
}

// Write applies write_object's ev flag (if present) and value (if
// present), in that order, short-circuiting the reported status at the
// first error, and publishes CharacteristicValueChanged if a value write
// actually changes the value.
func (l *AccessoryList) Write(w WriteObject, subs *subscription.Registry, sessionID string) WriteResponseObject {
	l.mu.Lock()

	resp := WriteResponseObject{AID: w.AID, IID: w.IID, Status: StatusSuccess}

	c := l.find(w.AID, w.IID)
	if c == nil {
		l.mu.Unlock()
		resp.Status = StatusResourceDoesNotExist
		return resp
	}

	var changed bool
	var newValue interface{}

	if w.Ev != nil {
		if !c.HasPerm(characteristic.PermEvents) {
			resp.Status = StatusNotificationNotSupported
		} else {
			c.Events = *w.Ev
			if subs != nil {
				if *w.Ev {
					subs.Subscribe(sessionID, w.AID, w.IID)
				} else {
					subs.Unsubscribe(sessionID, w.AID, w.IID)
				}
			}
		}
	}

	if resp.Status == StatusSuccess && w.Value != nil {
		if !c.HasPerm(characteristic.PermWrite) {
			resp.Status = StatusReadOnlyCharacteristic
		} else {
			old := c.Value()
			if err := c.SetValue(w.Value); err != nil {
				resp.Status = StatusInvalidValueInRequest
			} else if !characteristic.ValuesEqual(c.Value(), old) {
				changed = true
				newValue = c.Value()
			}
		}
	}

	l.mu.Unlock()

	if changed && l.emitter != nil {
		l.emitter.Emit(event.CharacteristicValueChanged{AID: w.AID, IID: w.IID, Value: newValue})
	}

	return resp
}

// Serialize produces the /accessories JSON document.
func (l *AccessoryList) Serialize() ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	doc := serializedDocument{}
	for _, a := range l.accessories {
		sa := serializedAccessory{AID: a.GetAID()}
		for _, s := range a.Services() {
			ss := serializedService{IID: s.ID, Type: s.Type}
			for _, c := range s.Characteristics {
				sc := serializedCharacteristic{
					IID:    c.ID,
					Type:   c.Type,
					Perms:  c.Perms,
					Format: c.Format,
				}
				if c.HasPerm(characteristic.PermRead) {
					sc.Value = c.Value()
				}
				sc.Unit = c.Unit
				sc.MaxValue = c.MaxValue
				sc.MinValue = c.MinValue
				sc.StepValue = c.StepValue
				sc.MaxLen = c.MaxLen
				ss.Characteristics = append(ss.Characteristics, sc)
			}
			sa.Services = append(sa.Services, ss)
		}
		doc.Accessories = append(doc.Accessories, sa)
	}

	return json.Marshal(doc)
}

// Accessories returns a snapshot slice of the current accessory members,
// for callers that need to look one up by AID without going through the
// read/write dispatch path.
func (l *AccessoryList) Accessories() []AccessoryMember {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]AccessoryMember, len(l.accessories))
	copy(out, l.accessories)
	return out
}
