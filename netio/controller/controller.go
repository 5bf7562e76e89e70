// Package controller translates parsed HTTP requests into calls against
// db.AccessoryList.
package controller

import (
	"github.com/openhearth/hap/db"
	"github.com/openhearth/hap/subscription"
)

// AccessoryController serves the /accessories and /identify endpoints.
type AccessoryController struct {
	list *db.AccessoryList
}

func NewAccessoryController(list *db.AccessoryList) *AccessoryController {
	return &AccessoryController{list: list}
}

// Serialize produces the /accessories response body.
func (c *AccessoryController) Serialize() ([]byte, error) {
	return c.list.Serialize()
}

// CharacteristicController serves GET/PUT /characteristics.
type CharacteristicController struct {
	list *db.AccessoryList
	subs *subscription.Registry
}

func NewCharacteristicController(list *db.AccessoryList, subs *subscription.Registry) *CharacteristicController {
	return &CharacteristicController{list: list, subs: subs}
}

// ReadID is one parsed "aid.iid" query entry.
type ReadID struct {
	AID uint64
	IID uint64
}

// Read dispatches a GET /characteristics request for every requested id.
func (c *CharacteristicController) Read(ids []ReadID, meta, perms, hapType, ev bool) []db.ReadResponseObject {
	out := make([]db.ReadResponseObject, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.list.Read(id.AID, id.IID, meta, perms, hapType, ev))
	}
	return out
}

// Write dispatches a PUT /characteristics request for every object in
// the body, on behalf of sessionID (used to key subscription changes).
func (c *CharacteristicController) Write(objects []db.WriteObject, sessionID string) []db.WriteResponseObject {
	out := make([]db.WriteResponseObject, 0, len(objects))
	for _, obj := range objects {
		out = append(out, c.list.Write(obj, c.subs, sessionID))
	}
	return out
}
