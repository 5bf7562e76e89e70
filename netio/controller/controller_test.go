package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhearth/hap/accessory"
	"github.com/openhearth/hap/db"
	"github.com/openhearth/hap/event"
	"github.com/openhearth/hap/subscription"
)

func TestAccessoryControllerSerialize(t *testing.T) {
	list := db.NewAccessoryList(event.NewEmitter())
	require.NoError(t, list.Add(accessory.NewBridge("Bridge")))

	c := NewAccessoryController(list)
	raw, err := c.Serialize()
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"accessories"`)
}

func TestCharacteristicControllerReadAndWrite(t *testing.T) {
	list := db.NewAccessoryList(event.NewEmitter())
	lamp, lampInfo := accessory.NewLightbulb("Lamp", "000-1")
	require.NoError(t, list.Add(lamp))

	subs := subscription.NewRegistry()
	c := NewCharacteristicController(list, subs)

	writeResp := c.Write([]db.WriteObject{
		{AID: lamp.GetAID(), IID: lampInfo.On.Characteristic.ID, Value: true},
	}, "sess-1")
	require.Len(t, writeResp, 1)
	assert.Equal(t, db.StatusSuccess, writeResp[0].Status)

	readResp := c.Read([]ReadID{{AID: lamp.GetAID(), IID: lampInfo.On.Characteristic.ID}}, false, false, false, false)
	require.Len(t, readResp, 1)
	assert.Equal(t, true, readResp[0].Value)
}
