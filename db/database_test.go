package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhearth/hap/netio/pair"
	"github.com/openhearth/hap/util"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()
	storage, err := util.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return NewDatabaseWithStorage(storage)
}

func TestSaveAndDeleteEntity(t *testing.T) {
	d := newTestDatabase(t)

	require.NoError(t, d.SaveEntity(Entity{Name: "controller-1", PublicKey: []byte{1, 2, 3}}))
	entities, err := d.Entities()
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, "controller-1", entities[0].Name)

	require.NoError(t, d.DeleteEntity("controller-1"))
	entities, err = d.Entities()
	require.NoError(t, err)
	assert.Empty(t, entities)
}

func TestSaveEntityUpsertsByName(t *testing.T) {
	d := newTestDatabase(t)

	require.NoError(t, d.SaveEntity(Entity{Name: "controller-1", IsAdmin: false}))
	require.NoError(t, d.SaveEntity(Entity{Name: "controller-1", IsAdmin: true}))

	entities, err := d.Entities()
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.True(t, entities[0].IsAdmin)
}

func TestCountPairingsExcludesDeviceIdentity(t *testing.T) {
	d := newTestDatabase(t)

	require.NoError(t, d.SaveEntity(Entity{Name: deviceEntityName, IsAdmin: true}))
	require.NoError(t, d.SaveEntity(Entity{Name: "controller-1"}))
	require.NoError(t, d.SaveEntity(Entity{Name: "controller-2"}))

	count, err := d.CountPairings()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestDeviceIdentityRoundTrips(t *testing.T) {
	d := newTestDatabase(t)

	identity, err := d.DeviceIdentity()
	require.NoError(t, err)
	assert.Nil(t, identity, "no identity saved yet")

	key, err := pair.NewLongTermKey()
	require.NoError(t, err)
	require.NoError(t, d.SaveDeviceIdentity("device-1", key))

	loaded, err := d.DeviceIdentity()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "device-1", loaded.ID)
	assert.Equal(t, key.Public, loaded.LongTerm.Public)
	assert.Equal(t, key.Private, loaded.LongTerm.Private)
}
