package mdns

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openhearth/hap/config"
	"github.com/openhearth/hap/event"
)

type fakePairingsCounter struct {
	count int
	err   error
}

func (f *fakePairingsCounter) CountPairings() (int, error) {
	return f.count, f.err
}

func newTestController(cfg *config.Config, pairings PairingsCounter) *AdvertisementController {
	// A zero-value Responder has a nil service handle, so UpdateTXT
	// returns before touching the real dnssd responder; only the
	// status-flag transition logic in Listen is under test here.
	return NewAdvertisementController(cfg, &Responder{}, pairings)
}

func TestListenSetsStatusFlagZeroOnFirstPairing(t *testing.T) {
	cfg := config.Default("Bridge")
	cfg.StatusFlag = config.StatusFlagNotPaired
	pairings := &fakePairingsCounter{count: 1}
	c := newTestController(&cfg, pairings)

	c.Listen(event.DevicePaired{})

	assert.Equal(t, config.StatusFlagZero, cfg.StatusFlag)
}

func TestListenIgnoresUnrelatedEvents(t *testing.T) {
	cfg := config.Default("Bridge")
	cfg.StatusFlag = config.StatusFlagNotPaired
	pairings := &fakePairingsCounter{count: 0}
	c := newTestController(&cfg, pairings)

	c.Listen(event.ControllerPaired{ID: "abc"})

	assert.Equal(t, config.StatusFlagNotPaired, cfg.StatusFlag)
}

func TestListenLeavesStatusFlagUnchangedOnCounterError(t *testing.T) {
	cfg := config.Default("Bridge")
	cfg.StatusFlag = config.StatusFlagNotPaired
	pairings := &fakePairingsCounter{err: errors.New("storage unavailable")}
	c := newTestController(&cfg, pairings)

	c.Listen(event.DevicePaired{})

	assert.Equal(t, config.StatusFlagNotPaired, cfg.StatusFlag)
}

func TestListenLeavesStatusFlagUnchangedWhenPairingsRemain(t *testing.T) {
	cfg := config.Default("Bridge")
	cfg.StatusFlag = config.StatusFlagZero
	pairings := &fakePairingsCounter{count: 1}
	c := newTestController(&cfg, pairings)

	c.Listen(event.DeviceUnpaired{})

	assert.Equal(t, config.StatusFlagZero, cfg.StatusFlag)
}
