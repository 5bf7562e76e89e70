package mdns

import (
	"fmt"

	"github.com/openhearth/hap/config"
	"github.com/openhearth/hap/event"
	"github.com/openhearth/hap/log"
)

// PairingsCounter is the pairings-count query AdvertisementController
// consults. *db.Database implements it.
type PairingsCounter interface {
	CountPairings() (int, error)
}

// AdvertisementController translates pairing-lifecycle events into
// TXT-record updates on the mDNS responder. It touches only config and
// the responder, never the accessory list.
type AdvertisementController struct {
	config    *config.Config
	responder *Responder
	pairings  PairingsCounter
}

// NewAdvertisementController wires a controller; register it with
// event.Emitter.AddListener to receive DevicePaired/DeviceUnpaired.
func NewAdvertisementController(config *config.Config, responder *Responder, pairings PairingsCounter) *AdvertisementController {
	return &AdvertisementController{config: config, responder: responder, pairings: pairings}
}

// Listen implements event.Listener. The status flag flips only on the
// edge between "no pairings" and "any pairings"; adding a second
// controller or removing one of several republishes nothing.
func (c *AdvertisementController) Listen(ev event.Event) {
	switch ev.(type) {
	case event.DevicePaired:
		count, err := c.pairings.CountPairings()
		if err != nil {
			log.Errorf("mdns: couldn't count pairings: %v", err)
			return
		}
		if count > 0 {
			c.config.StatusFlag = config.StatusFlagZero
			c.responder.UpdateTXT(TXTRecords(c.config))
		}
	case event.DeviceUnpaired:
		count, err := c.pairings.CountPairings()
		if err != nil {
			log.Errorf("mdns: couldn't count pairings: %v", err)
			return
		}
		if count == 0 {
			c.config.StatusFlag = config.StatusFlagNotPaired
			c.responder.UpdateTXT(TXTRecords(c.config))
		}
	default:
		// Any other event is ignored.
	}
}

// TXTRecords builds the full TXT record set advertised under _hap._tcp.
// The whole set is republished on every update.
func TXTRecords(cfg *config.Config) map[string]string {
	return map[string]string{
		"c#": fmt.Sprintf("%d", cfg.ConfigurationNumber),
		"ff": fmt.Sprintf("%d", cfg.FeatureFlags),
		"id": cfg.DeviceID,
		"md": cfg.Model,
		"pv": "1.1",
		"s#": "1",
		"sf": fmt.Sprintf("%d", cfg.StatusFlag),
		"ci": fmt.Sprintf("%d", cfg.Category),
	}
}
