// Package config holds the bridge-wide configuration struct shared by
// the transport and the mDNS advertisement controller. Loading from
// flags lives in cmd/hapd.
package config

// Config is filled in by the caller and backfilled with computed
// defaults by the transport constructor.
type Config struct {
	// Name is the accessory/bridge display name, used as the mDNS
	// instance name.
	Name string

	// Model is advertised via the `md` TXT record. Defaults to the
	// bridge accessory's Model characteristic.
	Model string

	// Pin is the 8-digit HAP setup pin. Defaults to "00102003" if empty.
	Pin string

	// Port the HTTP server listens on. Empty means "pick any free port".
	Port string

	// StoragePath holds device keys and pairings. Defaults to Name.
	StoragePath string

	// Category is the HAP accessory category code advertised via the
	// `ci` TXT record.
	Category int

	// DeviceID is the MAC-style identifier advertised via the `id` TXT
	// record. Generated once and persisted if empty.
	DeviceID string

	// ConfigurationNumber is advertised via the `c#` TXT record; it must
	// increase whenever the accessory/service/characteristic tree
	// changes shape.
	ConfigurationNumber uint64

	// StatusFlag is advertised via the `sf` TXT record.
	StatusFlag StatusFlag

	// FeatureFlags is advertised via the `ff` TXT record.
	FeatureFlags int
}

// StatusFlag is the `sf` TXT record value.
type StatusFlag int

const (
	// StatusFlagZero means "paired".
	StatusFlagZero StatusFlag = 0
	// StatusFlagNotPaired means "not paired".
	StatusFlagNotPaired StatusFlag = 1
)

// Default returns a Config with every HAP-mandated default filled in
// except Name, which the caller must supply.
func Default(name string) Config {
	return Config{
		Name:                name,
		Pin:                 "00102003",
		ConfigurationNumber: 1,
		StatusFlag:          StatusFlagNotPaired,
	}
}
