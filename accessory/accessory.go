// Package accessory implements the HAP accessory object model: an
// ordered set of services identified by a stable accessory id (AID).
package accessory

import "github.com/openhearth/hap/service"

// Category maps to the HAP accessory category code advertised in mDNS.
type Category int

const (
	CategoryOther     Category = 1
	CategoryBridge    Category = 2
	CategorySwitch    Category = 8
	CategoryLightbulb Category = 5
	CategoryOutlet    Category = 7
)

// Accessory is an ordered set of services identified by an AID.
//
// An Accessory's AID and every service/characteristic IID beneath it
// are assigned exactly once, when it joins a db.AccessoryList (see
// db.AccessoryList.Add); a freshly constructed Accessory has AID 0 and
// every IID 0 until that happens.
type Accessory struct {
	AID      uint64
	Cat      Category
	Info     *service.AccessoryInformationInfo
	services []*service.Service
}

// New constructs an Accessory whose first service is AccessoryInformation.
func New(category Category, name, manufacturer, model, serialNumber string) *Accessory {
	infoService, info := service.NewAccessoryInformation(name, manufacturer, model, serialNumber)
	return &Accessory{
		Cat:      category,
		Info:     info,
		services: []*service.Service{infoService},
	}
}

// AddService appends a service to the accessory. Call before the
// accessory is added to a db.AccessoryList; IIDs are assigned at that
// point, not here.
func (a *Accessory) AddService(s *service.Service) {
	a.services = append(a.services, s)
}

// Name returns the accessory's display name from its AccessoryInformation
// service.
func (a *Accessory) Name() string {
	return a.Info.Name.Value().(string)
}

// GetAID implements db.AccessoryMember.
func (a *Accessory) GetAID() uint64 { return a.AID }

// SetAID implements db.AccessoryMember; called once by
// db.AccessoryList.Add.
func (a *Accessory) SetAID(aid uint64) { a.AID = aid }

// Services implements db.AccessoryMember.
func (a *Accessory) Services() []*service.Service { return a.services }

// Category implements db.AccessoryMember as a plain int so that package
// db need not import package accessory.
func (a *Accessory) Category() int { return int(a.Cat) }

// NewBridge constructs the bridge accessory. Bridges are always AID=1
// once added to a db.AccessoryList.
func NewBridge(name string) *Accessory {
	return New(CategoryBridge, name, "openhearth", "Bridge", "000-000-001")
}

// NewLightbulb constructs a bridged Lightbulb accessory with the given
// display name and serial number.
func NewLightbulb(name, serialNumber string) (*Accessory, *service.LightbulbInfo) {
	a := New(CategoryLightbulb, name, "openhearth", "Lightbulb", serialNumber)
	s, info := service.NewLightbulb()
	a.AddService(s)
	return a, info
}

// NewSwitch constructs a bridged Switch accessory.
func NewSwitch(name, serialNumber string) (*Accessory, *service.SwitchInfo) {
	a := New(CategorySwitch, name, "openhearth", "Switch", serialNumber)
	s, info := service.NewSwitch()
	a.AddService(s)
	return a, info
}

// NewOutlet constructs a bridged Outlet accessory.
func NewOutlet(name, serialNumber string) (*Accessory, *service.OutletInfo) {
	a := New(CategoryOutlet, name, "openhearth", "Outlet", serialNumber)
	s, info := service.NewOutlet()
	a.AddService(s)
	return a, info
}
