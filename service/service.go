// Package service groups related characteristics under a single HAP
// service type, e.g. the Lightbulb service groups On, Brightness, Hue.
package service

import "github.com/openhearth/hap/characteristic"

const (
	TypeAccessoryInformation = "3E"
	TypeLightbulb            = "43"
	TypeSwitch               = "49"
	TypeOutlet               = "47"
)

// Service is an ordered set of characteristics of one HAP service type.
type Service struct {
	ID              uint64
	Type            string
	Characteristics []*characteristic.Characteristic
}

func New(hapType string) *Service {
	return &Service{Type: hapType}
}

func (s *Service) AddCharacteristic(c *characteristic.Characteristic) {
	s.Characteristics = append(s.Characteristics, c)
}

// AccessoryInformationInfo holds the characteristics exposed by every
// accessory's mandatory AccessoryInformation service.
type AccessoryInformationInfo struct {
	Identify         *characteristic.Identify
	Manufacturer     *characteristic.Manufacturer
	Model            *characteristic.Model
	Name             *characteristic.Name
	SerialNumber     *characteristic.SerialNumber
	FirmwareRevision *characteristic.FirmwareRevision
}

// NewAccessoryInformation builds the AccessoryInformation service that
// must be the first service of the first (bridge) accessory.
func NewAccessoryInformation(name, manufacturer, model, serialNumber string) (*Service, *AccessoryInformationInfo) {
	s := New(TypeAccessoryInformation)

	info := &AccessoryInformationInfo{
		Identify:         characteristic.NewIdentify(),
		Manufacturer:     characteristic.NewManufacturer(),
		Model:            characteristic.NewModel(),
		Name:             characteristic.NewName(),
		SerialNumber:     characteristic.NewSerialNumber(),
		FirmwareRevision: characteristic.NewFirmwareRevision(),
	}
	info.Manufacturer.SetValue(manufacturer)
	info.Model.SetValue(model)
	info.Name.SetValue(name)
	info.SerialNumber.SetValue(serialNumber)

	s.AddCharacteristic(info.Identify.Characteristic)
	s.AddCharacteristic(info.Manufacturer.Characteristic)
	s.AddCharacteristic(info.Model.Characteristic)
	s.AddCharacteristic(info.Name.Characteristic)
	s.AddCharacteristic(info.SerialNumber.Characteristic)
	s.AddCharacteristic(info.FirmwareRevision.Characteristic)

	return s, info
}

// LightbulbInfo holds the characteristics of a Lightbulb service.
type LightbulbInfo struct {
	On         *characteristic.On
	Brightness *characteristic.Brightness
	Hue        *characteristic.Hue
	Saturation *characteristic.Saturation
}

// NewLightbulb builds a Lightbulb service with On, Brightness, Hue and
// Saturation characteristics.
func NewLightbulb() (*Service, *LightbulbInfo) {
	s := New(TypeLightbulb)
	info := &LightbulbInfo{
		On:         characteristic.NewOn(),
		Brightness: characteristic.NewBrightness(),
		Hue:        characteristic.NewHue(),
		Saturation: characteristic.NewSaturation(),
	}
	s.AddCharacteristic(info.On.Characteristic)
	s.AddCharacteristic(info.Brightness.Characteristic)
	s.AddCharacteristic(info.Hue.Characteristic)
	s.AddCharacteristic(info.Saturation.Characteristic)

	return s, info
}

// SwitchInfo holds the characteristics of a Switch service.
type SwitchInfo struct {
	On *characteristic.On
}

func NewSwitch() (*Service, *SwitchInfo) {
	s := New(TypeSwitch)
	info := &SwitchInfo{On: characteristic.NewOn()}
	s.AddCharacteristic(info.On.Characteristic)

	return s, info
}

// OutletInfo holds the characteristics of an Outlet service.
type OutletInfo struct {
	On          *characteristic.On
	OutletInUse *characteristic.OutletInUse
}

func NewOutlet() (*Service, *OutletInfo) {
	s := New(TypeOutlet)
	info := &OutletInfo{
		On:          characteristic.NewOn(),
		OutletInUse: characteristic.NewOutletInUse(),
	}
	s.AddCharacteristic(info.On.Characteristic)
	s.AddCharacteristic(info.OutletInUse.Characteristic)

	return s, info
}
