package discovery

import (
	"errors"
	"fmt"
)

// Advertisement field constants.
const (
	// CompanyIDApple is the Bluetooth SIG company identifier carried by HAP
	// manufacturer data.
	CompanyIDApple uint16 = 0x004C

	// AdvertisementTypeHAP identifies a HAP advertisement within Apple
	// manufacturer data.
	AdvertisementTypeHAP uint8 = 0x06

	// CompatibleVersion is the only compatible version (CV) accepted.
	CompatibleVersion uint8 = 0x02

	// MinManufacturerDataLen is the shortest manufacturer data block that
	// holds every fixed field.
	MinManufacturerDataLen = 17

	// SetupHashLen is the length of the optional setup hash after CV.
	SetupHashLen = 4

	// DeviceIDLen is the raw device ID length in bytes.
	DeviceIDLen = 6
)

// Field offsets within the manufacturer data block.
const (
	offsetCompanyID           = 0
	offsetType                = 2
	offsetAIL                 = 3
	offsetStatusFlags         = 4
	offsetDeviceID            = 5
	offsetCategory            = 11
	offsetGlobalStateNumber   = 13
	offsetConfigurationNumber = 15
	offsetCompatibleVersion   = 16
	offsetSetupHash           = 17
)

// Rejection reasons reported by Parse.
var (
	ErrNoLocalName          = errors.New("advertisement has no local name")
	ErrShortPayload         = errors.New("manufacturer data too short")
	ErrCompanyID            = errors.New("company ID is not Apple")
	ErrAdvertisementType    = errors.New("advertisement type is not HAP")
	ErrCompatibilityVersion = errors.New("unsupported compatible version")
)

// Controller errors.
var (
	ErrNoRadio       = errors.New("no radio configured")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Peripheral is an opaque reference to the radio layer's peripheral object.
// It is borrowed: the discovery package stores it and hands it to
// subscribers but never closes or inspects it.
type Peripheral any

// Advertisement is the subset of a BLE advertisement this package reads.
type Advertisement struct {
	// LocalName is the complete or shortened local name, empty if absent.
	LocalName string

	// ManufacturerData is the raw manufacturer-specific data including the
	// two-byte company ID prefix, nil if absent.
	ManufacturerData []byte
}

// StatusFlags is the SF byte of a HAP advertisement.
type StatusFlags uint8

// StatusFlagNotPaired is set while the accessory has no paired controllers.
const StatusFlagNotPaired StatusFlags = 0x01

// Paired reports whether the accessory has been paired with a controller.
func (f StatusFlags) Paired() bool {
	return f&StatusFlagNotPaired == 0
}

// ServiceRecord is a decoded HAP advertisement. Records are never modified
// after Decode returns them.
type ServiceRecord struct {
	// Name is the advertised local name.
	Name string

	// CompanyID is always CompanyIDApple for accepted records.
	CompanyID uint16

	// Type is always AdvertisementTypeHAP for accepted records.
	Type uint8

	// AdvertisingIntervalLow is the raw AIL byte.
	AdvertisingIntervalLow uint8

	// StatusFlags is the raw SF byte.
	StatusFlags uint8

	// DeviceID is the accessory's device ID as lowercase colon-separated
	// hex ("aa:bb:cc:dd:ee:ff").
	DeviceID string

	// AccessoryCategoryID is the HAP accessory category.
	AccessoryCategoryID uint16

	// GlobalStateNumber changes whenever the accessory's state changes.
	GlobalStateNumber uint16

	// ConfigurationNumber changes when the accessory's attribute database
	// changes.
	ConfigurationNumber uint8

	// CompatibilityVersion is always CompatibleVersion for accepted records.
	CompatibilityVersion uint8

	// SetupHash is the optional 4-byte setup hash, nil when not advertised.
	SetupHash []byte

	// Peripheral is the radio-layer handle the advertisement arrived on.
	Peripheral Peripheral
}

// Category returns the accessory category.
func (r *ServiceRecord) Category() AccessoryCategory {
	return AccessoryCategory(r.AccessoryCategoryID)
}

// Flags returns the status flags.
func (r *ServiceRecord) Flags() StatusFlags {
	return StatusFlags(r.StatusFlags)
}

// AdvertisingInterval returns the advertising interval code from the upper
// three bits of AIL.
func (r *ServiceRecord) AdvertisingInterval() uint8 {
	return r.AdvertisingIntervalLow >> 5
}

// AdvertisingLength returns the payload length from the lower five bits of
// AIL.
func (r *ServiceRecord) AdvertisingLength() uint8 {
	return r.AdvertisingIntervalLow & 0x1F
}

// String returns a short description for logs.
func (r *ServiceRecord) String() string {
	return fmt.Sprintf("%s (%s, %s, gsn=%d, cn=%d)",
		r.Name, r.DeviceID, r.Category(), r.GlobalStateNumber, r.ConfigurationNumber)
}
