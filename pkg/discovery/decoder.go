package discovery

import (
	"encoding/binary"
	"encoding/hex"
)

// Decode parses a HAP advertisement. It returns false for anything that is
// not a HAP advertisement; that is the common case and carries no error.
func Decode(localName string, manufacturerData []byte, p Peripheral) (*ServiceRecord, bool) {
	rec, err := Parse(localName, manufacturerData, p)
	return rec, err == nil
}

// Parse is Decode with the rejection reason. The returned errors are the
// package sentinels and never wrapped.
func Parse(localName string, manufacturerData []byte, p Peripheral) (*ServiceRecord, error) {
	if localName == "" {
		return nil, ErrNoLocalName
	}
	data := manufacturerData
	if len(data) < MinManufacturerDataLen {
		return nil, ErrShortPayload
	}

	companyID := binary.LittleEndian.Uint16(data[offsetCompanyID:])
	if companyID != CompanyIDApple {
		return nil, ErrCompanyID
	}
	if data[offsetType] != AdvertisementTypeHAP {
		return nil, ErrAdvertisementType
	}
	if data[offsetCompatibleVersion] != CompatibleVersion {
		return nil, ErrCompatibilityVersion
	}

	rec := &ServiceRecord{
		Name:                   localName,
		CompanyID:              companyID,
		Type:                   data[offsetType],
		AdvertisingIntervalLow: data[offsetAIL],
		StatusFlags:            data[offsetStatusFlags],
		DeviceID:               FormatDeviceID(data[offsetDeviceID : offsetDeviceID+DeviceIDLen]),
		AccessoryCategoryID:    binary.LittleEndian.Uint16(data[offsetCategory:]),
		GlobalStateNumber:      binary.LittleEndian.Uint16(data[offsetGlobalStateNumber:]),
		ConfigurationNumber:    data[offsetConfigurationNumber],
		CompatibilityVersion:   data[offsetCompatibleVersion],
		Peripheral:             p,
	}

	if len(data) >= offsetSetupHash+SetupHashLen {
		rec.SetupHash = append([]byte(nil), data[offsetSetupHash:offsetSetupHash+SetupHashLen]...)
	}

	return rec, nil
}

// FormatDeviceID renders raw device ID bytes as lowercase colon-separated
// hex octets.
func FormatDeviceID(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	out := make([]byte, 0, len(b)*3-1)
	for i := range b {
		if i > 0 {
			out = append(out, ':')
		}
		out = hex.AppendEncode(out, b[i:i+1])
	}
	return string(out)
}
