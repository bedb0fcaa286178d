package ipdiscovery

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hapkit/hapkit-go/pkg/discovery"
)

// TXTRecordMap is a map of TXT record key-value pairs.
type TXTRecordMap map[string]string

// DecodeTXT parses a _hap._tcp TXT record.
func DecodeTXT(txt TXTRecordMap) (*TXTInfo, error) {
	info := &TXTInfo{
		ProtocolVersion: DefaultProtocolVersion,
	}

	cn, err := requiredUint(txt, TXTKeyConfigNumber, 32)
	if err != nil {
		return nil, err
	}
	info.ConfigurationNumber = uint32(cn)

	id, ok := txt[TXTKeyDeviceID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyDeviceID)
	}
	info.DeviceID, err = normalizeDeviceID(id)
	if err != nil {
		return nil, err
	}

	info.Model, ok = txt[TXTKeyModel]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyModel)
	}

	sn, err := requiredUint(txt, TXTKeyStateNumber, 32)
	if err != nil {
		return nil, err
	}
	info.StateNumber = uint32(sn)

	sf, err := requiredUint(txt, TXTKeyStatusFlags, 8)
	if err != nil {
		return nil, err
	}
	info.StatusFlags = discovery.StatusFlags(sf)

	ci, err := requiredUint(txt, TXTKeyCategory, 16)
	if err != nil {
		return nil, err
	}
	info.Category = discovery.AccessoryCategory(ci)

	// Optional fields
	if ffStr, ok := txt[TXTKeyFeatureFlags]; ok {
		ff, err := strconv.ParseUint(ffStr, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidTXTRecord, TXTKeyFeatureFlags, ffStr)
		}
		info.FeatureFlags = uint8(ff)
	}
	if pv := txt[TXTKeyProtocolVersion]; pv != "" {
		info.ProtocolVersion = pv
	}
	info.SetupHash = txt[TXTKeySetupHash]

	return info, nil
}

// EncodeTXT builds the TXT record for info.
func EncodeTXT(info *TXTInfo) TXTRecordMap {
	txt := TXTRecordMap{
		TXTKeyConfigNumber: strconv.FormatUint(uint64(info.ConfigurationNumber), 10),
		TXTKeyDeviceID:     strings.ToUpper(info.DeviceID),
		TXTKeyModel:        info.Model,
		TXTKeyStateNumber:  strconv.FormatUint(uint64(info.StateNumber), 10),
		TXTKeyStatusFlags:  strconv.FormatUint(uint64(info.StatusFlags), 10),
		TXTKeyCategory:     strconv.FormatUint(uint64(info.Category), 10),
		TXTKeyFeatureFlags: strconv.FormatUint(uint64(info.FeatureFlags), 10),
	}
	if info.ProtocolVersion != "" {
		txt[TXTKeyProtocolVersion] = info.ProtocolVersion
	}
	if info.SetupHash != "" {
		txt[TXTKeySetupHash] = info.SetupHash
	}
	return txt
}

// TXTRecordsToStrings converts a TXTRecordMap to "key=value" strings.
func TXTRecordsToStrings(txt TXTRecordMap) []string {
	result := make([]string, 0, len(txt))
	for k, v := range txt {
		result = append(result, k+"="+v)
	}
	return result
}

// StringsToTXTRecords parses "key=value" strings. A bare key maps to "".
func StringsToTXTRecords(strs []string) TXTRecordMap {
	txt := make(TXTRecordMap)
	for _, s := range strs {
		k, v, _ := strings.Cut(s, "=")
		if k != "" {
			txt[k] = v
		}
	}
	return txt
}

func requiredUint(txt TXTRecordMap, key string, bits int) (uint64, error) {
	s, ok := txt[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingRequired, key)
	}
	v, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidTXTRecord, key, s)
	}
	return v, nil
}

// normalizeDeviceID validates a colon-separated 6-byte ID and lowercases it.
func normalizeDeviceID(id string) (string, error) {
	if len(id) != 3*discovery.DeviceIDLen-1 {
		return "", fmt.Errorf("%w: device ID %q", ErrInvalidTXTRecord, id)
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		if i%3 == 2 {
			if c != ':' {
				return "", fmt.Errorf("%w: device ID %q", ErrInvalidTXTRecord, id)
			}
			continue
		}
		if !isHex(c) {
			return "", fmt.Errorf("%w: device ID %q", ErrInvalidTXTRecord, id)
		}
	}
	return strings.ToLower(id), nil
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
