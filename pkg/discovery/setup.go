package discovery

import (
	"bytes"
	"crypto/sha512"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SetupURIPrefix starts every HAP setup payload.
const SetupURIPrefix = "X-HM://"

// Setup payload layout.
const (
	setupPayloadLength = 9
	setupIDLength      = 4
	setupHashLength    = 4

	setupCodeBits  = 27
	setupCodeMask  = 1<<setupCodeBits - 1
	setupFlagShift = 27
	setupFlagMask  = 0x0F
	setupCatShift  = 31
	setupCatMask   = 0xFF
	setupVerShift  = 43
	setupVerMask   = 0x07

	maxSetupCode = 99999999
)

// Setup payload errors.
var (
	ErrInvalidSetupURI  = errors.New("invalid setup URI")
	ErrInvalidSetupCode = errors.New("invalid setup code")
	ErrInvalidSetupID   = errors.New("invalid setup ID")
)

// SetupFlags are the transport bits of a setup payload.
type SetupFlags uint8

const (
	SetupFlagNFC SetupFlags = 1 << 0
	SetupFlagIP  SetupFlags = 1 << 1
	SetupFlagBLE SetupFlags = 1 << 2
)

// SetupPayload is the content of an accessory's setup QR code or NFC tag.
type SetupPayload struct {
	Version   uint8
	SetupCode string // XXX-XX-XXX
	Category  AccessoryCategory
	Flags     SetupFlags
	SetupID   string // 4 characters, 0-9A-Z
}

// ParseSetupURI parses an X-HM:// setup payload.
func ParseSetupURI(uri string) (*SetupPayload, error) {
	if len(uri) < len(SetupURIPrefix) || !strings.EqualFold(uri[:len(SetupURIPrefix)], SetupURIPrefix) {
		return nil, ErrInvalidSetupURI
	}
	rest := strings.ToUpper(uri[len(SetupURIPrefix):])
	if len(rest) != setupPayloadLength+setupIDLength {
		return nil, ErrInvalidSetupURI
	}

	v, err := strconv.ParseUint(rest[:setupPayloadLength], 36, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSetupURI, err)
	}
	setupID := rest[setupPayloadLength:]
	if !validSetupID(setupID) {
		return nil, ErrInvalidSetupID
	}

	code := uint32(v & setupCodeMask)
	if code > maxSetupCode {
		return nil, ErrInvalidSetupCode
	}

	return &SetupPayload{
		Version:   uint8(v >> setupVerShift & setupVerMask),
		SetupCode: FormatSetupCode(code),
		Category:  AccessoryCategory(v >> setupCatShift & setupCatMask),
		Flags:     SetupFlags(v >> setupFlagShift & setupFlagMask),
		SetupID:   setupID,
	}, nil
}

// NewSetupPayload builds a version 0 setup payload.
func NewSetupPayload(setupCode string, category AccessoryCategory, flags SetupFlags, setupID string) (*SetupPayload, error) {
	code, err := ParseSetupCode(setupCode)
	if err != nil {
		return nil, err
	}
	if category > setupCatMask {
		return nil, fmt.Errorf("%w: category %d does not fit", ErrInvalidSetupURI, category)
	}
	setupID = strings.ToUpper(setupID)
	if !validSetupID(setupID) {
		return nil, ErrInvalidSetupID
	}
	return &SetupPayload{
		SetupCode: FormatSetupCode(code),
		Category:  category,
		Flags:     flags & setupFlagMask,
		SetupID:   setupID,
	}, nil
}

// String returns the X-HM:// URI for the payload.
func (p *SetupPayload) String() string {
	code := setupCodeValue(p.SetupCode)
	v := uint64(code)&setupCodeMask |
		uint64(p.Flags&setupFlagMask)<<setupFlagShift |
		uint64(p.Category&setupCatMask)<<setupCatShift |
		uint64(p.Version&setupVerMask)<<setupVerShift

	payload := strings.ToUpper(strconv.FormatUint(v, 36))
	if len(payload) < setupPayloadLength {
		payload = strings.Repeat("0", setupPayloadLength-len(payload)) + payload
	}
	return SetupURIPrefix + payload + p.SetupID
}

// SetupHash returns the advertised setup hash for the accessory deviceID.
func (p *SetupPayload) SetupHash(deviceID string) []byte {
	return ComputeSetupHash(p.SetupID, deviceID)
}

// ParseSetupCode parses "XXX-XX-XXX" or "XXXXXXXX". Codes made of one
// repeated digit and the sequences 12345678 and 87654321 are rejected.
func ParseSetupCode(s string) (uint32, error) {
	digits := strings.ReplaceAll(s, "-", "")
	if len(digits) != 8 || (len(s) != 8 && !isDashedSetupCode(s)) {
		return 0, ErrInvalidSetupCode
	}
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, ErrInvalidSetupCode
	}
	if digits == "12345678" || digits == "87654321" || strings.Count(digits, digits[:1]) == len(digits) {
		return 0, ErrInvalidSetupCode
	}
	return uint32(n), nil
}

// FormatSetupCode renders code as XXX-XX-XXX.
//
// Example: FormatSetupCode(3145154) returns "031-45-154"
func FormatSetupCode(code uint32) string {
	s := fmt.Sprintf("%08d", code)
	return s[:3] + "-" + s[3:5] + "-" + s[5:]
}

// ComputeSetupHash returns the first four bytes of
// SHA-512(setupID || upper-case device ID), the value accessories advertise
// so a controller holding a setup code can pick out the right device.
func ComputeSetupHash(setupID, deviceID string) []byte {
	sum := sha512.Sum512([]byte(strings.ToUpper(setupID) + strings.ToUpper(deviceID)))
	return sum[:setupHashLength]
}

// MatchesSetupID reports whether the record advertises the setup hash for
// setupID. Records without a setup hash never match.
func (r *ServiceRecord) MatchesSetupID(setupID string) bool {
	if len(r.SetupHash) != setupHashLength {
		return false
	}
	return bytes.Equal(r.SetupHash, ComputeSetupHash(setupID, r.DeviceID))
}

// setupCodeValue returns the numeric value of a formatted setup code without
// rejecting trivial codes, so payloads read from labels encode unchanged.
func setupCodeValue(s string) uint32 {
	n, err := strconv.ParseUint(strings.ReplaceAll(s, "-", ""), 10, 32)
	if err != nil || n > maxSetupCode {
		return 0
	}
	return uint32(n)
}

func isDashedSetupCode(s string) bool {
	return len(s) == 10 && s[3] == '-' && s[6] == '-'
}

func validSetupID(id string) bool {
	if len(id) != setupIDLength {
		return false
	}
	for _, c := range id {
		if !((c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z')) {
			return false
		}
	}
	return true
}
