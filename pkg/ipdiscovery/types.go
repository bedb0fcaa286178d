package ipdiscovery

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/hapkit/hapkit-go/pkg/discovery"
)

const (
	// ServiceType is the DNS-SD service type of HAP IP accessories.
	ServiceType = "_hap._tcp"

	// Domain is the mDNS domain.
	Domain = "local"

	// DefaultProtocolVersion is assumed when pv is absent.
	DefaultProtocolVersion = "1.0"
)

// TXT record keys.
const (
	TXTKeyConfigNumber    = "c#"
	TXTKeyFeatureFlags    = "ff"
	TXTKeyDeviceID        = "id"
	TXTKeyModel           = "md"
	TXTKeyProtocolVersion = "pv"
	TXTKeyStateNumber     = "s#"
	TXTKeyStatusFlags     = "sf"
	TXTKeyCategory        = "ci"
	TXTKeySetupHash       = "sh"
)

var (
	ErrInvalidTXTRecord = errors.New("invalid TXT record format")
	ErrMissingRequired  = errors.New("missing required field")
	ErrNotFound         = errors.New("service not found")
	ErrInvalidConfig    = errors.New("invalid browser config")
)

// TXTInfo is the decoded _hap._tcp TXT record.
type TXTInfo struct {
	ConfigurationNumber uint32
	FeatureFlags        uint8
	DeviceID            string
	Model               string
	ProtocolVersion     string
	StateNumber         uint32
	StatusFlags         discovery.StatusFlags
	Category            discovery.AccessoryCategory

	// SetupHash is the base64 setup hash, empty when not advertised.
	SetupHash string
}

// IPService is a HAP accessory found over mDNS. Addresses from every
// interface the accessory answered on are merged into one entry.
type IPService struct {
	InstanceName string
	Host         string
	Port         uint16
	Addresses    []string

	TXTInfo
}

// String returns a short description for logs.
func (s *IPService) String() string {
	return fmt.Sprintf("%s (%s, %s, c#=%d, s#=%d)",
		s.InstanceName, s.DeviceID, s.Category, s.ConfigurationNumber, s.StateNumber)
}

// MatchesSetupID reports whether the sh TXT value is the setup hash for
// setupID.
func (s *IPService) MatchesSetupID(setupID string) bool {
	if s.SetupHash == "" {
		return false
	}
	return s.SetupHash == base64.StdEncoding.EncodeToString(discovery.ComputeSetupHash(setupID, s.DeviceID))
}

func (s *IPService) clone() *IPService {
	c := *s
	c.Addresses = append([]string(nil), s.Addresses...)
	return &c
}
