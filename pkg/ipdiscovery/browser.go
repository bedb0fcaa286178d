package ipdiscovery

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strings"

	"github.com/enbility/zeroconf/v3"
)

// BrowserConfig configures a Browser.
type BrowserConfig struct {
	// Interface restricts browsing to one network interface.
	// Empty string means all interfaces.
	Interface string

	// Logger is the optional logger for debug output.
	// If nil, logging is disabled.
	Logger *slog.Logger
}

// DefaultBrowserConfig returns the default browser configuration.
func DefaultBrowserConfig() BrowserConfig {
	return BrowserConfig{}
}

// Validate checks that the configured interface exists.
func (c *BrowserConfig) Validate() error {
	if c.Interface == "" {
		return nil
	}
	if _, err := net.InterfaceByName(c.Interface); err != nil {
		return fmt.Errorf("%w: interface %q: %v", ErrInvalidConfig, c.Interface, err)
	}
	return nil
}

// Browser finds HAP accessories over mDNS.
type Browser struct {
	config BrowserConfig
	logger *slog.Logger
	ifaces []net.Interface
}

// NewBrowser creates a browser.
func NewBrowser(config BrowserConfig) (*Browser, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	b := &Browser{
		config: config,
		logger: config.Logger,
	}
	if config.Interface != "" {
		iface, err := net.InterfaceByName(config.Interface)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		b.ifaces = []net.Interface{*iface}
	}
	return b, nil
}

// Browse streams accessories until ctx is done. A service is sent when first
// seen and again whenever its configuration or state number changes; address
// updates alone are merged silently. Each sent value is a snapshot.
func (b *Browser) Browse(ctx context.Context) (<-chan *IPService, error) {
	out := make(chan *IPService)
	entries := make(chan *zeroconf.ServiceEntry)
	removed := make(chan *zeroconf.ServiceEntry)

	go b.aggregate(ctx, entries, removed, out)

	go func() {
		if err := zeroconf.Browse(ctx, ServiceType, Domain, entries, removed, b.browserOptions()...); err != nil {
			b.debugLog("mDNS browse failed", "error", err)
		}
	}()

	return out, nil
}

// FindByDeviceID browses until an accessory with deviceID appears.
func (b *Browser) FindByDeviceID(ctx context.Context, deviceID string) (*IPService, error) {
	want := strings.ToLower(deviceID)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results, err := b.Browse(ctx)
	if err != nil {
		return nil, err
	}
	for {
		select {
		case svc, ok := <-results:
			if !ok {
				return nil, ErrNotFound
			}
			if svc.DeviceID == want {
				return svc, nil
			}
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// aggregate merges zeroconf entries by instance name and forwards
// snapshots to out. It closes out when entries closes or ctx is done.
func (b *Browser) aggregate(ctx context.Context, entries, removed <-chan *zeroconf.ServiceEntry, out chan<- *IPService) {
	defer close(out)

	services := make(map[string]*IPService)

	for {
		select {
		case entry, ok := <-entries:
			if !ok {
				return
			}
			svc := b.entryToService(entry)
			if svc == nil {
				continue
			}

			emit := true
			if existing, found := services[svc.InstanceName]; found {
				changed := existing.ConfigurationNumber != svc.ConfigurationNumber ||
					existing.StateNumber != svc.StateNumber
				svc.Addresses = mergeAddresses(existing.Addresses, svc.Addresses)
				emit = changed
			}
			services[svc.InstanceName] = svc
			if !emit {
				continue
			}

			select {
			case out <- svc.clone():
			case <-ctx.Done():
				return
			}

		case entry, ok := <-removed:
			if !ok {
				removed = nil
				continue
			}
			if existing, found := services[entry.Instance]; found {
				existing.Addresses = removeAddresses(existing.Addresses, entry)
				if len(existing.Addresses) == 0 {
					delete(services, entry.Instance)
					b.debugLog("accessory gone", "instance", entry.Instance)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}

func (b *Browser) browserOptions() []zeroconf.ClientOption {
	var opts []zeroconf.ClientOption
	if len(b.ifaces) > 0 {
		opts = append(opts, zeroconf.SelectIfaces(b.ifaces))
	}
	return opts
}

func (b *Browser) entryToService(entry *zeroconf.ServiceEntry) *IPService {
	info, err := DecodeTXT(StringsToTXTRecords(entry.Text))
	if err != nil {
		b.debugLog("ignoring accessory with bad TXT record", "instance", entry.Instance, "error", err)
		return nil
	}

	return &IPService{
		InstanceName: entry.Instance,
		Host:         entry.HostName,
		Port:         uint16(entry.Port),
		Addresses:    entryAddresses(entry),
		TXTInfo:      *info,
	}
}

func (b *Browser) debugLog(msg string, args ...any) {
	if b.logger != nil {
		b.logger.Debug(msg, args...)
	}
}

func entryAddresses(entry *zeroconf.ServiceEntry) []string {
	addrs := make([]string, 0, len(entry.AddrIPv4)+len(entry.AddrIPv6))
	for _, ip := range entry.AddrIPv4 {
		addrs = append(addrs, ip.String())
	}
	for _, ip := range entry.AddrIPv6 {
		addrs = append(addrs, ip.String())
	}
	return addrs
}

// mergeAddresses returns existing plus any addresses from add it lacks.
func mergeAddresses(existing, add []string) []string {
	seen := make(map[string]bool, len(existing))
	merged := append([]string(nil), existing...)
	for _, addr := range existing {
		seen[addr] = true
	}
	for _, addr := range add {
		if !seen[addr] {
			merged = append(merged, addr)
			seen[addr] = true
		}
	}
	return merged
}

// removeAddresses drops the entry's addresses from addresses.
func removeAddresses(addresses []string, entry *zeroconf.ServiceEntry) []string {
	drop := make(map[string]bool)
	for _, addr := range entryAddresses(entry) {
		drop[addr] = true
	}
	result := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		if !drop[addr] {
			result = append(result, addr)
		}
	}
	return result
}
