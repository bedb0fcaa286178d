package bluez

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/hapkit/hapkit-go/pkg/discovery"
	"github.com/hapkit/hapkit-go/pkg/log"
)

const (
	bluezService     = "org.bluez"
	adapterIface     = "org.bluez.Adapter1"
	deviceIface      = "org.bluez.Device1"
	propsIface       = "org.freedesktop.DBus.Properties"
	objManagerIface  = "org.freedesktop.DBus.ObjectManager"
	propertiesSignal = propsIface + ".PropertiesChanged"
	ifacesAdded      = objManagerIface + ".InterfacesAdded"
	ifacesRemoved    = objManagerIface + ".InterfacesRemoved"
)

var matchRules = []string{
	"type='signal',sender='" + bluezService + "',interface='" + propsIface + "',member='PropertiesChanged'",
	"type='signal',sender='" + bluezService + "',interface='" + objManagerIface + "'",
}

// Radio is a discovery.Radio backed by a BlueZ adapter.
//
// Handlers are invoked serially from a single signal goroutine that runs
// while at least one handler is registered.
type Radio struct {
	conn        *dbus.Conn
	config      Config
	logger      *slog.Logger
	events      *log.Session
	adapterPath dbus.ObjectPath

	mu       sync.Mutex
	handlers []discovery.RadioHandler
	devices  map[dbus.ObjectPath]*deviceState
	signals  chan *dbus.Signal
	done     chan struct{}
	closed   bool
}

// New connects to the system bus and returns a radio for cfg.Adapter.
func New(cfg Config) (*Radio, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return nil, fmt.Errorf("bluez: connect system bus: %w", err)
	}
	return newRadio(conn, cfg), nil
}

func newRadio(conn *dbus.Conn, cfg Config) *Radio {
	return &Radio{
		conn:        conn,
		config:      cfg,
		logger:      cfg.Logger,
		events:      log.NewSession(cfg.EventLogger, cfg.Adapter),
		adapterPath: dbus.ObjectPath("/org/bluez/" + cfg.Adapter),
		devices:     make(map[dbus.ObjectPath]*deviceState),
	}
}

// Register adds a handler. The first handler subscribes to BlueZ signals.
func (r *Radio) Register(h discovery.RadioHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	for _, existing := range r.handlers {
		if existing == h {
			return
		}
	}
	r.handlers = append(r.handlers, h)
	if len(r.handlers) == 1 {
		r.subscribeLocked()
	}
}

// Unregister removes a handler. Removing the last one unsubscribes.
func (r *Radio) Unregister(h discovery.RadioHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.handlers {
		if existing == h {
			r.handlers = append(r.handlers[:i], r.handlers[i+1:]...)
			if len(r.handlers) == 0 {
				r.unsubscribeLocked()
			}
			return
		}
	}
}

// StartScan sets the LE discovery filter and starts discovery. Failures are
// logged; the controller reacts to the resulting Discovering reports.
func (r *Radio) StartScan(serviceUUIDs []string, allowDuplicates bool) {
	adapter := r.adapter()
	if adapter == nil {
		return
	}

	filter := map[string]interface{}{
		"Transport":     "le",
		"DuplicateData": allowDuplicates,
	}
	if len(serviceUUIDs) > 0 {
		filter["UUIDs"] = serviceUUIDs
	}
	if err := adapter.Call(adapterIface+".SetDiscoveryFilter", 0, filter).Err; err != nil {
		r.reportError("set discovery filter", err)
		return
	}
	if err := adapter.Call(adapterIface+".StartDiscovery", 0).Err; err != nil && !isInProgress(err) {
		r.reportError("start discovery", err)
		return
	}
	r.debugLog("discovery requested", "adapter", r.config.Adapter, "duplicates", allowDuplicates)
}

// StopScan stops discovery. Stopping an idle adapter is not an error.
func (r *Radio) StopScan() {
	adapter := r.adapter()
	if adapter == nil {
		return
	}
	if err := adapter.Call(adapterIface+".StopDiscovery", 0).Err; err != nil && !isNotReady(err) {
		r.reportError("stop discovery", err)
	}
}

// AdapterState reads the adapter's Powered property.
func (r *Radio) AdapterState() discovery.AdapterState {
	adapter := r.adapter()
	if adapter == nil {
		return discovery.AdapterStateUnknown
	}
	v, err := adapter.GetProperty(adapterIface + ".Powered")
	if err != nil {
		r.debugLog("read Powered failed", "error", err)
		return discovery.AdapterStateUnknown
	}
	powered, ok := v.Value().(bool)
	if !ok {
		return discovery.AdapterStateUnknown
	}
	return poweredState(powered)
}

// Close unsubscribes, drops all handlers and closes the bus connection.
func (r *Radio) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	r.handlers = nil
	r.unsubscribeLocked()
	r.mu.Unlock()

	if r.conn == nil {
		return nil
	}
	return r.conn.Close()
}

func (r *Radio) adapter() dbus.BusObject {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conn == nil || r.closed {
		return nil
	}
	return r.conn.Object(bluezService, r.adapterPath)
}

func (r *Radio) subscribeLocked() {
	r.signals = make(chan *dbus.Signal, 64)
	r.done = make(chan struct{})
	if r.conn != nil {
		for _, rule := range matchRules {
			if err := r.conn.BusObject().Call("org.freedesktop.DBus.AddMatch", 0, rule).Err; err != nil {
				r.reportError("add match", err)
			}
		}
		r.conn.Signal(r.signals)
	}
	go r.pump(r.signals, r.done)
}

func (r *Radio) unsubscribeLocked() {
	if r.done == nil {
		return
	}
	if r.conn != nil {
		r.conn.RemoveSignal(r.signals)
		for _, rule := range matchRules {
			_ = r.conn.BusObject().Call("org.freedesktop.DBus.RemoveMatch", 0, rule).Err
		}
	}
	close(r.done)
	r.done = nil
	r.signals = nil
}

func (r *Radio) pump(signals <-chan *dbus.Signal, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case sig, ok := <-signals:
			if !ok {
				return
			}
			r.dispatch(sig)
		}
	}
}

// dispatch routes one BlueZ signal to the registered handlers.
func (r *Radio) dispatch(sig *dbus.Signal) {
	switch sig.Name {
	case propertiesSignal:
		if len(sig.Body) < 2 {
			return
		}
		iface, _ := sig.Body[0].(string)
		changed, ok := sig.Body[1].(map[string]dbus.Variant)
		if !ok {
			return
		}
		switch iface {
		case adapterIface:
			if sig.Path == r.adapterPath {
				r.adapterChanged(changed)
			}
		case deviceIface:
			r.deviceChanged(sig.Path, changed)
		}

	case ifacesAdded:
		if len(sig.Body) < 2 {
			return
		}
		path, _ := sig.Body[0].(dbus.ObjectPath)
		ifaces, ok := sig.Body[1].(map[string]map[string]dbus.Variant)
		if !ok {
			return
		}
		if props, ok := ifaces[deviceIface]; ok {
			r.deviceChanged(path, props)
		}

	case ifacesRemoved:
		if len(sig.Body) < 2 {
			return
		}
		path, _ := sig.Body[0].(dbus.ObjectPath)
		removed, _ := sig.Body[1].([]string)
		for _, iface := range removed {
			if iface == deviceIface {
				r.mu.Lock()
				delete(r.devices, path)
				r.mu.Unlock()
			}
		}
	}
}

func (r *Radio) adapterChanged(changed map[string]dbus.Variant) {
	handlers := r.snapshot()
	if v, ok := changed["Powered"]; ok {
		if powered, ok := v.Value().(bool); ok {
			state := poweredState(powered)
			for _, h := range handlers {
				h.AdapterStateChanged(state)
			}
		}
	}
	if v, ok := changed["Discovering"]; ok {
		if discovering, ok := v.Value().(bool); ok {
			for _, h := range handlers {
				if discovering {
					h.ScanStarted()
				} else {
					h.ScanStopped()
				}
			}
		}
	}
}

func (r *Radio) deviceChanged(path dbus.ObjectPath, props map[string]dbus.Variant) {
	if !strings.HasPrefix(string(path), string(r.adapterPath)+"/") {
		return
	}

	r.mu.Lock()
	d, ok := r.devices[path]
	if !ok {
		d = &deviceState{}
		r.devices[path] = d
	}
	if !d.merge(props) {
		r.mu.Unlock()
		return
	}
	dev := &Device{Path: path, Address: d.address, RSSI: d.rssi}
	adv := d.advertisement()
	handlers := append([]discovery.RadioHandler(nil), r.handlers...)
	r.mu.Unlock()

	for _, h := range handlers {
		h.PeripheralDiscovered(dev, adv)
	}
}

func (r *Radio) snapshot() []discovery.RadioHandler {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]discovery.RadioHandler(nil), r.handlers...)
}

func (r *Radio) reportError(op string, err error) {
	r.debugLog("bluez call failed", "op", op, "error", err)
	r.events.Log(log.Event{
		Direction: log.DirectionIn,
		Layer:     log.LayerRadio,
		Category:  log.CategoryError,
		Error: &log.ErrorEventData{
			Layer:   log.LayerRadio,
			Message: err.Error(),
			Context: op,
		},
	})
}

func (r *Radio) debugLog(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Debug(msg, args...)
	}
}

func poweredState(powered bool) discovery.AdapterState {
	if powered {
		return discovery.AdapterStatePoweredOn
	}
	return discovery.AdapterStatePoweredOff
}

func isInProgress(err error) bool {
	return dbusErrorName(err) == "org.bluez.Error.InProgress"
}

func isNotReady(err error) bool {
	name := dbusErrorName(err)
	return name == "org.bluez.Error.NotReady" || name == "org.bluez.Error.Failed"
}

func dbusErrorName(err error) string {
	var e dbus.Error
	if errors.As(err, &e) {
		return e.Name
	}
	var pe *dbus.Error
	if errors.As(err, &pe) && pe != nil {
		return pe.Name
	}
	return ""
}

var _ discovery.Radio = (*Radio)(nil)
