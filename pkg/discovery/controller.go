package discovery

import (
	"encoding/binary"
	"log/slog"
	"sync"

	"github.com/hapkit/hapkit-go/pkg/log"
)

// ControllerConfig configures a Controller.
type ControllerConfig struct {
	// ServiceUUIDs is passed to the radio as the scan filter.
	// HAP accessories are recognised by manufacturer data, so the default
	// is no filter.
	ServiceUUIDs []string

	// AdapterName labels captured events (e.g. "hci0").
	AdapterName string

	// RecordRejected captures rejected advertisements that carry the Apple
	// company ID. Other rejections are never captured.
	RecordRejected bool

	// Logger is the optional logger for debug output.
	// If nil, logging is disabled.
	Logger *slog.Logger

	// EventLogger receives the discovery event trace.
	// If nil, events are discarded.
	EventLogger log.Logger
}

// DefaultControllerConfig returns a ControllerConfig with sensible defaults.
func DefaultControllerConfig() ControllerConfig {
	return ControllerConfig{
		AdapterName: "default",
	}
}

// Validate checks if the controller config is valid.
func (c *ControllerConfig) Validate() error {
	for _, u := range c.ServiceUUIDs {
		if u == "" {
			return ErrInvalidConfig
		}
	}
	return nil
}

// ServiceUpHandler is called once per notifiable discovery.
type ServiceUpHandler func(rec *ServiceRecord)

// Controller runs HAP BLE discovery against a Radio.
//
// Start and Stop are meant to be called by the owning application; radio
// events may arrive concurrently on any goroutine. Radio commands and
// subscriber callbacks are issued with no internal lock held, so a radio
// may deliver events synchronously from StartScan or StopScan.
type Controller struct {
	radio    Radio
	config   ControllerConfig
	logger   *slog.Logger
	registry *Registry
	listener *radioListener

	mu              sync.Mutex
	state           State
	allowDuplicates bool
	registered      bool
	session         *log.Session

	serviceUp     []ServiceUpHandler
	onStateChange func(old, new State)
}

// NewController creates a controller for radio.
func NewController(radio Radio, config ControllerConfig) (*Controller, error) {
	if radio == nil {
		return nil, ErrNoRadio
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		radio:    radio,
		config:   config,
		logger:   config.Logger,
		registry: NewRegistry(),
		session:  log.NewSession(config.EventLogger, config.AdapterName),
	}
	c.listener = &radioListener{c: c}
	return c, nil
}

// OnServiceUp adds a subscriber for service announcements. Subscribers are
// called synchronously on the radio event path and must not block.
func (c *Controller) OnServiceUp(fn ServiceUpHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.serviceUp = append(c.serviceUp, fn)
}

// OnStateChange sets a callback for controller state changes.
func (c *Controller) OnStateChange(fn func(old, new State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onStateChange = fn
}

// Start enables scanning. With allowDuplicates every accepted advertisement
// is announced, not just first sightings.
//
// The radio is asked to scan right away if its adapter is already powered
// on; otherwise scanning starts on the next powered-on report.
func (c *Controller) Start(allowDuplicates bool) {
	c.mu.Lock()
	c.allowDuplicates = allowDuplicates
	c.session = log.NewSession(c.config.EventLogger, c.config.AdapterName)
	register := !c.registered
	c.registered = true
	// Enabled before Register: a scan report arriving from Register is ours.
	old := c.state
	c.state.Scan = ScanEnabled
	c.mu.Unlock()

	if register {
		c.radio.Register(c.listener)
	}

	adapterState := c.radio.AdapterState()

	c.mu.Lock()
	c.state.Power = PowerStateOf(adapterState)
	var action Action
	c.state, action = Transition(c.state, TriggerStart)
	changed := c.stateChangedLocked(old, "start")
	c.mu.Unlock()

	c.debugLog("discovery started",
		"allowDuplicates", allowDuplicates,
		"adapterState", string(adapterState))

	changed()
	c.issue(action, TriggerStart)
}

// Stop stops scanning and unregisters from the radio. It is safe to call at
// any time, including before Start and repeatedly.
func (c *Controller) Stop() {
	c.mu.Lock()
	old := c.state
	var action Action
	c.state, action = Transition(c.state, TriggerStop)
	unregister := c.registered
	c.registered = false
	changed := c.stateChangedLocked(old, "stop")
	c.mu.Unlock()

	changed()
	c.issue(action, TriggerStop)

	if unregister {
		c.radio.Unregister(c.listener)
		c.debugLog("discovery stopped")
	}
}

// List returns a snapshot of all known services in no particular order.
func (c *Controller) List() []*ServiceRecord {
	return c.registry.List()
}

// Get returns the latest record for deviceID.
func (c *Controller) Get(deviceID string) (*ServiceRecord, bool) {
	return c.registry.Get(deviceID)
}

// State returns the current controller state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Running reports whether scanning is enabled.
func (c *Controller) Running() bool {
	return c.State().Scan == ScanEnabled
}

// SessionID returns the ID of the current scan session.
func (c *Controller) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.ID()
}

// handleTrigger feeds a radio-originated trigger through the state machine.
func (c *Controller) handleTrigger(t Trigger) {
	c.mu.Lock()
	old := c.state
	var action Action
	c.state, action = Transition(c.state, t)
	changed := c.stateChangedLocked(old, t.String())
	c.mu.Unlock()

	changed()
	c.issue(action, t)
}

// handleAdapterState records the adapter state report and reacts to it.
func (c *Controller) handleAdapterState(state AdapterState) {
	c.eventLog(log.Event{
		Direction: log.DirectionIn,
		Layer:     log.LayerRadio,
		Category:  log.CategoryState,
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntityAdapter,
			OldState: c.State().Power.String(),
			NewState: string(state),
		},
	})

	if PowerStateOf(state) == PowerOn {
		c.handleTrigger(TriggerPoweredOn)
		return
	}
	c.handleTrigger(TriggerPoweredOff)
}

// handleScanReport records a scan started/stopped report and reacts to it.
func (c *Controller) handleScanReport(started bool) {
	newState, t := "stopped", TriggerScanStopped
	if started {
		newState, t = "started", TriggerScanStarted
	}
	c.eventLog(log.Event{
		Direction: log.DirectionIn,
		Layer:     log.LayerRadio,
		Category:  log.CategoryState,
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntityScan,
			NewState: newState,
		},
	})
	c.handleTrigger(t)
}

// handleDiscovered decodes an advertisement, stores it and notifies
// subscribers per the duplicates policy. Advertisements that arrive while
// scanning is stopped are stored but not announced.
func (c *Controller) handleDiscovered(p Peripheral, adv Advertisement) {
	rec, err := Parse(adv.LocalName, adv.ManufacturerData, p)
	if err != nil {
		if c.config.RecordRejected && hasAppleCompanyID(adv.ManufacturerData) {
			c.eventLog(log.Event{
				Direction: log.DirectionIn,
				Layer:     log.LayerDecoder,
				Category:  log.CategoryAdvertisement,
				Advertisement: &log.AdvertisementEvent{
					LocalName: adv.LocalName,
					Data:      adv.ManufacturerData,
					Reason:    err.Error(),
				},
			})
		}
		return
	}

	c.mu.Lock()
	prev := c.registry.Put(rec)
	notify := c.state.Scan == ScanEnabled && Notifiable(prev, c.allowDuplicates)
	var handlers []ServiceUpHandler
	if notify {
		handlers = append(handlers, c.serviceUp...)
	}
	c.mu.Unlock()

	c.eventLog(log.Event{
		Direction: log.DirectionIn,
		Layer:     log.LayerDecoder,
		Category:  log.CategoryAdvertisement,
		DeviceID:  rec.DeviceID,
		Advertisement: &log.AdvertisementEvent{
			LocalName: adv.LocalName,
			Data:      adv.ManufacturerData,
			Accepted:  true,
		},
	})

	svc := &log.ServiceEvent{
		Name:                rec.Name,
		Category:            rec.AccessoryCategoryID,
		GlobalStateNumber:   rec.GlobalStateNumber,
		ConfigurationNumber: rec.ConfigurationNumber,
		StatusFlags:         rec.StatusFlags,
		Notified:            notify,
	}
	if prev != nil {
		gsn := prev.GlobalStateNumber
		svc.PreviousGSN = &gsn
		if gsn != rec.GlobalStateNumber {
			c.debugLog("global state number changed",
				"deviceID", rec.DeviceID,
				"old", gsn,
				"new", rec.GlobalStateNumber)
		}
	}
	c.eventLog(log.Event{
		Direction: log.DirectionOut,
		Layer:     log.LayerController,
		Category:  log.CategoryService,
		DeviceID:  rec.DeviceID,
		Service:   svc,
	})

	for _, h := range handlers {
		h(rec)
	}
}

// issue sends the radio command for action.
func (c *Controller) issue(action Action, cause Trigger) {
	switch action {
	case ActionStartScan:
		c.mu.Lock()
		allowDuplicates := c.allowDuplicates
		c.mu.Unlock()

		c.eventLog(log.Event{
			Direction: log.DirectionOut,
			Layer:     log.LayerController,
			Category:  log.CategoryCommand,
			Command: &log.CommandEvent{
				Type:            log.CommandStartScan,
				AllowDuplicates: allowDuplicates,
				ServiceUUIDs:    c.config.ServiceUUIDs,
				Trigger:         cause.String(),
			},
		})
		c.radio.StartScan(c.config.ServiceUUIDs, allowDuplicates)

	case ActionStopScan:
		c.eventLog(log.Event{
			Direction: log.DirectionOut,
			Layer:     log.LayerController,
			Category:  log.CategoryCommand,
			Command: &log.CommandEvent{
				Type:    log.CommandStopScan,
				Trigger: cause.String(),
			},
		})
		c.radio.StopScan()
	}
}

// stateChangedLocked returns a func that reports a transition from old to
// the current state. It must be called after c.mu is released.
func (c *Controller) stateChangedLocked(old State, reason string) func() {
	cur := c.state
	if old == cur {
		return func() {}
	}
	fn := c.onStateChange
	return func() {
		c.eventLog(log.Event{
			Direction: log.DirectionOut,
			Layer:     log.LayerController,
			Category:  log.CategoryState,
			StateChange: &log.StateChangeEvent{
				Entity:   log.StateEntityController,
				OldState: old.String(),
				NewState: cur.String(),
				Reason:   reason,
			},
		})
		if fn != nil {
			fn(old, cur)
		}
	}
}

func (c *Controller) eventLog(event log.Event) {
	c.mu.Lock()
	s := c.session
	c.mu.Unlock()
	s.Log(event)
}

func (c *Controller) debugLog(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}

func hasAppleCompanyID(data []byte) bool {
	return len(data) >= 2 && binary.LittleEndian.Uint16(data) == CompanyIDApple
}

// radioListener adapts Controller to RadioHandler without exporting the
// handler methods on Controller itself.
type radioListener struct {
	c *Controller
}

func (l *radioListener) AdapterStateChanged(state AdapterState) {
	l.c.handleAdapterState(state)
}

func (l *radioListener) ScanStarted() {
	l.c.handleScanReport(true)
}

func (l *radioListener) ScanStopped() {
	l.c.handleScanReport(false)
}

func (l *radioListener) PeripheralDiscovered(p Peripheral, adv Advertisement) {
	l.c.handleDiscovered(p, adv)
}

var _ RadioHandler = (*radioListener)(nil)
