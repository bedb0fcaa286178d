package discovery

// AdapterState is the radio adapter's power state as reported by the radio
// layer. The set is open; only AdapterStatePoweredOn means scanning is
// possible.
type AdapterState string

// Well-known adapter states.
const (
	AdapterStateUnknown      AdapterState = "unknown"
	AdapterStatePoweredOn    AdapterState = "poweredOn"
	AdapterStatePoweredOff   AdapterState = "poweredOff"
	AdapterStateUnauthorized AdapterState = "unauthorized"
	AdapterStateUnsupported  AdapterState = "unsupported"
)

// Radio is the scanning side of a BLE stack.
//
// Commands are fire-and-forget: their outcome is observed only through
// later handler callbacks. Implementations deliver callbacks to every
// registered handler; callbacks may arrive on any goroutine.
type Radio interface {
	// Register adds a handler for radio events.
	Register(h RadioHandler)

	// Unregister removes a handler added by Register. Unknown handlers are
	// ignored.
	Unregister(h RadioHandler)

	// StartScan starts scanning. An empty serviceUUIDs list means no
	// service filter.
	StartScan(serviceUUIDs []string, allowDuplicates bool)

	// StopScan stops scanning.
	StopScan()

	// AdapterState returns the current adapter state.
	AdapterState() AdapterState
}

// RadioHandler receives radio events.
type RadioHandler interface {
	// AdapterStateChanged is called when the adapter power state changes.
	AdapterStateChanged(state AdapterState)

	// ScanStarted is called when scanning starts, for whatever reason.
	ScanStarted()

	// ScanStopped is called when scanning stops, for whatever reason.
	ScanStopped()

	// PeripheralDiscovered is called for every advertisement received.
	PeripheralDiscovered(p Peripheral, adv Advertisement)
}
