package discovery

// ScanState is whether the owning application wants scanning.
type ScanState uint8

const (
	// ScanStopped - Start has not been called, or Stop was called.
	ScanStopped ScanState = iota

	// ScanEnabled - Start was called and Stop has not been called since.
	ScanEnabled
)

// String returns the scan state name.
func (s ScanState) String() string {
	switch s {
	case ScanStopped:
		return "STOPPED"
	case ScanEnabled:
		return "ENABLED"
	default:
		return "UNKNOWN"
	}
}

// PowerState is the adapter power state as last reported by the radio.
type PowerState uint8

const (
	// PowerUnknown - no state reported yet.
	PowerUnknown PowerState = iota

	// PowerOn - the adapter is powered on and can scan.
	PowerOn

	// PowerOff - the adapter reported any state other than powered on.
	PowerOff
)

// String returns the power state name.
func (p PowerState) String() string {
	switch p {
	case PowerUnknown:
		return "UNKNOWN"
	case PowerOn:
		return "POWERED_ON"
	case PowerOff:
		return "POWERED_OFF"
	default:
		return "INVALID"
	}
}

// PowerStateOf maps a radio adapter state onto a PowerState.
func PowerStateOf(s AdapterState) PowerState {
	if s == AdapterStatePoweredOn {
		return PowerOn
	}
	if s == "" || s == AdapterStateUnknown {
		return PowerUnknown
	}
	return PowerOff
}

// State is the controller's combined state.
type State struct {
	Scan  ScanState
	Power PowerState
}

// String returns "SCAN/POWER".
func (s State) String() string {
	return s.Scan.String() + "/" + s.Power.String()
}

// Trigger is an input to the state machine.
type Trigger uint8

const (
	// TriggerStart - the application called Start.
	TriggerStart Trigger = iota

	// TriggerStop - the application called Stop.
	TriggerStop

	// TriggerPoweredOn - the adapter reported powered on.
	TriggerPoweredOn

	// TriggerPoweredOff - the adapter reported any other state.
	TriggerPoweredOff

	// TriggerScanStarted - the radio reported scanning started.
	TriggerScanStarted

	// TriggerScanStopped - the radio reported scanning stopped.
	TriggerScanStopped
)

// String returns the trigger name.
func (t Trigger) String() string {
	switch t {
	case TriggerStart:
		return "START"
	case TriggerStop:
		return "STOP"
	case TriggerPoweredOn:
		return "POWERED_ON"
	case TriggerPoweredOff:
		return "POWERED_OFF"
	case TriggerScanStarted:
		return "SCAN_STARTED"
	case TriggerScanStopped:
		return "SCAN_STOPPED"
	default:
		return "UNKNOWN"
	}
}

// Action is the radio command a transition asks for.
type Action uint8

const (
	// ActionNone - no command.
	ActionNone Action = iota

	// ActionStartScan - issue StartScan.
	ActionStartScan

	// ActionStopScan - issue StopScan.
	ActionStopScan
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "NONE"
	case ActionStartScan:
		return "START_SCAN"
	case ActionStopScan:
		return "STOP_SCAN"
	default:
		return "UNKNOWN"
	}
}

// Transition applies t to s and returns the new state and the radio command
// to issue.
//
// A scan-stopped report while enabled always restarts the scan, whatever
// the last known power state; a scan that cannot start fails at the radio.
func Transition(s State, t Trigger) (State, Action) {
	switch t {
	case TriggerStart:
		s.Scan = ScanEnabled
		if s.Power == PowerOn {
			return s, ActionStartScan
		}
		return s, ActionNone

	case TriggerStop:
		s.Scan = ScanStopped
		return s, ActionStopScan

	case TriggerPoweredOn:
		s.Power = PowerOn
		if s.Scan == ScanEnabled {
			return s, ActionStartScan
		}
		return s, ActionNone

	case TriggerPoweredOff:
		s.Power = PowerOff
		return s, ActionNone

	case TriggerScanStarted:
		if s.Scan == ScanStopped {
			return s, ActionStopScan
		}
		return s, ActionNone

	case TriggerScanStopped:
		if s.Scan == ScanEnabled {
			return s, ActionStartScan
		}
		return s, ActionNone
	}
	return s, ActionNone
}
