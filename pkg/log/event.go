package log

import "time"

// Event is one captured discovery event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the scan session (UUID, one per Start).
	SessionID string `cbor:"2,keyasint"`

	// Direction indicates flow relative to the discovery core.
	Direction Direction `cbor:"3,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// Adapter is the radio adapter name (e.g. "hci0").
	Adapter string `cbor:"6,keyasint,omitempty"`

	// DeviceID is the accessory device ID, when known.
	DeviceID string `cbor:"7,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Advertisement *AdvertisementEvent `cbor:"10,keyasint,omitempty"`
	Command       *CommandEvent       `cbor:"11,keyasint,omitempty"`
	StateChange   *StateChangeEvent   `cbor:"12,keyasint,omitempty"`
	Service       *ServiceEvent       `cbor:"13,keyasint,omitempty"`
	Error         *ErrorEventData     `cbor:"14,keyasint,omitempty"`
}

// Direction indicates the direction of flow.
type Direction uint8

const (
	// DirectionIn indicates an event delivered to the core (radio -> core).
	DirectionIn Direction = 0
	// DirectionOut indicates an event emitted by the core (core -> radio or application).
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which part of the stack captured the event.
type Layer uint8

const (
	// LayerRadio is the radio binding.
	LayerRadio Layer = 0
	// LayerDecoder is the advertisement decoder.
	LayerDecoder Layer = 1
	// LayerController is the discovery controller.
	LayerController Layer = 2
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerRadio:
		return "RADIO"
	case LayerDecoder:
		return "DECODER"
	case LayerController:
		return "CONTROLLER"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryAdvertisement indicates an advertisement was received.
	CategoryAdvertisement Category = 0
	// CategoryCommand indicates a scan command was issued.
	CategoryCommand Category = 1
	// CategoryState indicates a state change.
	CategoryState Category = 2
	// CategoryError indicates an error event.
	CategoryError Category = 3
	// CategoryService indicates a service record was stored.
	CategoryService Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryAdvertisement:
		return "ADVERTISEMENT"
	case CategoryCommand:
		return "COMMAND"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	case CategoryService:
		return "SERVICE"
	default:
		return "UNKNOWN"
	}
}

// AdvertisementEvent captures an advertisement and the decoder's verdict.
type AdvertisementEvent struct {
	// LocalName is the advertised local name (may be empty).
	LocalName string `cbor:"1,keyasint,omitempty"`

	// Data is the raw manufacturer data.
	Data []byte `cbor:"2,keyasint,omitempty"`

	// Accepted is true if the decoder produced a service record.
	Accepted bool `cbor:"3,keyasint,omitempty"`

	// Reason is the rejection reason for rejected advertisements.
	Reason string `cbor:"4,keyasint,omitempty"`
}

// CommandEvent captures a command sent to the radio.
type CommandEvent struct {
	// Type of command.
	Type CommandType `cbor:"1,keyasint"`

	// AllowDuplicates is the duplicates flag for start commands.
	AllowDuplicates bool `cbor:"2,keyasint,omitempty"`

	// ServiceUUIDs is the service filter for start commands.
	ServiceUUIDs []string `cbor:"3,keyasint,omitempty"`

	// Trigger names the state machine input that caused the command.
	Trigger string `cbor:"4,keyasint,omitempty"`
}

// CommandType indicates the type of radio command.
type CommandType uint8

const (
	// CommandStartScan indicates a start-scan command.
	CommandStartScan CommandType = 0
	// CommandStopScan indicates a stop-scan command.
	CommandStopScan CommandType = 1
)

// String returns the command type name.
func (c CommandType) String() string {
	switch c {
	case CommandStartScan:
		return "START_SCAN"
	case CommandStopScan:
		return "STOP_SCAN"
	default:
		return "UNKNOWN"
	}
}

// StateChangeEvent captures adapter, scan and controller state changes.
type StateChangeEvent struct {
	// Entity being changed.
	Entity StateEntity `cbor:"1,keyasint"`

	// OldState is the previous state (may be empty).
	OldState string `cbor:"2,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"3,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"4,keyasint,omitempty"`
}

// StateEntity indicates what entity changed state.
type StateEntity uint8

const (
	// StateEntityAdapter indicates an adapter power state change.
	StateEntityAdapter StateEntity = 0
	// StateEntityScan indicates the radio started or stopped scanning.
	StateEntityScan StateEntity = 1
	// StateEntityController indicates a controller state machine change.
	StateEntityController StateEntity = 2
)

// String returns the state entity name.
func (s StateEntity) String() string {
	switch s {
	case StateEntityAdapter:
		return "ADAPTER"
	case StateEntityScan:
		return "SCAN"
	case StateEntityController:
		return "CONTROLLER"
	default:
		return "UNKNOWN"
	}
}

// ServiceEvent captures a service record stored in the registry.
type ServiceEvent struct {
	// Name is the advertised local name.
	Name string `cbor:"1,keyasint"`

	// Category is the accessory category ID.
	Category uint16 `cbor:"2,keyasint,omitempty"`

	// GlobalStateNumber is the GSN of the stored record.
	GlobalStateNumber uint16 `cbor:"3,keyasint"`

	// ConfigurationNumber is the CN of the stored record.
	ConfigurationNumber uint8 `cbor:"4,keyasint,omitempty"`

	// StatusFlags is the SF byte of the stored record.
	StatusFlags uint8 `cbor:"5,keyasint,omitempty"`

	// PreviousGSN is the GSN of the replaced record (nil on first sighting).
	PreviousGSN *uint16 `cbor:"6,keyasint,omitempty"`

	// Notified is true if subscribers were notified.
	Notified bool `cbor:"7,keyasint,omitempty"`
}

// ErrorEventData captures errors at any layer.
type ErrorEventData struct {
	// Layer where the error occurred.
	Layer Layer `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"3,keyasint,omitempty"`
}
