package log

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Limits for reading captures. An event nests at most three levels
// (event, payload, UUID list) and carries a few dozen map pairs.
const (
	maxNestedLevels  = 8
	maxArrayElements = 1024
	maxMapPairs      = 64
)

var (
	// eventEncMode writes RFC 8949 core deterministic CBOR, so the same
	// event always produces the same bytes.
	eventEncMode cbor.EncMode

	// eventDecMode only accepts what eventEncMode writes: definite lengths,
	// unique keys, bounded sizes. A capture that fails these checks is
	// corrupt rather than foreign.
	eventDecMode cbor.DecMode
)

func init() {
	encOpts := cbor.CoreDetEncOptions()
	encOpts.Time = cbor.TimeRFC3339Nano
	encOpts.NilContainers = cbor.NilContainerAsNull

	var err error
	eventEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create event CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:        cbor.DupMapKeyEnforcedAPF,
		IndefLength:      cbor.IndefLengthForbidden,
		MaxNestedLevels:  maxNestedLevels,
		MaxArrayElements: maxArrayElements,
		MaxMapPairs:      maxMapPairs,
	}
	eventDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create event CBOR decoder mode: %v", err))
	}
}

// EncodeEvent encodes an Event to CBOR bytes.
func EncodeEvent(event Event) ([]byte, error) {
	return eventEncMode.Marshal(event)
}

// DecodeEvent decodes CBOR bytes into an Event.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	if err := eventDecMode.Unmarshal(data, &event); err != nil {
		return Event{}, err
	}
	return event, nil
}

// NewEncoder creates a CBOR encoder for events that writes to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return eventEncMode.NewEncoder(w)
}

// NewDecoder creates a CBOR decoder for events that reads from r.
// Each Decode call yields one Event.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return eventDecMode.NewDecoder(r)
}
