package bluez

import (
	"encoding/binary"
	"sort"

	"github.com/godbus/dbus/v5"
	"github.com/hapkit/hapkit-go/pkg/discovery"
)

// Device is the peripheral handle passed to discovery handlers.
type Device struct {
	// Path is the BlueZ object path, e.g. /org/bluez/hci0/dev_AA_BB_CC_DD_EE_FF.
	Path dbus.ObjectPath

	// Address is the Bluetooth address as reported by BlueZ.
	Address string

	// RSSI is the last reported signal strength, 0 if unknown.
	RSSI int16
}

// deviceState is the merged view of a Device1 object's properties.
type deviceState struct {
	address      string
	name         string
	rssi         int16
	manufacturer map[uint16][]byte
}

// merge applies a Device1 property set and reports whether the update
// carried advertisement content (name or manufacturer data).
func (d *deviceState) merge(props map[string]dbus.Variant) bool {
	advertised := false
	if v, ok := props["Address"]; ok {
		if s, ok := v.Value().(string); ok {
			d.address = s
		}
	}
	if v, ok := props["RSSI"]; ok {
		if rssi, ok := v.Value().(int16); ok {
			d.rssi = rssi
		}
	}
	if v, ok := props["Name"]; ok {
		if name, ok := v.Value().(string); ok {
			d.name = name
			advertised = true
		}
	}
	if v, ok := props["ManufacturerData"]; ok {
		if md := manufacturerData(v); md != nil {
			d.manufacturer = md
			advertised = true
		}
	}
	return advertised
}

// advertisement builds the decoder input from the merged state.
func (d *deviceState) advertisement() discovery.Advertisement {
	return discovery.Advertisement{
		LocalName:        d.name,
		ManufacturerData: manufacturerBuffer(d.manufacturer),
	}
}

// manufacturerData unpacks an a{qv} variant.
func manufacturerData(v dbus.Variant) map[uint16][]byte {
	raw, ok := v.Value().(map[uint16]dbus.Variant)
	if !ok {
		return nil
	}
	out := make(map[uint16][]byte, len(raw))
	for id, inner := range raw {
		if b, ok := inner.Value().([]byte); ok {
			out[id] = b
		}
	}
	return out
}

// manufacturerBuffer rebuilds the on-air manufacturer specific data: the
// company ID little-endian followed by the payload. Apple data is preferred;
// otherwise the lowest company ID is used. Returns nil for no data.
func manufacturerBuffer(md map[uint16][]byte) []byte {
	if len(md) == 0 {
		return nil
	}
	id := uint16(discovery.CompanyIDApple)
	payload, ok := md[id]
	if !ok {
		ids := make([]int, 0, len(md))
		for k := range md {
			ids = append(ids, int(k))
		}
		sort.Ints(ids)
		id = uint16(ids[0])
		payload = md[id]
	}
	buf := make([]byte, 2, 2+len(payload))
	binary.LittleEndian.PutUint16(buf, id)
	return append(buf, payload...)
}
