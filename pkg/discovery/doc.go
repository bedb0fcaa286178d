// Package discovery implements BLE discovery of HomeKit Accessory Protocol
// (HAP) accessories.
//
// Accessories announce themselves with a manufacturer-specific data block
// under the Apple company identifier (0x004C). The block has a fixed layout:
//
//	Offset  Len  Field
//	0       2    Company ID (0x004C, little-endian)
//	2       1    Type (0x06)
//	3       1    Advertising interval and length (AIL)
//	4       1    Status flags (SF)
//	5       6    Device ID
//	11      2    Accessory category ID (ACID, little-endian)
//	13      2    Global state number (GSN, little-endian)
//	15      1    Configuration number (CN)
//	16      1    Compatible version (CV, 0x02)
//	17      4    Setup hash (optional)
//
// # Components
//
// Decode turns one advertisement into a ServiceRecord or rejects it. Most
// advertisements in a typical environment are not HAP, so rejection is
// silent and allocation free.
//
// Registry keeps the last record seen for each device ID.
//
// Controller owns the scan lifecycle. It registers with a Radio, follows the
// adapter power state, corrects scans started or stopped behind its back,
// and routes discovered peripherals through Decode into the Registry,
// notifying OnServiceUp subscribers.
//
// ParseSetupURI reads the X-HM:// payload printed on an accessory's setup
// label. ServiceRecord.MatchesSetupID compares its setup ID against the
// advertised setup hash to find that accessory among the discovered ones.
//
// # Duplicates
//
// With duplicates disabled a device is reported once, on first sighting.
// The global state number changes when an accessory's state changes
// (disconnect, characteristic change); callers that need those transitions
// start the controller with allowDuplicates and compare GlobalStateNumber
// themselves.
package discovery
