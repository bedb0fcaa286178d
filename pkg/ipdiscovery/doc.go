// Package ipdiscovery browses for HAP accessories reachable over IP.
//
// IP accessories announce themselves over mDNS/DNS-SD as _hap._tcp with a
// TXT record carrying the same identity and state fields a BLE accessory
// puts in its advertisement:
//
//	c#  configuration number
//	ff  feature flags (optional)
//	id  device ID, aa:bb:cc:dd:ee:ff
//	md  model name
//	pv  protocol version (optional, default "1.0")
//	s#  state number
//	sf  status flags (bit 0 set while unpaired)
//	ci  accessory category identifier
//	sh  setup hash (optional)
//
// Device IDs are normalised to lowercase so they match the keys used by
// pkg/discovery for BLE accessories.
package ipdiscovery
