// Package bluez implements discovery.Radio on top of the BlueZ D-Bus API.
//
// The radio talks to a single adapter (org.bluez.Adapter1 at
// /org/bluez/<adapter>) over a private system bus connection. Adapter power
// and discovery state come from the adapter's Powered and Discovering
// properties; advertisements come from org.bluez.Device1 objects, which
// BlueZ creates (InterfacesAdded) and updates (PropertiesChanged) as it
// receives advertising reports.
//
// BlueZ exposes manufacturer data as a{qv}: company ID to payload with the
// company ID prefix stripped. The radio rebuilds the raw buffer (company ID
// little-endian, then payload) so the discovery decoder sees exactly what
// was on air.
//
// Usage:
//
//	radio, err := bluez.New(bluez.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	defer radio.Close()
//
//	ctrl, err := discovery.NewController(radio, discovery.DefaultControllerConfig())
package bluez
