package discovery_test

import (
	"testing"

	"github.com/hapkit/hapkit-go/pkg/discovery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeValidAdvertisement(t *testing.T) {
	periph := &struct{ id string }{id: "periph-1"}
	data := hapPayload(testDeviceID, 0x1234)

	rec, ok := discovery.Decode("Eve Door", data, periph)
	require.True(t, ok)
	require.NotNil(t, rec)

	assert.Equal(t, "Eve Door", rec.Name)
	assert.Equal(t, uint16(0x004C), rec.CompanyID)
	assert.Equal(t, uint8(0x06), rec.Type)
	assert.Equal(t, uint8(0x2D), rec.AdvertisingIntervalLow)
	assert.Equal(t, uint8(0x01), rec.StatusFlags)
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", rec.DeviceID)
	assert.Equal(t, uint16(0x000A), rec.AccessoryCategoryID)
	assert.Equal(t, uint16(0x1234), rec.GlobalStateNumber)
	assert.Equal(t, uint8(0x03), rec.ConfigurationNumber)
	assert.Equal(t, uint8(0x02), rec.CompatibilityVersion)
	assert.Nil(t, rec.SetupHash)
	assert.Same(t, periph, rec.Peripheral)
}

func TestDecodeLittleEndianFields(t *testing.T) {
	data := hapPayload(testDeviceID, 0)
	data[11], data[12] = 0x34, 0x12 // ACID
	data[13], data[14] = 0xFE, 0xCA // GSN

	rec, ok := discovery.Decode("Lamp", data, nil)
	require.True(t, ok)
	assert.Equal(t, uint16(0x1234), rec.AccessoryCategoryID)
	assert.Equal(t, uint16(0xCAFE), rec.GlobalStateNumber)
}

func TestDecodeSetupHash(t *testing.T) {
	data := append(hapPayload(testDeviceID, 1), 0xDE, 0xAD, 0xBE, 0xEF)

	rec, ok := discovery.Decode("Lock", data, nil)
	require.True(t, ok)
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, rec.SetupHash)

	// The record must not alias the caller's buffer.
	data[17] = 0x00
	assert.Equal(t, byte(0xDE), rec.SetupHash[0])
}

func TestDecodeIgnoresPartialSetupHash(t *testing.T) {
	data := append(hapPayload(testDeviceID, 1), 0xDE, 0xAD)

	rec, ok := discovery.Decode("Lock", data, nil)
	require.True(t, ok)
	assert.Nil(t, rec.SetupHash)
}

func TestDecodeRejectsShortPayloads(t *testing.T) {
	full := hapPayload(testDeviceID, 1)
	for n := 0; n < discovery.MinManufacturerDataLen; n++ {
		assert.NotPanics(t, func() {
			rec, ok := discovery.Decode("Sensor", full[:n], nil)
			assert.False(t, ok, "length %d", n)
			assert.Nil(t, rec)
		})
	}

	_, err := discovery.Parse("Sensor", nil, nil)
	assert.ErrorIs(t, err, discovery.ErrShortPayload)
}

func TestDecodeRejectsMissingName(t *testing.T) {
	_, err := discovery.Parse("", hapPayload(testDeviceID, 1), nil)
	assert.ErrorIs(t, err, discovery.ErrNoLocalName)

	// Name is checked before the payload.
	_, err = discovery.Parse("", nil, nil)
	assert.ErrorIs(t, err, discovery.ErrNoLocalName)
}

func TestDecodeRejectsWrongHeader(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]byte)
		want   error
	}{
		{
			name:   "company ID",
			mutate: func(b []byte) { b[0] = 0x4D },
			want:   discovery.ErrCompanyID,
		},
		{
			name:   "company ID byte order",
			mutate: func(b []byte) { b[0], b[1] = 0x00, 0x4C },
			want:   discovery.ErrCompanyID,
		},
		{
			name:   "type",
			mutate: func(b []byte) { b[2] = 0x07 },
			want:   discovery.ErrAdvertisementType,
		},
		{
			name:   "compatible version",
			mutate: func(b []byte) { b[16] = 0x01 },
			want:   discovery.ErrCompatibilityVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := hapPayload(testDeviceID, 1)
			tt.mutate(data)

			rec, err := discovery.Parse("Fan", data, nil)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, rec)

			_, ok := discovery.Decode("Fan", data, nil)
			assert.False(t, ok)
		})
	}
}

func TestFormatDeviceID(t *testing.T) {
	assert.Equal(t, "00:01:0a:ff:10:7f", discovery.FormatDeviceID([]byte{0x00, 0x01, 0x0A, 0xFF, 0x10, 0x7F}))
	assert.Equal(t, "", discovery.FormatDeviceID(nil))
}

func TestServiceRecordHelpers(t *testing.T) {
	rec, ok := discovery.Decode("Eve Motion", hapPayload(testDeviceID, 7), nil)
	require.True(t, ok)

	assert.Equal(t, discovery.CategorySensor, rec.Category())
	assert.Equal(t, "SENSOR", rec.Category().String())
	assert.False(t, rec.Flags().Paired())

	// AIL 0x2D = 001 01101
	assert.Equal(t, uint8(1), rec.AdvertisingInterval())
	assert.Equal(t, uint8(13), rec.AdvertisingLength())

	assert.Contains(t, rec.String(), "aa:bb:cc:dd:ee:ff")
	assert.Contains(t, rec.String(), "gsn=7")
}

func TestAccessoryCategoryUnknown(t *testing.T) {
	assert.Equal(t, "UNKNOWN", discovery.AccessoryCategory(0).String())
	assert.Equal(t, "BRIDGE", discovery.CategoryBridge.String())
}

func TestStatusFlagsPaired(t *testing.T) {
	assert.True(t, discovery.StatusFlags(0x00).Paired())
	assert.False(t, discovery.StatusFlags(0x01).Paired())
	assert.True(t, discovery.StatusFlags(0x02).Paired())
}
