package log

import "testing"

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{DirectionIn.String(), "IN"},
		{DirectionOut.String(), "OUT"},
		{Direction(9).String(), "UNKNOWN"},
		{LayerRadio.String(), "RADIO"},
		{LayerDecoder.String(), "DECODER"},
		{LayerController.String(), "CONTROLLER"},
		{CategoryAdvertisement.String(), "ADVERTISEMENT"},
		{CategoryCommand.String(), "COMMAND"},
		{CategoryState.String(), "STATE"},
		{CategoryError.String(), "ERROR"},
		{CategoryService.String(), "SERVICE"},
		{CommandStartScan.String(), "START_SCAN"},
		{CommandStopScan.String(), "STOP_SCAN"},
		{StateEntityAdapter.String(), "ADAPTER"},
		{StateEntityScan.String(), "SCAN"},
		{StateEntityController.String(), "CONTROLLER"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
