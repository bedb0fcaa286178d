package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/hapkit/hapkit-go/pkg/log"
)

var baseTime = time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)

func sampleEvents() []log.Event {
	prev := uint16(4)
	return []log.Event{
		{
			Timestamp: baseTime,
			SessionID: "0f1e2d3c-4b5a-6978-8796-a5b4c3d2e1f0",
			Adapter:   "hci0",
			Direction: log.DirectionOut,
			Layer:     log.LayerController,
			Category:  log.CategoryCommand,
			Command:   &log.CommandEvent{Type: log.CommandStartScan, AllowDuplicates: true, Trigger: "START"},
		},
		{
			Timestamp: baseTime.Add(time.Second),
			SessionID: "0f1e2d3c-4b5a-6978-8796-a5b4c3d2e1f0",
			Adapter:   "hci0",
			Direction: log.DirectionIn,
			Layer:     log.LayerDecoder,
			Category:  log.CategoryAdvertisement,
			DeviceID:  "aa:bb:cc:dd:ee:ff",
			Advertisement: &log.AdvertisementEvent{
				LocalName: "Eve Door",
				Data:      []byte{0x4C, 0x00, 0x06},
				Accepted:  true,
			},
		},
		{
			Timestamp: baseTime.Add(2 * time.Second),
			SessionID: "0f1e2d3c-4b5a-6978-8796-a5b4c3d2e1f0",
			Adapter:   "hci0",
			Direction: log.DirectionOut,
			Layer:     log.LayerController,
			Category:  log.CategoryService,
			DeviceID:  "aa:bb:cc:dd:ee:ff",
			Service: &log.ServiceEvent{
				Name:              "Eve Door",
				Category:          10,
				GlobalStateNumber: 5,
				PreviousGSN:       &prev,
				StatusFlags:       1,
				Notified:          true,
			},
		},
		{
			Timestamp:     baseTime.Add(3 * time.Second),
			SessionID:     "0f1e2d3c-4b5a-6978-8796-a5b4c3d2e1f0",
			Adapter:       "hci0",
			Direction:     log.DirectionIn,
			Layer:         log.LayerDecoder,
			Category:      log.CategoryAdvertisement,
			Advertisement: &log.AdvertisementEvent{LocalName: "Tag", Reason: "unsupported compatible version"},
		},
		{
			Timestamp: baseTime.Add(4 * time.Second),
			SessionID: "0f1e2d3c-4b5a-6978-8796-a5b4c3d2e1f0",
			Adapter:   "hci0",
			Direction: log.DirectionIn,
			Layer:     log.LayerRadio,
			Category:  log.CategoryError,
			Error:     &log.ErrorEventData{Layer: log.LayerRadio, Message: "org.bluez.Error.NotReady", Context: "start discovery"},
		},
	}
}

func writeLog(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scan"+log.FileExtension)
	l, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	for _, e := range events {
		l.Log(e)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return path
}
