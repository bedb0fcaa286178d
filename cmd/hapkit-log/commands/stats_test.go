package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hapkit/hapkit-go/pkg/log"
)

func TestCollectStats(t *testing.T) {
	path := writeLog(t, sampleEvents())
	r, err := log.NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()

	stats, err := collectStats(r)
	if err != nil {
		t.Fatalf("collectStats failed: %v", err)
	}

	if stats.TotalEvents != 5 {
		t.Errorf("TotalEvents: got %d, want 5", stats.TotalEvents)
	}
	if stats.Rejected != 1 {
		t.Errorf("Rejected: got %d, want 1", stats.Rejected)
	}
	if stats.Errors != 1 {
		t.Errorf("Errors: got %d, want 1", stats.Errors)
	}
	if len(stats.Sessions) != 1 {
		t.Errorf("Sessions: got %d, want 1", len(stats.Sessions))
	}

	dev := stats.Devices["aa:bb:cc:dd:ee:ff"]
	if dev == nil {
		t.Fatal("missing device stats")
	}
	if dev.Sightings != 1 || dev.Notifications != 1 || dev.GSNChanges != 1 || dev.LastGSN != 5 {
		t.Errorf("unexpected device stats: %+v", dev)
	}
}

func TestRunStatsOutput(t *testing.T) {
	path := writeLog(t, sampleEvents())

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"Total Events: 5",
		"Duration:   4s",
		"DECODER:",
		"Sessions: 1",
		"adapter hci0",
		`aa:bb:cc:dd:ee:ff "Eve Door": 1 sightings, 1 notified, 1 GSN changes (last 5)`,
		"Rejected advertisements: 1",
		"Errors: 1",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestRunStatsEmpty(t *testing.T) {
	path := writeLog(t, nil)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Total Events: 0") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}
