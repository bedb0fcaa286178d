package log

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeEvents(t *testing.T, events ...Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.hlog")
	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return path
}

func TestReaderIteratesEvents(t *testing.T) {
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	path := writeEvents(t,
		Event{Timestamp: base, SessionID: "s1", Category: CategoryState},
		Event{Timestamp: base.Add(time.Second), SessionID: "s1", Category: CategoryCommand},
	)

	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()

	first, err := r.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if first.Category != CategoryState {
		t.Errorf("first Category: got %v", first.Category)
	}
	if _, err := r.Next(); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestReaderEmptyFile(t *testing.T) {
	path := writeEvents(t)

	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()

	events, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events, want 0", len(events))
	}
}

func TestReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "nope.hlog")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReaderTruncatedFile(t *testing.T) {
	path := writeEvents(t,
		Event{Timestamp: time.Now(), SessionID: "s1"},
		Event{Timestamp: time.Now(), SessionID: "s2"},
	)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data[:len(data)-3], 0644); err != nil {
		t.Fatal(err)
	}

	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()

	events, err := r.ReadAll()
	if err == nil {
		t.Fatal("expected error for truncated event")
	}
	if len(events) != 1 {
		t.Errorf("got %d complete events, want 1", len(events))
	}
}

func TestFilteredReader(t *testing.T) {
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	path := writeEvents(t,
		Event{Timestamp: base, SessionID: "s1", Layer: LayerRadio, Category: CategoryState},
		Event{Timestamp: base.Add(time.Second), SessionID: "s1", Layer: LayerDecoder, Category: CategoryAdvertisement, DeviceID: "aa:bb:cc:dd:ee:ff"},
		Event{Timestamp: base.Add(2 * time.Second), SessionID: "s2", Layer: LayerController, Category: CategoryService, DeviceID: "aa:bb:cc:dd:ee:ff"},
	)

	layer := LayerDecoder
	category := CategoryService
	end := base.Add(2 * time.Second)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"no filter", Filter{}, 3},
		{"session", Filter{SessionID: "s1"}, 2},
		{"layer", Filter{Layer: &layer}, 1},
		{"category", Filter{Category: &category}, 1},
		{"device", Filter{DeviceID: "aa:bb:cc:dd:ee:ff"}, 2},
		{"time end exclusive", Filter{TimeEnd: &end}, 2},
		{"time start inclusive", Filter{TimeStart: &end}, 1},
		{"adapter", Filter{Adapter: "hci9"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewFilteredReader(path, tt.filter)
			if err != nil {
				t.Fatalf("NewFilteredReader failed: %v", err)
			}
			defer r.Close()

			events, err := r.ReadAll()
			if err != nil {
				t.Fatalf("ReadAll failed: %v", err)
			}
			if len(events) != tt.want {
				t.Errorf("got %d events, want %d", len(events), tt.want)
			}
		})
	}
}
