package log

import "testing"

func TestMultiLoggerFansOut(t *testing.T) {
	a := &recordingLogger{}
	b := &recordingLogger{}
	m := NewMultiLogger(a, nil, b)

	if m.Len() != 2 {
		t.Errorf("Len: got %d, want 2 (nil dropped)", m.Len())
	}

	m.Log(Event{SessionID: "x"})
	m.Log(Event{SessionID: "y"})

	if len(a.all()) != 2 || len(b.all()) != 2 {
		t.Errorf("each logger should see 2 events, got %d and %d", len(a.all()), len(b.all()))
	}
}

func TestMultiLoggerEmpty(t *testing.T) {
	m := NewMultiLogger()
	m.Log(Event{}) // must not panic
	if m.Len() != 0 {
		t.Errorf("Len: got %d, want 0", m.Len())
	}
}
