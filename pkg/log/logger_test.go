package log

import (
	"sync"
	"testing"
	"time"
)

type recordingLogger struct {
	mu     sync.Mutex
	events []Event
}

func (r *recordingLogger) Log(event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingLogger) all() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NoopLogger{}
	l.Log(Event{}) // must not panic
}

func TestSessionStampsEvents(t *testing.T) {
	rec := &recordingLogger{}
	s := NewSession(rec, "hci0")
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	s.Log(Event{Category: CategoryState})

	events := rec.all()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	e := events[0]
	if e.SessionID != s.ID() {
		t.Errorf("SessionID: got %q, want %q", e.SessionID, s.ID())
	}
	if e.Adapter != "hci0" {
		t.Errorf("Adapter: got %q, want hci0", e.Adapter)
	}
	if !e.Timestamp.Equal(fixed) {
		t.Errorf("Timestamp: got %v, want %v", e.Timestamp, fixed)
	}
}

func TestSessionKeepsExplicitFields(t *testing.T) {
	rec := &recordingLogger{}
	s := NewSession(rec, "hci0")
	ts := time.Unix(100, 0)

	s.Log(Event{Timestamp: ts, SessionID: "other", Adapter: "hci1"})

	e := rec.all()[0]
	if !e.Timestamp.Equal(ts) || e.SessionID != "other" || e.Adapter != "hci1" {
		t.Errorf("explicit fields overwritten: %+v", e)
	}
}

func TestSessionIDsAreUnique(t *testing.T) {
	a := NewSession(nil, "")
	b := NewSession(nil, "")
	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("expected distinct non-empty IDs, got %q and %q", a.ID(), b.ID())
	}
	a.Log(Event{}) // nil logger discards
}
