package log

import (
	"time"

	"github.com/google/uuid"
)

// Logger is the interface applications implement to receive discovery events.
// Pass nil or NoopLogger to disable logging.
type Logger interface {
	// Log records an event. Implementations must be thread-safe and must not
	// block; Log is called from the radio event path.
	Log(event Event)
}

// NoopLogger discards all events. Use when logging is disabled.
// NoopLogger is safe for concurrent use and usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// Session stamps events with a scan session ID, the adapter name and a
// timestamp before handing them to a Logger.
type Session struct {
	logger  Logger
	id      string
	adapter string
	now     func() time.Time
}

// NewSession starts a session with a fresh random ID. A nil logger yields a
// session that discards events.
func NewSession(logger Logger, adapter string) *Session {
	if logger == nil {
		logger = NoopLogger{}
	}
	return &Session{
		logger:  logger,
		id:      uuid.NewString(),
		adapter: adapter,
		now:     time.Now,
	}
}

// ID returns the session ID.
func (s *Session) ID() string {
	return s.id
}

// Log fills in Timestamp, SessionID and Adapter where unset and forwards the
// event.
func (s *Session) Log(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	if event.SessionID == "" {
		event.SessionID = s.id
	}
	if event.Adapter == "" {
		event.Adapter = s.adapter
	}
	s.logger.Log(event)
}

// Compile-time interface satisfaction checks.
var (
	_ Logger = NoopLogger{}
	_ Logger = (*Session)(nil)
)
