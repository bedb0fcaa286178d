package bluez

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/hapkit/hapkit-go/pkg/log"
)

// ErrInvalidAdapter is returned for an empty or malformed adapter name.
var ErrInvalidAdapter = errors.New("bluez: invalid adapter name")

// ErrClosed is returned when using a closed radio.
var ErrClosed = errors.New("bluez: radio closed")

// Config configures a Radio.
type Config struct {
	// Adapter is the BlueZ adapter name, e.g. "hci0".
	Adapter string

	// Logger is the optional logger for debug output.
	// If nil, logging is disabled.
	Logger *slog.Logger

	// EventLogger receives radio errors as discovery events.
	// If nil, events are discarded.
	EventLogger log.Logger
}

// DefaultConfig returns a Config for the first adapter.
func DefaultConfig() Config {
	return Config{
		Adapter: "hci0",
	}
}

// Validate checks if the config is valid.
func (c *Config) Validate() error {
	if c.Adapter == "" || strings.ContainsAny(c.Adapter, "/ ") {
		return ErrInvalidAdapter
	}
	return nil
}
