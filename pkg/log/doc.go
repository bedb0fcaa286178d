// Package log provides structured event capture for HAP discovery.
//
// This package defines the Logger interface and Event types for recording
// what the discovery stack saw and did: advertisements received from the
// radio, scan commands issued to it, adapter and scan state changes, and
// services announced to the application. It is separate from operational
// logging (slog); the event trace is machine-readable and meant for
// offline analysis with hapkit-log.
//
// # Basic Usage
//
//	// For development: log to console via slog
//	cfg.EventLogger = log.NewSlogAdapter(slog.Default())
//
//	// For field captures: write to binary file
//	cfg.EventLogger, _ = log.NewFileLogger("/var/log/hapkit/scan.hlog")
//
//	// Both
//	cfg.EventLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
// Events are captured at three layers:
//   - Radio: raw advertisements and radio state reports (AdvertisementEvent,
//     StateChangeEvent)
//   - Decoder: accepted and rejected advertisements (AdvertisementEvent)
//   - Controller: scan commands (CommandEvent) and announced services
//     (ServiceEvent)
//
// # File Format
//
// Log files are a stream of CBOR-encoded events with the .hlog extension.
package log
