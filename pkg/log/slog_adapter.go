package log

import (
	"context"
	"encoding/hex"
	"log/slog"
)

// SlogAdapter writes discovery events to an slog.Logger at Debug level.
// Useful during development to watch the event trace on the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("direction", event.Direction.String()),
		slog.String("layer", event.Layer.String()),
		slog.String("category", event.Category.String()),
	}

	if event.Adapter != "" {
		attrs = append(attrs, slog.String("adapter", event.Adapter))
	}
	if event.DeviceID != "" {
		attrs = append(attrs, slog.String("device_id", event.DeviceID))
	}

	switch {
	case event.Advertisement != nil:
		adv := event.Advertisement
		attrs = append(attrs,
			slog.String("local_name", adv.LocalName),
			slog.String("data", hex.EncodeToString(adv.Data)),
			slog.Bool("accepted", adv.Accepted),
		)
		if adv.Reason != "" {
			attrs = append(attrs, slog.String("reason", adv.Reason))
		}
	case event.Command != nil:
		attrs = append(attrs,
			slog.String("command", event.Command.Type.String()),
			slog.Bool("allow_duplicates", event.Command.AllowDuplicates),
		)
		if event.Command.Trigger != "" {
			attrs = append(attrs, slog.String("trigger", event.Command.Trigger))
		}
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("entity", event.StateChange.Entity.String()),
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Service != nil:
		svc := event.Service
		attrs = append(attrs,
			slog.String("name", svc.Name),
			slog.Uint64("gsn", uint64(svc.GlobalStateNumber)),
			slog.Uint64("cn", uint64(svc.ConfigurationNumber)),
			slog.Bool("notified", svc.Notified),
		)
		if svc.PreviousGSN != nil {
			attrs = append(attrs, slog.Uint64("previous_gsn", uint64(*svc.PreviousGSN)))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_layer", event.Error.Layer.String()),
			slog.String("error_msg", event.Error.Message),
			slog.String("error_context", event.Error.Context),
		)
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "discovery", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
