// Package commands implements the hapkit-log CLI commands.
package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/hapkit/hapkit-go/pkg/discovery"
	"github.com/hapkit/hapkit-go/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Layer     *log.Layer
	Direction *log.Direction
	Category  *log.Category
	DeviceID  string
}

func (f ViewFilter) logFilter() log.Filter {
	return log.Filter{
		Layer:     f.Layer,
		Direction: f.Direction,
		Category:  f.Category,
		DeviceID:  strings.ToLower(f.DeviceID),
	}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [session] DIRECTION LAYER Type device
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	session := shortenID(event.SessionID)

	fmt.Fprintf(w, "%s [%s] %-3s %s %s", ts, session, event.Direction.String(), event.Layer.String(), eventLabel(event))
	if event.DeviceID != "" {
		fmt.Fprintf(w, " %s", event.DeviceID)
	}
	fmt.Fprintln(w)

	switch {
	case event.Advertisement != nil:
		formatAdvertisementDetails(w, event.Advertisement)
	case event.Command != nil:
		formatCommandDetails(w, event.Command)
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.Service != nil:
		formatServiceDetails(w, event.Service)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w)
}

// eventLabel names the event payload.
func eventLabel(event log.Event) string {
	switch {
	case event.Advertisement != nil:
		if event.Advertisement.Accepted {
			return "Advertisement"
		}
		return "Advertisement (rejected)"
	case event.Command != nil:
		return event.Command.Type.String()
	case event.StateChange != nil:
		return "State"
	case event.Service != nil:
		return "Service"
	case event.Error != nil:
		return "Error"
	default:
		return "Unknown"
	}
}

// shortenID returns the first 8 characters of a session ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatAdvertisementDetails(w io.Writer, adv *log.AdvertisementEvent) {
	if adv.LocalName != "" {
		fmt.Fprintf(w, "  Name: %q\n", adv.LocalName)
	}
	if len(adv.Data) > 0 {
		fmt.Fprintf(w, "  Data: %s (%d bytes)\n", hex.EncodeToString(adv.Data), len(adv.Data))
	}
	if adv.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", adv.Reason)
	}
}

func formatCommandDetails(w io.Writer, cmd *log.CommandEvent) {
	if cmd.Type == log.CommandStartScan {
		fmt.Fprintf(w, "  Duplicates: %t\n", cmd.AllowDuplicates)
		if len(cmd.ServiceUUIDs) > 0 {
			fmt.Fprintf(w, "  UUIDs: %s\n", strings.Join(cmd.ServiceUUIDs, ", "))
		}
	}
	if cmd.Trigger != "" {
		fmt.Fprintf(w, "  Trigger: %s\n", cmd.Trigger)
	}
}

func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	fmt.Fprintf(w, "  Entity: %s\n", sc.Entity.String())
	if sc.OldState != "" {
		fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
	} else {
		fmt.Fprintf(w, "  -> %s\n", sc.NewState)
	}
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
}

func formatServiceDetails(w io.Writer, svc *log.ServiceEvent) {
	fmt.Fprintf(w, "  Name: %q  Category: %s\n", svc.Name, discovery.AccessoryCategory(svc.Category))
	if svc.PreviousGSN != nil && *svc.PreviousGSN != svc.GlobalStateNumber {
		fmt.Fprintf(w, "  GSN: %d -> %d", *svc.PreviousGSN, svc.GlobalStateNumber)
	} else {
		fmt.Fprintf(w, "  GSN: %d", svc.GlobalStateNumber)
	}
	fmt.Fprintf(w, "  CN: %d  Paired: %t\n", svc.ConfigurationNumber, discovery.StatusFlags(svc.StatusFlags).Paired())
	fmt.Fprintf(w, "  Notified: %t\n", svc.Notified)
}

func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Layer: %s\n", err.Layer.String())
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// ParseLayerFlag parses a layer string from command-line flag (case-insensitive).
func ParseLayerFlag(s string) (log.Layer, error) {
	switch strings.ToLower(s) {
	case "radio":
		return log.LayerRadio, nil
	case "decoder":
		return log.LayerDecoder, nil
	case "controller":
		return log.LayerController, nil
	default:
		return 0, fmt.Errorf("invalid layer: %s (must be radio, decoder, or controller)", s)
	}
}

// ParseDirectionFlag parses a direction string from command-line flag (case-insensitive).
func ParseDirectionFlag(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "advertisement", "adv":
		return log.CategoryAdvertisement, nil
	case "command":
		return log.CategoryCommand, nil
	case "state":
		return log.CategoryState, nil
	case "error":
		return log.CategoryError, nil
	case "service":
		return log.CategoryService, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be advertisement, command, state, error, or service)", s)
	}
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter.logFilter())
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}
}
