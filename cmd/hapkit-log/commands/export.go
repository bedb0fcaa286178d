package commands

import (
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/hapkit/hapkit-go/pkg/log"
)

// RunExport exports the log file to the specified format.
func RunExport(path, format, output string) error {
	if format != "jsonl" && format != "csv" {
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}

	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if format == "csv" {
		return exportCSV(reader, w)
	}
	return exportJSONL(reader, w)
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
}

var csvHeader = []string{"timestamp", "session_id", "adapter", "direction", "layer", "category", "device_id", "type", "name", "gsn", "detail"}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := cw.Write(csvRow(event)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return cw.Error()
}

func csvRow(event log.Event) []string {
	var eventType, name, gsn, detail string
	switch {
	case event.Advertisement != nil:
		eventType = "advertisement"
		name = event.Advertisement.LocalName
		detail = hex.EncodeToString(event.Advertisement.Data)
		if !event.Advertisement.Accepted {
			eventType = "rejected"
			detail = event.Advertisement.Reason
		}
	case event.Command != nil:
		eventType = event.Command.Type.String()
		detail = event.Command.Trigger
	case event.StateChange != nil:
		eventType = "state"
		detail = event.StateChange.OldState + " -> " + event.StateChange.NewState
	case event.Service != nil:
		eventType = "service"
		name = event.Service.Name
		gsn = strconv.FormatUint(uint64(event.Service.GlobalStateNumber), 10)
		detail = "notified=" + strconv.FormatBool(event.Service.Notified)
	case event.Error != nil:
		eventType = "error"
		detail = event.Error.Message
	default:
		eventType = "unknown"
	}

	return []string{
		event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
		event.SessionID,
		event.Adapter,
		event.Direction.String(),
		event.Layer.String(),
		event.Category.String(),
		event.DeviceID,
		eventType,
		name,
		gsn,
		detail,
	}
}
