package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hapkit/hapkit-go/pkg/log"
)

// FilterOptions holds the flags of the filter command.
type FilterOptions struct {
	Output    string
	SessionID string
	DeviceID  string
	Adapter   string
	TimeStart string
	TimeEnd   string
	Layer     string
	Direction string
	Category  string
}

// buildFilter converts FilterOptions to a log.Filter.
func buildFilter(opts FilterOptions) (log.Filter, error) {
	f := log.Filter{
		SessionID: opts.SessionID,
		DeviceID:  strings.ToLower(opts.DeviceID),
		Adapter:   opts.Adapter,
	}

	if opts.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeStart)
		if err != nil {
			return f, fmt.Errorf("invalid time-start: %w", err)
		}
		f.TimeStart = &t
	}
	if opts.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeEnd)
		if err != nil {
			return f, fmt.Errorf("invalid time-end: %w", err)
		}
		f.TimeEnd = &t
	}
	if opts.Layer != "" {
		l, err := ParseLayerFlag(opts.Layer)
		if err != nil {
			return f, err
		}
		f.Layer = &l
	}
	if opts.Direction != "" {
		d, err := ParseDirectionFlag(opts.Direction)
		if err != nil {
			return f, err
		}
		f.Direction = &d
	}
	if opts.Category != "" {
		c, err := ParseCategoryFlag(opts.Category)
		if err != nil {
			return f, err
		}
		f.Category = &c
	}
	return f, nil
}

// RunFilter copies the events of path matching opts into opts.Output.
func RunFilter(path string, opts FilterOptions) error {
	if opts.Output == "" {
		return fmt.Errorf("output file required")
	}
	filter, err := buildFilter(opts)
	if err != nil {
		return err
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	out, err := log.NewFileLogger(opts.Output)
	if err != nil {
		return err
	}
	defer out.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		out.Log(event)
	}
	if n := out.Dropped(); n > 0 {
		return fmt.Errorf("failed to write %d events", n)
	}
	return out.Close()
}
