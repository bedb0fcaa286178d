package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/hapkit/hapkit-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents       int
	EventsByLayer     map[log.Layer]int
	EventsByCategory  map[log.Category]int
	EventsByDirection map[log.Direction]int
	Sessions          map[string]*SessionStats
	Devices           map[string]*DeviceStats
	Rejected          int
	Errors            int
	TimeRange         struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for a single scan session.
type SessionStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Adapter   string
}

// DeviceStats holds statistics for a single accessory.
type DeviceStats struct {
	Name          string
	Sightings     int
	Notifications int
	GSNChanges    int
	LastGSN       uint16
}

// collectStats reads every event from r.
func collectStats(r *log.Reader) (*Stats, error) {
	stats := &Stats{
		EventsByLayer:     make(map[log.Layer]int),
		EventsByCategory:  make(map[log.Category]int),
		EventsByDirection: make(map[log.Direction]int),
		Sessions:          make(map[string]*SessionStats),
		Devices:           make(map[string]*DeviceStats),
	}

	for {
		event, err := r.Next()
		if err == io.EOF {
			return stats, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByLayer[event.Layer]++
		stats.EventsByCategory[event.Category]++
		stats.EventsByDirection[event.Direction]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		sess, ok := stats.Sessions[event.SessionID]
		if !ok {
			sess = &SessionStats{
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
				Adapter:   event.Adapter,
			}
			stats.Sessions[event.SessionID] = sess
		}
		sess.Events++
		if event.Timestamp.After(sess.LastSeen) {
			sess.LastSeen = event.Timestamp
		}

		if event.Advertisement != nil && !event.Advertisement.Accepted {
			stats.Rejected++
		}
		if event.Error != nil {
			stats.Errors++
		}

		if svc := event.Service; svc != nil && event.DeviceID != "" {
			dev, ok := stats.Devices[event.DeviceID]
			if !ok {
				dev = &DeviceStats{}
				stats.Devices[event.DeviceID] = dev
			}
			dev.Name = svc.Name
			dev.Sightings++
			if svc.Notified {
				dev.Notifications++
			}
			if svc.PreviousGSN != nil && *svc.PreviousGSN != svc.GlobalStateNumber {
				dev.GSNChanges++
			}
			dev.LastGSN = svc.GlobalStateNumber
		}
	}
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats, err := collectStats(reader)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== HAP Discovery Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Layer:")
	for _, layer := range []log.Layer{log.LayerRadio, log.LayerDecoder, log.LayerController} {
		if count := stats.EventsByLayer[layer]; count > 0 {
			fmt.Fprintf(w, "  %-15s %d\n", layer.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryAdvertisement, log.CategoryCommand, log.CategoryState, log.CategoryService, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-15s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	ids := make([]string, 0, len(stats.Sessions))
	for id := range stats.Sessions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return stats.Sessions[ids[i]].FirstSeen.Before(stats.Sessions[ids[j]].FirstSeen)
	})
	for _, id := range ids {
		s := stats.Sessions[id]
		fmt.Fprintf(w, "  [%s] %d events, duration %s", shortenID(id), s.Events,
			s.LastSeen.Sub(s.FirstSeen).Round(time.Millisecond))
		if s.Adapter != "" {
			fmt.Fprintf(w, ", adapter %s", s.Adapter)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Accessories: %d\n", len(stats.Devices))
	devices := make([]string, 0, len(stats.Devices))
	for id := range stats.Devices {
		devices = append(devices, id)
	}
	sort.Strings(devices)
	for _, id := range devices {
		d := stats.Devices[id]
		fmt.Fprintf(w, "  %s %q: %d sightings, %d notified, %d GSN changes (last %d)\n",
			id, d.Name, d.Sightings, d.Notifications, d.GSNChanges, d.LastGSN)
	}

	if stats.Rejected > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Rejected advertisements: %d\n", stats.Rejected)
	}
	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
