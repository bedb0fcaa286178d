// Command hapkit-scan discovers HomeKit accessories over Bluetooth LE and,
// optionally, over IP.
//
// Usage:
//
//	hapkit-scan [flags]
//
// Flags:
//
//	-config string         Configuration file path (YAML)
//	-adapter string        BlueZ adapter name (default "hci0")
//	-duplicates            Report every advertisement, not just first sightings
//	-log-level string      Log level: debug, info, warn, error (default "info")
//	-protocol-log string   File path for discovery event logging (CBOR format)
//	-record-rejected       Log rejected Apple advertisements to the protocol log
//	-ip                    Also browse for HAP accessories over mDNS
//	-interface string      Network interface for mDNS browsing
//	-interactive           Enable interactive command mode
//
// Examples:
//
//	# Print each accessory once
//	hapkit-scan
//
//	# Follow state changes, record a log for hapkit-log
//	hapkit-scan -duplicates -protocol-log scan.hlog
//
// Interactive Commands:
//
//	list          - List discovered accessories
//	ip            - List accessories found over IP
//	start [dup]   - Start scanning
//	stop          - Stop scanning
//	status        - Show scanner status
//	find <uri>    - Find the accessory for an X-HM:// setup URI
//	quit          - Exit
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"sync"
	"syscall"

	"github.com/hapkit/hapkit-go/cmd/hapkit-scan/interactive"
	"github.com/hapkit/hapkit-go/pkg/bluez"
	"github.com/hapkit/hapkit-go/pkg/discovery"
	"github.com/hapkit/hapkit-go/pkg/ipdiscovery"
	hlog "github.com/hapkit/hapkit-go/pkg/log"
)

func main() {
	config, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatalf("Invalid configuration: %v", err)
	}

	level, _ := parseLevel(config.LogLevel)
	setupLogging(level)

	log.Println("HAP Accessory Scanner")
	log.Println("=====================")
	log.Printf("Adapter: %s", config.Adapter)

	var shell *interactive.Shell
	var logOut io.Writer = os.Stderr
	if config.Interactive {
		shell, err = interactive.New()
		if err != nil {
			log.Fatalf("Failed to create interactive shell: %v", err)
		}
		logOut = shell.Stderr()
		log.SetOutput(shell.Stdout())
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	// Protocol logging
	var eventLoggers []hlog.Logger
	var protocolLogger *hlog.FileLogger
	if config.ProtocolLog != "" {
		protocolLogger, err = hlog.NewFileLogger(config.ProtocolLog)
		if err != nil {
			log.Fatalf("Failed to create protocol logger: %v", err)
		}
		eventLoggers = append(eventLoggers, protocolLogger)
		log.Printf("Protocol logging to: %s", config.ProtocolLog)
	}
	if level <= slog.LevelDebug {
		eventLoggers = append(eventLoggers, hlog.NewSlogAdapter(logger))
	}
	eventLogger := hlog.NewMultiLogger(eventLoggers...)

	radioCfg := bluez.DefaultConfig()
	radioCfg.Adapter = config.Adapter
	radioCfg.Logger = logger
	radioCfg.EventLogger = eventLogger
	radio, err := bluez.New(radioCfg)
	if err != nil {
		log.Fatalf("Failed to open Bluetooth adapter: %v", err)
	}

	ctrlCfg := discovery.DefaultControllerConfig()
	ctrlCfg.AdapterName = config.Adapter
	ctrlCfg.ServiceUUIDs = config.ServiceUUIDs
	ctrlCfg.RecordRejected = config.RecordRejected
	ctrlCfg.Logger = logger
	ctrlCfg.EventLogger = eventLogger
	ctrl, err := discovery.NewController(radio, ctrlCfg)
	if err != nil {
		log.Fatalf("Failed to create discovery controller: %v", err)
	}

	ctrl.OnServiceUp(func(rec *discovery.ServiceRecord) {
		log.Printf("[SERVICE UP] %s", rec)
	})
	ctrl.OnStateChange(func(old, cur discovery.State) {
		logger.Info("scanner state changed", "old", old.String(), "new", cur.String())
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ipServices := &ipTracker{services: make(map[string]*ipdiscovery.IPService)}
	if config.IP {
		if err := startIPBrowse(ctx, config, logger, ipServices); err != nil {
			log.Printf("Warning: IP browsing disabled: %v", err)
		}
	}

	ctrl.Start(config.Duplicates)
	log.Printf("Scanning (session %s, duplicates: %t)", ctrl.SessionID(), config.Duplicates)

	if shell != nil {
		shell.Attach(ctrl, ipServices.list)
		go shell.Run(ctx, cancel)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("Received signal: %v", sig)
	case <-ctx.Done():
	}

	log.Println("Shutting down...")
	cancel()
	ctrl.Stop()

	if err := radio.Close(); err != nil {
		log.Printf("Error closing adapter: %v", err)
	}
	if protocolLogger != nil {
		closeProtocolLog(protocolLogger)
	}

	log.Printf("Discovered %d accessories", len(ctrl.List()))
}

func setupLogging(level slog.Level) {
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	switch {
	case level <= slog.LevelDebug:
		log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)
	case level >= slog.LevelWarn:
		log.SetFlags(log.Ltime)
	}
}

// protocolLog is the part of the file logger shutdown needs.
type protocolLog interface {
	Dropped() int
	Close() error
}

// closeProtocolLog flushes and closes the protocol log, reporting lost events.
func closeProtocolLog(pl protocolLog) {
	if n := pl.Dropped(); n > 0 {
		log.Printf("Warning: %d protocol events could not be written", n)
	}
	if err := pl.Close(); err != nil {
		log.Printf("Error closing protocol log: %v", err)
	}
}

// ipTracker keeps the latest snapshot of each IP accessory.
type ipTracker struct {
	mu       sync.Mutex
	services map[string]*ipdiscovery.IPService
}

func (t *ipTracker) update(svc *ipdiscovery.IPService) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, known := t.services[svc.DeviceID]
	t.services[svc.DeviceID] = svc
	return !known
}

func (t *ipTracker) list() []*ipdiscovery.IPService {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*ipdiscovery.IPService, 0, len(t.services))
	for _, svc := range t.services {
		out = append(out, svc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DeviceID < out[j].DeviceID })
	return out
}

func startIPBrowse(ctx context.Context, config *Config, logger *slog.Logger, tracker *ipTracker) error {
	cfg := ipdiscovery.DefaultBrowserConfig()
	cfg.Interface = config.Interface
	cfg.Logger = logger

	browser, err := ipdiscovery.NewBrowser(cfg)
	if err != nil {
		return err
	}
	results, err := browser.Browse(ctx)
	if err != nil {
		return err
	}

	go func() {
		for svc := range results {
			if tracker.update(svc) {
				log.Printf("[IP SERVICE UP] %s at %v:%d", svc, svc.Addresses, svc.Port)
			} else {
				logger.Debug("IP accessory updated", "deviceID", svc.DeviceID, "s#", svc.StateNumber, "c#", svc.ConfigurationNumber)
			}
		}
	}()
	return nil
}
