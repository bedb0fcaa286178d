package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the scanner configuration.
type Config struct {
	ConfigFile     string   `yaml:"-"`
	Adapter        string   `yaml:"adapter"`
	Duplicates     bool     `yaml:"duplicates"`
	LogLevel       string   `yaml:"log_level"`
	ProtocolLog    string   `yaml:"protocol_log"`
	RecordRejected bool     `yaml:"record_rejected"`
	ServiceUUIDs   []string `yaml:"service_uuids"`
	IP             bool     `yaml:"ip"`
	Interface      string   `yaml:"interface"`
	Interactive    bool     `yaml:"interactive"`
}

func defaultConfig() Config {
	return Config{
		Adapter:  "hci0",
		LogLevel: "info",
	}
}

// parseConfig parses command-line args and merges the -config file.
// Flags given explicitly on the command line override file values.
func parseConfig(args []string, stderr io.Writer) (*Config, error) {
	cfg := defaultConfig()

	fs := flag.NewFlagSet("hapkit-scan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.ConfigFile, "config", "", "Configuration file path (YAML)")
	fs.StringVar(&cfg.Adapter, "adapter", cfg.Adapter, "BlueZ adapter name")
	fs.BoolVar(&cfg.Duplicates, "duplicates", cfg.Duplicates, "Report every advertisement, not just first sightings")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.ProtocolLog, "protocol-log", "", "File path for discovery event logging (CBOR format)")
	fs.BoolVar(&cfg.RecordRejected, "record-rejected", false, "Log rejected Apple advertisements to the protocol log")
	fs.BoolVar(&cfg.IP, "ip", false, "Also browse for HAP accessories over mDNS")
	fs.StringVar(&cfg.Interface, "interface", "", "Network interface for mDNS browsing (default: all)")
	fs.BoolVar(&cfg.Interactive, "interactive", false, "Enable interactive command mode")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ConfigFile == "" {
		return &cfg, cfg.validate()
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	file, err := loadConfigFile(cfg.ConfigFile)
	if err != nil {
		return nil, err
	}
	cfg.merge(file, set)
	return &cfg, cfg.validate()
}

// loadConfigFile reads a YAML config file on top of the defaults.
func loadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	file := defaultConfig()
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return file, nil
}

// merge copies file values for every option not set on the command line.
func (c *Config) merge(file Config, set map[string]bool) {
	if !set["adapter"] {
		c.Adapter = file.Adapter
	}
	if !set["duplicates"] {
		c.Duplicates = file.Duplicates
	}
	if !set["log-level"] {
		c.LogLevel = file.LogLevel
	}
	if !set["protocol-log"] {
		c.ProtocolLog = file.ProtocolLog
	}
	if !set["record-rejected"] {
		c.RecordRejected = file.RecordRejected
	}
	if !set["ip"] {
		c.IP = file.IP
	}
	if !set["interface"] {
		c.Interface = file.Interface
	}
	if !set["interactive"] {
		c.Interactive = file.Interactive
	}
	c.ServiceUUIDs = file.ServiceUUIDs
}

func (c *Config) validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Adapter == "" {
		return fmt.Errorf("adapter must not be empty")
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %s (use: debug, info, warn, error)", s)
	}
}
