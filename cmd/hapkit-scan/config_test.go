package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig(nil, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "hci0", cfg.Adapter)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Duplicates)
	assert.False(t, cfg.IP)
	assert.Empty(t, cfg.ProtocolLog)
}

func TestParseConfigFlags(t *testing.T) {
	cfg, err := parseConfig([]string{"-adapter", "hci1", "-duplicates", "-ip", "-log-level", "debug"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "hci1", cfg.Adapter)
	assert.True(t, cfg.Duplicates)
	assert.True(t, cfg.IP)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseConfigFile(t *testing.T) {
	path := writeConfig(t, `
adapter: hci2
duplicates: true
log_level: warn
protocol_log: /tmp/scan.hlog
record_rejected: true
service_uuids:
  - "0000fed4-0000-1000-8000-00805f9b34fb"
ip: true
interface: eth0
`)

	cfg, err := parseConfig([]string{"-config", path}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "hci2", cfg.Adapter)
	assert.True(t, cfg.Duplicates)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "/tmp/scan.hlog", cfg.ProtocolLog)
	assert.True(t, cfg.RecordRejected)
	assert.Equal(t, []string{"0000fed4-0000-1000-8000-00805f9b34fb"}, cfg.ServiceUUIDs)
	assert.True(t, cfg.IP)
	assert.Equal(t, "eth0", cfg.Interface)
}

func TestParseConfigFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "adapter: hci2\nduplicates: true\nlog_level: warn\n")

	cfg, err := parseConfig([]string{"-config", path, "-adapter", "hci0", "-duplicates=false"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "hci0", cfg.Adapter)
	assert.False(t, cfg.Duplicates)
	assert.Equal(t, "warn", cfg.LogLevel, "unset flag takes the file value")
}

func TestParseConfigFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "ip: true\n")

	cfg, err := parseConfig([]string{"-config", path}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "hci0", cfg.Adapter)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.IP)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args func(t *testing.T) []string
	}{
		{"unknown flag", func(*testing.T) []string { return []string{"-bogus"} }},
		{"bad log level", func(*testing.T) []string { return []string{"-log-level", "loud"} }},
		{"empty adapter", func(*testing.T) []string { return []string{"-adapter", ""} }},
		{"missing file", func(t *testing.T) []string {
			return []string{"-config", filepath.Join(t.TempDir(), "none.yaml")}
		}},
		{"bad yaml", func(t *testing.T) []string {
			return []string{"-config", writeConfig(t, "adapter: [unterminated\n")}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseConfig(tt.args(t), io.Discard)
			if err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := parseLevel(in)
		require.NoError(t, err, in)
		if got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
