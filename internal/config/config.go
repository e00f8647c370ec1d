package config

import (
	"fmt"
	"time"
)

const minPassphraseLen = 8

// Config holds server configuration values.
type Config struct {
	Addr            string        `mapstructure:"addr" yaml:"addr"`
	ReadWindow      time.Duration `mapstructure:"read_window" yaml:"read_window"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	MaxLineBytes    int           `mapstructure:"max_line_bytes" yaml:"max_line_bytes"`
	LogLevel        string        `mapstructure:"log_level" yaml:"log_level"`

	AccessPoint AccessPoint `mapstructure:"access_point" yaml:"access_point"`
	Emulator    Emulator    `mapstructure:"emulator" yaml:"emulator"`
	Announce    Announce    `mapstructure:"announce" yaml:"announce"`
}

// AccessPoint describes the wireless network the host is expected to expose.
// Bring-up is owned by the host OS; these values are advisory and only logged
// at startup, except for the passphrase length check.
type AccessPoint struct {
	SSID       string `mapstructure:"ssid" yaml:"ssid"`
	Passphrase string `mapstructure:"passphrase" yaml:"passphrase"`
}

// Emulator selects how keystrokes are injected into the host.
type Emulator struct {
	// Tool is the argv prefix of the key-injection tool, e.g. ["ydotool", "key"].
	Tool   []string `mapstructure:"tool" yaml:"tool"`
	DryRun bool     `mapstructure:"dry_run" yaml:"dry_run"`
}

// Announce configures optional MQTT telemetry for dispatched commands.
type Announce struct {
	Enabled  bool   `mapstructure:"enabled" yaml:"enabled"`
	Broker   string `mapstructure:"broker" yaml:"broker"`
	Topic    string `mapstructure:"topic" yaml:"topic"`
	ClientID string `mapstructure:"client_id" yaml:"client_id"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:            ":80",
		ReadWindow:      2 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		MaxLineBytes:    1024,
		LogLevel:        "info",
		Emulator: Emulator{
			Tool: []string{"ydotool", "key"},
		},
		Announce: Announce{
			Broker:   "tcp://127.0.0.1:1883",
			Topic:    "keydeck/commands",
			ClientID: "keydeck",
		},
	}
}

// UpdateFrom overwrites non-zero values from other config into receiver.
func (c *Config) UpdateFrom(other Config) {
	if other.Addr != "" {
		c.Addr = other.Addr
	}
	if other.ReadWindow != 0 {
		c.ReadWindow = other.ReadWindow
	}
	if other.ShutdownTimeout != 0 {
		c.ShutdownTimeout = other.ShutdownTimeout
	}
	if other.MaxLineBytes != 0 {
		c.MaxLineBytes = other.MaxLineBytes
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
}

// Validate rejects values the server cannot run with.
func (c Config) Validate() error {
	if c.ReadWindow <= 0 {
		return fmt.Errorf("read_window must be positive, got %s", c.ReadWindow)
	}
	if c.MaxLineBytes <= 0 {
		return fmt.Errorf("max_line_bytes must be positive, got %d", c.MaxLineBytes)
	}
	if p := c.AccessPoint.Passphrase; p != "" && len(p) < minPassphraseLen {
		return fmt.Errorf("access_point.passphrase must be at least %d characters", minPassphraseLen)
	}
	if c.Announce.Enabled && c.Announce.Broker == "" {
		return fmt.Errorf("announce.broker is required when announce is enabled")
	}
	if !c.Emulator.DryRun && len(c.Emulator.Tool) == 0 {
		return fmt.Errorf("emulator.tool is required unless dry_run is set")
	}
	return nil
}
