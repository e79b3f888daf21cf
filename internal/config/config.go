// Package config loads the echoes configuration from ~/.echoes/config.json.
// A missing file means defaults; a malformed file is an error the caller may
// downgrade to defaults with a log line.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config holds everything tunable about a reading session.
type Config struct {
	// WebhookURL is the optional transmission endpoint for finished readings.
	// Empty disables the send affordance entirely.
	WebhookURL string `json:"webhook_url"`

	// CatalogPath overrides the embedded question catalog.
	CatalogPath string `json:"catalog_path"`

	// SendTimeout bounds a single webhook attempt, in seconds.
	SendTimeoutSeconds int `json:"send_timeout_seconds"`

	Timing  Timing  `json:"timing"`
	Logging Logging `json:"logging"`
}

// Timing holds the auto-advance delays, in milliseconds.
type Timing struct {
	CutsceneLineMS  int `json:"cutscene_line_ms"`
	CutsceneTotalMS int `json:"cutscene_total_ms"`
	LoadingMS       int `json:"loading_ms"`
}

// CutsceneLine is the delay before each further cutscene line is revealed.
func (t Timing) CutsceneLine() time.Duration {
	return time.Duration(t.CutsceneLineMS) * time.Millisecond
}

// CutsceneTotal is the full duration of a cutscene before questions resume.
func (t Timing) CutsceneTotal() time.Duration {
	return time.Duration(t.CutsceneTotalMS) * time.Millisecond
}

// Loading is how long the loading screen holds before the result.
func (t Timing) Loading() time.Duration {
	return time.Duration(t.LoadingMS) * time.Millisecond
}

// Logging mirrors the debug logging controls.
type Logging struct {
	DebugMode  bool            `json:"debug_mode"`
	Level      string          `json:"level"`
	Categories map[string]bool `json:"categories"`
}

// Default returns the built-in configuration. The timing values match the
// original pacing of the experience.
func Default() Config {
	return Config{
		SendTimeoutSeconds: 10,
		Timing: Timing{
			CutsceneLineMS:  1500,
			CutsceneTotalMS: 4000,
			LoadingMS:       5000,
		},
		Logging: Logging{Level: "info"},
	}
}

// Dir returns the echoes dot directory, creating it if needed.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".echoes")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return dir, nil
}

// Load reads config.json from the echoes dot directory.
func Load() (Config, error) {
	dir, err := Dir()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(filepath.Join(dir, "config.json"))
}

// LoadFrom reads a config file from an explicit path. A missing file yields
// defaults without error.
func LoadFrom(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// normalize backfills zero values so a sparse config file behaves like the
// defaults for everything it left out.
func (c *Config) normalize() error {
	def := Default()
	if c.SendTimeoutSeconds <= 0 {
		c.SendTimeoutSeconds = def.SendTimeoutSeconds
	}
	if c.Timing.CutsceneLineMS <= 0 {
		c.Timing.CutsceneLineMS = def.Timing.CutsceneLineMS
	}
	if c.Timing.CutsceneTotalMS <= 0 {
		c.Timing.CutsceneTotalMS = def.Timing.CutsceneTotalMS
	}
	if c.Timing.LoadingMS <= 0 {
		c.Timing.LoadingMS = def.Timing.LoadingMS
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
	return nil
}

// SendTimeout returns the webhook attempt timeout as a duration.
func (c Config) SendTimeout() time.Duration {
	return time.Duration(c.SendTimeoutSeconds) * time.Second
}
