package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultTiming(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Timing.CutsceneLine() != 1500*time.Millisecond {
		t.Errorf("unexpected cutscene line delay: %v", cfg.Timing.CutsceneLine())
	}
	if cfg.Timing.CutsceneTotal() != 4*time.Second {
		t.Errorf("unexpected cutscene total: %v", cfg.Timing.CutsceneTotal())
	}
	if cfg.Timing.Loading() != 5*time.Second {
		t.Errorf("unexpected loading delay: %v", cfg.Timing.Loading())
	}
	if cfg.SendTimeout() != 10*time.Second {
		t.Errorf("unexpected send timeout: %v", cfg.SendTimeout())
	}
}

func TestLoadFromMissingFileYieldsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("a missing config file is not an error: %v", err)
	}
	if cfg.Timing != Default().Timing || cfg.WebhookURL != "" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFromSparseFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"webhook_url": "https://example.test/hook", "timing": {"loading_ms": 100}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.WebhookURL != "https://example.test/hook" {
		t.Errorf("webhook url not read: %q", cfg.WebhookURL)
	}
	if cfg.Timing.Loading() != 100*time.Millisecond {
		t.Errorf("loading override ignored: %v", cfg.Timing.Loading())
	}
	// Everything the file left out behaves like the defaults.
	if cfg.Timing.CutsceneLine() != Default().Timing.CutsceneLine() {
		t.Errorf("missing timing fields should backfill: %v", cfg.Timing.CutsceneLine())
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("missing level should backfill: %q", cfg.Logging.Level)
	}
}

func TestLoadFromMalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err == nil {
		t.Fatal("expected an error for malformed config")
	}
	if cfg.Timing != Default().Timing {
		t.Errorf("a malformed file must still hand back defaults, got %+v", cfg)
	}
}
