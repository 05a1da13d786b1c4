package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestPollInterval(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	interval := settings.GetPollIntervalMS()
	if interval != DefaultPollIntervalMS {
		t.Errorf("Expected default poll interval %d, got %d", DefaultPollIntervalMS, interval)
	}

	// Test setting custom value
	settings.SetPollIntervalMS(5000)
	if got := settings.GetPollIntervalMS(); got != 5000 {
		t.Errorf("Expected poll interval 5000, got %d", got)
	}

	// Test boundary values
	settings.SetPollIntervalMS(0) // Should be clamped to minimum
	if settings.GetPollIntervalMS() != MinPollIntervalMS {
		t.Errorf("Poll interval should be clamped to minimum %d", MinPollIntervalMS)
	}

	settings.SetPollIntervalMS(999999) // Should be clamped to maximum
	if settings.GetPollIntervalMS() != MaxPollIntervalMS {
		t.Errorf("Poll interval should be clamped to maximum %d", MaxPollIntervalMS)
	}
}

func TestStatusFilePath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Default is unset: the build-selected path applies
	if path := settings.GetStatusFilePath(); path != "" {
		t.Errorf("Expected empty path override by default, got %q", path)
	}

	settings.SetStatusFilePath("/tmp/test_status.json")
	if got := settings.GetStatusFilePath(); got != "/tmp/test_status.json" {
		t.Errorf("Expected path override /tmp/test_status.json, got %q", got)
	}
}
