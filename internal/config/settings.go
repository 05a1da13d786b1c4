package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyPollInterval   = "poll_interval_ms"
	KeyStatusFilePath = "status_file_path"
)

// Default values
const (
	DefaultPollIntervalMS = 2000
	MinPollIntervalMS     = 100
	MaxPollIntervalMS     = 60000
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetPollIntervalMS returns the configured polling interval in milliseconds
func (s *Settings) GetPollIntervalMS() int {
	value := s.app.Preferences().Int(KeyPollInterval)
	if value <= 0 {
		s.SetPollIntervalMS(DefaultPollIntervalMS)
		return DefaultPollIntervalMS
	}
	return value
}

// SetPollIntervalMS sets the polling interval in milliseconds
func (s *Settings) SetPollIntervalMS(ms int) {
	if ms < MinPollIntervalMS {
		ms = MinPollIntervalMS
	}
	if ms > MaxPollIntervalMS {
		ms = MaxPollIntervalMS
	}
	s.app.Preferences().SetInt(KeyPollInterval, ms)
}

// GetStatusFilePath returns the configured status file path override, or an
// empty string when the build-selected default should be used
func (s *Settings) GetStatusFilePath() string {
	return s.app.Preferences().String(KeyStatusFilePath)
}

// SetStatusFilePath sets the status file path override
func (s *Settings) SetStatusFilePath(path string) {
	s.app.Preferences().SetString(KeyStatusFilePath, path)
}
