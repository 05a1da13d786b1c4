package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile locations
const (
	ProfileEnvVar      = "UPDATE_TRACKER_CONFIG"
	DefaultProfilePath = "/etc/update_tracker/config.yaml"
)

// Profile is the optional on-disk device configuration used on headless
// targets where Fyne preferences are not provisioned.
type Profile struct {
	// StatusFile overrides the build-selected status file path when non-empty.
	StatusFile string `yaml:"status_file"`

	// PollIntervalMS is the polling period in milliseconds. Zero means the
	// built-in default.
	PollIntervalMS int `yaml:"poll_interval_ms"`
}

// DefaultProfile returns the profile used when no config file is present.
func DefaultProfile() Profile {
	return Profile{
		PollIntervalMS: DefaultPollIntervalMS,
	}
}

// ProfilePath returns the device profile location, honoring the environment
// override.
func ProfilePath() string {
	if path := os.Getenv(ProfileEnvVar); path != "" {
		return path
	}
	return DefaultProfilePath
}

// LoadProfile reads and validates the device profile. A missing file is not
// an error: the defaults apply.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultProfile(), nil
		}
		return Profile{}, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	profile := DefaultProfile()
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return Profile{}, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}

	if err := profile.Validate(); err != nil {
		return Profile{}, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	return profile, nil
}

// Validate checks the profile fields and fills zero values with defaults.
func (p *Profile) Validate() error {
	if p.PollIntervalMS < 0 {
		return fmt.Errorf("poll_interval_ms must not be negative, got %d", p.PollIntervalMS)
	}
	if p.PollIntervalMS == 0 {
		p.PollIntervalMS = DefaultPollIntervalMS
	}
	return nil
}
