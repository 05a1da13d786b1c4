package model

import "fmt"

// Default snapshot values shown before any status file has been read
const (
	DefaultProgress = 0
	DefaultStatus   = "System Ready"
	DefaultStep     = "Waiting for update"
)

// Field size limits matching the on-disk format: text fields carry at most
// MaxTextLen-1 meaningful characters, the progress value at most MaxValueLen-1.
const (
	MaxTextLen  = 64
	MaxValueLen = 32
)

// StatusSnapshot is the single cached (progress, status, step) triple
// representing the current update state. Fields always hold some valid value;
// a field that fails to parse keeps its previous content.
type StatusSnapshot struct {
	Progress int    // 0 to 100, not clamped on read
	Status   string // high-level state, e.g. "System Updating..."
	Step     string // fine-grained current action
}

// NewDefaultSnapshot returns the snapshot displayed at process start.
func NewDefaultSnapshot() StatusSnapshot {
	return StatusSnapshot{
		Progress: DefaultProgress,
		Status:   DefaultStatus,
		Step:     DefaultStep,
	}
}

// PercentString returns the progress formatted for the percent label.
func (s StatusSnapshot) PercentString() string {
	return fmt.Sprintf("%d%%", s.Progress)
}

// IsComplete reports whether the snapshot shows a finished update.
func (s StatusSnapshot) IsComplete() bool {
	return s.Progress >= 100
}
