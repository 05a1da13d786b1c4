package model

import "testing"

func TestNewDefaultSnapshot(t *testing.T) {
	snap := NewDefaultSnapshot()

	if snap.Progress != 0 {
		t.Errorf("Default progress = %d, expected 0", snap.Progress)
	}
	if snap.Status != "System Ready" {
		t.Errorf("Default status = %q, expected %q", snap.Status, "System Ready")
	}
	if snap.Step != "Waiting for update" {
		t.Errorf("Default step = %q, expected %q", snap.Step, "Waiting for update")
	}
}

func TestStatusSnapshot_PercentString(t *testing.T) {
	tests := []struct {
		progress int
		expected string
	}{
		{0, "0%"},
		{42, "42%"},
		{100, "100%"},
	}

	for _, test := range tests {
		snap := StatusSnapshot{Progress: test.progress}
		if got := snap.PercentString(); got != test.expected {
			t.Errorf("PercentString() with progress %d = %q, expected %q", test.progress, got, test.expected)
		}
	}
}

func TestStatusSnapshot_IsComplete(t *testing.T) {
	tests := []struct {
		progress int
		expected bool
	}{
		{0, false},
		{87, false},
		{99, false},
		{100, true},
	}

	for _, test := range tests {
		snap := StatusSnapshot{Progress: test.progress}
		if got := snap.IsComplete(); got != test.expected {
			t.Errorf("IsComplete() with progress %d = %v, expected %v", test.progress, got, test.expected)
		}
	}
}

func TestTrackerState_HasSeenFile(t *testing.T) {
	tests := []struct {
		state    TrackerState
		expected bool
	}{
		{StateAwaitingFile, false},
		{StateIdle, true},
		{StateProcessing, true},
	}

	for _, test := range tests {
		if got := test.state.HasSeenFile(); got != test.expected {
			t.Errorf("TrackerState(%s).HasSeenFile() = %v, expected %v", test.state, got, test.expected)
		}
	}
}
