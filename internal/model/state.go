package model

// TrackerState represents the status tracker's position in its poll cycle
type TrackerState string

const (
	// StateAwaitingFile means no status file has ever been observed
	StateAwaitingFile TrackerState = "AwaitingFile"

	// StateIdle means the file has been seen and is unchanged since last check
	StateIdle TrackerState = "Idle"

	// StateProcessing means the tracker is re-reading and republishing
	StateProcessing TrackerState = "Processing"
)

// String returns the string representation of TrackerState
func (ts TrackerState) String() string {
	return string(ts)
}

// HasSeenFile returns true if the tracker has observed the status file at
// least once
func (ts TrackerState) HasSeenFile() bool {
	return ts == StateIdle || ts == StateProcessing
}
