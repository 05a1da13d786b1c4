package tracker

import (
	"log"
	"time"

	"github.com/stratus-hmi/update-tracker/internal/jsonfield"
	"github.com/stratus-hmi/update-tracker/internal/model"
	"github.com/stratus-hmi/update-tracker/internal/platform"
)

// Status file field names
const (
	FieldProgress = "progress"
	FieldStatus   = "status"
	FieldStep     = "step"
)

const (
	// ReadBufferSize bounds one status file read. The document is three short
	// fields; anything larger is garbage.
	ReadBufferSize = 512

	// WaitingLogInterval throttles the waiting-for-file diagnostic.
	WaitingLogInterval = 10 * time.Second
)

// DefaultStatusJSON is the canonical document written on first run. It parses
// back to the default snapshot.
const DefaultStatusJSON = "{\n" +
	"    \"progress\": 0,\n" +
	"    \"status\": \"System Ready\",\n" +
	"    \"step\": \"Waiting for update\"\n" +
	"}\n"

// Service owns the cached status snapshot and decides, per poll tick, whether
// the status file needs to be re-read and republished. It is driven from a
// single goroutine (the Runner) and is not safe for concurrent use.
type Service struct {
	fs   platform.FileSystem
	path string

	snapshot     model.StatusSnapshot
	state        model.TrackerState
	lastModified int64 // 0 means no file observed yet
	lastWaitLog  time.Time

	onUpdate func(model.StatusSnapshot)
	now      func() time.Time
}

// NewService creates a tracker for the status file at path.
func NewService(fs platform.FileSystem, path string) *Service {
	return &Service{
		fs:       fs,
		path:     path,
		snapshot: model.NewDefaultSnapshot(),
		state:    model.StateAwaitingFile,
		now:      time.Now,
	}
}

// SetUpdateCallback sets the function called with each committed snapshot
func (s *Service) SetUpdateCallback(callback func(model.StatusSnapshot)) {
	s.onUpdate = callback
}

// Snapshot returns the current cached snapshot
func (s *Service) Snapshot() model.StatusSnapshot {
	return s.snapshot
}

// State returns the tracker's current state
func (s *Service) State() model.TrackerState {
	return s.state
}

// Path returns the monitored status file location
func (s *Service) Path() string {
	return s.path
}

// Check performs one poll tick: if the file's timestamp is unchanged this is
// a no-op; otherwise the file is re-read, fields are extracted fail-soft, and
// the committed snapshot is pushed to the update callback.
func (s *Service) Check() {
	fileTime := s.fs.Timestamp(s.path)
	if fileTime == 0 {
		// Not an error: the external writer may simply not have started yet.
		now := s.now()
		if now.Sub(s.lastWaitLog) > WaitingLogInterval {
			log.Printf("Waiting for update status file: %s", s.path)
			s.lastWaitLog = now
		}
		return
	}

	if fileTime == s.lastModified {
		return
	}

	s.state = model.StateProcessing

	// The new timestamp is recorded before the read. If the read below fails,
	// this change is not retried until the file's timestamp moves again.
	s.lastModified = fileTime

	data, err := s.fs.ReadWhole(s.path, ReadBufferSize)
	if err != nil {
		log.Printf("Error: could not read %s: %v", s.path, err)
		s.state = model.StateIdle
		return
	}

	doc := string(data)
	snapshot := s.snapshot

	if value, ok := jsonfield.Extract(doc, FieldProgress, model.MaxValueLen); ok {
		snapshot.Progress = atoi(value)
	}
	if value, ok := jsonfield.Extract(doc, FieldStatus, model.MaxTextLen); ok {
		snapshot.Status = value
	}
	if value, ok := jsonfield.Extract(doc, FieldStep, model.MaxTextLen); ok {
		snapshot.Step = value
	}

	s.snapshot = snapshot

	if s.onUpdate != nil {
		s.onUpdate(snapshot)
	}

	log.Printf("Update status: %d%% - %s - %s", snapshot.Progress, snapshot.Status, snapshot.Step)

	s.state = model.StateIdle
}

// Bootstrap writes the canonical default document if no status file exists
// yet. It never overwrites an existing file, whatever its content.
func (s *Service) Bootstrap() {
	if s.fs.Timestamp(s.path) != 0 {
		return
	}

	if err := s.fs.WriteWhole(s.path, []byte(DefaultStatusJSON)); err != nil {
		log.Printf("Error: could not create %s: %v", s.path, err)
		return
	}

	log.Printf("Created default update status file at %s", s.path)
}

// atoi converts the leading integer portion of value: optional whitespace,
// optional sign, digits. Trailing garbage is ignored and unparseable input
// yields 0.
func atoi(value string) int {
	i := 0
	for i < len(value) && (value[i] == ' ' || value[i] == '\t' || value[i] == '\n' || value[i] == '\r') {
		i++
	}

	sign := 1
	if i < len(value) && (value[i] == '+' || value[i] == '-') {
		if value[i] == '-' {
			sign = -1
		}
		i++
	}

	n := 0
	for i < len(value) && value[i] >= '0' && value[i] <= '9' {
		n = n*10 + int(value[i]-'0')
		i++
	}

	return sign * n
}
