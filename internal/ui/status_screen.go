package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/stratus-hmi/update-tracker/internal/model"
)

// StatusScreen renders the current update state: a headline status text, the
// fine-grained step text, a numeric percent label, and a progress bar.
type StatusScreen struct {
	window fyne.Window

	statusLabel  *widget.Label
	stepLabel    *widget.Label
	percentLabel *widget.Label
	progressBar  *widget.ProgressBar

	completeNotified bool
}

// NewStatusScreen creates and installs the status screen on the window.
func NewStatusScreen(window fyne.Window) *StatusScreen {
	s := &StatusScreen{window: window}
	s.setupUI()
	return s
}

// setupUI creates and arranges all screen components
func (s *StatusScreen) setupUI() {
	defaults := model.NewDefaultSnapshot()

	s.statusLabel = widget.NewLabel(defaults.Status)
	s.statusLabel.Alignment = fyne.TextAlignCenter
	s.statusLabel.TextStyle = fyne.TextStyle{Bold: true}

	s.stepLabel = widget.NewLabel(defaults.Step)
	s.stepLabel.Alignment = fyne.TextAlignCenter

	s.percentLabel = widget.NewLabel(defaults.PercentString())
	s.percentLabel.Alignment = fyne.TextAlignTrailing

	s.progressBar = widget.NewProgressBar()
	s.progressBar.Min = 0
	s.progressBar.Max = 100
	// Percent is rendered in its own label, matching the panel layout
	s.progressBar.TextFormatter = func() string { return "" }

	barRow := container.NewBorder(nil, nil, nil, s.percentLabel, s.progressBar)

	content := container.NewVBox(
		layout.NewSpacer(),
		s.statusLabel,
		container.NewPadded(barRow),
		s.stepLabel,
		layout.NewSpacer(),
	)

	s.window.SetContent(container.NewPadded(content))
}

// SetStatus sets the headline status text
func (s *StatusScreen) SetStatus(text string) {
	s.statusLabel.SetText(text)
}

// SetStep sets the fine-grained step text
func (s *StatusScreen) SetStep(text string) {
	s.stepLabel.SetText(text)
}

// SetProgress sets the percent label and the bar value (0-100)
func (s *StatusScreen) SetProgress(percent int) {
	s.percentLabel.SetText(fmt.Sprintf(ProgressLabelFormat, percent))
	s.progressBar.SetValue(float64(percent))
}

// ShowSnapshot pushes a full snapshot to the screen. Safe to call from any
// goroutine; widget mutation is marshaled onto the UI thread.
func (s *StatusScreen) ShowSnapshot(snap model.StatusSnapshot) {
	fyne.Do(func() {
		s.SetStatus(snap.Status)
		s.SetStep(snap.Step)
		s.SetProgress(snap.Progress)
		s.notifyIfComplete(snap)
	})
}

// notifyIfComplete sends a one-shot system notification when the update
// reaches 100%, re-arming once progress drops again.
func (s *StatusScreen) notifyIfComplete(snap model.StatusSnapshot) {
	if !snap.IsComplete() {
		s.completeNotified = false
		return
	}
	if s.completeNotified {
		return
	}
	s.completeNotified = true

	fyne.CurrentApp().SendNotification(&fyne.Notification{
		Title:   "Update complete",
		Content: snap.Step,
	})
}
