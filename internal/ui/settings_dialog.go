package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/stratus-hmi/update-tracker/internal/config"
)

// SettingsDialog edits the polling configuration
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	intervalEntry *widget.Entry

	// onApply receives the saved poll interval in milliseconds
	onApply func(intervalMS int)
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window, onApply func(intervalMS int)) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		onApply:  onApply,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.intervalEntry = widget.NewEntry()
	sd.intervalEntry.SetPlaceHolder("100-60000")

	form := container.NewVBox(
		widget.NewLabel("Polling"),
		widget.NewSeparator(),

		widget.NewLabel("Poll Interval (ms):"),
		sd.intervalEntry,
	)

	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(400, 220))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.intervalEntry.SetText(strconv.Itoa(sd.settings.GetPollIntervalMS()))
}

// onSave persists the edited settings and notifies the caller
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if ms, err := strconv.Atoi(sd.intervalEntry.Text); err == nil {
		sd.settings.SetPollIntervalMS(ms)
	}

	if sd.onApply != nil {
		sd.onApply(sd.settings.GetPollIntervalMS())
	}
}
