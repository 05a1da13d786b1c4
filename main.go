package main

import (
	"context"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/stratus-hmi/update-tracker/internal/config"
	"github.com/stratus-hmi/update-tracker/internal/platform"
	"github.com/stratus-hmi/update-tracker/internal/tracker"
	"github.com/stratus-hmi/update-tracker/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.stratus-hmi.update-tracker"
	AppName = "Update Tracker"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply panel theme
	myApp.Settings().SetTheme(ui.NewPanelTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Resolve configuration: the device profile pins a deployment, Fyne
	// preferences carry the interactive overrides.
	profile, err := config.LoadProfile(config.ProfilePath())
	if err != nil {
		fmt.Printf("failed to load device profile: %v\n", err)
		profile = config.DefaultProfile()
	}

	settings := config.NewSettings(myApp)

	statusPath := platform.DefaultStatusPath()
	if override := settings.GetStatusFilePath(); override != "" {
		statusPath = override
	}
	if profile.StatusFile != "" {
		statusPath = profile.StatusFile
	}

	intervalMS := settings.GetPollIntervalMS()
	if intervalMS == config.DefaultPollIntervalMS && profile.PollIntervalMS != config.DefaultPollIntervalMS {
		intervalMS = profile.PollIntervalMS
	}

	// Initialize services
	fs := platform.NewOSFileSystem()
	trackerSvc := tracker.NewService(fs, statusPath)

	// Create and setup UI
	screen := ui.NewStatusScreen(myWindow)
	trackerSvc.SetUpdateCallback(screen.ShowSnapshot)

	fmt.Printf("Update tracker: monitoring %s for update status changes\n", statusPath)

	// Create the status file with defaults if it doesn't exist yet
	trackerSvc.Bootstrap()

	runner := tracker.NewRunner(trackerSvc, time.Duration(intervalMS)*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go runner.Run(ctx)
	startSimulator(ctx, fs, statusPath)

	myWindow.SetMainMenu(buildMainMenu(myWindow, settings, runner))

	// Show and run
	myWindow.ShowAndRun()
}

// buildMainMenu wires the settings dialog to the running poll loop.
func buildMainMenu(window fyne.Window, settings *config.Settings, runner *tracker.Runner) *fyne.MainMenu {
	settingsItem := fyne.NewMenuItem("Settings", func() {
		ui.NewSettingsDialog(settings, window, func(intervalMS int) {
			runner.SetInterval(time.Duration(intervalMS) * time.Millisecond)
		}).Show()
	})

	return fyne.NewMainMenu(
		fyne.NewMenu("File", settingsItem),
	)
}
