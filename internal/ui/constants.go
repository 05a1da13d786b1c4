package ui

// Window geometry, mirroring the target panel
const (
	WindowWidth  float32 = 1280
	WindowHeight float32 = 720
)

// Text fragments
const (
	ProgressLabelFormat = "%d%%"
)
