package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// PanelTheme is the dark full-screen theme used on the status panel
type PanelTheme struct{}

// NewPanelTheme creates the panel theme
func NewPanelTheme() fyne.Theme {
	return &PanelTheme{}
}

// Color returns theme colors
func (t *PanelTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.RGBA{R: 25, G: 25, B: 25, A: 255} // Panel background
	case theme.ColorNameForeground:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255} // White text
	case theme.ColorNamePrimary:
		return color.RGBA{R: 196, G: 114, B: 56, A: 255} // Amber accent for the bar
	case theme.ColorNameInputBackground:
		return color.RGBA{R: 35, G: 35, B: 35, A: 255}
	}

	// Use default dark colors for everything else
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *PanelTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *PanelTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes adjusted for a large viewing distance
func (t *PanelTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 24 // Readable across a room
	case theme.SizeNameHeadingText:
		return 32
	case theme.SizeNameSubHeadingText:
		return 24
	case theme.SizeNamePadding:
		return 8
	}

	return theme.DefaultTheme().Size(name)
}
