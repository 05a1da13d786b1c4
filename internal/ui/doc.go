package ui

// Package ui contains the Fyne-based status screen. It exposes the display
// primitives the tracker pushes to (status text, step text, percent label,
// progress bar) plus the settings dialog; layout construction is declarative
// and carries no tracking logic.
