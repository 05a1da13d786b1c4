package config

// Package config manages application configuration: interactive settings
// stored in Fyne preferences (poll interval) and the optional YAML device
// profile used on headless targets to pin the status file location.
