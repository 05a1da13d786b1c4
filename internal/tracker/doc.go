package tracker

// Package tracker implements the core status-tracking pipeline: change
// detection on the update status file, per-field extraction into the cached
// snapshot, publication to the display, and the ticker-driven poll loop that
// drives it. It also bootstraps the status file with safe defaults on first
// run.
