package jsonfield

// Package jsonfield extracts single named scalar values from flat JSON
// objects with one bounded pass over the text. It is deliberately not a JSON
// parser: the status file's shape is fixed and flat, and a missing or
// malformed field must degrade to "not found" rather than fail the document.
