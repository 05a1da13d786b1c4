package platform

// Package platform contains OS integration glue: the filesystem capability
// layer used for the status file (timestamp, whole-file read, whole-file
// write) and the build-selected status file location.
