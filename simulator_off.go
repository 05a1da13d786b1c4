//go:build !simulator

package main

import (
	"context"

	"github.com/stratus-hmi/update-tracker/internal/platform"
)

// startSimulator is a no-op outside simulator builds: status comes from the
// real out-of-process updater.
func startSimulator(ctx context.Context, fs platform.FileSystem, statusPath string) {}
