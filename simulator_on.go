//go:build simulator

package main

import (
	"context"
	"fmt"

	"github.com/stratus-hmi/update-tracker/internal/platform"
	"github.com/stratus-hmi/update-tracker/internal/simulate"
)

// startSimulator launches the synthetic status generator. Simulator builds
// only: the process role-plays both the updater and the screen, coupled
// solely through the status file.
func startSimulator(ctx context.Context, fs platform.FileSystem, statusPath string) {
	gen := simulate.NewGenerator(fs, statusPath)
	go gen.Run(ctx)

	fmt.Printf("SIMULATOR MODE: auto-generating update status changes every %v\n", simulate.CyclePeriod)
}
