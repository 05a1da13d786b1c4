package simulate

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/stratus-hmi/update-tracker/internal/platform"
)

// CyclePeriod is the fixed interval between simulated phases. Deliberately
// not configurable: the simulator mimics an updater the screen has no control
// over.
const CyclePeriod = 3 * time.Second

// StatusUpdating is the status text written for every simulated phase.
const StatusUpdating = "System Updating..."

// phases is the closed, ordered list of simulated update steps.
var phases = []string{
	"Preparing for update",
	"Downloading packages",
	"Verifying download",
	"Installing updates",
	"Configuring system",
	"Finalizing installation",
	"Cleaning up",
	"Update complete.",
}

// Generator role-plays the external updater: each tick writes the status file
// for the current phase and advances, wrapping to the first phase after the
// last. Driven from a single goroutine.
type Generator struct {
	fs      platform.FileSystem
	path    string
	phase   int
	cycleID string
}

// NewGenerator creates a generator writing to the status file at path.
func NewGenerator(fs platform.FileSystem, path string) *Generator {
	return &Generator{
		fs:      fs,
		path:    path,
		cycleID: uuid.NewString(),
	}
}

// NumPhases returns the length of the phase list.
func NumPhases() int {
	return len(phases)
}

// CycleID identifies the current simulated update run in diagnostics.
func (g *Generator) CycleID() string {
	return g.cycleID
}

// Tick writes the status document for the current phase and advances the
// phase index. Progress is phase*100/8 with integer truncation: the final
// phase reports 87, never 100, before the cycle wraps. Kept to match the
// real sequence this simulator reproduces.
func (g *Generator) Tick() {
	progress := g.phase * 100 / len(phases)
	if progress > 100 {
		progress = 100
	}

	doc := fmt.Sprintf("{\n"+
		"    \"progress\": %d,\n"+
		"    \"status\": \"%s\",\n"+
		"    \"step\": \"%s\"\n"+
		"}\n",
		progress, StatusUpdating, phases[g.phase])

	if err := g.fs.WriteWhole(g.path, []byte(doc)); err != nil {
		log.Printf("Simulator: failed to write %s: %v", g.path, err)
	}

	g.phase++
	if g.phase >= len(phases) {
		g.phase = 0
		log.Printf("Simulator: update cycle %s finished, restarting", g.cycleID)
		g.cycleID = uuid.NewString()
	}
}

// Run ticks the generator at the fixed cycle period until ctx is canceled.
func (g *Generator) Run(ctx context.Context) {
	ticker := time.NewTicker(CyclePeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.Tick()
		}
	}
}
