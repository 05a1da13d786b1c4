package tracker

import (
	"context"
	"log"
	"time"
)

// DefaultPollInterval is the poll period used when none is configured.
const DefaultPollInterval = 2 * time.Second

// Checker is the per-tick operation driven by the Runner.
type Checker interface {
	Check()
}

// Runner drives a Checker with a recurring tick. One goroutine owns the loop,
// so ticks never overlap.
type Runner struct {
	checker  Checker
	period   time.Duration
	periodCh chan time.Duration
}

// NewRunner creates a runner with the given initial period.
func NewRunner(checker Checker, period time.Duration) *Runner {
	if period <= 0 {
		period = DefaultPollInterval
	}
	return &Runner{
		checker:  checker,
		period:   period,
		periodCh: make(chan time.Duration, 1),
	}
}

// Run starts the ticker loop. The first check runs immediately, before the
// first tick. Run returns when ctx is canceled.
func (r *Runner) Run(ctx context.Context) {
	ticker := time.NewTicker(r.period)
	defer ticker.Stop()

	r.checker.Check()

	for {
		select {
		case <-ctx.Done():
			return
		case period := <-r.periodCh:
			ticker.Reset(period)
			log.Printf("Update polling interval set to %d ms", period.Milliseconds())
		case <-ticker.C:
			r.checker.Check()
		}
	}
}

// SetInterval changes the polling period of a running loop. A not-yet-applied
// pending change is superseded.
func (r *Runner) SetInterval(period time.Duration) {
	if period <= 0 {
		return
	}

	for {
		select {
		case r.periodCh <- period:
			return
		default:
			select {
			case <-r.periodCh:
			default:
			}
		}
	}
}
