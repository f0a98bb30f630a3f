package solver

import (
	"context"
	"time"
)

// Options configures solver behavior.
type Options struct {
	Randomize bool          // Randomize shuffles candidate order (generation use)
	Timeout   time.Duration // Timeout limits search time (0 = no limit)
	Seed      int64         // Seed for reproducible randomization (0 = random)
}

// DefaultOptions returns deterministic solver options with a generous timeout.
func DefaultOptions() *Options {
	return &Options{
		Randomize: false,
		Timeout:   10 * time.Second,
		Seed:      0,
	}
}

// makeContext builds the context governing one Solve call.
func (s *Solver) makeContext() (context.Context, context.CancelFunc) {
	if s.options.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), s.options.Timeout)
}
