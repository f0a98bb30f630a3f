package generator

import (
	"time"
)

// Options configures puzzle generation behavior.
type Options struct {
	RemovalCount int           // Number of cells to clear from the solved board
	Timeout      time.Duration // Timeout limits generation time
	Seed         int64         // Seed for reproducible puzzles (0 = random)
}

// DefaultOptions returns standard generator options.
func DefaultOptions(removalCount int) *Options {
	return &Options{
		RemovalCount: removalCount,
		Timeout:      10 * time.Second,
		Seed:         0,
	}
}
