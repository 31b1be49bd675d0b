package core

// RunConfig contains configuration passed to an episode at initialization.
// The seed makes simulated runs deterministic and reproducible.
type RunConfig struct {
	Seed     int64 // RNG seed for the environment (0 = time-based in the CLI layer)
	ActFreq  int   // Ticks advanced by a Wait action (default 10)
	MaxTicks int   // Episode tick budget; 0 means no budget
	TickRate int   // Decisions per second when watching live (default 10)
}

// DefaultRunConfig returns a RunConfig with sensible defaults.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Seed:     0, // 0 means use current time in the CLI layer
		ActFreq:  10,
		MaxTicks: 20000,
		TickRate: 10,
	}
}
