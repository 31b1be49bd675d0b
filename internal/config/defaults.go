package config

import (
	_ "embed"
)

//go:embed defaults/expert.yaml
var defaultExpertYAML []byte

//go:embed defaults/sim.yaml
var defaultSimYAML []byte

// DefaultExpertConfig returns the default heuristic configuration.
func DefaultExpertConfig() ExpertConfig {
	return ExpertConfig{
		Rules: RulesConfig{
			Lookahead:     2,
			StompRowDelta: 1,
			LedgeRowDelta: 1,
			ClimbRowDelta: 2,
			WaitCell:      CellSpec{X: 13, Y: 7},
		},
		Durations: DurationsConfig{
			Short:   1,
			Medium:  5,
			Long:    10,
			ActFreq: 10,
		},
	}
}

// DefaultSimConfig returns the default simulated level configuration.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		Level: LevelConfig{
			Length:        160,
			ViewWidth:     20,
			ViewHeight:    16,
			GroundRows:    2,
			Goombas:       4,
			GoombaSpacing: 24,
			Pipes:         3,
			PipeMinHeight: 2,
			PipeMaxHeight: 2,
			Ledges:        2,
			Gaps:          0,
			GapWidth:      2,
		},
		Physics: PhysicsConfig{
			Gravity:      0.35,
			JumpImpulse:  -1.6,
			MaxFallSpeed: 2.0,
			WalkPeriod:   2,
			GoombaPeriod: 4,
		},
	}
}
