// Package config provides YAML-based configuration loading for the expert
// agent and the simulated environment.
package config

// ExpertConfig contains the tuned parameters of the decision heuristic.
type ExpertConfig struct {
	Rules     RulesConfig     `yaml:"rules"`
	Durations DurationsConfig `yaml:"durations"`
}

// RulesConfig holds the spatial thresholds of the heuristic rules.
// These are the trial-and-error constants; change with care.
type RulesConfig struct {
	Lookahead     int      `yaml:"lookahead"`       // Columns scanned ahead of the player
	StompRowDelta int      `yaml:"stomp_row_delta"` // |Δrow| that makes a goomba a stomp threat
	LedgeRowDelta int      `yaml:"ledge_row_delta"` // |Δrow| that makes a block a hop target
	ClimbRowDelta int      `yaml:"climb_row_delta"` // Max |Δrow| for jumping a pipe from its base
	WaitCell      CellSpec `yaml:"wait_cell"`       // Pipe-head cell that means "wait for the camper"
}

// CellSpec is a fixed grid cell referenced by a rule.
type CellSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// DurationsConfig holds button hold times in emulated ticks.
type DurationsConfig struct {
	Short   int `yaml:"short"`
	Medium  int `yaml:"medium"`
	Long    int `yaml:"long"`
	ActFreq int `yaml:"act_freq"` // Ticks advanced when no button is pressed
}

// SimConfig contains all configuration for the simulated level.
type SimConfig struct {
	Level   LevelConfig   `yaml:"level"`
	Physics PhysicsConfig `yaml:"physics"`
}

// LevelConfig defines the generated level layout.
type LevelConfig struct {
	Length        int `yaml:"length"`         // Level length in columns
	ViewWidth     int `yaml:"view_width"`     // Visible game area width
	ViewHeight    int `yaml:"view_height"`    // Visible game area height
	GroundRows    int `yaml:"ground_rows"`    // Rows of ground at the bottom
	Goombas       int `yaml:"goombas"`        // Number of goombas placed
	GoombaSpacing int `yaml:"goomba_spacing"` // Minimum columns between goombas
	Pipes         int `yaml:"pipes"`          // Number of pipes placed
	PipeMinHeight int `yaml:"pipe_min_height"`
	PipeMaxHeight int `yaml:"pipe_max_height"`
	Ledges        int `yaml:"ledges"` // Single-block steps on the ground
	Gaps          int `yaml:"gaps"`   // Holes in the ground
	GapWidth      int `yaml:"gap_width"`
}

// PhysicsConfig defines player movement in the simulated level.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`        // Downward acceleration per tick
	JumpImpulse  float64 `yaml:"jump_impulse"`   // Initial upward velocity (negative = up)
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal velocity
	WalkPeriod   int     `yaml:"walk_period"`    // Ticks per horizontal step while held
	GoombaPeriod int     `yaml:"goomba_period"`  // Ticks per goomba step
}

// Profile is a named agent temperament that shifts rule thresholds.
type Profile string

const (
	ProfileCautious   Profile = "cautious"
	ProfileNormal     Profile = "normal"
	ProfileAggressive Profile = "aggressive"
)

// ApplyProfile adjusts rule thresholds for a named profile.
// Cautious reacts a column earlier, aggressive a column later.
func ApplyProfile(cfg *ExpertConfig, profile Profile) {
	switch profile {
	case ProfileCautious:
		cfg.Rules.Lookahead++
	case ProfileAggressive:
		if cfg.Rules.Lookahead > 1 {
			cfg.Rules.Lookahead--
		}
	}
}

// ValidProfile reports whether the given name is a known profile.
func ValidProfile(name string) bool {
	switch Profile(name) {
	case ProfileCautious, ProfileNormal, ProfileAggressive:
		return true
	}
	return false
}
