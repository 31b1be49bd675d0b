// Package agent implements the rule-based expert that plays the game.
// Every decision is a pure function of the current tile-grid snapshot:
// the grid is scanned for the player and the threat tiles, the rules are
// evaluated in priority order, and the first match wins. No state is
// carried across ticks.
package agent

import (
	"github.com/charmbracelet/log"

	"github.com/rish-shuk/mario-expert/internal/config"
	"github.com/rish-shuk/mario-expert/internal/core"
)

// Observation is everything a rule may look at: the grid plus the
// element positions extracted from it.
type Observation struct {
	Grid    core.Grid
	Mario   core.Position // First match; (0,0) when the player is not on screen
	Goombas []core.Position
	Pipes   []core.Position
	Blocks  []core.Position
}

// Observe extracts an observation from a grid snapshot.
// Missing elements yield empty slices, never errors.
func Observe(grid core.Grid) Observation {
	obs := Observation{
		Grid:    grid,
		Goombas: grid.Find(core.TileGoomba),
		Pipes:   grid.Find(core.TilePipe),
		Blocks:  grid.Find(core.TileBlock),
	}
	if marios := grid.Find(core.TileMario); len(marios) > 0 {
		obs.Mario = marios[0]
	}
	return obs
}

// Rule is a single spatial heuristic. Evaluate returns the action to
// take and true when the rule fires.
type Rule interface {
	Name() string
	Evaluate(obs Observation) (core.Action, bool)
}

// Decision is the outcome of one tick: the chosen action and the name
// of the rule that produced it.
type Decision struct {
	Action core.Action
	Rule   string
}

// Expert evaluates an ordered rule list over grid snapshots.
type Expert struct {
	rules  []Rule
	logger *log.Logger
}

// New builds an expert from the heuristic configuration.
// Rule order is priority order; the final advance rule always fires.
func New(cfg config.ExpertConfig, logger *log.Logger) *Expert {
	if logger == nil {
		logger = log.Default()
	}
	d := durations{
		short:  core.Duration(cfg.Durations.Short),
		medium: core.Duration(cfg.Durations.Medium),
		long:   core.Duration(cfg.Durations.Long),
	}
	return &Expert{
		logger: logger,
		rules: []Rule{
			&stompThreatRule{r: cfg.Rules, d: d},
			&pipeCamperWaitRule{r: cfg.Rules},
			&pipeVaultRule{r: cfg.Rules, d: d},
			&pipeClimbRule{r: cfg.Rules, d: d},
			&ledgeHopRule{r: cfg.Rules, d: d},
			&advanceRule{d: d},
		},
	}
}

// Rules returns the names of the rules in evaluation order.
func (e *Expert) Rules() []string {
	names := make([]string, len(e.rules))
	for i, r := range e.rules {
		names[i] = r.Name()
	}
	return names
}

// ChooseAction scans the grid and returns the first matching rule's
// action. The advance rule guarantees a result.
func (e *Expert) ChooseAction(grid core.Grid) Decision {
	obs := Observe(grid)

	for _, rule := range e.rules {
		if action, ok := rule.Evaluate(obs); ok {
			e.logger.Debug("rule fired",
				"rule", rule.Name(),
				"action", action.String(),
				"mario", obs.Mario,
			)
			return Decision{Action: action, Rule: rule.Name()}
		}
	}

	// Unreachable: advanceRule always fires. Kept as a hard fallback.
	return Decision{Action: core.Wait(), Rule: "none"}
}

// durations maps the configured hold times onto core durations.
type durations struct {
	short  core.Duration
	medium core.Duration
	long   core.Duration
}
