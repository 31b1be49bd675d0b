// Package session drives an episode: reset the environment, then loop
// snapshot -> decide -> act until the game ends or the tick budget runs
// out. The loop is single-threaded and synchronous; the environment is
// only ever touched from the caller's goroutine.
package session

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/rish-shuk/mario-expert/internal/agent"
	"github.com/rish-shuk/mario-expert/internal/core"
	"github.com/rish-shuk/mario-expert/internal/emulator"
	"github.com/rish-shuk/mario-expert/internal/recorder"
	"github.com/rish-shuk/mario-expert/internal/storage"
)

// Episode outcomes.
const (
	OutcomeClear  = "clear"  // Reached the end of the level
	OutcomeDeath  = "death"  // Lost the last life
	OutcomeBudget = "budget" // Tick budget exhausted
)

// Result is the final record of an episode, written to results.json.
type Result struct {
	EpisodeID string         `json:"episode_id"`
	Outcome   string         `json:"outcome"`
	Seed      int64          `json:"seed"`
	Decisions int            `json:"decisions"`
	Stats     emulator.Stats `json:"stats"`
}

// Session owns one episode of the agent playing an environment.
type Session struct {
	id     string
	env    emulator.Env
	expert *agent.Expert
	ctrl   *emulator.Controller
	cfg    core.RunConfig
	logger *log.Logger
	replay *recorder.Writer

	decisions int
	lastGrid  core.Grid
	lastRule  string
	done      bool
}

// New creates a session. The environment must be usable after Reset;
// the expert is stateless and may be shared.
func New(env emulator.Env, expert *agent.Expert, cfg core.RunConfig, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		id:     uuid.NewString(),
		env:    env,
		expert: expert,
		ctrl:   emulator.NewController(env, cfg.ActFreq),
		cfg:    cfg,
		logger: logger,
	}
}

// AttachReplay records every decision frame to the given writer.
// The caller keeps ownership and closes the writer.
func (s *Session) AttachReplay(w *recorder.Writer) {
	s.replay = w
}

// ID returns the episode UUID.
func (s *Session) ID() string {
	return s.id
}

// Reset puts the environment at the start of the level.
func (s *Session) Reset() {
	s.env.Reset()
	s.decisions = 0
	s.lastGrid = s.env.GameArea()
	s.lastRule = ""
	s.done = false
	s.logger.Info("episode started", "episode", s.id, "seed", s.cfg.Seed)
}

// Step performs one decision: snapshot the grid, pick an action, run it.
// Returns false once the episode is over and no step was taken.
func (s *Session) Step() bool {
	if s.done {
		return false
	}
	if s.env.GameOver() || s.budgetExceeded() {
		s.finish()
		return false
	}

	grid := s.env.GameArea()
	decision := s.expert.ChooseAction(grid)

	s.lastGrid = grid
	s.lastRule = decision.Rule
	s.decisions++

	if s.replay != nil {
		frame := recorder.Frame{
			Tick:   s.env.Stats().Ticks,
			Rule:   decision.Rule,
			Action: decision.Action,
			Grid:   grid.Rows(),
		}
		if err := s.replay.WriteFrame(frame); err != nil {
			s.logger.Warn("replay frame dropped", "error", err)
		}
	}

	s.ctrl.Run(decision.Action)

	if s.env.GameOver() || s.budgetExceeded() {
		s.finish()
	}
	return true
}

// Run plays the episode to completion and returns its result.
func (s *Session) Run() Result {
	s.Reset()
	for s.Step() {
	}
	return s.Result()
}

// Done reports whether the episode has finished.
func (s *Session) Done() bool {
	return s.done
}

// Decisions returns the number of decisions taken so far.
func (s *Session) Decisions() int {
	return s.decisions
}

// Grid returns the last grid snapshot the agent saw.
func (s *Session) Grid() core.Grid {
	return s.lastGrid
}

// LastRule returns the name of the last rule that fired.
func (s *Session) LastRule() string {
	return s.lastRule
}

// Stats returns the environment's current statistics.
func (s *Session) Stats() emulator.Stats {
	return s.env.Stats()
}

// Result assembles the final episode record.
func (s *Session) Result() Result {
	return Result{
		EpisodeID: s.id,
		Outcome:   s.outcome(),
		Seed:      s.cfg.Seed,
		Decisions: s.decisions,
		Stats:     s.env.Stats(),
	}
}

func (s *Session) budgetExceeded() bool {
	return s.cfg.MaxTicks > 0 && s.env.Stats().Ticks >= s.cfg.MaxTicks
}

func (s *Session) outcome() string {
	if !s.env.GameOver() {
		return OutcomeBudget
	}
	if s.env.Stats().Lives == 0 {
		return OutcomeDeath
	}
	return OutcomeClear
}

func (s *Session) finish() {
	if s.done {
		return
	}
	s.done = true
	r := s.Result()
	s.logger.Info("episode finished",
		"episode", r.EpisodeID,
		"outcome", r.Outcome,
		"score", r.Stats.Score,
		"coins", r.Stats.Coins,
		"world_x", r.Stats.WorldX,
		"decisions", r.Decisions,
		"ticks", r.Stats.Ticks,
	)
}

// Persist writes the result file and saves the episode to the store.
// Either destination may be skipped by passing "" or nil.
func Persist(r Result, resultsPath string, store *storage.Store) error {
	if resultsPath != "" {
		if err := recorder.WriteResults(resultsPath, r); err != nil {
			return fmt.Errorf("session: %w", err)
		}
	}
	if store != nil {
		err := store.SaveEpisode(storage.Episode{
			ID:        r.EpisodeID,
			Outcome:   r.Outcome,
			Score:     r.Stats.Score,
			Coins:     r.Stats.Coins,
			WorldX:    r.Stats.WorldX,
			Decisions: r.Decisions,
			Ticks:     r.Stats.Ticks,
		})
		if err != nil {
			return fmt.Errorf("session: %w", err)
		}
	}
	return nil
}
