package session

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/rish-shuk/mario-expert/internal/agent"
	"github.com/rish-shuk/mario-expert/internal/config"
	"github.com/rish-shuk/mario-expert/internal/core"
	"github.com/rish-shuk/mario-expert/internal/emulator"
	"github.com/rish-shuk/mario-expert/internal/emulator/sim"
	"github.com/rish-shuk/mario-expert/internal/recorder"
	"github.com/rish-shuk/mario-expert/internal/storage"
)

// scriptedEnv ends the game after a fixed number of ticks.
type scriptedEnv struct {
	ticks      int
	gameOverAt int
	lives      int
}

func (e *scriptedEnv) Reset()              { e.ticks = 0 }
func (e *scriptedEnv) GameArea() core.Grid { return core.NewGrid(20, 16) }
func (e *scriptedEnv) Stats() emulator.Stats {
	return emulator.Stats{Ticks: e.ticks, Lives: e.lives}
}
func (e *scriptedEnv) Press(core.Button)   {}
func (e *scriptedEnv) Release(core.Button) {}
func (e *scriptedEnv) Tick()               { e.ticks++ }
func (e *scriptedEnv) GameOver() bool {
	return e.gameOverAt > 0 && e.ticks >= e.gameOverAt
}

func testExpert(t *testing.T) *agent.Expert {
	t.Helper()
	logger := log.New(io.Discard)
	return agent.New(config.DefaultExpertConfig(), logger)
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestRunStopsOnGameOver(t *testing.T) {
	env := &scriptedEnv{gameOverAt: 25, lives: 0}
	cfg := core.DefaultRunConfig()
	s := New(env, testExpert(t), cfg, quietLogger())

	r := s.Run()

	if r.Outcome != OutcomeDeath {
		t.Errorf("Outcome = %q, expected %q", r.Outcome, OutcomeDeath)
	}
	if r.Decisions == 0 {
		t.Error("Expected at least one decision before game over")
	}
	if !s.Done() {
		t.Error("Session should be done after Run()")
	}
	if s.Step() {
		t.Error("Step() after finish should return false")
	}
}

func TestRunStopsOnTickBudget(t *testing.T) {
	env := &scriptedEnv{lives: 1} // never ends on its own
	cfg := core.DefaultRunConfig()
	cfg.MaxTicks = 50
	s := New(env, testExpert(t), cfg, quietLogger())

	r := s.Run()

	if r.Outcome != OutcomeBudget {
		t.Errorf("Outcome = %q, expected %q", r.Outcome, OutcomeBudget)
	}
	if r.Stats.Ticks < cfg.MaxTicks {
		t.Errorf("Stopped at tick %d, budget is %d", r.Stats.Ticks, cfg.MaxTicks)
	}
}

func TestSurvivingGameOverIsAClear(t *testing.T) {
	env := &scriptedEnv{gameOverAt: 10, lives: 1}
	s := New(env, testExpert(t), core.DefaultRunConfig(), quietLogger())

	r := s.Run()
	if r.Outcome != OutcomeClear {
		t.Errorf("Outcome = %q, expected %q", r.Outcome, OutcomeClear)
	}
}

func TestReplayRecordsOneFramePerDecision(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.jsonl")
	w, err := recorder.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	env := &scriptedEnv{gameOverAt: 30, lives: 0}
	s := New(env, testExpert(t), core.DefaultRunConfig(), quietLogger())
	s.AttachReplay(w)

	r := s.Run()
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	frames, err := recorder.ReadReplay(path)
	if err != nil {
		t.Fatalf("ReadReplay() failed: %v", err)
	}
	if len(frames) != r.Decisions {
		t.Errorf("Replay has %d frames, session took %d decisions", len(frames), r.Decisions)
	}
	if frames[0].Rule == "" {
		t.Error("Frames should name the rule that fired")
	}
}

func TestEpisodeIDsAreUnique(t *testing.T) {
	a := New(&scriptedEnv{}, testExpert(t), core.DefaultRunConfig(), quietLogger())
	b := New(&scriptedEnv{}, testExpert(t), core.DefaultRunConfig(), quietLogger())
	if a.ID() == b.ID() {
		t.Error("Two sessions got the same episode ID")
	}
	if a.ID() == "" {
		t.Error("Episode ID should not be empty")
	}
}

func TestPersistWritesResultsAndStore(t *testing.T) {
	tmpDir := t.TempDir()
	resultsPath := filepath.Join(tmpDir, "results.json")

	store, err := storage.Open(filepath.Join(tmpDir, "episodes.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	r := Result{
		EpisodeID: "test-episode",
		Outcome:   OutcomeClear,
		Decisions: 12,
		Stats:     emulator.Stats{Score: 1200, Coins: 2, WorldX: 157, Ticks: 900, Lives: 1},
	}
	if err := Persist(r, resultsPath, store); err != nil {
		t.Fatalf("Persist() failed: %v", err)
	}

	saved, err := store.RecentEpisodes(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(saved) != 1 || saved[0].ID != "test-episode" || saved[0].Score != 1200 {
		t.Errorf("Stored episode = %+v", saved)
	}
}

func TestFlatCourseRunsToClear(t *testing.T) {
	cfg := config.DefaultSimConfig()
	cfg.Level.Length = 60
	cfg.Level.Goombas = 0
	cfg.Level.Pipes = 0
	cfg.Level.Ledges = 0
	cfg.Level.Gaps = 0

	env := sim.New(cfg, 1)
	run := core.DefaultRunConfig()
	run.Seed = 1
	s := New(env, testExpert(t), run, quietLogger())

	r := s.Run()

	if r.Outcome != OutcomeClear {
		t.Fatalf("Flat course outcome = %q, expected %q (stats %+v)", r.Outcome, OutcomeClear, r.Stats)
	}
	if r.Stats.Score < 1000 {
		t.Errorf("Clear bonus missing from score: %d", r.Stats.Score)
	}
	if r.Stats.WorldX < 50 {
		t.Errorf("WorldX = %d, expected most of the course", r.Stats.WorldX)
	}
}

func TestSimRunIsDeterministic(t *testing.T) {
	run := core.DefaultRunConfig()
	run.Seed = 42

	play := func() Result {
		env := sim.New(config.DefaultSimConfig(), run.Seed)
		s := New(env, testExpert(t), run, quietLogger())
		return s.Run()
	}

	a, b := play(), play()
	if a.Outcome != b.Outcome || a.Decisions != b.Decisions || a.Stats != b.Stats {
		t.Errorf("Same seed diverged:\n  %+v\n  %+v", a, b)
	}
}
