package agent

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/rish-shuk/mario-expert/internal/config"
	"github.com/rish-shuk/mario-expert/internal/core"
)

func newTestExpert() *Expert {
	return New(config.DefaultExpertConfig(), log.New(io.Discard))
}

// testGrid builds a 20x16 grid with the player at the given position.
func testGrid(marioX, marioY int) core.Grid {
	g := core.NewGrid(20, 16)
	g.Set(marioX, marioY, core.TileMario)
	return g
}

func TestGoombaAheadAdjacentRowTriggersJump(t *testing.T) {
	e := newTestExpert()

	g := testGrid(5, 10)
	g.Set(7, 11, core.TileGoomba) // Two columns ahead, one row below

	d := e.ChooseAction(g)
	if d.Rule != "stomp-threat" {
		t.Fatalf("Rule = %q, expected stomp-threat", d.Rule)
	}
	if d.Action.Duration != core.DurationLong {
		t.Errorf("Duration = %d, expected long", d.Action.Duration)
	}
	if len(d.Action.Buttons) != 2 ||
		d.Action.Buttons[0] != core.ButtonRight || d.Action.Buttons[1] != core.ButtonA {
		t.Errorf("Buttons = %v, expected [Right A]", d.Action.Buttons)
	}
}

func TestGoombaOutOfRangeIsIgnored(t *testing.T) {
	e := newTestExpert()

	tests := []struct {
		name         string
		gx, gy       int
		expectedRule string
	}{
		{"behind the player", 3, 11, "advance"},
		{"beyond lookahead", 9, 11, "advance"},
		{"same row", 7, 10, "advance"},
		{"two rows off", 7, 12, "advance"},
		{"adjacent row above", 7, 9, "stomp-threat"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := testGrid(5, 10)
			g.Set(tc.gx, tc.gy, core.TileGoomba)

			d := e.ChooseAction(g)
			if d.Rule != tc.expectedRule {
				t.Errorf("Rule = %q, expected %q", d.Rule, tc.expectedRule)
			}
		})
	}
}

func TestPipeCamperWait(t *testing.T) {
	e := newTestExpert()

	g := testGrid(5, 10)
	g.Set(13, 7, core.TilePipe) // The tall-pipe head cell with a camper on top

	d := e.ChooseAction(g)
	if d.Rule != "pipe-camper-wait" {
		t.Fatalf("Rule = %q, expected pipe-camper-wait", d.Rule)
	}
	if !d.Action.IsWait() {
		t.Errorf("Action = %v, expected Wait", d.Action)
	}
}

func TestPipeVaultSameRow(t *testing.T) {
	e := newTestExpert()

	g := testGrid(5, 10)
	g.Set(7, 10, core.TilePipe) // Lookahead columns ahead, same row

	d := e.ChooseAction(g)
	if d.Rule != "pipe-vault" {
		t.Fatalf("Rule = %q, expected pipe-vault", d.Rule)
	}
	if len(d.Action.Buttons) != 2 {
		t.Errorf("Buttons = %v, expected Right+A", d.Action.Buttons)
	}
}

func TestPipeClimbAtBase(t *testing.T) {
	e := newTestExpert()

	// Lookahead-2 = 0: the pipe head is in the player's own column,
	// two rows up (standing at the base of a tall pipe).
	g := testGrid(5, 10)
	g.Set(5, 8, core.TilePipe)

	d := e.ChooseAction(g)
	if d.Rule != "pipe-climb" {
		t.Fatalf("Rule = %q, expected pipe-climb", d.Rule)
	}
	if len(d.Action.Buttons) != 1 || d.Action.Buttons[0] != core.ButtonA {
		t.Errorf("Buttons = %v, expected [A]", d.Action.Buttons)
	}
}

func TestBlockLedgeTriggersHop(t *testing.T) {
	e := newTestExpert()

	g := testGrid(5, 10)
	g.Set(6, 9, core.TileBlock) // One ahead, one row up

	d := e.ChooseAction(g)
	if d.Rule != "ledge-hop" {
		t.Fatalf("Rule = %q, expected ledge-hop", d.Rule)
	}
}

func TestRulePriorityFirstMatchWins(t *testing.T) {
	e := newTestExpert()

	// Both a goomba and a block qualify; the goomba rule is earlier.
	g := testGrid(5, 10)
	g.Set(7, 11, core.TileGoomba)
	g.Set(6, 9, core.TileBlock)

	d := e.ChooseAction(g)
	if d.Rule != "stomp-threat" {
		t.Errorf("Rule = %q, expected stomp-threat to win priority", d.Rule)
	}
}

func TestEmptyGridAdvances(t *testing.T) {
	e := newTestExpert()

	d := e.ChooseAction(core.NewGrid(20, 16))
	if d.Rule != "advance" {
		t.Fatalf("Rule = %q, expected advance", d.Rule)
	}
	if d.Action.Duration != core.DurationMedium {
		t.Errorf("Duration = %d, expected medium", d.Action.Duration)
	}
	if len(d.Action.Buttons) != 1 || d.Action.Buttons[0] != core.ButtonRight {
		t.Errorf("Buttons = %v, expected [Right]", d.Action.Buttons)
	}
}

func TestDecisionIsStateless(t *testing.T) {
	e := newTestExpert()

	g := testGrid(5, 10)
	g.Set(7, 11, core.TileGoomba)

	first := e.ChooseAction(g)
	for i := 0; i < 5; i++ {
		d := e.ChooseAction(g)
		if d.Rule != first.Rule || d.Action.String() != first.Action.String() {
			t.Fatalf("Decision changed between identical snapshots: %+v vs %+v", d, first)
		}
	}
}

func TestObserveMissingMario(t *testing.T) {
	g := core.NewGrid(20, 16)
	g.Set(4, 4, core.TileGoomba)

	obs := Observe(g)
	if obs.Mario != (core.Position{}) {
		t.Errorf("Mario = %+v, expected zero position when absent", obs.Mario)
	}
	if len(obs.Goombas) != 1 {
		t.Errorf("Goombas = %v, expected one", obs.Goombas)
	}
}

func TestRulesOrder(t *testing.T) {
	e := newTestExpert()
	expected := []string{
		"stomp-threat", "pipe-camper-wait", "pipe-vault",
		"pipe-climb", "ledge-hop", "advance",
	}

	names := e.Rules()
	if len(names) != len(expected) {
		t.Fatalf("Rules() = %v", names)
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("Rules()[%d] = %q, expected %q", i, names[i], name)
		}
	}
}

func TestProfileShiftsReaction(t *testing.T) {
	cfg := config.DefaultExpertConfig()
	config.ApplyProfile(&cfg, config.ProfileCautious)
	e := New(cfg, log.New(io.Discard))

	// Three columns ahead: out of range for the default, in range for cautious.
	g := testGrid(5, 10)
	g.Set(8, 11, core.TileGoomba)

	if d := e.ChooseAction(g); d.Rule != "stomp-threat" {
		t.Errorf("Rule = %q, cautious profile should react a column earlier", d.Rule)
	}
}
