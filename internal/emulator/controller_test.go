package emulator

import (
	"testing"

	"github.com/rish-shuk/mario-expert/internal/core"
)

// fakeEnv records the press/tick/release sequence for assertions.
type fakeEnv struct {
	events       []string
	ticks        int
	gameOverAt   int // Tick count at which GameOver flips (0 = never)
	held         map[core.Button]bool
	ticksPressed map[core.Button]int // Ticks elapsed while each button was held
}

func newFakeEnv() *fakeEnv {
	return &fakeEnv{
		held:         make(map[core.Button]bool),
		ticksPressed: make(map[core.Button]int),
	}
}

func (f *fakeEnv) Reset()              { f.events = append(f.events, "reset") }
func (f *fakeEnv) GameArea() core.Grid { return core.NewGrid(1, 1) }
func (f *fakeEnv) Stats() Stats        { return Stats{Ticks: f.ticks} }

func (f *fakeEnv) Press(b core.Button) {
	f.events = append(f.events, "press:"+b.String())
	f.held[b] = true
}

func (f *fakeEnv) Release(b core.Button) {
	f.events = append(f.events, "release:"+b.String())
	f.held[b] = false
}

func (f *fakeEnv) Tick() {
	f.ticks++
	f.events = append(f.events, "tick")
	for b, held := range f.held {
		if held {
			f.ticksPressed[b]++
		}
	}
}

func (f *fakeEnv) GameOver() bool {
	return f.gameOverAt > 0 && f.ticks >= f.gameOverAt
}

func TestControllerHoldsForDuration(t *testing.T) {
	env := newFakeEnv()
	ctrl := NewController(env, 10)

	ctrl.Run(core.Press(core.DurationLong, core.ButtonRight, core.ButtonA))

	if env.ticks != 10 {
		t.Errorf("Ticks = %d, expected 10", env.ticks)
	}
	if env.ticksPressed[core.ButtonRight] != 10 {
		t.Errorf("Right held for %d ticks, expected 10", env.ticksPressed[core.ButtonRight])
	}
	if env.ticksPressed[core.ButtonA] != 10 {
		t.Errorf("A held for %d ticks, expected 10", env.ticksPressed[core.ButtonA])
	}
	if env.held[core.ButtonRight] || env.held[core.ButtonA] {
		t.Error("All buttons should be released after the action")
	}
}

func TestControllerPressTickReleaseOrder(t *testing.T) {
	env := newFakeEnv()
	ctrl := NewController(env, 10)

	ctrl.Run(core.Press(core.DurationShort, core.ButtonA))

	expected := []string{"press:A", "tick", "release:A"}
	if len(env.events) != len(expected) {
		t.Fatalf("Events = %v, expected %v", env.events, expected)
	}
	for i, ev := range expected {
		if env.events[i] != ev {
			t.Errorf("Event[%d] = %q, expected %q", i, env.events[i], ev)
		}
	}
}

func TestControllerWaitAdvancesActFreq(t *testing.T) {
	env := newFakeEnv()
	ctrl := NewController(env, 7)

	ctrl.Run(core.Wait())

	if env.ticks != 7 {
		t.Errorf("Ticks = %d, expected 7", env.ticks)
	}
	for _, ev := range env.events {
		if ev != "tick" {
			t.Errorf("Wait should only tick, saw %q", ev)
		}
	}
}

func TestControllerReleasesOnGameOver(t *testing.T) {
	env := newFakeEnv()
	env.gameOverAt = 3
	ctrl := NewController(env, 10)

	ctrl.Run(core.Press(core.DurationLong, core.ButtonRight))

	if env.ticks != 3 {
		t.Errorf("Ticks = %d, expected hold cut short at 3", env.ticks)
	}
	if env.held[core.ButtonRight] {
		t.Error("Button must be released when the game ends mid-hold")
	}
}

func TestControllerActFreqFloor(t *testing.T) {
	ctrl := NewController(newFakeEnv(), 0)
	if ctrl.ActFreq() != 10 {
		t.Errorf("ActFreq = %d, expected fallback 10", ctrl.ActFreq())
	}
}
