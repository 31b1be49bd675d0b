package core

import (
	"fmt"
	"strings"
)

// Button represents a physical pad button the agent can press.
// The environment maps these onto its own press/release events.
type Button int

const (
	ButtonDown Button = iota
	ButtonLeft
	ButtonRight
	ButtonUp
	ButtonA
	ButtonB
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonDown:
		return "Down"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonUp:
		return "Up"
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	default:
		return "Unknown"
	}
}

// Duration is the number of emulated ticks a button is held before release.
type Duration int

// Standard hold durations.
const (
	DurationShort  Duration = 1
	DurationMedium Duration = 5
	DurationLong   Duration = 10

	// DurationNone marks an action that advances time without pressing
	// anything; the controller ticks for its configured act frequency.
	DurationNone Duration = -1
)

// Action is what a decision produces: a set of simultaneously pressed
// buttons and how long to hold them.
type Action struct {
	Buttons  []Button `json:"buttons,omitempty"`
	Duration Duration `json:"duration"`
}

// Press builds an action holding the given buttons for the duration.
func Press(d Duration, buttons ...Button) Action {
	return Action{Buttons: buttons, Duration: d}
}

// Wait builds the "advance time only" action.
func Wait() Action {
	return Action{Duration: DurationNone}
}

// IsWait reports whether the action presses nothing.
func (a Action) IsWait() bool {
	return a.Duration == DurationNone || len(a.Buttons) == 0
}

// String formats the action for logs, e.g. "Right+A for 10 ticks".
func (a Action) String() string {
	if a.IsWait() {
		return "Wait"
	}
	names := make([]string, len(a.Buttons))
	for i, b := range a.Buttons {
		names[i] = b.String()
	}
	return fmt.Sprintf("%s for %d ticks", strings.Join(names, "+"), a.Duration)
}
