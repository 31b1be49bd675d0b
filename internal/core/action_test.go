package core

import "testing"

func TestActionString(t *testing.T) {
	tests := []struct {
		name     string
		action   Action
		expected string
	}{
		{"wait", Wait(), "Wait"},
		{"single button", Press(DurationMedium, ButtonRight), "Right for 5 ticks"},
		{"long jump", Press(DurationLong, ButtonRight, ButtonA), "Right+A for 10 ticks"},
		{"empty button set", Action{Duration: DurationLong}, "Wait"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.action.String(); got != tc.expected {
				t.Errorf("String() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestActionIsWait(t *testing.T) {
	if !Wait().IsWait() {
		t.Error("Wait() should report IsWait")
	}
	if Press(DurationShort, ButtonA).IsWait() {
		t.Error("Press() should not report IsWait")
	}
}

func TestButtonString(t *testing.T) {
	names := map[Button]string{
		ButtonDown:  "Down",
		ButtonLeft:  "Left",
		ButtonRight: "Right",
		ButtonUp:    "Up",
		ButtonA:     "A",
		ButtonB:     "B",
	}
	for b, expected := range names {
		if got := b.String(); got != expected {
			t.Errorf("Button(%d).String() = %q, expected %q", b, got, expected)
		}
	}
}
