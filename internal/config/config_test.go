package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadExpertEmbeddedDefault(t *testing.T) {
	cfg, err := LoadExpert("")
	if err != nil {
		t.Fatalf("LoadExpert() failed: %v", err)
	}

	if cfg.Rules.Lookahead != 2 {
		t.Errorf("Lookahead = %d, expected 2", cfg.Rules.Lookahead)
	}
	if cfg.Rules.WaitCell.X != 13 || cfg.Rules.WaitCell.Y != 7 {
		t.Errorf("WaitCell = %+v, expected {13 7}", cfg.Rules.WaitCell)
	}
	if cfg.Durations.Long != 10 || cfg.Durations.Medium != 5 {
		t.Errorf("Durations = %+v", cfg.Durations)
	}
}

func TestLoadExpertCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "expert.yaml")

	yaml := `
rules:
  lookahead: 4
  stomp_row_delta: 2
durations:
  long: 12
  act_freq: 8
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadExpert(path)
	if err != nil {
		t.Fatalf("LoadExpert() failed: %v", err)
	}
	if cfg.Rules.Lookahead != 4 {
		t.Errorf("Lookahead = %d, expected 4", cfg.Rules.Lookahead)
	}
	if cfg.Durations.Long != 12 {
		t.Errorf("Long = %d, expected 12", cfg.Durations.Long)
	}
}

func TestLoadExpertMissingCustomPath(t *testing.T) {
	_, err := LoadExpert("/nonexistent/expert.yaml")
	if err == nil {
		t.Error("LoadExpert() with a bad explicit path should fail")
	}
}

func TestLoadSimEmbeddedDefault(t *testing.T) {
	cfg, err := LoadSim("")
	if err != nil {
		t.Fatalf("LoadSim() failed: %v", err)
	}
	if cfg.Level.ViewWidth != 20 || cfg.Level.ViewHeight != 16 {
		t.Errorf("View = %dx%d, expected 20x16", cfg.Level.ViewWidth, cfg.Level.ViewHeight)
	}
	if cfg.Physics.Gravity <= 0 {
		t.Errorf("Gravity = %v, expected positive", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpImpulse >= 0 {
		t.Errorf("JumpImpulse = %v, expected negative (upward)", cfg.Physics.JumpImpulse)
	}
}

func TestApplyProfile(t *testing.T) {
	tests := []struct {
		name     string
		profile  Profile
		expected int
	}{
		{"cautious looks further", ProfileCautious, 3},
		{"normal unchanged", ProfileNormal, 2},
		{"aggressive looks closer", ProfileAggressive, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultExpertConfig()
			ApplyProfile(&cfg, tc.profile)
			if cfg.Rules.Lookahead != tc.expected {
				t.Errorf("Lookahead = %d, expected %d", cfg.Rules.Lookahead, tc.expected)
			}
		})
	}
}

func TestApplyProfileLookaheadFloor(t *testing.T) {
	cfg := DefaultExpertConfig()
	cfg.Rules.Lookahead = 1
	ApplyProfile(&cfg, ProfileAggressive)
	if cfg.Rules.Lookahead != 1 {
		t.Errorf("Lookahead = %d, should not drop below 1", cfg.Rules.Lookahead)
	}
}

func TestValidProfile(t *testing.T) {
	for _, name := range []string{"cautious", "normal", "aggressive"} {
		if !ValidProfile(name) {
			t.Errorf("ValidProfile(%q) = false", name)
		}
	}
	if ValidProfile("reckless") {
		t.Error("ValidProfile(\"reckless\") = true")
	}
}
