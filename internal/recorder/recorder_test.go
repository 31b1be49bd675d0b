package recorder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rish-shuk/mario-expert/internal/core"
)

func sampleGrid() core.Grid {
	g := core.NewGrid(5, 4)
	g.Set(1, 2, core.TileMario)
	g.Set(3, 3, core.TileGoomba)
	return g
}

func TestReplayRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "replay.jsonl")

	w, err := Create(path)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	grid := sampleGrid()
	frames := []Frame{
		{Tick: 0, Rule: "advance", Action: core.Press(core.DurationMedium, core.ButtonRight), Grid: grid.Rows()},
		{Tick: 5, Rule: "stomp-threat", Action: core.Press(core.DurationLong, core.ButtonRight, core.ButtonA), Grid: grid.Rows()},
		{Tick: 15, Rule: "pipe-camper-wait", Action: core.Wait(), Grid: grid.Rows()},
	}
	for _, f := range frames {
		if err := w.WriteFrame(f); err != nil {
			t.Fatalf("WriteFrame() failed: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	got, err := ReadReplay(path)
	if err != nil {
		t.Fatalf("ReadReplay() failed: %v", err)
	}
	if len(got) != len(frames) {
		t.Fatalf("Read %d frames, expected %d", len(got), len(frames))
	}

	if got[1].Rule != "stomp-threat" || got[1].Tick != 5 {
		t.Errorf("Frame[1] = %+v", got[1])
	}
	if len(got[1].Action.Buttons) != 2 {
		t.Errorf("Frame[1] buttons = %v", got[1].Action.Buttons)
	}
	if !core.GridFromRows(got[0].Grid).Equal(grid) {
		t.Error("Grid did not survive the round trip")
	}
	if !got[2].Action.IsWait() {
		t.Error("Wait action did not survive the round trip")
	}
}

func TestCreateMakesParentDirs(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "runs", "nested", "replay.jsonl")

	w, err := Create(path)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	w.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("Replay file was not created: %v", err)
	}
}

func TestReadReplayCorruptLine(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "replay.jsonl")
	if err := os.WriteFile(path, []byte("{\"tick\":0}\nnot-json\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadReplay(path); err == nil {
		t.Error("ReadReplay() should fail on a corrupt line")
	}
}

func TestWriteResults(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out", "results.json")

	stats := map[string]int{"score": 1200, "coins": 3}
	if err := WriteResults(path, stats); err != nil {
		t.Fatalf("WriteResults() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Results file missing: %v", err)
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		t.Error("Results file should be newline-terminated JSON")
	}
}
