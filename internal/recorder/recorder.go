// Package recorder persists what an episode looked like: a JSONL replay
// with one frame per decision tick, and the final stats JSON. Both are
// thin I/O wrappers; the replay plays back in the TUI.
package recorder

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rish-shuk/mario-expert/internal/core"
)

// Frame is one decision tick of a replay: the grid the agent saw, the
// rule that fired and the action taken.
type Frame struct {
	Tick   int           `json:"tick"`
	Rule   string        `json:"rule"`
	Action core.Action   `json:"action"`
	Grid   [][]core.Tile `json:"grid"`
}

// Writer appends frames to a JSONL replay file.
type Writer struct {
	f   *os.File
	buf *bufio.Writer
	enc *json.Encoder
}

// Create opens a replay file for writing, creating parent directories
// as needed.
func Create(path string) (*Writer, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("recorder: cannot create directory %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("recorder: cannot create replay %s: %w", path, err)
	}
	buf := bufio.NewWriter(f)
	return &Writer{f: f, buf: buf, enc: json.NewEncoder(buf)}, nil
}

// WriteFrame appends one frame as a single JSON line.
func (w *Writer) WriteFrame(frame Frame) error {
	if err := w.enc.Encode(frame); err != nil {
		return fmt.Errorf("recorder: cannot write frame: %w", err)
	}
	return nil
}

// Close flushes and closes the replay file.
func (w *Writer) Close() error {
	if err := w.buf.Flush(); err != nil {
		w.f.Close()
		return fmt.Errorf("recorder: cannot flush replay: %w", err)
	}
	return w.f.Close()
}

// ReadReplay loads all frames of a replay file.
func ReadReplay(path string) ([]Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("recorder: cannot open replay %s: %w", path, err)
	}
	defer f.Close()

	var frames []Frame
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var frame Frame
		if err := json.Unmarshal(line, &frame); err != nil {
			return nil, fmt.Errorf("recorder: corrupt replay line %d: %w", len(frames)+1, err)
		}
		frames = append(frames, frame)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("recorder: cannot read replay: %w", err)
	}
	return frames, nil
}

// WriteResults writes the final episode results as indented JSON,
// creating parent directories as needed.
func WriteResults(path string, v any) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("recorder: cannot create directory %s: %w", dir, err)
		}
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("recorder: cannot encode results: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("recorder: cannot write results %s: %w", path, err)
	}
	return nil
}
