package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rish-shuk/mario-expert/internal/platform/tui"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Play back a recorded episode",
	Long: `Play back a JSONL replay recorded with 'play --replay'.

Controls:
  Space      - Pause
  Left/Right - Scrub while paused
  R          - Restart from the first frame
  Q/Ctrl+C   - Quit

Examples:
  mario-expert replay run.jsonl
  mario-expert replay run.jsonl --fps 20`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(_ *cobra.Command, args []string) error {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.Replay(args[0], flagFPS, width, height); err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	return nil
}
