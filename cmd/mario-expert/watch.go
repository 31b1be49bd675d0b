package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rish-shuk/mario-expert/internal/config"
	"github.com/rish-shuk/mario-expert/internal/emulator/sim"
	"github.com/rish-shuk/mario-expert/internal/platform/tui"
	"github.com/rish-shuk/mario-expert/internal/storage"
)

var (
	flagWatchConfig    string
	flagWatchSimConfig string
	flagWatchProfile   string
	flagWatchTicks     int
	flagWatchNoStore   bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the agent play in the terminal",
	Long: `Watch the agent play a course live. Each frame shows the tile
grid the agent sees and the rule that fired.

Controls:
  P/Space    - Pause
  R          - Restart (after the episode ends)
  Q/Ctrl+C   - Quit

Examples:
  mario-expert watch
  mario-expert watch --seed 42 --fps 5
  mario-expert watch --profile aggressive`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&flagWatchConfig, "config", "", "Path to custom agent config YAML")
	watchCmd.Flags().StringVar(&flagWatchSimConfig, "sim-config", "", "Path to custom course config YAML")
	watchCmd.Flags().StringVar(&flagWatchProfile, "profile", "", "Agent profile: cautious, normal, aggressive")
	watchCmd.Flags().IntVar(&flagWatchTicks, "ticks", 0, "Tick budget for the episode (0 = default)")
	watchCmd.Flags().BoolVar(&flagWatchNoStore, "no-store", false, "Do not save episodes to the database")
}

func runWatch(_ *cobra.Command, _ []string) error {
	logger := newLogger()

	expert, expertCfg, err := buildExpert(flagWatchConfig, flagWatchProfile, logger)
	if err != nil {
		return err
	}

	simCfg, err := config.LoadSim(flagWatchSimConfig)
	if err != nil {
		return err
	}

	seed := resolveSeed()
	runCfg := buildRunConfig(seed, expertCfg.Durations.ActFreq, flagWatchTicks)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var store *storage.Store
	if !flagWatchNoStore {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open episodes database", "error", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	env := sim.New(simCfg, seed)
	if err := tui.Watch(env, expert, runCfg, store, logger, width, height); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	return nil
}
