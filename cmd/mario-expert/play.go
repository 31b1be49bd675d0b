package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rish-shuk/mario-expert/internal/config"
	"github.com/rish-shuk/mario-expert/internal/emulator/sim"
	"github.com/rish-shuk/mario-expert/internal/recorder"
	"github.com/rish-shuk/mario-expert/internal/session"
	"github.com/rish-shuk/mario-expert/internal/storage"
)

var (
	flagPlayConfig    string
	flagPlaySimConfig string
	flagPlayProfile   string
	flagPlayResults   string
	flagPlayReplay    string
	flagPlayTicks     int
	flagPlayActFreq   int
	flagPlayNoStore   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run a headless episode",
	Long: `Run the agent through one episode without a UI and write the
final statistics to a results file.

Profile options:
  cautious   - React to hazards one column earlier
  normal     - Default thresholds
  aggressive - React one column later

Examples:
  mario-expert play
  mario-expert play --seed 42 --ticks 5000
  mario-expert play --profile cautious --replay run.jsonl
  mario-expert play --config ./my-expert.yaml --results out/results.json`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayConfig, "config", "", "Path to custom agent config YAML")
	playCmd.Flags().StringVar(&flagPlaySimConfig, "sim-config", "", "Path to custom course config YAML")
	playCmd.Flags().StringVar(&flagPlayProfile, "profile", "", "Agent profile: cautious, normal, aggressive")
	playCmd.Flags().StringVar(&flagPlayResults, "results", "results.json", "Path for the results file (empty = skip)")
	playCmd.Flags().StringVar(&flagPlayReplay, "replay", "", "Record a JSONL replay to this path")
	playCmd.Flags().IntVar(&flagPlayTicks, "ticks", 0, "Tick budget for the episode (0 = default)")
	playCmd.Flags().IntVar(&flagPlayActFreq, "act-freq", 0, "Emulated ticks per decision (0 = from config)")
	playCmd.Flags().BoolVar(&flagPlayNoStore, "no-store", false, "Do not save the episode to the database")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger := newLogger()

	expert, expertCfg, err := buildExpert(flagPlayConfig, flagPlayProfile, logger)
	if err != nil {
		return err
	}

	simCfg, err := config.LoadSim(flagPlaySimConfig)
	if err != nil {
		return err
	}

	seed := resolveSeed()
	runCfg := buildRunConfig(seed, flagPlayActFreq, flagPlayTicks)
	if flagPlayActFreq <= 0 && expertCfg.Durations.ActFreq > 0 {
		runCfg.ActFreq = expertCfg.Durations.ActFreq
	}

	env := sim.New(simCfg, seed)
	sess := session.New(env, expert, runCfg, logger)

	if flagPlayReplay != "" {
		w, err := recorder.Create(flagPlayReplay)
		if err != nil {
			return err
		}
		defer w.Close()
		sess.AttachReplay(w)
	}

	result := sess.Run()

	var store *storage.Store
	if !flagPlayNoStore {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open episodes database", "error", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	if err := session.Persist(result, flagPlayResults, store); err != nil {
		return err
	}

	fmt.Printf("episode %s: %s\n", result.EpisodeID, result.Outcome)
	fmt.Printf("  score %d  coins %d  distance %d  decisions %d  ticks %d\n",
		result.Stats.Score, result.Stats.Coins, result.Stats.WorldX,
		result.Decisions, result.Stats.Ticks)
	if flagPlayResults != "" {
		fmt.Printf("  results written to %s\n", flagPlayResults)
	}
	if flagPlayReplay != "" {
		fmt.Printf("  replay written to %s\n", flagPlayReplay)
	}
	return nil
}
