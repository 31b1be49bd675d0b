// mario-expert runs a rule-based agent through a side-scrolling
// platformer, reading a symbolic tile grid each decision tick and
// pressing buttons in response.
//
// Usage:
//
//	mario-expert play              - Run a headless episode
//	mario-expert watch             - Watch the agent play in the terminal
//	mario-expert replay <file>     - Play back a recorded episode
//	mario-expert episodes          - Browse past episode results
//	mario-expert serve             - Start SSH server for remote watching
//
// Global flags:
//
//	--seed <value>  - RNG seed for the course (0 = random based on time)
//	--db <path>     - Episodes database path (default: ~/.mario-expert/episodes.db)
//	--fps <rate>    - Decisions per second in the TUI (default: 10)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rish-shuk/mario-expert/internal/agent"
	"github.com/rish-shuk/mario-expert/internal/config"
	"github.com/rish-shuk/mario-expert/internal/core"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagFPS    int
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mario-expert",
	Short: "Rule-based platformer agent for your terminal",
	Long: `mario-expert runs a heuristic agent through a side-scrolling
platformer. Each decision tick the agent reads a symbolic tile grid,
matches it against an ordered set of rules, and presses buttons.

Available commands:
  play      - Run a headless episode and write results
  watch     - Watch the agent play live in the terminal
  replay    - Play back a recorded episode file
  episodes  - Browse past episode results
  serve     - Start SSH server for remote watching

Examples:
  mario-expert play --seed 42 --replay run.jsonl
  mario-expert watch --profile cautious
  mario-expert replay run.jsonl
  mario-expert episodes --top
  mario-expert serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for the course (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mario-expert/episodes.db", "Path to episodes database")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 10, "Decisions per second in the TUI")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log every rule decision")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(episodesCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the process logger honoring --debug.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mario-expert",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// resolveSeed returns the --seed value, or a time-based seed when zero.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// loadExpertConfig loads the agent config, applying an optional
// profile on top.
func loadExpertConfig(customPath, profile string) (config.ExpertConfig, error) {
	cfg, err := config.LoadExpert(customPath)
	if err != nil {
		return cfg, err
	}
	if profile != "" {
		if !config.ValidProfile(profile) {
			return cfg, fmt.Errorf("unknown profile %q (want cautious, normal or aggressive)", profile)
		}
		config.ApplyProfile(&cfg, config.Profile(profile))
	}
	return cfg, nil
}

// buildExpert constructs the agent from flags.
func buildExpert(customPath, profile string, logger *log.Logger) (*agent.Expert, config.ExpertConfig, error) {
	cfg, err := loadExpertConfig(customPath, profile)
	if err != nil {
		return nil, cfg, err
	}
	return agent.New(cfg, logger), cfg, nil
}

// buildRunConfig assembles the per-episode run config from flags.
func buildRunConfig(seed int64, actFreq, maxTicks int) core.RunConfig {
	cfg := core.DefaultRunConfig()
	cfg.Seed = seed
	cfg.TickRate = flagFPS
	if actFreq > 0 {
		cfg.ActFreq = actFreq
	}
	if maxTicks > 0 {
		cfg.MaxTicks = maxTicks
	}
	return cfg
}
