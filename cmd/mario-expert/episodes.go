package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rish-shuk/mario-expert/internal/platform/tui"
	"github.com/rish-shuk/mario-expert/internal/storage"
)

var (
	flagEpisodesTop   int
	flagEpisodesPlain bool
)

var episodesCmd = &cobra.Command{
	Use:   "episodes",
	Short: "Browse past episode results",
	Long: `Browse episodes recorded in the database. By default an
interactive table opens; --plain prints to stdout instead.

Examples:
  mario-expert episodes
  mario-expert episodes --plain
  mario-expert episodes --plain --top 5`,
	RunE: runEpisodes,
}

func init() {
	episodesCmd.Flags().IntVar(&flagEpisodesTop, "top", 10, "Number of episodes to print with --plain")
	episodesCmd.Flags().BoolVar(&flagEpisodesPlain, "plain", false, "Print a plain table instead of the interactive browser")
}

func runEpisodes(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open episodes database: %w", err)
	}
	defer store.Close()

	if flagEpisodesPlain {
		return printEpisodes(store)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.Browse(store, width, height)
}

func printEpisodes(store *storage.Store) error {
	episodes, err := store.TopEpisodes(flagEpisodesTop)
	if err != nil {
		return err
	}

	if len(episodes) == 0 {
		fmt.Println("No episodes recorded yet.")
		fmt.Println()
		fmt.Println("Run 'mario-expert play' to record the first one!")
		return nil
	}

	fmt.Println("Top Episodes")
	fmt.Println()
	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %-9s  %s\n", "Rank", "Score", "Outcome", "Dist", "Decisions", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %-9s  %s\n", "----", "-----", "-------", "----", "---------", "----")
	for i, e := range episodes {
		fmt.Printf("  %-4d  %-8d  %-8s  %-6d  %-9d  %s\n",
			i+1, e.Score, e.Outcome, e.WorldX, e.Decisions,
			e.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.BestScore()
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}
