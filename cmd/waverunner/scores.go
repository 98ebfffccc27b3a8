package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-waverunner/internal/platform/tui"
	"github.com/vovakirdan/tui-waverunner/internal/storage"
)

var flagPlainScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best runs in an interactive table.

Tab toggles between best and most recent runs. With --plain the top 10
runs are printed to stdout instead.

Examples:
  waverunner scores
  waverunner scores --plain`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlainScores, "plain", false, "Print the top runs instead of the interactive table")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlainScores {
		printScores(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing run history: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the top runs and aggregate stats to stdout.
func printScores(store *storage.Store) {
	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'waverunner play' to set the first score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-7s  %-5s  %s\n", "Rank", "Score", "Combo", "Stage", "Date")
	fmt.Printf("  %-4s  %-10s  %-7s  %-5s  %s\n", "----", "-----", "-----", "-----", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  x%-6d  %-5d  %s\n", i+1, r.Score, r.BestCombo, r.Stage, dateStr)
	}

	fmt.Println()
	if stats, statsErr := store.GetStats(); statsErr == nil {
		fmt.Printf("Runs: %d   Best: %d   Average: %.0f   Deepest stage: %d\n",
			stats.RunsCount, stats.HighScore, stats.AvgScore, stats.BestStage)
	}
}
