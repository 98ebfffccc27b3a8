package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-waverunner/internal/config"
	"github.com/vovakirdan/tui-waverunner/internal/core"
	"github.com/vovakirdan/tui-waverunner/internal/platform/tui"
	"github.com/vovakirdan/tui-waverunner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Ride the wave",
	Long: `Start a run.

Controls:
  Space/W/Up - Jump (tap twice within the window for a high jump)
  F          - Fire a harpoon
  E          - Release the tidal pulse (needs a full gauge)
  G          - Surge strike (consumes one relic)
  P/Esc      - Pause
  R          - Restart
  Q/Ctrl+C   - Quit
  Ctrl+S     - Save a screenshot

Difficulty options:
  easy   - More hearts, slower tide
  normal - The standard tuning
  hard   - Fewer hearts, faster tide
  fixed  - The stage curve never tightens the spawn interval

Examples:
  waverunner play
  waverunner play --difficulty hard
  waverunner play --seed 42
  waverunner play --config ./my-tuning.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadGameConfig resolves the tuning config from the flag-selected sources.
func loadGameConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		if !config.ValidPreset(preset) {
			return config.Config{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}

	return cfg, nil
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the projection
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(gameCfg, rt, store)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
