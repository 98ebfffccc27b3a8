// waverunner is a terminal arcade game: ride a procedural wave, harpoon the
// tide's creatures, and chase stage after stage.
//
// Usage:
//
//	waverunner play          - Ride the wave
//	waverunner scores        - Show the run history
//	waverunner serve         - Start SSH server for remote play
//	waverunner config        - Print the default tuning config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.waverunner/waverunner.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "waverunner",
	Short: "WaveRunner - Tidal tactics in your terminal",
	Long: `WaveRunner puts you on a craft riding a living wave. Harpoon the
creatures the tide throws at you, charge the tidal pulse, hoard relics
for the surge strike, and collect the signal buoy to reach the next stage.

Available commands:
  play     - Ride the wave
  scores   - View the run history
  serve    - Start SSH server for remote play
  config   - Print the default tuning config

Examples:
  waverunner play
  waverunner play --difficulty hard
  waverunner serve --ssh :2222
  waverunner scores --plain`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.waverunner/waverunner.db", "Path to run database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
