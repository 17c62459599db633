// roadrush is a terminal road-dodging game: steer the car up and down,
// avoid oncoming obstacles, and survive as long as you can.
//
// Usage:
//
//	roadrush play            - Play in the current terminal
//	roadrush scores          - Show best runs
//	roadrush serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.roadrush/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/arcadekit/roadrush/internal/games/roadrush"
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
	Use:   "roadrush",
	Short: "Road Rush - Dodge traffic in your terminal",
	Long: `Road Rush is a terminal road-dodging game. Steer your car up and
down to avoid oncoming obstacles; every hit costs health, and leaving
the road ends the run on the spot.

Available commands:
  play     - Play in the current terminal
  scores   - View best runs
  serve    - Start SSH server for remote play

Examples:
  roadrush play
  roadrush play --difficulty hard
  roadrush scores --interactive
  roadrush serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.roadrush/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// difficultyLabel normalizes the preset name for storage and display.
func difficultyLabel(preset string) string {
	if preset == "" {
		return "classic"
	}
	return preset
}
