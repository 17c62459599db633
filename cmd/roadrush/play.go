package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadekit/roadrush/internal/audio"
	"github.com/arcadekit/roadrush/internal/core"
	"github.com/arcadekit/roadrush/internal/games/roadrush"
	"github.com/arcadekit/roadrush/internal/platform/tui"
	"github.com/arcadekit/roadrush/internal/registry"
	"github.com/arcadekit/roadrush/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a run in the current terminal.

Controls:
  W/Up       - Steer up
  S/Down     - Steer down
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  (none)  - Classic: constant road speed
  easy    - Start at lowest difficulty, progresses to max
  normal  - Start at 30% difficulty, progresses to max
  hard    - Start at 70% difficulty with extra obstacles
  fixed   - No progression, stays at config's initial level

Examples:
  roadrush play
  roadrush play --difficulty hard
  roadrush play --config ./my-roadrush.yaml
  roadrush play --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable music and sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Configure the game before creation
	roadrush.SetConfigPath(flagConfig)
	roadrush.SetDifficultyPreset(flagDifficulty)

	// Wire up audio unless muted; fall back to silence when the speaker
	// cannot initialize (headless machines, CI).
	var sound *audio.Manager
	if !flagMute {
		sound = audio.NewManager()
		if err := sound.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", err)
			sound = nil
		}
	}
	if sound != nil {
		roadrush.SetEffects(sound)
		defer sound.Cleanup()
	}

	game, err := registry.Create("roadrush")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, difficultyLabel(flagDifficulty))

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
