package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ineqlab/ineq-arcade/internal/core"
	"github.com/ineqlab/ineq-arcade/internal/games/boundary"
	"github.com/ineqlab/ineq-arcade/internal/games/corridor"
	"github.com/ineqlab/ineq-arcade/internal/games/region"
	"github.com/ineqlab/ineq-arcade/internal/games/systems"
	"github.com/ineqlab/ineq-arcade/internal/platform/tui"
	"github.com/ineqlab/ineq-arcade/internal/registry"
	"github.com/ineqlab/ineq-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD - Move / tune
  Tab         - Next handle, row, or band
  T           - Toggle comparator
  +/-         - Adjust constant
  Enter       - Submit
  P           - Pause
  R           - Restart (after the campaign ends)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - All assists on (shading, status, area)
  normal - Shading and status, no area readout
  hard   - No assists

Examples:
  ineq play region
  ineq play boundary --difficulty easy
  ineq play systems --level 2
  ineq play region --config ./my-region.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Level to start from (1-based)")
}

// applyGameFlags forwards the CLI knobs to the selected game package.
func applyGameFlags(gameID string) {
	switch gameID {
	case "region":
		region.SetConfigPath(flagConfig)
		region.SetAssistPreset(flagDifficulty)
		region.SetStartLevel(flagLevel)
	case "boundary":
		boundary.SetConfigPath(flagConfig)
		boundary.SetAssistPreset(flagDifficulty)
		boundary.SetStartLevel(flagLevel)
	case "systems":
		systems.SetConfigPath(flagConfig)
		systems.SetAssistPreset(flagDifficulty)
		systems.SetStartLevel(flagLevel)
	case "corridor":
		corridor.SetConfigPath(flagConfig)
		corridor.SetAssistPreset(flagDifficulty)
		corridor.SetStartLevel(flagLevel)
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'ineq list' to see available games.")
		os.Exit(1)
	}

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

	// Set config path and assists before the game is created
	applyGameFlags(gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
