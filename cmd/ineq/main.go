// ineq is a terminal arcade of linear-inequality puzzle games.
//
// Usage:
//
//	ineq list              - List available games
//	ineq play <game>       - Play a game
//	ineq menu              - Start menu to pick games interactively
//	ineq serve             - Start SSH server for remote play
//	ineq scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.ineq-arcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/ineqlab/ineq-arcade/internal/games/boundary"
	_ "github.com/ineqlab/ineq-arcade/internal/games/corridor"
	_ "github.com/ineqlab/ineq-arcade/internal/games/region"
	_ "github.com/ineqlab/ineq-arcade/internal/games/systems"
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
	Use:   "ineq",
	Short: "Ineq Arcade - Linear inequality puzzles in your terminal",
	Long: `Ineq Arcade is a terminal-based collection of puzzle games built on
systems of linear inequalities: feasible regions, boundary lines,
region equivalence, and absolute-value corridors.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  ineq list
  ineq play region
  ineq menu
  ineq serve --ssh :2222
  ineq scores region`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ineq-arcade/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
