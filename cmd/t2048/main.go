// t2048 is a terminal version of the 2048 sliding-tile puzzle.
//
// Usage:
//
//	t2048 play               - Play in the current terminal
//	t2048 serve              - Start SSH server for remote play
//	t2048 scores             - Show recent scores and the best score
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.t2048/t2048.db)
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
	Use:   "t2048",
	Short: "t2048 - Play 2048 in your terminal",
	Long: `t2048 is a terminal version of the 2048 sliding-tile puzzle.

Slide tiles with the arrow keys; equal tiles merge when they collide.
Build a 2048 tile to win, undo your last moves with U, and your game
is saved automatically so you can pick it up later.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View recent scores

Examples:
  t2048 play
  t2048 play --difficulty hard
  t2048 serve --ssh :2222
  t2048 scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.t2048/t2048.db", "Path to game database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
