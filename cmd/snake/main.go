// snake is a classic grid snake game for the terminal.
//
// Usage:
//
//	snake play               - Play in the current terminal
//	snake scores             - Show the score history
//	snake serve              - Serve the game over SSH
//
// Global flags:
//
//	--fps <rate>    - Host frame rate (default: 60)
//	--seed <value>  - RNG seed for reproducible games
//	--db <path>     - Scores database path (default: ~/.snake/scores.db)
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
	Use:   "snake",
	Short: "Classic snake in your terminal",
	Long: `Snake is a terminal rendition of the classic grid snake game:
steer the snake, eat food, grow, and don't hit anything.

Available commands:
  play     - Play a game in the current terminal
  scores   - View the score history
  serve    - Start an SSH server for remote play

Examples:
  snake play
  snake play --seed 42
  snake scores
  snake serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Host frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
