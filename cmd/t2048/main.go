// t2048 is a terminal 2048: slide tiles, merge equal neighbors, reach the
// target tile.
//
// Usage:
//
//	t2048 play               - Play in the current terminal
//	t2048 scores             - Show high scores for a board size
//	t2048 serve              - Start an SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible tile spawns
//	--db <path>     - Set database path (default: ~/.t2048/t2048.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
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
	Short: "2048 in your terminal",
	Long: `t2048 is a terminal take on the 2048 puzzle: slide tiles with the
arrow keys, merge equal neighbors, and reach the target tile.

Your game is saved automatically, so quitting mid-run and picking it
back up later just works.

Examples:
  t2048 play
  t2048 play --rows 5 --cols 5
  t2048 scores
  t2048 serve --ssh :23234`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.t2048/t2048.db", "Path to the scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
