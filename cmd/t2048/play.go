package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
	"github.com/vovakirdan/tui-2048/internal/tui"
)

// saveSlot is the fixed saved-game identifier for local play.
const saveSlot = "default"

var (
	flagConfig string
	flagRows   int
	flagCols   int
	flagTarget int
	flagNew    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in the current terminal. An unfinished game is
resumed automatically; pass --new to discard it and start over.

Controls:
  Arrows/WASD/hjkl - Slide tiles
  u                - Undo last move
  r                - Restart
  q/Ctrl+C         - Quit (game is saved)

Examples:
  t2048 play
  t2048 play --new
  t2048 play --rows 5 --cols 5 --target 4096
  t2048 play --config ./my-t2048.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom config YAML")
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Board rows (overrides config)")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Board columns (overrides config)")
	playCmd.Flags().IntVar(&flagTarget, "target", 0, "Winning tile value (overrides config)")
	playCmd.Flags().BoolVar(&flagNew, "new", false, "Discard any saved game and start fresh")
}

func runPlay(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: t2048 play needs an interactive terminal")
		os.Exit(1)
	}

	gameCfg, err := resolveGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := game.New(gameCfg, seed)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	if store != nil {
		if flagNew {
			//nolint:errcheck // Best-effort cleanup
			store.DeleteGame(saveSlot)
		} else if saved, loadErr := store.LoadGame(saveSlot); loadErr == nil && saved != nil {
			// Resume only when the saved board matches the configured size.
			//nolint:errcheck // A mismatched save simply starts a new game
			g.Restore(game.Snapshot{Board: saved.Board, Score: saved.Score, Won: saved.Won})
		}
	}

	runErr := tui.Run(g, store, saveSlot)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// resolveGameConfig loads the YAML config and applies flag overrides.
func resolveGameConfig() (game.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return game.Config{}, err
	}

	if flagRows > 0 {
		cfg.Board.Rows = flagRows
	}
	if flagCols > 0 {
		cfg.Board.Cols = flagCols
	}
	if flagTarget > 0 {
		cfg.Rules.Target = flagTarget
	}
	if err := cfg.Validate(); err != nil {
		return game.Config{}, err
	}
	return cfg.GameConfig(), nil
}
