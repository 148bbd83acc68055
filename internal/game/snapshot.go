package game

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// Snapshot captures everything needed to persist and resume a session.
// The undo history is deliberately not part of it; a resumed game starts
// with an empty history.
type Snapshot struct {
	Board engine.Grid
	Score int
	Won   bool
}

// Snapshot returns the current session state with an independent board copy.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Board: g.board.Clone(),
		Score: g.score,
		Won:   g.won,
	}
}

// Restore replaces the session state with a previously taken snapshot.
// The snapshot board must be rectangular and match the configured
// dimensions; the undo history is cleared.
func (g *Game) Restore(s Snapshot) error {
	if !engine.Validate(s.Board) {
		return fmt.Errorf("game: restore: snapshot board is not rectangular")
	}
	if len(s.Board) != g.cfg.Rows || len(s.Board[0]) != g.cfg.Cols {
		return fmt.Errorf("game: restore: snapshot is %dx%d, session is %s",
			len(s.Board), len(s.Board[0]), g.BoardKey())
	}

	g.board = s.Board.Clone()
	g.score = s.Score
	g.won = s.Won
	g.undo = nil
	return nil
}
