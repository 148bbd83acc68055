// Package game runs a 2048 session around the pure engine: tile spawning,
// score keeping, win and game-over detection, and the undo history. The
// engine stays agnostic of all of this; everything random or stateful
// lives here.
package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// Defaults applied by New when a Config field is zero.
const (
	DefaultRows          = 4
	DefaultCols          = 4
	DefaultTarget        = 2048
	DefaultSpawnFourProb = 0.10
)

// Config holds the session parameters. The winning tile is a product
// constant, not an engine property, so it is configured here.
type Config struct {
	Rows          int
	Cols          int
	Target        int     // tile value that counts as a win
	SpawnFourProb float64 // probability a spawned tile is 4 instead of 2
	UndoDepth     int     // max undo snapshots kept, 0 = unbounded
}

// normalize fills in defaults for zero-valued fields.
func (c Config) normalize() Config {
	if c.Rows <= 0 {
		c.Rows = DefaultRows
	}
	if c.Cols <= 0 {
		c.Cols = DefaultCols
	}
	if c.Target <= 0 {
		c.Target = DefaultTarget
	}
	if c.SpawnFourProb <= 0 {
		c.SpawnFourProb = DefaultSpawnFourProb
	}
	return c
}

// snapshot is one undo history entry.
type snapshot struct {
	board engine.Grid
	score int
}

// Game is a single 2048 session. Not safe for concurrent use; the UI layer
// sequences moves one at a time.
type Game struct {
	cfg Config
	rng *rand.Rand

	board engine.Grid
	score int
	won   bool // target tile reached at some point this session
	undo  []snapshot
}

// New creates a session with the given config and RNG seed and deals the
// two starting tiles. The same config and seed always produce the same
// starting board.
func New(cfg Config, seed int64) *Game {
	g := &Game{cfg: cfg.normalize()}
	g.Reset(seed)
	return g
}

// Reset restarts the session with a fresh board and the given seed.
func (g *Game) Reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.board = engine.NewGrid(g.cfg.Rows, g.cfg.Cols)
	g.score = 0
	g.won = false
	g.undo = nil

	// Classic setup: two starting tiles.
	g.spawnTile()
	g.spawnTile()
}

// Move applies one move in the given direction. Returns true if the board
// changed; a rejected move spawns nothing and leaves the undo history
// untouched. The error is only non-nil on an engine contract violation,
// which cannot happen for boards built by this package.
func (g *Game) Move(dir engine.Direction) (bool, error) {
	if g.Over() {
		return false, nil
	}

	res, err := engine.Move(g.board, dir)
	if err != nil {
		return false, fmt.Errorf("game: move %v: %w", dir, err)
	}
	if !res.Moved {
		return false, nil
	}

	g.pushUndo()
	g.board = res.Grid
	g.score += res.Gained
	g.spawnTile()

	if !g.won && MaxTile(g.board) >= g.cfg.Target {
		g.won = true
	}
	return true, nil
}

// pushUndo records the pre-move board and score, trimming the history to
// the configured depth.
func (g *Game) pushUndo() {
	g.undo = append(g.undo, snapshot{board: g.board.Clone(), score: g.score})
	if g.cfg.UndoDepth > 0 && len(g.undo) > g.cfg.UndoDepth {
		g.undo = g.undo[len(g.undo)-g.cfg.UndoDepth:]
	}
}

// Undo restores the state before the most recent applied move. Returns
// false if there is nothing to undo.
func (g *Game) Undo() bool {
	if len(g.undo) == 0 {
		return false
	}
	last := g.undo[len(g.undo)-1]
	g.undo = g.undo[:len(g.undo)-1]
	g.board = last.board
	g.score = last.score
	return true
}

// CanUndo returns true if an undo snapshot is available.
func (g *Game) CanUndo() bool {
	return len(g.undo) > 0
}

// spawnTile places a 2 (or, with the configured probability, a 4) on a
// uniformly random empty cell. A full board is left unchanged.
func (g *Game) spawnTile() {
	empty := EmptyCells(g.board)
	if len(empty) == 0 {
		return
	}
	cell := empty[g.rng.Intn(len(empty))]

	value := 2
	if g.rng.Float64() < g.cfg.SpawnFourProb {
		value = 4
	}
	g.board[cell.Y][cell.X] = value
}

// Board returns a copy of the current board; callers cannot reach the
// session's own grid through it.
func (g *Game) Board() engine.Grid {
	return g.board.Clone()
}

// Score returns the cumulative score.
func (g *Game) Score() int {
	return g.score
}

// Won returns true once the target tile has been reached this session.
// Play may continue afterwards.
func (g *Game) Won() bool {
	return g.won
}

// Over returns true when no move is possible anymore.
func (g *Game) Over() bool {
	return !CanMove(g.board)
}

// MaxTile returns the highest tile currently on the board.
func (g *Game) MaxTile() int {
	return MaxTile(g.board)
}

// Target returns the configured winning tile value.
func (g *Game) Target() int {
	return g.cfg.Target
}

// BoardKey returns the fixed identifier used to key scores and saved games
// for this board size, e.g. "4x4".
func (g *Game) BoardKey() string {
	return fmt.Sprintf("%dx%d", g.cfg.Rows, g.cfg.Cols)
}

// Config returns the normalized session config.
func (g *Game) Config() Config {
	return g.cfg
}
