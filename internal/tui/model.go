// Package tui provides the Bubble Tea front end: key handling, the lipgloss
// board view, and SSH remote play via Wish. The game is turn-based, so there
// is no simulation tick; every key press drives at most one move.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Model is the Bubble Tea model for a single game session.
type Model struct {
	game  *game.Game
	store *storage.Store // nil when persistence is unavailable
	slot  string         // saved-game slot, e.g. "default" or the SSH user
	keys  KeyMap
	help  help.Model

	width  int
	height int

	best       int  // best score for this board size
	winAcked   bool // win banner dismissed, keep playing
	scoreSaved bool // final score recorded for this game over
	quitting   bool
}

// NewModel creates a model around an existing session. The slot names the
// saved-game row this session persists to.
func NewModel(g *game.Game, store *storage.Store, slot string) Model {
	m := Model{
		game:     g,
		store:    store,
		slot:     slot,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		winAcked: g.Won(), // a resumed already-won game shows no banner
	}
	if store != nil {
		if best, err := store.HighScore(g.BoardKey()); err == nil {
			m.best = best
		}
	}
	if m.best < g.Score() {
		m.best = g.Score()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.persist()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.game.Reset(time.Now().UnixNano())
		m.winAcked = false
		m.scoreSaved = false
		if m.store != nil {
			//nolint:errcheck // Best-effort cleanup, game continues regardless
			m.store.DeleteGame(m.slot)
		}
		return m, nil

	case key.Matches(msg, m.keys.Continue):
		if m.winBannerVisible() {
			m.winAcked = true
		}
		return m, nil

	case key.Matches(msg, m.keys.Undo):
		if m.winBannerVisible() {
			return m, nil
		}
		if m.game.Undo() {
			m.scoreSaved = false
			m.persist()
		}
		return m, nil
	}

	if dir, ok := m.directionFor(msg); ok {
		return m.applyMove(dir)
	}
	return m, nil
}

// directionFor maps a key message to a move direction.
func (m Model) directionFor(msg tea.KeyMsg) (engine.Direction, bool) {
	switch {
	case key.Matches(msg, m.keys.Up):
		return engine.DirUp, true
	case key.Matches(msg, m.keys.Down):
		return engine.DirDown, true
	case key.Matches(msg, m.keys.Left):
		return engine.DirLeft, true
	case key.Matches(msg, m.keys.Right):
		return engine.DirRight, true
	}
	return 0, false
}

// applyMove runs one move and handles scoring and persistence.
func (m Model) applyMove(dir engine.Direction) (tea.Model, tea.Cmd) {
	// The win banner blocks input until dismissed.
	if m.winBannerVisible() {
		return m, nil
	}

	moved, err := m.game.Move(dir)
	if err != nil || !moved {
		// The engine error cannot happen for boards built by the game
		// package; a rejected move simply changes nothing.
		return m, nil
	}

	if m.best < m.game.Score() {
		m.best = m.game.Score()
	}

	if m.game.Over() {
		m.recordFinalScore()
	} else {
		m.persist()
	}
	return m, nil
}

// winBannerVisible reports whether the win banner is currently blocking play.
func (m Model) winBannerVisible() bool {
	return m.game.Won() && !m.winAcked && !m.game.Over()
}

// persist saves the running session to its slot, best effort.
func (m Model) persist() {
	if m.store == nil {
		return
	}
	if m.game.Over() {
		// A finished game is not worth resuming.
		//nolint:errcheck // Best-effort cleanup
		m.store.DeleteGame(m.slot)
		return
	}
	snap := m.game.Snapshot()
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveGame(storage.SavedGame{
		Slot:  m.slot,
		Board: snap.Board,
		Score: snap.Score,
		Won:   snap.Won,
	})
}

// recordFinalScore writes the finished game's score once and drops the
// saved session.
func (m *Model) recordFinalScore() {
	if m.scoreSaved || m.store == nil {
		return
	}
	if m.game.Score() > 0 {
		//nolint:errcheck // Best-effort save
		m.store.SaveScore(m.game.BoardKey(), m.game.Score(), m.game.MaxTile())
	}
	//nolint:errcheck // Best-effort cleanup
	m.store.DeleteGame(m.slot)
	m.scoreSaved = true
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(g *game.Game, store *storage.Store, slot string) error {
	p := tea.NewProgram(
		NewModel(g, store, slot),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
