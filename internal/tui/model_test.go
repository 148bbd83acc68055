package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/game"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testModel(t *testing.T) Model {
	t.Helper()
	g := game.New(game.Config{Rows: 4, Cols: 4, Target: 2048}, 42)
	return NewModel(g, nil, "default")
}

func TestDirectionKeyAppliesMove(t *testing.T) {
	m := testModel(t)
	if err := m.game.Restore(game.Snapshot{Board: engine.Grid{
		{0, 2, 0, 4},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}}); err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	got := updated.(Model)

	board := got.game.Board()
	if board[0][0] != 2 || board[0][1] != 4 {
		t.Errorf("left arrow did not pack the top row: %v", board[0])
	}
	if !got.game.CanUndo() {
		t.Error("applied move should be undoable")
	}
}

func TestWASDAndVimKeysMapToDirections(t *testing.T) {
	m := testModel(t)

	tests := []struct {
		msg  tea.KeyMsg
		want engine.Direction
	}{
		{keyRune('w'), engine.DirUp},
		{keyRune('s'), engine.DirDown},
		{keyRune('a'), engine.DirLeft},
		{keyRune('d'), engine.DirRight},
		{keyRune('k'), engine.DirUp},
		{keyRune('j'), engine.DirDown},
		{keyRune('h'), engine.DirLeft},
		{keyRune('l'), engine.DirRight},
		{tea.KeyMsg{Type: tea.KeyUp}, engine.DirUp},
		{tea.KeyMsg{Type: tea.KeyDown}, engine.DirDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, engine.DirLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, engine.DirRight},
	}

	for _, tt := range tests {
		dir, ok := m.directionFor(tt.msg)
		if !ok {
			t.Errorf("key %q not mapped to a direction", tt.msg.String())
			continue
		}
		if dir != tt.want {
			t.Errorf("key %q mapped to %v, want %v", tt.msg.String(), dir, tt.want)
		}
	}

	if _, ok := m.directionFor(keyRune('x')); ok {
		t.Error("unbound key should not map to a direction")
	}
}

func TestQuitKeySetsQuitting(t *testing.T) {
	m := testModel(t)

	updated, cmd := m.Update(keyRune('q'))
	got := updated.(Model)

	if !got.quitting {
		t.Error("q should set quitting")
	}
	if cmd == nil {
		t.Error("q should return a quit command")
	}
}

func TestUndoKeyRestoresBoard(t *testing.T) {
	m := testModel(t)
	if err := m.game.Restore(game.Snapshot{Board: engine.Grid{
		{0, 2, 0, 4},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}}); err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}
	before := m.game.Board()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(Model)
	updated, _ = m.Update(keyRune('u'))
	m = updated.(Model)

	if !m.game.Board().Equal(before) {
		t.Errorf("undo did not restore the board: %v", m.game.Board())
	}
}

func TestRestartKeyDealsFreshBoard(t *testing.T) {
	m := testModel(t)

	updated, _ := m.Update(keyRune('r'))
	got := updated.(Model)

	if got.game.Score() != 0 {
		t.Errorf("restart left score at %d", got.game.Score())
	}
	if got.game.CanUndo() {
		t.Error("restart should clear the undo history")
	}
}

func TestWinBannerBlocksMoves(t *testing.T) {
	m := testModel(t)
	if err := m.game.Restore(game.Snapshot{
		Board: engine.Grid{
			{0, 2048, 2, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		},
		Won: true,
	}); err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}
	m.winAcked = false
	before := m.game.Board()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(Model)
	if !m.game.Board().Equal(before) {
		t.Error("moves should be blocked while the win banner is up")
	}

	updated, _ = m.Update(keyRune('c'))
	m = updated.(Model)
	if m.winBannerVisible() {
		t.Error("c should dismiss the win banner")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(Model)
	if m.game.Board().Equal(before) {
		t.Error("moves should work again after dismissing the banner")
	}
}

func TestViewRendersBoardAndScore(t *testing.T) {
	m := testModel(t)

	out := m.View()
	if out == "" {
		t.Fatal("View() returned an empty string")
	}
}

func TestResumedWonGameShowsNoBanner(t *testing.T) {
	g := game.New(game.Config{Rows: 4, Cols: 4, Target: 2048}, 1)
	if err := g.Restore(game.Snapshot{
		Board: engine.Grid{
			{2048, 2, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		},
		Score: 20000,
		Won:   true,
	}); err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}

	m := NewModel(g, nil, "default")
	if m.winBannerVisible() {
		t.Error("resuming an already-won game should not re-show the banner")
	}
}
