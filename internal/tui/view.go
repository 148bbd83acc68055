package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// View renders the whole screen: header, board, banner, and help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.viewHeader(),
		m.viewBoard(),
		m.viewBanner(),
		m.help.View(m.keys),
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// viewHeader renders the title with the score and best boxes.
func (m Model) viewHeader() string {
	title := titleStyle.Render(fmt.Sprintf(" %d ", m.game.Target()))
	score := scoreBoxStyle.Render(
		scoreLabelStyle.Render("score ") + strconv.Itoa(m.game.Score()),
	)
	best := scoreBoxStyle.Render(
		scoreLabelStyle.Render("best ") + strconv.Itoa(m.best),
	)
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", score, " ", best)
}

// viewBoard renders the grid as styled tiles.
func (m Model) viewBoard() string {
	board := m.game.Board()

	rows := make([]string, 0, len(board))
	for _, row := range board {
		cells := make([]string, 0, len(row))
		for _, v := range row {
			if v == 0 {
				cells = append(cells, emptyTileStyle.Render("·"))
				continue
			}
			cells = append(cells, tileStyle(v).Render(strconv.Itoa(v)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// viewBanner renders the win or game-over banner, or a spacer line so the
// layout does not jump when a banner appears.
func (m Model) viewBanner() string {
	switch {
	case m.game.Over():
		return bannerOverStyle.Render(fmt.Sprintf("game over · max tile %d", m.game.MaxTile())) +
			"\n" + hintStyle.Render("press r to play again")
	case m.winBannerVisible():
		return bannerWinStyle.Render(fmt.Sprintf("you reached %d!", m.game.Target())) +
			"\n" + hintStyle.Render("press c to keep playing")
	default:
		return ""
	}
}
