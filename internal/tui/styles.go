package tui

import "github.com/charmbracelet/lipgloss"

// Tile colors follow the familiar 2048 palette: warm beiges for small
// tiles, oranges and reds toward the middle, gold from 2048 up.
var tilePalette = map[int]struct{ bg, fg string }{
	2:    {bg: "#eee4da", fg: "#776e65"},
	4:    {bg: "#ede0c8", fg: "#776e65"},
	8:    {bg: "#f2b179", fg: "#f9f6f2"},
	16:   {bg: "#f59563", fg: "#f9f6f2"},
	32:   {bg: "#f67c5f", fg: "#f9f6f2"},
	64:   {bg: "#f65e3b", fg: "#f9f6f2"},
	128:  {bg: "#edcf72", fg: "#f9f6f2"},
	256:  {bg: "#edcc61", fg: "#f9f6f2"},
	512:  {bg: "#edc850", fg: "#f9f6f2"},
	1024: {bg: "#edc53f", fg: "#f9f6f2"},
	2048: {bg: "#edc22e", fg: "#f9f6f2"},
}

// Tiles beyond 2048 share one style.
var superTile = struct{ bg, fg string }{bg: "#3c3a32", fg: "#f9f6f2"}

const tileWidth = 7

var (
	emptyTileStyle = lipgloss.NewStyle().
			Width(tileWidth).
			Align(lipgloss.Center).
			Padding(1, 0).
			Background(lipgloss.Color("#cdc1b4")).
			Foreground(lipgloss.Color("#cdc1b4"))

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#bbada0")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#edc22e"))

	scoreBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	scoreLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	bannerWinStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 2)

	bannerOverStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("88")).
			Padding(0, 2)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// tileStyle returns the style for a tile of the given value.
func tileStyle(value int) lipgloss.Style {
	colors, ok := tilePalette[value]
	if !ok {
		colors = superTile
	}
	return lipgloss.NewStyle().
		Width(tileWidth).
		Align(lipgloss.Center).
		Padding(1, 0).
		Bold(true).
		Background(lipgloss.Color(colors.bg)).
		Foreground(lipgloss.Color(colors.fg))
}
