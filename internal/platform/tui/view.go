package tui

import (
	"fmt"

	"github.com/rish-shuk/mario-expert/internal/core"
	"github.com/rish-shuk/mario-expert/internal/emulator"
)

// tileGlyph maps a tile code to its terminal representation.
func tileGlyph(t core.Tile) core.Cell {
	switch t {
	case core.TileMario:
		return core.Cell{Rune: 'M', Color: core.ColorBrightYellow}
	case core.TileGoomba:
		return core.Cell{Rune: 'g', Color: core.ColorBrightRed}
	case core.TilePipe:
		return core.Cell{Rune: 'H', Color: core.ColorBrightGreen}
	case core.TileBlock:
		return core.Cell{Rune: '#', Color: core.ColorOrange}
	case core.TileGround:
		return core.Cell{Rune: '=', Color: core.ColorGray}
	case core.TileCoin:
		return core.Cell{Rune: 'o', Color: core.ColorYellow}
	default:
		return core.Cell{Rune: ' ', Color: core.ColorDefault}
	}
}

// drawGrid renders the tile grid into the screen buffer inside a box
// anchored at the top-left corner.
func drawGrid(s *core.Screen, grid core.Grid) {
	box := core.NewRect(0, 0, grid.Width()+2, grid.Height()+2)
	s.DrawBox(box)
	for y := range grid.Height() {
		for x := range grid.Width() {
			s.SetCell(x+1, y+1, tileGlyph(grid.At(x, y)))
		}
	}
}

// drawHUD renders episode statistics below the grid box.
func drawHUD(s *core.Screen, grid core.Grid, stats emulator.Stats, rule string, decisions int) {
	y := grid.Height() + 2
	s.DrawTextColored(1, y, fmt.Sprintf("score %d", stats.Score), core.ColorBrightWhite)
	s.DrawText(1, y+1, fmt.Sprintf("coins %d  x %d  ticks %d  decisions %d",
		stats.Coins, stats.WorldX, stats.Ticks, decisions))
	if rule != "" {
		s.DrawTextColored(1, y+2, "rule: "+rule, core.ColorCyan)
	}
}

// drawBanner renders a centered status line over the grid.
func drawBanner(s *core.Screen, grid core.Grid, text string, c core.Color) {
	y := grid.Height() / 2
	x := core.Max(1, (grid.Width()+2-len(text))/2)
	s.DrawTextColored(x, y, text, c)
}

// outcomeBanner picks the banner text and color for a finished episode.
func outcomeBanner(outcome string) (string, core.Color) {
	switch outcome {
	case "clear":
		return " LEVEL CLEAR ", core.ColorBrightGreen
	case "death":
		return " GAME OVER ", core.ColorBrightRed
	default:
		return " OUT OF TICKS ", core.ColorYellow
	}
}
