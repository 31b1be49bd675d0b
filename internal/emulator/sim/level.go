package sim

import (
	"math/rand"

	"github.com/rish-shuk/mario-expert/internal/config"
	"github.com/rish-shuk/mario-expert/internal/core"
)

// level holds the static tiles of the generated course: ground, pipes,
// block ledges, gaps and coins. Dimensions are Length x ViewHeight;
// the visible game area is a sliding window over it.
type level struct {
	width  int
	height int
	tiles  [][]core.Tile
}

// goombaSpawn is a goomba start position produced by generation.
type goombaSpawn struct {
	x, y int
}

// generate builds a deterministic course from the seed.
// The first columns are kept clear so the player always starts on
// open ground, and features never stack on the same column.
func generate(cfg config.LevelConfig, rng *rand.Rand) (*level, []goombaSpawn) {
	lv := &level{
		width:  cfg.Length,
		height: cfg.ViewHeight,
	}
	lv.tiles = make([][]core.Tile, lv.height)
	for y := range lv.tiles {
		lv.tiles[y] = make([]core.Tile, lv.width)
	}

	groundTop := lv.height - cfg.GroundRows
	for y := groundTop; y < lv.height; y++ {
		for x := 0; x < lv.width; x++ {
			lv.tiles[y][x] = core.TileGround
		}
	}

	const startClear = 10
	endClear := lv.width - 6 // Room to land before the goal
	if endClear <= startClear {
		// Course too short for any feature placement: bare ground only.
		return lv, nil
	}
	used := make([]bool, lv.width)
	reserve := func(x, margin int) bool {
		if x-margin < startClear || x+margin >= endClear {
			return false
		}
		for i := x - margin; i <= x+margin; i++ {
			if used[i] {
				return false
			}
		}
		for i := x - margin; i <= x+margin; i++ {
			used[i] = true
		}
		return true
	}

	pick := func(margin int) (int, bool) {
		// Rejection sampling keeps generation deterministic per seed.
		for attempt := 0; attempt < 64; attempt++ {
			x := startClear + rng.Intn(endClear-startClear)
			if reserve(x, margin) {
				return x, true
			}
		}
		return 0, false
	}

	// Pipes: two columns wide, head row depends on height.
	for i := 0; i < cfg.Pipes; i++ {
		x, ok := pick(3)
		if !ok {
			break
		}
		h := cfg.PipeMinHeight
		if cfg.PipeMaxHeight > cfg.PipeMinHeight {
			h += rng.Intn(cfg.PipeMaxHeight - cfg.PipeMinHeight + 1)
		}
		for dy := 1; dy <= h; dy++ {
			lv.tiles[groundTop-dy][x] = core.TilePipe
			lv.tiles[groundTop-dy][x+1] = core.TilePipe
		}
	}

	// Gaps: holes through every ground row.
	for i := 0; i < cfg.Gaps; i++ {
		x, ok := pick(cfg.GapWidth + 2)
		if !ok {
			break
		}
		for dx := 0; dx < cfg.GapWidth; dx++ {
			for y := groundTop; y < lv.height; y++ {
				lv.tiles[y][x+dx] = core.TileEmpty
			}
		}
	}

	// Ledges: a single block floating one row above the player's head,
	// the height the heuristic reads as a hop target.
	for i := 0; i < cfg.Ledges; i++ {
		x, ok := pick(2)
		if !ok {
			break
		}
		lv.tiles[groundTop-3][x] = core.TileBlock
	}

	// Coins sit in the air over open ground; purely decorative to the
	// agent, but they feed the stats.
	for i := 0; i < 6; i++ {
		x, ok := pick(1)
		if !ok {
			break
		}
		lv.tiles[groundTop-3][x] = core.TileCoin
	}

	// Goombas patrol the ground between features.
	var spawns []goombaSpawn
	next := startClear + cfg.GoombaSpacing/2
	for i := 0; i < cfg.Goombas && next < endClear; i++ {
		x := next
		// Nudge off reserved columns so goombas never start inside a pipe.
		for x < endClear && used[x] {
			x++
		}
		if x >= endClear {
			break
		}
		spawns = append(spawns, goombaSpawn{x: x, y: groundTop - 1})
		next = x + cfg.GoombaSpacing
	}

	return lv, spawns
}

// at returns the static tile at level coordinates.
func (l *level) at(x, y int) core.Tile {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return core.TileEmpty
	}
	return l.tiles[y][x]
}

// clear removes a static tile (used when a coin is collected).
func (l *level) clear(x, y int) {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return
	}
	l.tiles[y][x] = core.TileEmpty
}

// solid reports whether the tile blocks movement.
func (l *level) solid(x, y int) bool {
	switch l.at(x, y) {
	case core.TileGround, core.TileBlock, core.TilePipe:
		return true
	}
	return false
}
