// Package sim implements a deterministic built-in environment: a small
// scrolling platformer course behind the emulator.Env interface. It
// exists so the agent can be run and tested end to end without an
// external emulator; the same seed and config always produce the same
// episode.
package sim

import (
	"math/rand"

	"github.com/rish-shuk/mario-expert/internal/config"
	"github.com/rish-shuk/mario-expert/internal/core"
	"github.com/rish-shuk/mario-expert/internal/emulator"
)

const (
	startColumn = 2
	clearBonus  = 1000
	stompScore  = 100
	coinScore   = 20
)

// goomba is a patrolling enemy. Goombas walk until they hit a wall or
// a ledge edge, then turn around.
type goomba struct {
	x, y     int
	dir      int // -1 left, +1 right
	moveWait int
	alive    bool
}

// Env is the simulated environment.
type Env struct {
	cfg  config.SimConfig
	seed int64

	lv      *level
	spawns  []goombaSpawn
	goombas []goomba

	// Player state. The player is two tiles tall: the body row is
	// tracked as a float for gravity, the head sits one row above.
	px       int
	pyF      float64
	vy       float64
	grounded bool

	held [6]bool // Indexed by core.Button

	ticks  int
	stomps int
	coins  int
	worldX int

	dead    bool
	cleared bool
}

var _ emulator.Env = (*Env)(nil)

// New creates a simulated environment. Call Reset before use.
func New(cfg config.SimConfig, seed int64) *Env {
	return &Env{cfg: cfg, seed: seed}
}

// Reset regenerates the course from the seed and puts the player at
// the start.
func (e *Env) Reset() {
	if e.cfg.Physics.WalkPeriod < 1 {
		e.cfg.Physics.WalkPeriod = 1
	}
	if e.cfg.Physics.GoombaPeriod < 1 {
		e.cfg.Physics.GoombaPeriod = 1
	}
	rng := rand.New(rand.NewSource(e.seed))
	e.lv, e.spawns = generate(e.cfg.Level, rng)

	e.goombas = e.goombas[:0]
	for _, s := range e.spawns {
		e.goombas = append(e.goombas, goomba{
			x: s.x, y: s.y, dir: -1, alive: true,
			moveWait: e.cfg.Physics.GoombaPeriod,
		})
	}

	groundTop := e.lv.height - e.cfg.Level.GroundRows
	e.px = startColumn
	e.pyF = float64(groundTop - 1)
	e.vy = 0
	e.grounded = true
	e.held = [6]bool{}
	e.ticks = 0
	e.stomps = 0
	e.coins = 0
	e.worldX = e.px
	e.dead = false
	e.cleared = false
}

// Press injects a button-down event.
func (e *Env) Press(b core.Button) {
	if int(b) >= 0 && int(b) < len(e.held) {
		e.held[b] = true
	}
}

// Release injects a button-up event.
func (e *Env) Release(b core.Button) {
	if int(b) >= 0 && int(b) < len(e.held) {
		e.held[b] = false
	}
}

// GameOver reports whether the player died or cleared the course.
func (e *Env) GameOver() bool {
	return e.dead || e.cleared
}

// Stats returns the running game statistics.
func (e *Env) Stats() emulator.Stats {
	score := e.stomps*stompScore + e.coins*coinScore
	if e.cleared {
		score += clearBonus
	}
	lives := 1
	if e.dead {
		lives = 0
	}
	return emulator.Stats{
		Score:  score,
		Coins:  e.coins,
		WorldX: e.worldX,
		Lives:  lives,
		Ticks:  e.ticks,
	}
}

// body returns the player's body row.
func (e *Env) body() int {
	return int(e.pyF)
}

// Tick advances the simulation by one tick with the current input held.
func (e *Env) Tick() {
	if e.GameOver() {
		return
	}
	e.ticks++

	prevBody := e.body()
	e.stepPlayer()
	e.stepGoombas()
	e.resolveContacts(prevBody)

	if e.px > e.worldX {
		e.worldX = e.px
	}
	if e.body() >= e.lv.height {
		e.dead = true
	}
	if e.px >= e.lv.width-3 {
		e.cleared = true
	}
}

// stepPlayer applies held input and gravity to the player.
func (e *Env) stepPlayer() {
	body := e.body()
	head := body - 1

	// Horizontal movement, one column per walk period.
	if e.held[core.ButtonRight] && e.ticks%e.cfg.Physics.WalkPeriod == 0 {
		if !e.lv.solid(e.px+1, head) && !e.lv.solid(e.px+1, body) {
			e.px++
		}
	} else if e.held[core.ButtonLeft] && e.ticks%e.cfg.Physics.WalkPeriod == 0 {
		if e.px > 0 && !e.lv.solid(e.px-1, head) && !e.lv.solid(e.px-1, body) {
			e.px--
		}
	}

	// Jump only from the ground; holding A mid-air does nothing.
	if e.held[core.ButtonA] && e.grounded {
		e.vy = e.cfg.Physics.JumpImpulse
		e.grounded = false
	}

	// Walked off an edge.
	if e.grounded && !e.lv.solid(e.px, e.body()+1) {
		e.grounded = false
		e.vy = 0
	}

	if e.grounded {
		return
	}

	e.vy = core.ClampF(e.vy+e.cfg.Physics.Gravity,
		e.cfg.Physics.JumpImpulse, e.cfg.Physics.MaxFallSpeed)

	oldRow := e.body()
	newF := e.pyF + e.vy
	newRow := int(newF)

	if e.vy > 0 {
		// Falling: stop on the first solid cell the body would enter.
		for r := oldRow + 1; r <= newRow; r++ {
			if e.lv.solid(e.px, r) {
				e.pyF = float64(r - 1)
				e.vy = 0
				e.grounded = true
				return
			}
		}
	} else if e.vy < 0 {
		// Rising: stop when the head would enter a solid cell.
		for r := oldRow - 1; r >= newRow; r-- {
			if e.lv.solid(e.px, r-1) {
				e.pyF = float64(r)
				e.vy = 0
				return
			}
		}
	}
	e.pyF = newF
}

// stepGoombas advances enemy patrols.
func (e *Env) stepGoombas() {
	for i := range e.goombas {
		g := &e.goombas[i]
		if !g.alive {
			continue
		}
		g.moveWait--
		if g.moveWait > 0 {
			continue
		}
		g.moveWait = e.cfg.Physics.GoombaPeriod

		nx := g.x + g.dir
		// Turn at walls and at ledge edges; goombas never fall into gaps.
		if e.lv.solid(nx, g.y) || !e.lv.solid(nx, g.y+1) {
			g.dir = -g.dir
			continue
		}
		g.x = nx
	}
}

// resolveContacts handles goomba collisions and coin pickup.
// prevBody is the player's body row before this tick moved; coming from
// strictly above a goomba counts as a stomp, anything else as a death.
func (e *Env) resolveContacts(prevBody int) {
	body := e.body()
	playerRect := core.NewRect(e.px, body-1, 1, 2)

	for i := range e.goombas {
		g := &e.goombas[i]
		if !g.alive || !playerRect.Contains(g.x, g.y) {
			continue
		}
		if prevBody < g.y {
			// Landed on top: stomp and bounce.
			g.alive = false
			e.stomps++
			e.vy = e.cfg.Physics.JumpImpulse / 2
			e.grounded = false
			continue
		}
		e.dead = true
		return
	}

	for _, y := range []int{body, body - 1} {
		if e.lv.at(e.px, y) == core.TileCoin {
			e.lv.clear(e.px, y)
			e.coins++
		}
	}
}

// GameArea renders the visible window around the camera into a fresh
// grid: static tiles first, then goombas, then the player on top.
func (e *Env) GameArea() core.Grid {
	viewW := e.cfg.Level.ViewWidth
	camX := core.Clamp(e.px-5, 0, e.lv.width-viewW)

	g := core.NewGrid(viewW, e.lv.height)
	for y := 0; y < e.lv.height; y++ {
		for x := 0; x < viewW; x++ {
			g.Set(x, y, e.lv.at(camX+x, y))
		}
	}

	for _, gm := range e.goombas {
		if gm.alive {
			g.Set(gm.x-camX, gm.y, core.TileGoomba)
		}
	}

	body := e.body()
	g.Set(e.px-camX, body-1, core.TileMario)
	g.Set(e.px-camX, body, core.TileMario)

	return g
}
