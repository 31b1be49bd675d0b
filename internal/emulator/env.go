// Package emulator defines the boundary to the game environment.
// The environment is treated as a black box: it exposes a tile-grid
// snapshot of the screen, raw button injection, a tick primitive and a
// game-over flag. The built-in simulator lives in the sim subpackage;
// a real emulator binding implements the same interface.
package emulator

import "github.com/rish-shuk/mario-expert/internal/core"

// Stats carries the running game statistics reported by the environment.
// Serialized as-is into results.json at episode end.
type Stats struct {
	Score  int `json:"score"`
	Coins  int `json:"coins"`
	WorldX int `json:"world_x"` // Rightmost column the player has reached
	Lives  int `json:"lives"`
	Ticks  int `json:"ticks"` // Emulated ticks elapsed
}

// Env is the emulator wrapper the agent plays against.
// All calls are synchronous; the caller owns the loop.
type Env interface {
	// Reset puts the environment back at the start of the level.
	Reset()

	// GameArea returns the current screen as a tile-grid snapshot.
	// The returned grid is a copy; mutating it does not affect the game.
	GameArea() core.Grid

	// Stats returns the current game statistics.
	Stats() Stats

	// Press injects a button-down event. The button stays held until
	// Release is called for it.
	Press(b core.Button)

	// Release injects a button-up event.
	Release(b core.Button)

	// Tick advances the emulation by one tick with the current input held.
	Tick()

	// GameOver reports whether the episode has ended (death or clear).
	GameOver() bool
}
