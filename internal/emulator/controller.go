package emulator

import "github.com/rish-shuk/mario-expert/internal/core"

// Controller executes agent actions against an environment: press the
// buttons, hold them for the action's duration in ticks, release them.
// A Wait action advances time by the act frequency with nothing pressed.
type Controller struct {
	env     Env
	actFreq int
}

// NewController wraps an environment. actFreq is the number of ticks a
// Wait action advances; values below 1 fall back to the default of 10.
func NewController(env Env, actFreq int) *Controller {
	if actFreq < 1 {
		actFreq = 10
	}
	return &Controller{env: env, actFreq: actFreq}
}

// Run executes a single action to completion.
// Buttons are always released, also when the game ends mid-hold, so no
// input leaks into the next decision.
func (c *Controller) Run(action core.Action) {
	if action.IsWait() {
		for i := 0; i < c.actFreq; i++ {
			c.env.Tick()
			if c.env.GameOver() {
				return
			}
		}
		return
	}

	for _, b := range action.Buttons {
		c.env.Press(b)
	}

	for i := 0; i < int(action.Duration); i++ {
		c.env.Tick()
		if c.env.GameOver() {
			break
		}
	}

	for _, b := range action.Buttons {
		c.env.Release(b)
	}
}

// ActFreq returns the configured wait tick count.
func (c *Controller) ActFreq() int {
	return c.actFreq
}
