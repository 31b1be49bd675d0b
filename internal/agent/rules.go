package agent

import (
	"github.com/rish-shuk/mario-expert/internal/config"
	"github.com/rish-shuk/mario-expert/internal/core"
)

// stompThreatRule fires when a goomba walks in the lane directly ahead:
// within lookahead columns and exactly one row off the player's own.
// The response is a running jump over it.
type stompThreatRule struct {
	r config.RulesConfig
	d durations
}

func (s *stompThreatRule) Name() string { return "stomp-threat" }

func (s *stompThreatRule) Evaluate(obs Observation) (core.Action, bool) {
	for _, g := range obs.Goombas {
		ahead := g.X > obs.Mario.X && g.X <= obs.Mario.X+s.r.Lookahead
		if ahead && core.Abs(obs.Mario.Y-g.Y) == s.r.StompRowDelta {
			return core.Press(s.d.long, core.ButtonRight, core.ButtonA), true
		}
	}
	return core.Action{}, false
}

// pipeCamperWaitRule handles the one spot where jumping is wrong: a
// goomba camped on top of the tall pipe shows the pipe head at a fixed
// screen cell. Advancing time lets it walk off before the vault.
type pipeCamperWaitRule struct {
	r config.RulesConfig
}

func (p *pipeCamperWaitRule) Name() string { return "pipe-camper-wait" }

func (p *pipeCamperWaitRule) Evaluate(obs Observation) (core.Action, bool) {
	if len(obs.Pipes) == 0 {
		return core.Action{}, false
	}
	head := obs.Pipes[0]
	if head.X == p.r.WaitCell.X && head.Y == p.r.WaitCell.Y {
		return core.Wait(), true
	}
	return core.Action{}, false
}

// pipeVaultRule fires when the first pipe head sits exactly lookahead
// columns ahead in the player's own row: a short pipe to clear with a
// running jump.
type pipeVaultRule struct {
	r config.RulesConfig
	d durations
}

func (p *pipeVaultRule) Name() string { return "pipe-vault" }

func (p *pipeVaultRule) Evaluate(obs Observation) (core.Action, bool) {
	if len(obs.Pipes) == 0 {
		return core.Action{}, false
	}
	head := obs.Pipes[0]
	if head.X == obs.Mario.X+p.r.Lookahead && obs.Mario.Y == head.Y {
		return core.Press(p.d.long, core.ButtonRight, core.ButtonA), true
	}
	return core.Action{}, false
}

// pipeClimbRule fires when the player is already at the base of a pipe
// (the head shares the player's column region) and the head is at most
// ClimbRowDelta rows away: a straight jump without forward drift.
type pipeClimbRule struct {
	r config.RulesConfig
	d durations
}

func (p *pipeClimbRule) Name() string { return "pipe-climb" }

func (p *pipeClimbRule) Evaluate(obs Observation) (core.Action, bool) {
	if len(obs.Pipes) == 0 {
		return core.Action{}, false
	}
	head := obs.Pipes[0]
	if head.X == obs.Mario.X+p.r.Lookahead-2 && core.Abs(obs.Mario.Y-head.Y) <= p.r.ClimbRowDelta {
		return core.Press(p.d.long, core.ButtonA), true
	}
	return core.Action{}, false
}

// ledgeHopRule fires when a block ledge is within lookahead columns
// ahead, one row off the player's own: hop onto or over it.
type ledgeHopRule struct {
	r config.RulesConfig
	d durations
}

func (l *ledgeHopRule) Name() string { return "ledge-hop" }

func (l *ledgeHopRule) Evaluate(obs Observation) (core.Action, bool) {
	for _, b := range obs.Blocks {
		ahead := b.X > obs.Mario.X && b.X <= obs.Mario.X+l.r.Lookahead
		if ahead && core.Abs(obs.Mario.Y-b.Y) == l.r.LedgeRowDelta {
			return core.Press(l.d.long, core.ButtonRight, core.ButtonA), true
		}
	}
	return core.Action{}, false
}

// advanceRule is the unconditional default: keep moving right.
type advanceRule struct {
	d durations
}

func (a *advanceRule) Name() string { return "advance" }

func (a *advanceRule) Evaluate(obs Observation) (core.Action, bool) {
	return core.Press(a.d.medium, core.ButtonRight), true
}
