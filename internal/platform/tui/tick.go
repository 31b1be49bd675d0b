// Package tui provides the Bubble Tea integration: watching the agent
// play live, replaying recorded episodes, and browsing past results.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one agent decision (or replay frame).
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// given rate in decisions per second.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate < 1 {
		tickRate = 1
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
