package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// WatchAction is a viewer control derived from input.
type WatchAction int

const (
	WatchNone WatchAction = iota
	WatchQuit
	WatchPause
	WatchRestart
	WatchStepBack
	WatchStepForward
)

// KeyMapper translates Bubble Tea key messages to viewer actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a viewer action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) WatchAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return WatchQuit
	case "p", " ":
		return WatchPause
	case "r":
		return WatchRestart
	case "left", "h":
		return WatchStepBack
	case "right", "l":
		return WatchStepForward
	}
	return WatchNone
}
