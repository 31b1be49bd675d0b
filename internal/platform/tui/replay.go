package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rish-shuk/mario-expert/internal/core"
	"github.com/rish-shuk/mario-expert/internal/recorder"
)

// ReplayModel plays back a recorded episode frame by frame. The arrow
// keys scrub while paused.
type ReplayModel struct {
	frames   []recorder.Frame
	cursor   int
	tickRate int
	screen   *core.Screen
	keys     *KeyMapper
	paused   bool
	quitting bool
}

// NewReplayModel creates a playback model for the given frames.
func NewReplayModel(frames []recorder.Frame, tickRate, width, height int) ReplayModel {
	return ReplayModel{
		frames:   frames,
		tickRate: tickRate,
		screen:   core.NewScreen(width, height),
		keys:     NewKeyMapper(),
	}
}

// Init starts playback.
func (m ReplayModel) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and advances playback.
func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keys.MapKey(msg) {
		case WatchQuit:
			m.quitting = true
			return m, tea.Quit
		case WatchPause:
			m.paused = !m.paused
		case WatchStepBack:
			if m.cursor > 0 {
				m.cursor--
			}
		case WatchStepForward:
			if m.cursor < len(m.frames)-1 {
				m.cursor++
			}
		case WatchRestart:
			m.cursor = 0
			m.paused = false
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if !m.paused && m.cursor < len(m.frames)-1 {
			m.cursor++
		}
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

// View renders the current frame.
func (m ReplayModel) View() string {
	if m.quitting {
		return ""
	}
	if len(m.frames) == 0 {
		return "empty replay\n"
	}

	frame := m.frames[m.cursor]
	grid := core.GridFromRows(frame.Grid)

	m.screen.Clear()
	drawGrid(m.screen, grid)

	y := grid.Height() + 2
	m.screen.DrawTextColored(1, y,
		fmt.Sprintf("frame %d/%d  tick %d", m.cursor+1, len(m.frames), frame.Tick),
		core.ColorBrightWhite)
	m.screen.DrawTextColored(1, y+1, "rule: "+frame.Rule, core.ColorCyan)
	m.screen.DrawText(1, y+2, "action: "+frame.Action.String())

	if m.paused {
		drawBanner(m.screen, grid, " PAUSED ", core.ColorBrightWhite)
	} else if m.cursor == len(m.frames)-1 {
		drawBanner(m.screen, grid, " END ", core.ColorYellow)
	}
	m.screen.DrawText(1, y+4, "space pause  left/right scrub  r restart  q quit")

	return RenderScreen(m.screen)
}

// Replay loads a replay file and plays it in the local terminal.
func Replay(path string, tickRate, width, height int) error {
	frames, err := recorder.ReadReplay(path)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewReplayModel(frames, tickRate, width, height),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}
