package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/rish-shuk/mario-expert/internal/agent"
	"github.com/rish-shuk/mario-expert/internal/core"
	"github.com/rish-shuk/mario-expert/internal/emulator"
	"github.com/rish-shuk/mario-expert/internal/session"
	"github.com/rish-shuk/mario-expert/internal/storage"
)

// WatchModel is the Bubble Tea model for watching the agent play live.
// Each tick advances the session by one decision.
type WatchModel struct {
	env       emulator.Env
	expert    *agent.Expert
	runCfg    core.RunConfig
	logger    *log.Logger
	store     *storage.Store
	sess      *session.Session
	screen    *core.Screen
	keys      *KeyMapper
	paused    bool
	persisted bool
	quitting  bool
}

// NewWatchModel creates a watch model. The store may be nil; finished
// episodes are then not persisted.
func NewWatchModel(env emulator.Env, expert *agent.Expert, runCfg core.RunConfig, store *storage.Store, logger *log.Logger, width, height int) WatchModel {
	m := WatchModel{
		env:    env,
		expert: expert,
		runCfg: runCfg,
		logger: logger,
		store:  store,
		screen: core.NewScreen(width, height),
		keys:   NewKeyMapper(),
	}
	m.sess = session.New(env, expert, runCfg, logger)
	m.sess.Reset()
	return m
}

// Init starts the tick loop.
func (m WatchModel) Init() tea.Cmd {
	return tickCmd(m.runCfg.TickRate)
}

// Update handles messages and updates the model state.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m WatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case WatchQuit:
		m.quitting = true
		return m, tea.Quit
	case WatchPause:
		m.paused = !m.paused
	case WatchRestart:
		if m.sess.Done() {
			// New session, new episode ID; the seed stays fixed so a
			// restart replays the same course.
			m.sess = session.New(m.env, m.expert, m.runCfg, m.logger)
			m.sess.Reset()
			m.paused = false
			m.persisted = false
			return m, tickCmd(m.runCfg.TickRate)
		}
	}
	return m, nil
}

func (m WatchModel) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.runCfg.TickRate)
	}

	if m.sess.Step() {
		return m, tickCmd(m.runCfg.TickRate)
	}

	// Episode over. Persist once, keep the final frame on screen.
	if !m.persisted {
		m.persisted = true
		if m.store != nil {
			if err := session.Persist(m.sess.Result(), "", m.store); err != nil {
				m.logger.Warn("could not save episode", "error", err)
			}
		}
	}
	return m, nil
}

// View renders the current state of the episode.
func (m WatchModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	grid := m.sess.Grid()
	drawGrid(m.screen, grid)
	drawHUD(m.screen, grid, m.sess.Stats(), m.sess.LastRule(), m.sess.Decisions())

	switch {
	case m.sess.Done():
		text, color := outcomeBanner(m.sess.Result().Outcome)
		drawBanner(m.screen, grid, text, color)
		m.screen.DrawText(1, grid.Height()+5, "r restart  q quit")
	case m.paused:
		drawBanner(m.screen, grid, " PAUSED ", core.ColorBrightWhite)
		m.screen.DrawText(1, grid.Height()+5, "p resume  q quit")
	default:
		m.screen.DrawText(1, grid.Height()+5, "p pause  q quit")
	}

	return RenderScreen(m.screen)
}

// Watch runs the live viewer in the local terminal.
func Watch(env emulator.Env, expert *agent.Expert, runCfg core.RunConfig, store *storage.Store, logger *log.Logger, width, height int) error {
	model := NewWatchModel(env, expert, runCfg, store, logger, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
