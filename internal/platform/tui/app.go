package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// screenMode is the screen an AppModel shows.
type screenMode int

const (
	modeMenu screenMode = iota
	modeGame
	modeScores
)

// AppModel manages the full flow: menu -> game or scoreboard -> menu.
// This is the top-level model for local play and SSH sessions.
type AppModel struct {
	opts       GameOptions
	config     core.RuntimeConfig
	view       *ScreenRenderer
	mode       screenMode
	menu       MenuModel
	game       *GameModel
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewAppModel creates an app showing the title menu.
// opts.Breakout is the base configuration presets are applied to.
func NewAppModel(opts GameOptions, cfg core.RuntimeConfig, view *ScreenRenderer) AppModel {
	if view == nil {
		view = NewScreenRenderer(nil)
	}
	m := AppModel{
		opts:   opts,
		config: cfg,
		view:   view,
	}
	m.menu = m.newMenu()
	return m
}

func (m AppModel) newMenu() MenuModel {
	high := 0
	if m.opts.Store != nil {
		if h, err := m.opts.Store.HighScore(breakout.GameID); err == nil {
			high = h
		}
	}
	return NewMenuModel(m.config.ScreenW, m.config.ScreenH, high)
}

// StartGame switches straight to a session using a preset. A preset that
// is unknown or leaves the configuration invalid is rejected and the app
// stays where it was.
func (m AppModel) StartGame(preset config.Preset) (AppModel, error) {
	opts := m.opts
	if err := config.ApplyPreset(&opts.Breakout, preset); err != nil {
		return m, err
	}
	game := NewGameModel(opts, m.config, m.view)
	m.game = &game
	m.mode = modeGame
	return m, nil
}

// Init initializes the app.
func (m AppModel) Init() tea.Cmd {
	if m.mode == modeGame && m.game != nil {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the app.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.mode {
	case modeGame:
		return m.updateGame(msg)
	case modeScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		sb := NewScoreboardModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		m.mode = modeScores
		m.menu = m.newMenu()
		return m, sb.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		started, err := m.StartGame(selected.Preset)
		m.menu = m.newMenu()
		if err != nil {
			m.opts.logger().Warn("preset rejected", "preset", selected.Preset, "err", err)
			m.menu.SetNotice(fmt.Sprintf("%s is unavailable with this configuration", selected.Title))
			return m, nil
		}
		m = started
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.mode = modeMenu
		m.menu = m.newMenu()
		// The pending tick is dropped by the menu
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is shown.
func (m AppModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		m.scoreboard = nil
		m.mode = modeMenu
		return m, nil
	}

	return m, cmd
}

// View renders the current screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeGame:
		return m.game.View()
	case modeScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}
