package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// GameOptions bundles what a session needs from the platform.
type GameOptions struct {
	Breakout config.Breakout
	Skin     breakout.Skin
	Store    *storage.Store // Optional; nil disables score saving
	Player   string
	Sound    bool
	Logger   *log.Logger // Optional
}

func (o GameOptions) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// GameModel is the Bubble Tea model running one breakout session.
type GameModel struct {
	session    *breakout.Session
	screen     *core.Screen
	view       *ScreenRenderer
	opts       GameOptions
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	held       *holdTracker
	keys       GameKeyMap
	help       help.Model
	gameState  core.GameState
	now        func() time.Time
	tickID     int64
	highScore  int
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a model with a fresh session.
func NewGameModel(opts GameOptions, cfg core.RuntimeConfig, view *ScreenRenderer) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if view == nil {
		view = NewScreenRenderer(nil)
	}

	session := breakout.NewSession(opts.Breakout,
		breakout.WithSeed(uint64(cfg.Seed)), //#nosec G115 -- seed bits, sign is irrelevant
		breakout.WithTickRate(cfg.TickRate),
		breakout.WithLogger(opts.logger()),
	)

	m := GameModel{
		session:    session,
		screen:     core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		view:       view,
		opts:       opts,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		held:       newHoldTracker(holdWindow),
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		gameState:  session.State(),
		now:        time.Now,
		tickID:     nextTickID(),
	}
	m.help.Width = cfg.ScreenW

	if opts.Store != nil {
		if high, err := opts.Store.HighScore(breakout.GameID); err == nil {
			m.highScore = high
		}
	}
	return m
}

// playRows leaves the bottom row to the help line.
func playRows(height int) int {
	if height > 1 {
		return height - 1
	}
	return height
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.tickID, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.held.press(a, m.now())
	case core.ActionLaunch, core.ActionPause:
		m.inputFrame.Set(a)
	}

	return m, nil
}

// handleMouse moves the paddle to the pointer and launches on click.
// Wheel events are ignored.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if tea.MouseEvent(msg).IsWheel() {
		return m, nil
	}
	m.inputFrame.SetPointer(m.session.PointerToWorld(msg.X, m.screen.Width()))
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.Set(core.ActionLaunch)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.held.apply(&m.inputFrame, now)

	result := m.session.Step(breakout.InputFromFrame(m.inputFrame))
	m.gameState = result.State

	if result.Has(breakout.EventRestart) {
		m.scoreSaved = false
		m.held.reset()
	}
	if m.opts.Sound {
		playCues(result)
	}

	// Save score on a finished round (once)
	if m.gameState.Finished() && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.tickID, m.config.TickRate)
}

func (m *GameModel) saveScore() {
	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}

	outcome := storage.OutcomeGameOver
	if m.gameState.LevelComplete {
		outcome = storage.OutcomeCleared
	}
	if _, err := m.opts.Store.SaveScore(breakout.GameID, m.opts.Player, m.gameState.Score, outcome); err != nil {
		// Best-effort save, game continues regardless
		m.opts.logger().Warn("could not save score", "err", err)
		return
	}
	m.highScore = max(m.highScore, m.gameState.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.session.Render(m.screen, m.opts.Skin)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", breakout.GameID, timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.logger().Warn("could not save screenshot", "err", err)
		return
	}
	m.opts.logger().Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen, m.opts.Skin)
	footer := m.help.View(m.keys)
	if m.highScore > 0 && !m.help.ShowAll {
		footer = fmt.Sprintf("Best: %d  %s", m.highScore, footer)
	}
	return m.view.Render(m.screen) + "\n" + footer
}

// Session returns the running session.
func (m GameModel) Session() *breakout.Session {
	return m.session
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// cueFor maps a simulation event to a sound.
func cueFor(k breakout.EventKind) (audio.Cue, bool) {
	switch k {
	case breakout.EventLaunch:
		return audio.CueLaunch, true
	case breakout.EventWallBounce:
		return audio.CueWall, true
	case breakout.EventPaddleHit:
		return audio.CuePaddle, true
	case breakout.EventBrickDestroyed:
		return audio.CueBrick, true
	case breakout.EventPowerUpCollected:
		return audio.CuePowerUp, true
	case breakout.EventLifeLost:
		return audio.CueLifeLost, true
	case breakout.EventLevelComplete:
		return audio.CueLevelComplete, true
	case breakout.EventGameOver:
		return audio.CueGameOver, true
	}
	return 0, false
}

// cuesFor lists the sounds of one step, each at most once.
func cuesFor(result breakout.StepResult) []audio.Cue {
	var cues []audio.Cue
	seen := make(map[audio.Cue]bool)
	for _, e := range result.Events {
		cue, ok := cueFor(e.Kind)
		if !ok || seen[cue] {
			continue
		}
		seen[cue] = true
		cues = append(cues, cue)
	}
	return cues
}

func playCues(result breakout.StepResult) {
	for _, cue := range cuesFor(result) {
		audio.Play(cue)
	}
}

// programOptions are shared by local and SSH programs. All-motion mouse
// reporting delivers plain hover, not just drags.
func programOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

// Run starts a local Bubble Tea program. An empty preset opens the title
// menu; otherwise a session with that preset starts right away.
func Run(opts GameOptions, cfg core.RuntimeConfig, preset config.Preset) error {
	model := NewAppModel(opts, cfg, nil)
	if preset != "" {
		var err error
		if model, err = model.StartGame(preset); err != nil {
			return err
		}
	}

	p := tea.NewProgram(model, programOptions()...)

	_, err := p.Run()
	return err
}
