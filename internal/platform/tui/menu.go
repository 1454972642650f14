package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

// menuKind tells what selecting a menu item does.
type menuKind int

const (
	menuPlay menuKind = iota
	menuScores
	menuQuit
)

// MenuItem represents a selectable entry in the title menu.
type MenuItem struct {
	Title  string
	Hint   string
	Preset config.Preset // Only for play entries
	kind   menuKind
}

// defaultMenuItems lists the presets, then the scoreboard and quit.
func defaultMenuItems() []MenuItem {
	return []MenuItem{
		{Title: "Normal", Hint: "3 lives", Preset: config.PresetNormal},
		{Title: "Easy", Hint: "5 lives, wide paddle, slow ball", Preset: config.PresetEasy},
		{Title: "Hard", Hint: "2 lives, narrow paddle, fast ball", Preset: config.PresetHard},
		{Title: "High Scores", kind: menuScores},
		{Title: "Quit", kind: menuQuit},
	}
}

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	highScore      int
	keys           MenuKeyMap
	help           help.Model
	quitting       bool
	selected       *MenuItem // Set when user picks a preset
	openScoreboard bool
	notice         string
}

// NewMenuModel creates a new menu model.
func NewMenuModel(width, height, highScore int) MenuModel {
	h := help.New()
	h.Width = width
	return MenuModel{
		items:     defaultMenuItems(),
		width:     width,
		height:    height,
		highScore: highScore,
		keys:      DefaultMenuKeyMap(),
		help:      h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Scores):
		m.openScoreboard = true

	case key.Matches(msg, m.keys.Select):
		item := m.items[m.cursor]
		switch item.kind {
		case menuQuit:
			m.quitting = true
			return m, tea.Quit
		case menuScores:
			m.openScoreboard = true
		default:
			m.selected = &item
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("B R E A K O U T", m.width))
	b.WriteString("\n\n")
	if m.highScore > 0 {
		b.WriteString(centerText(fmt.Sprintf("High score: %d", m.highScore), m.width))
		b.WriteString("\n\n")
	}
	b.WriteString(centerText("Select difficulty", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.Title, m.width))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(centerText(m.notice, m.width))
		b.WriteString("\n")
	}

	if hint := m.items[m.cursor].Hint; hint != "" {
		b.WriteString("\n")
		b.WriteString(centerText(hint, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

// SetNotice shows a one-line message under the items.
func (m *MenuModel) SetNotice(text string) {
	m.notice = text
}

// Notice returns the message set by SetNotice.
func (m MenuModel) Notice() string {
	return m.notice
}

// Selected returns the chosen play entry, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}
