// Package tui runs breakout sessions in a terminal through Bubble Tea,
// locally or over SSH. It maps keys and mouse events to input frames,
// drives the simulation from a tick command and draws the cell buffer.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// ID names the tick loop so a model ignores ticks of a loop it replaced.
type TickMsg struct {
	Time time.Time
	ID   int64
}

var lastTickID atomic.Int64

// nextTickID returns a fresh tick loop ID.
func nextTickID() int64 {
	return lastTickID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(id int64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, ID: id}
	})
}
