// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, the fixed-timestep
// scheduler, and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per display frame. Simulation ticks are derived
// from the wall-clock time it carries, not from the frame rate itself.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the
// given display rate.
func frameCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
