// Package tui runs the snake engine inside a Bubble Tea program, locally or
// per SSH session. Frames tick at a fixed rate and the wall-clock time
// between frames is fed to the engine, which decides when to move.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a TickMsg after one frame
// at the given rate.
func tickCmd(fps int) tea.Cmd {
	if fps < 1 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
