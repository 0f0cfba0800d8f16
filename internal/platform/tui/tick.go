// Package tui provides the Bubble Tea front end for the realm.
// It handles the terminal UI loop, input mapping, and the day clock.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance the city by one day.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that fires after one simulation interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
