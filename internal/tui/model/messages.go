package model

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// PollMsg fires on every poll tick while the search is pending.
type PollMsg time.Time

// ClearStatusBarMsg removes a transient status bar message.
type ClearStatusBarMsg struct{}

// OpenResultMsg reports the outcome of handing a link to the opener.
type OpenResultMsg struct {
	URL string
	Err error
}

// PollCmd schedules the next poll tick.
func PollCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return PollMsg(t)
	})
}
