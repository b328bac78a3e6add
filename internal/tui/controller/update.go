package controller

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"termsearch/internal/tui/model"
)

// Update is the central message routing function. Every message first
// refreshes the outcome snapshot, so a key pressed right after the search
// finished already acts on the results.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	if m.Sync() {
		LogInfo(controllerSubsystem, "Search for %q is now %s", m.Query, m.Outcome.State)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKeyMsg(m, msg)

	case tea.MouseMsg:
		return handleMouseMsg(m, msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case model.PollMsg:
		if m.Outcome.Done() {
			return m, nil
		}
		return m, model.PollCmd(m.PollInterval)

	case spinner.TickMsg:
		if m.Outcome.Done() {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case model.OpenResultMsg:
		return handleOpenResultMsg(m, msg)

	case model.ClearStatusBarMsg:
		m.ClearStatusMessage()
		return m, nil

	default:
		LogDebug(m, controllerSubsystem, "Unhandled msg type: %T", msg)
		return m, nil
	}
}

func handleOpenResultMsg(m *model.Model, msg model.OpenResultMsg) (*model.Model, tea.Cmd) {
	if msg.Err != nil {
		LogError(controllerSubsystem, msg.Err, "Failed to open %s", msg.URL)
		return m, m.SetStatusMessage("Could not open link", model.StatusBarError, model.StatusMessageTimeout)
	}
	LogInfo(controllerSubsystem, "Opened %s", msg.URL)
	return m, m.SetStatusMessage("Opened "+msg.URL, model.StatusBarSuccess, model.StatusMessageTimeout)
}
