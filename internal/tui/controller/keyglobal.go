package controller

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"termsearch/internal/browser"
	"termsearch/internal/tui/model"
)

// writeClipboard is used when the model has no clipboard of its own.
var writeClipboard = clipboard.WriteAll

// handleKeyMsg processes key presses. Quit works in every state; all other
// bindings apply only once the search has succeeded.
func handleKeyMsg(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if key.Matches(keyMsg, m.Keys.Quit) {
		LogDebug(m, keySubsystem, "Quit requested in %s state", m.RenderState())
		m.QuitApp = true
		return m, tea.Quit
	}

	if !m.Navigable() {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Down):
		m.Selection.Next()
	case key.Matches(keyMsg, m.Keys.Up):
		m.Selection.Previous()
	case key.Matches(keyMsg, m.Keys.End):
		m.Selection.Last()
	case key.Matches(keyMsg, m.Keys.Start):
		m.Selection.First()
	case key.Matches(keyMsg, m.Keys.Open):
		return m, openSelected(m)
	case key.Matches(keyMsg, m.Keys.Copy):
		return m, copySelected(m)
	case key.Matches(keyMsg, m.Keys.Help):
		m.ShowHelp = !m.ShowHelp
	}
	return m, nil
}

// openSelected hands the selected link to the opener off the loop. Failures
// come back as an OpenResultMsg and never stop the browser.
func openSelected(m *model.Model) tea.Cmd {
	item, ok := m.SelectedItem()
	if !ok || item.Link == "" {
		return nil
	}
	opener := m.Opener
	if opener == nil {
		opener = browser.Nop
	}
	url := item.Link
	return func() tea.Msg {
		return model.OpenResultMsg{URL: url, Err: opener.Open(url)}
	}
}

func copySelected(m *model.Model) tea.Cmd {
	item, ok := m.SelectedItem()
	if !ok || item.Link == "" {
		return nil
	}
	write := m.Clipboard
	if write == nil {
		write = writeClipboard
	}
	if err := write(item.Link); err != nil {
		LogError(keySubsystem, err, "Failed to copy link")
		return m.SetStatusMessage("Copy link failed", model.StatusBarError, model.StatusMessageTimeout)
	}
	return m.SetStatusMessage("Link copied to clipboard", model.StatusBarSuccess, model.StatusMessageTimeout)
}
