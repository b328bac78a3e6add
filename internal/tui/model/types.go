package model

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"termsearch/internal/browser"
	"termsearch/internal/google"
	"termsearch/internal/outcome"
)

// RenderState is what the screen currently shows.
type RenderState int

const (
	// RenderSearching is shown while the search is pending.
	RenderSearching RenderState = iota
	// RenderResults is shown once the search succeeded or failed.
	RenderResults
)

// String provides a human-readable representation of the RenderState.
func (s RenderState) String() string {
	switch s {
	case RenderSearching:
		return "Searching"
	case RenderResults:
		return "Results"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// StatusMessageTimeout is how long a status bar message stays visible.
const StatusMessageTimeout = 3 * time.Second

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Start key.Binding
	End   key.Binding
	Open  key.Binding
	Copy  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// FullHelp returns bindings for the help overlay, one column per slice.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Start, k.End},
		{k.Open, k.Copy},
		{k.Help, k.Quit},
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Open, k.Help, k.Quit}
}

// Model is the state of the result browser.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	// Query is the search text, shown in the status line and header.
	Query string

	// Results is the read side of the container the executor completes.
	Results outcome.Reader
	// Outcome is the snapshot taken by the last Sync.
	Outcome outcome.Outcome

	Selection     Selection
	SeparatorRows int
	PollInterval  time.Duration

	QuitApp   bool
	ShowHelp  bool
	DebugMode bool

	// Environment capabilities
	Opener    browser.Opener
	Clipboard func(string) error

	// UI components
	Keys            KeyMap
	Help            help.Model
	Spinner         spinner.Model
	ResultsViewport viewport.Model

	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}
}

// Sync takes a fresh snapshot of the result container. The selection is
// reset exactly when the snapshot first turns Succeeded. It reports whether
// the state changed.
func (m *Model) Sync() bool {
	if m.Results == nil {
		return false
	}
	o := m.Results.Read()
	if o.State == m.Outcome.State {
		return false
	}
	m.Outcome = o
	if o.State == outcome.StateSucceeded {
		m.Selection.Reset(len(o.Items()))
	}
	return true
}

// RenderState derives the screen from the last snapshot.
func (m *Model) RenderState() RenderState {
	if m.Outcome.Done() {
		return RenderResults
	}
	return RenderSearching
}

// Navigable reports whether selection keys apply: the search succeeded.
func (m *Model) Navigable() bool {
	return m.Outcome.State == outcome.StateSucceeded
}

// SelectedItem returns the highlighted result.
func (m *Model) SelectedItem() (google.Item, bool) {
	if !m.Navigable() {
		return google.Item{}, false
	}
	idx, ok := m.Selection.Index()
	if !ok {
		return google.Item{}, false
	}
	items := m.Outcome.Items()
	if idx >= len(items) {
		return google.Item{}, false
	}
	return items[idx], true
}

// SetStatusMessage updates the status bar message and schedules its removal.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// ClearStatusMessage removes the status bar message.
func (m *Model) ClearStatusMessage() {
	m.StatusBarMessage = ""
	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
		m.StatusBarClearCancel = nil
	}
}
