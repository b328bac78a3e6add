package model

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"termsearch/internal/browser"
	"termsearch/internal/color"
	"termsearch/internal/outcome"
)

// DefaultPollInterval bounds how long the loop waits before re-reading the
// result container.
const DefaultPollInterval = 50 * time.Millisecond

// Options configures a new Model.
type Options struct {
	Query         string
	Results       outcome.Reader
	PollInterval  time.Duration
	SeparatorRows int
	Opener        browser.Opener
	Clipboard     func(string) error
	DebugMode     bool
}

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous result"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next result"),
		),
		Start: key.NewBinding(
			key.WithKeys("pgup", "home", "g"),
			key.WithHelp("pgup/home/g", "first result"),
		),
		End: key.NewBinding(
			key.WithKeys("pgdown", "end", "G"),
			key.WithHelp("pgdn/end/G", "last result"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("enter/o", "open in browser"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy link"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}

// InitializeModel builds the model for one query. The container may already
// be complete; the first Sync picks that up.
func InitializeModel(opts Options) *Model {
	interval := opts.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	gap := opts.SeparatorRows
	if gap < 0 {
		gap = 0
	}
	opener := opts.Opener
	if opener == nil {
		opener = browser.Nop
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(color.Primary)

	h := help.New()
	h.ShowAll = false

	m := &Model{
		Query:           opts.Query,
		Results:         opts.Results,
		SeparatorRows:   gap,
		PollInterval:    interval,
		DebugMode:       opts.DebugMode,
		Opener:          opener,
		Clipboard:       opts.Clipboard,
		Keys:            DefaultKeyMap(),
		Help:            h,
		Spinner:         s,
		ResultsViewport: viewport.New(0, 0),
	}
	m.Sync()
	return m
}

// Init starts the spinner and the first poll tick.
func (m *Model) Init() tea.Cmd {
	if m.Outcome.Done() {
		return nil
	}
	return tea.Batch(m.Spinner.Tick, PollCmd(m.PollInterval))
}
