package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"termsearch/internal/tui/model"
)

// NewProgram creates the Bubble Tea program for the result browser. The
// program owns the terminal: Run enters the alternate screen and restores
// the terminal on every exit path, panics included.
func NewProgram(opts model.Options, programOpts ...tea.ProgramOption) *tea.Program {
	m := model.InitializeModel(opts)
	app := NewAppModel(m)

	options := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, programOpts...)
	return tea.NewProgram(app, options...)
}

// Run starts the program and blocks until the user quits.
func Run(opts model.Options, programOpts ...tea.ProgramOption) error {
	LogInfo(controllerSubsystem, "Starting result browser for %q", opts.Query)
	if _, err := NewProgram(opts, programOpts...).Run(); err != nil {
		return err
	}
	LogInfo(controllerSubsystem, "Result browser closed")
	return nil
}
