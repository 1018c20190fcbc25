package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jjconsole/jjconsole/internal/jj"
	"github.com/jjconsole/jjconsole/internal/logging/events"
	"github.com/jjconsole/jjconsole/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Repository string
	Revset     string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Run bootstraps and executes the Bubble Tea program. Repository errors
// surface through the model's error slot rather than aborting startup, so
// the binary behaves the same whether jj breaks before or after launch.
func Run(cfg Config) error {
	runner := jj.NewRunner(cfg.Repository)
	model := ui.NewModel(runner, cfg.Revset, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	events.App.Exit(err)
	return err
}
