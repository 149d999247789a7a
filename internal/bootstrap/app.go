package bootstrap

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/luyao/tripdeck/internal/interface/tui"
)

// App encapsulates the terminal UI lifecycle.
type App struct {
	logger  *slog.Logger
	program *tea.Program
}

// NewApp is used by Wire to build the runnable app.
func NewApp(model tui.Model, logger *slog.Logger) *App {
	return &App{
		logger:  logger.With("component", "bootstrap"),
		program: tea.NewProgram(model, tea.WithAltScreen()),
	}
}

// Run starts the UI and blocks until it exits or the context is
// cancelled.
func (a *App) Run(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			a.logger.Info("shutdown signal received")
			a.program.Quit()
		case <-done:
		}
	}()

	a.logger.Info("ui starting")
	_, err := a.program.Run()
	close(done)
	return err
}
