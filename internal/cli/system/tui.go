package system

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskive/taskive/internal/cli"
	"github.com/taskive/taskive/internal/tasks"
	"github.com/taskive/taskive/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(appCtx *cli.Context) error {
	// The watcher lives for the TUI session and stops with it.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go tasks.NewWatcher(appCtx.Tasks).Run(ctx)

	m := tui.NewModel(appCtx.User, appCtx.Tasks, appCtx.Shop)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
