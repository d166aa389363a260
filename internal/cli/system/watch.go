package system

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/taskive/taskive/internal/cli"
	"github.com/taskive/taskive/internal/tasks"
)

// WatchCmd runs the deadline/health maintenance loop in the foreground until
// interrupted.
type WatchCmd struct{}

func (c *WatchCmd) Run(appCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("Watching task deadlines. Press Ctrl+C to stop.")
	tasks.NewWatcher(appCtx.Tasks).Run(ctx)
	return nil
}
