package tasks

import (
	"fmt"

	"github.com/taskive/taskive/internal/cli"
)

type TaskListCmd struct {
	Completed bool `short:"c" help:"List completed tasks instead of active ones."`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	list := ctx.Tasks.Tasks()
	if c.Completed {
		list = ctx.Tasks.CompletedTasks()
	}

	if len(list) == 0 {
		fmt.Println("No tasks.")
		return nil
	}

	for _, t := range list {
		fmt.Printf("%s  %s\n", t.ID, cli.FormatTask(t))
		if t.Description != "" {
			fmt.Printf("    %s\n", t.Description)
		}
	}
	return nil
}
