package tasks

import (
	"fmt"

	"github.com/taskive/taskive/internal/cli"
)

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task ID."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	task, ok := ctx.Tasks.TaskByID(c.ID)
	if !ok {
		return fmt.Errorf("task not found: %s", c.ID)
	}

	ctx.Tasks.DeleteTask(c.ID)
	fmt.Printf("Deleted task: %s\n", task.Title)
	return nil
}
