package tasks

import (
	"fmt"

	"github.com/taskive/taskive/internal/cli"
	"github.com/taskive/taskive/internal/constants"
)

type TaskDoneCmd struct {
	ID string `arg:"" help:"Task ID."`
}

func (c *TaskDoneCmd) Run(ctx *cli.Context) error {
	task, ok := ctx.Tasks.TaskByID(c.ID)
	if !ok {
		return fmt.Errorf("task not found: %s", c.ID)
	}

	coinsBefore := ctx.User.Coins()
	ctx.Tasks.UpdateTask(task.ID, task.Title, "", "", task.Description, true)

	fmt.Printf("Completed task: %s\n", task.Title)
	if ctx.User.Coins() > coinsBefore {
		fmt.Printf("On time! +%d XP, +%d coins (level %d, %d/%d XP, %d coins)\n",
			constants.RewardXP, constants.RewardCoins,
			ctx.User.Level(), ctx.User.XP(), ctx.User.XPRequired(), ctx.User.Coins())
	}
	return nil
}
