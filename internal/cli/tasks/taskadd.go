package tasks

import (
	"fmt"
	"time"

	"github.com/taskive/taskive/internal/cli"
	"github.com/taskive/taskive/internal/constants"
)

type TaskAddCmd struct {
	Title       string `arg:"" help:"Task title."`
	Date        string `short:"d" help:"Due date (DD/MM/YYYY). Date without time is due at 23:59."`
	Time        string `short:"t" help:"Due time (HH:MM). Time without date is due today."`
	Description string `short:"D" help:"Free-form description."`
}

func (c *TaskAddCmd) Validate() error {
	if c.Date != "" {
		if _, err := time.Parse(constants.DateFormat, c.Date); err != nil {
			return fmt.Errorf("invalid date format (expected DD/MM/YYYY): %w", err)
		}
	}
	if c.Time != "" {
		if _, err := time.Parse(constants.TimeFormat, c.Time); err != nil {
			return fmt.Errorf("invalid time format (expected HH:MM): %w", err)
		}
	}
	return nil
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	task := ctx.Tasks.AddTask(c.Title, c.Date, c.Time, c.Description)

	fmt.Printf("Added task: %s (ID: %s)\n", task.Title, task.ID)
	fmt.Printf("  %s\n", task.TimeLeft)
	if task.AssignedPetID != nil {
		if pet, ok := ctx.User.PetByID(*task.AssignedPetID); ok {
			fmt.Printf("  %s is counting on you.\n", pet.Name)
		}
	}
	return nil
}
