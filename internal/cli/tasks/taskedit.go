package tasks

import (
	"fmt"
	"time"

	"github.com/taskive/taskive/internal/cli"
	"github.com/taskive/taskive/internal/constants"
)

type TaskEditCmd struct {
	ID          string  `arg:"" help:"Task ID."`
	Title       *string `help:"New title."`
	Date        *string `short:"d" help:"New due date (DD/MM/YYYY). Empty clears it."`
	Time        *string `short:"t" help:"New due time (HH:MM). Empty clears it."`
	Description *string `short:"D" help:"New description."`
}

func (c *TaskEditCmd) Validate() error {
	if c.Date != nil && *c.Date != "" {
		if _, err := time.Parse(constants.DateFormat, *c.Date); err != nil {
			return fmt.Errorf("invalid date format (expected DD/MM/YYYY): %w", err)
		}
	}
	if c.Time != nil && *c.Time != "" {
		if _, err := time.Parse(constants.TimeFormat, *c.Time); err != nil {
			return fmt.Errorf("invalid time format (expected HH:MM): %w", err)
		}
	}
	return nil
}

func (c *TaskEditCmd) Run(ctx *cli.Context) error {
	task, ok := ctx.Tasks.TaskByID(c.ID)
	if !ok {
		return fmt.Errorf("task not found: %s", c.ID)
	}

	// Unset flags keep the current values.
	title := task.Title
	if c.Title != nil {
		title = *c.Title
	}
	description := task.Description
	if c.Description != nil {
		description = *c.Description
	}
	date, timeOfDay := splitDatetime(task.Datetime)
	if c.Date != nil {
		date = *c.Date
	}
	if c.Time != nil {
		timeOfDay = *c.Time
	}

	ctx.Tasks.UpdateTask(c.ID, title, date, timeOfDay, description, false)

	updated, _ := ctx.Tasks.TaskByID(c.ID)
	fmt.Printf("Updated task: %s — %s\n", updated.Title, updated.TimeLeft)
	return nil
}

// splitDatetime undoes the "date, time" display join.
func splitDatetime(datetime string) (date, timeOfDay string) {
	if datetime == "" {
		return "", ""
	}
	for i := 0; i+1 < len(datetime); i++ {
		if datetime[i] == ',' && datetime[i+1] == ' ' {
			return datetime[:i], datetime[i+2:]
		}
	}
	if len(datetime) == 5 {
		return "", datetime
	}
	return datetime, ""
}
