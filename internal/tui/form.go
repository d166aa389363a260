package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/taskive/taskive/internal/constants"
)

type taskFormValues struct {
	Title       string
	Date        string
	Time        string
	Description string
}

func newTaskForm(vals *taskFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&vals.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Due date (dd/mm/yyyy, optional)").
				Value(&vals.Date).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					if _, err := time.Parse(constants.DateFormat, s); err != nil {
						return fmt.Errorf("expected dd/mm/yyyy")
					}
					return nil
				}),
			huh.NewInput().
				Title("Due time (hh:mm, optional)").
				Value(&vals.Time).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					if _, err := time.Parse(constants.TimeFormat, s); err != nil {
						return fmt.Errorf("expected hh:mm")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description (optional)").
				Value(&vals.Description),
		),
	).WithTheme(huh.ThemeDracula())
}
