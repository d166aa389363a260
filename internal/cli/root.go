package cli

import (
	"fmt"

	"github.com/taskive/taskive/internal/models"
	"github.com/taskive/taskive/internal/shop"
	"github.com/taskive/taskive/internal/storage"
	"github.com/taskive/taskive/internal/tasks"
	"github.com/taskive/taskive/internal/user"
)

// Context carries the wired stores into every command.
type Context struct {
	Store storage.Provider
	User  *user.Store
	Tasks *tasks.Store
	Shop  *shop.Shop
}

// FormatTask renders one task line for list output.
func FormatTask(t models.Task) string {
	line := fmt.Sprintf("%s — %s", t.Title, t.TimeLeft)
	if t.Datetime != "" {
		line += fmt.Sprintf(" (due %s)", t.Datetime)
	}
	if t.AssignedPetID != nil {
		line += fmt.Sprintf(" [pet #%d]", *t.AssignedPetID)
	}
	return line
}

// FormatPet renders one pet line for list output.
func FormatPet(p models.Pet) string {
	return fmt.Sprintf("#%d %s — %d/%d HP (%s)", p.ID, p.Name, p.Health, p.MaxHealth, p.Status)
}
