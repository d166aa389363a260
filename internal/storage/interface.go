package storage

import "github.com/taskive/taskive/internal/models"

// Provider persists the three logical records of the application: the user
// profile (username, level, xp, coins, completed count, pets), the active
// task list, and the completed task list, plus the set of purchased pet IDs.
//
// Providers are not safe for concurrent use; the stores that own them
// serialize access behind their own locks.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// User record
	GetUser() (models.User, error)
	SaveUser(models.User) error

	// Task record
	GetTasks() ([]models.Task, error)
	SaveTasks([]models.Task) error

	// Completed-tasks record
	GetCompletedTasks() ([]models.Task, error)
	SaveCompletedTasks([]models.Task) error

	// Store record
	GetPurchasedPetIDs() ([]int, error)
	SavePurchasedPetIDs([]int) error

	// Utils
	GetConfigPath() string
}
