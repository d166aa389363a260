package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/taskive/taskive/internal/constants"
	"github.com/taskive/taskive/internal/models"
)

type Store struct {
	Version         int           `json:"version"`
	User            models.User   `json:"user"`
	Tasks           []models.Task `json:"tasks"`
	CompletedTasks  []models.Task `json:"completed_tasks"`
	PurchasedPetIDs []int         `json:"purchased_pet_ids"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func defaultUser() models.User {
	return models.User{
		Username: constants.DefaultUsername,
		Level:    constants.StartingLevel,
		Coins:    constants.StartingCoins,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version: 1,
		User:    defaultUser(),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'taskive init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// First load of a pre-profile file still yields a usable profile.
	if s.store.User.Level == 0 {
		s.store.User = defaultUser()
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetUser() (models.User, error) {
	if s.store == nil {
		return models.User{}, fmt.Errorf("storage not loaded")
	}
	return s.store.User, nil
}

func (s *JSONStore) SaveUser(user models.User) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.User = user
	return s.save()
}

func (s *JSONStore) GetTasks() ([]models.Task, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	tasks := make([]models.Task, len(s.store.Tasks))
	copy(tasks, s.store.Tasks)
	return tasks, nil
}

func (s *JSONStore) SaveTasks(tasks []models.Task) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Tasks = make([]models.Task, len(tasks))
	copy(s.store.Tasks, tasks)
	return s.save()
}

func (s *JSONStore) GetCompletedTasks() ([]models.Task, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	tasks := make([]models.Task, len(s.store.CompletedTasks))
	copy(tasks, s.store.CompletedTasks)
	return tasks, nil
}

func (s *JSONStore) SaveCompletedTasks(tasks []models.Task) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.CompletedTasks = make([]models.Task, len(tasks))
	copy(s.store.CompletedTasks, tasks)
	return s.save()
}

func (s *JSONStore) GetPurchasedPetIDs() ([]int, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	ids := make([]int, len(s.store.PurchasedPetIDs))
	copy(ids, s.store.PurchasedPetIDs)
	return ids, nil
}

func (s *JSONStore) SavePurchasedPetIDs(ids []int) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.PurchasedPetIDs = make([]int, len(ids))
	copy(s.store.PurchasedPetIDs, ids)
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
