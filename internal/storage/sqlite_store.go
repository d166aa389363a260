package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/taskive/taskive/internal/models"
)

var errRecordNotFound = errors.New("record not found")

// Record keys for the key-value schema.
const (
	recordUser      = "user"
	recordTasks     = "tasks"
	recordCompleted = "completed_tasks"
	recordPurchased = "purchased_pets"
)

// SQLiteStore persists the records as JSON values in a single key-value
// table. The schema is created on Init; there is nothing to migrate.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS records (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Seed the default profile on first initialization only.
	if _, err := s.GetUser(); err != nil {
		if err := s.SaveUser(defaultUser()); err != nil {
			return fmt.Errorf("failed to save default profile: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'taskive init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) getRecord(key string, v interface{}) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	var value string
	err := s.db.QueryRow("SELECT value FROM records WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%w: %s", errRecordNotFound, key)
	}
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(value), v)
}

func (s *SQLiteStore) setRecord(key string, v interface{}) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize record %s: %w", key, err)
	}

	_, err = s.db.Exec(
		"INSERT INTO records (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, string(data),
	)
	return err
}

func (s *SQLiteStore) GetUser() (models.User, error) {
	var user models.User
	if err := s.getRecord(recordUser, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *SQLiteStore) SaveUser(user models.User) error {
	return s.setRecord(recordUser, user)
}

func (s *SQLiteStore) GetTasks() ([]models.Task, error) {
	var tasks []models.Task
	if err := s.getRecord(recordTasks, &tasks); err != nil {
		// An absent record means no tasks have been saved yet.
		if errors.Is(err, errRecordNotFound) {
			return []models.Task{}, nil
		}
		return nil, err
	}
	return tasks, nil
}

func (s *SQLiteStore) SaveTasks(tasks []models.Task) error {
	return s.setRecord(recordTasks, tasks)
}

func (s *SQLiteStore) GetCompletedTasks() ([]models.Task, error) {
	var tasks []models.Task
	if err := s.getRecord(recordCompleted, &tasks); err != nil {
		if errors.Is(err, errRecordNotFound) {
			return []models.Task{}, nil
		}
		return nil, err
	}
	return tasks, nil
}

func (s *SQLiteStore) SaveCompletedTasks(tasks []models.Task) error {
	return s.setRecord(recordCompleted, tasks)
}

func (s *SQLiteStore) GetPurchasedPetIDs() ([]int, error) {
	var ids []int
	if err := s.getRecord(recordPurchased, &ids); err != nil {
		if errors.Is(err, errRecordNotFound) {
			return []int{}, nil
		}
		return nil, err
	}
	return ids, nil
}

func (s *SQLiteStore) SavePurchasedPetIDs(ids []int) error {
	return s.setRecord(recordPurchased, ids)
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
