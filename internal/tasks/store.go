// Package tasks owns the active and completed task lists and all task-level
// business rules: deadline resolution, pet assignment, completion rewards,
// and the periodic deadline/health maintenance loop.
package tasks

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/taskive/taskive/internal/constants"
	"github.com/taskive/taskive/internal/logger"
	"github.com/taskive/taskive/internal/models"
	"github.com/taskive/taskive/internal/storage"
)

// Rewards is the narrow slice of the user store the task store needs for
// completion accounting.
type Rewards interface {
	AddXPAndCoins(xp, coins int)
	IncrementCompletedCount()
}

// PetRoster supplies assignable pets and absorbs lateness damage.
type PetRoster interface {
	UsablePets() []models.Pet
	ReducePetHealth(id, amount int)
}

// Store holds the in-memory task lists and writes them through to the task
// and completed-task records after every mutation. Persistence failures are
// logged and otherwise ignored.
type Store struct {
	mu        sync.Mutex
	backend   storage.Provider
	rewards   Rewards
	roster    PetRoster
	active    []models.Task
	completed []models.Task
	now       func() time.Time
	rng       *rand.Rand
}

// NewStore loads the task records from the backend.
func NewStore(backend storage.Provider, rewards Rewards, roster PetRoster) (*Store, error) {
	active, err := backend.GetTasks()
	if err != nil {
		return nil, err
	}
	completed, err := backend.GetCompletedTasks()
	if err != nil {
		return nil, err
	}
	return &Store{
		backend:   backend,
		rewards:   rewards,
		roster:    roster,
		active:    active,
		completed: completed,
		now:       time.Now,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

func (s *Store) persistActive() {
	if err := s.backend.SaveTasks(s.active); err != nil {
		logger.Warn("Failed to persist task record", "error", err)
	}
}

func (s *Store) persistCompleted() {
	if err := s.backend.SaveCompletedTasks(s.completed); err != nil {
		logger.Warn("Failed to persist completed-task record", "error", err)
	}
}

// Tasks returns a copy of the active task list.
func (s *Store) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks := make([]models.Task, len(s.active))
	copy(tasks, s.active)
	return tasks
}

// CompletedTasks returns a copy of the completed task list, newest first.
func (s *Store) CompletedTasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks := make([]models.Task, len(s.completed))
	copy(tasks, s.completed)
	return tasks
}

// RecentTasks returns up to three of the most recently added active tasks
// for the dashboard.
func (s *Store) RecentTasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.active)
	if n > 3 {
		n = 3
	}
	tasks := make([]models.Task, n)
	copy(tasks, s.active[len(s.active)-n:])
	return tasks
}

// TaskByID looks up an active task.
func (s *Store) TaskByID(id string) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.active {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

// AddTask creates a task from its display date and time, either of which may
// be empty. Unparseable input degrades to "no deadline". When the task gets
// a deadline and the user owns usable pets, exactly one pet is assigned to
// bear the task's lateness.
func (s *Store) AddTask(title, date, timeOfDay, description string) models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	deadline := resolveDeadline(date, timeOfDay, now)

	task := models.Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Datetime:    displayDatetime(date, timeOfDay),
		TimeLeft:    timeLeftLabel(deadline, now),
		Deadline:    deadline,
	}

	if deadline != nil {
		task.AssignedPetID = s.assignPet()
	}

	s.active = append(s.active, task)
	s.persistActive()
	return task
}

// UpdateTask edits an active task. Completing it moves it to the completed
// list, bumps the completed counter, and grants the fixed reward iff the
// completion happens strictly before the deadline.
//
// Datetime edits that would resolve to a deadline already in the past are
// rejected wholesale: the prior display text, deadline, and label are kept.
// The rule is the same for date-only and time-only edits. Title and
// description changes are applied either way.
func (s *Store) UpdateTask(id, title, date, timeOfDay, description string, completed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, t := range s.active {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}

	now := s.now()

	if completed {
		task := s.active[idx]
		task.Completed = true
		s.active = append(s.active[:idx], s.active[idx+1:]...)
		s.completed = append([]models.Task{task}, s.completed...)
		s.rewards.IncrementCompletedCount()
		if task.Deadline != nil && now.Before(*task.Deadline) {
			s.rewards.AddXPAndCoins(constants.RewardXP, constants.RewardCoins)
		}
		s.persistActive()
		s.persistCompleted()
		return
	}

	task := &s.active[idx]
	task.Title = title
	task.Description = description

	deadline := resolveDeadline(date, timeOfDay, now)
	if deadline == nil || deadline.After(now) {
		task.Datetime = displayDatetime(date, timeOfDay)
		task.Deadline = deadline
		task.TimeLeft = timeLeftLabel(deadline, now)
		task.LastDamageAt = 0
		if deadline == nil {
			task.AssignedPetID = nil
		} else if task.AssignedPetID == nil {
			task.AssignedPetID = s.assignPet()
		}
	}

	s.persistActive()
}

// DeleteTask removes a task from the active list unconditionally. A missing
// id is a no-op.
func (s *Store) DeleteTask(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.active {
		if t.ID == id {
			s.active = append(s.active[:i], s.active[i+1:]...)
			s.persistActive()
			return
		}
	}
}

// CheckDeadlines is one tick of the maintenance loop: every active task with
// a deadline gets its time-left label recomputed, and once a deadline has
// passed the assigned pet is charged fixed damage, at most once per calendar
// day of lateness. The first breach charges immediately.
func (s *Store) CheckDeadlines() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	changed := false

	for i := range s.active {
		task := &s.active[i]
		if task.Deadline == nil {
			continue
		}

		if label := timeLeftLabel(task.Deadline, now); label != task.TimeLeft {
			task.TimeLeft = label
			changed = true
		}

		if !task.Late(now) || task.AssignedPetID == nil {
			continue
		}

		// First breach charges one day immediately; afterwards one charge per
		// calendar day elapsed since the last one, so a closed app catches up
		// without ever exceeding one charge per day of lateness.
		charges := 1
		if task.LastDamageAt != 0 {
			charges = calendarDaysBetween(time.Unix(task.LastDamageAt, 0).In(now.Location()), now)
			if charges <= 0 {
				continue
			}
		}

		s.roster.ReducePetHealth(*task.AssignedPetID, charges*constants.LatenessDamageHP)
		task.LastDamageAt = now.Unix()
		changed = true
		logger.Debug("Charged lateness damage", "task", task.ID, "pet", *task.AssignedPetID, "days", charges)
	}

	if changed {
		s.persistActive()
	}
}

// assignPet picks one usable pet by inverse-frequency weighted random
// choice: pets carrying fewer active assignments are favored, spreading
// lateness risk across the collection. Returns nil when no pet is usable.
// Caller must hold s.mu.
func (s *Store) assignPet() *int {
	pets := s.roster.UsablePets()
	if len(pets) == 0 {
		return nil
	}

	counts := make(map[int]int)
	for _, t := range s.active {
		if t.AssignedPetID != nil {
			counts[*t.AssignedPetID]++
		}
	}

	weights := make([]float64, len(pets))
	total := 0.0
	for i, p := range pets {
		w := 1.0 / float64(1+counts[p.ID])
		weights[i] = w
		total += w
	}

	r := s.rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r <= 0 {
			id := pets[i].ID
			return &id
		}
	}
	id := pets[len(pets)-1].ID
	return &id
}

// calendarDaysBetween counts midnight crossings from a to b. The dates are
// rebuilt in UTC so 23- and 25-hour DST days still count as exactly one day.
func calendarDaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start) / (24 * time.Hour))
}
