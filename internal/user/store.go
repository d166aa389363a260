// Package user owns the durable identity of the user and their pet
// collection. It is the sole mutator of coins, XP, level, and pet health.
package user

import (
	"strings"
	"sync"

	"github.com/taskive/taskive/internal/constants"
	"github.com/taskive/taskive/internal/logger"
	"github.com/taskive/taskive/internal/models"
	"github.com/taskive/taskive/internal/storage"
)

// Store holds the in-memory user profile and writes it through to the user
// record after every mutation. Persistence failures are logged and otherwise
// ignored; the in-memory state stays authoritative for the session.
type Store struct {
	mu      sync.Mutex
	backend storage.Provider
	user    models.User
}

// NewStore loads the user record from the backend.
func NewStore(backend storage.Provider) (*Store, error) {
	u, err := backend.GetUser()
	if err != nil {
		return nil, err
	}
	return &Store{backend: backend, user: u}, nil
}

func (s *Store) persist() {
	if err := s.backend.SaveUser(s.user); err != nil {
		logger.Warn("Failed to persist user record", "error", err)
	}
}

// Username returns the current display name.
func (s *Store) Username() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Username
}

// Level returns the current level.
func (s *Store) Level() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Level
}

// XP returns the experience accumulated within the current level.
func (s *Store) XP() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.XP
}

// XPRequired returns the XP needed to finish the current level.
func (s *Store) XPRequired() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return constants.XPRequiredForLevel(s.user.Level)
}

// Coins returns the current coin balance.
func (s *Store) Coins() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Coins
}

// CompletedCount returns the lifetime completed-task counter.
func (s *Store) CompletedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.CompletedTasks
}

// Pets returns a copy of the owned pet list.
func (s *Store) Pets() []models.Pet {
	s.mu.Lock()
	defer s.mu.Unlock()
	pets := make([]models.Pet, len(s.user.Pets))
	copy(pets, s.user.Pets)
	return pets
}

// UsablePets returns the owned pets that may be assigned to new tasks.
func (s *Store) UsablePets() []models.Pet {
	s.mu.Lock()
	defer s.mu.Unlock()
	var pets []models.Pet
	for _, p := range s.user.Pets {
		if p.Usable() {
			pets = append(pets, p)
		}
	}
	return pets
}

// PetByID looks up an owned pet.
func (s *Store) PetByID(id int) (models.Pet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.user.Pets {
		if p.ID == id {
			return p, true
		}
	}
	return models.Pet{}, false
}

// AddXPAndCoins adds coins unconditionally and XP with level carry: the
// level requirement is subtracted and the level incremented for as long as
// the accumulated XP meets the (possibly new) requirement, so one large
// reward can advance several levels.
func (s *Store) AddXPAndCoins(xp, coins int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user.Coins += coins
	s.user.XP += xp
	for s.user.XP >= constants.XPRequiredForLevel(s.user.Level) {
		s.user.XP -= constants.XPRequiredForLevel(s.user.Level)
		s.user.Level++
	}
	s.persist()
}

// SpendCoins deducts the amount iff the balance is sufficient. On failure
// the balance is unchanged.
func (s *Store) SpendCoins(amount int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user.Coins < amount {
		return false
	}
	s.user.Coins -= amount
	s.persist()
	return true
}

// AddPet appends a pet to the owned list. Callers are responsible for
// checking prior ownership before buying.
func (s *Store) AddPet(pet models.Pet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user.Pets = append(s.user.Pets, pet)
	s.persist()
}

// ReducePetHealth clamps the pet's health at zero and recomputes its status.
// An unknown id is a no-op.
func (s *Store) ReducePetHealth(id, amount int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.user.Pets {
		if s.user.Pets[i].ID != id {
			continue
		}
		health := s.user.Pets[i].Health - amount
		if health < 0 {
			health = 0
		}
		s.user.Pets[i].Health = health
		s.user.Pets[i].Status = models.StatusForHealth(health, s.user.Pets[i].MaxHealth)
		s.persist()
		return
	}
}

// HealPet restores health up to the pet's maximum. Healing a dead or
// already-full pet is a no-op, as is an unknown id.
func (s *Store) HealPet(id, amount int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.user.Pets {
		if s.user.Pets[i].ID != id {
			continue
		}
		p := &s.user.Pets[i]
		if p.Health <= 0 || p.Health >= p.MaxHealth {
			return
		}
		health := p.Health + amount
		if health > p.MaxHealth {
			health = p.MaxHealth
		}
		p.Health = health
		p.Status = models.StatusForHealth(health, p.MaxHealth)
		s.persist()
		return
	}
}

// UpdateUsername replaces the display name. Blank input is rejected.
func (s *Store) UpdateUsername(name string) {
	if strings.TrimSpace(name) == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user.Username = name
	s.persist()
}

// IncrementCompletedCount bumps the lifetime completed-task counter. The
// user record is the single owner of this counter.
func (s *Store) IncrementCompletedCount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user.CompletedTasks++
	s.persist()
}
