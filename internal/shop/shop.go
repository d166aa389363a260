// Package shop implements the two purchase flows over the fixed catalog:
// buying pets and buying food to heal an owned pet.
package shop

import (
	"errors"
	"sync"

	"github.com/taskive/taskive/internal/catalog"
	"github.com/taskive/taskive/internal/logger"
	"github.com/taskive/taskive/internal/models"
	"github.com/taskive/taskive/internal/storage"
)

// Refusal reasons. All purchase failures are refusals, never state changes.
var (
	ErrUnknownItem       = errors.New("no such item in the catalog")
	ErrInsufficientCoins = errors.New("not enough coins")
	ErrAlreadyOwned      = errors.New("pet already owned")
	ErrLevelTooLow       = errors.New("level requirement not met")
	ErrNoSuchPet         = errors.New("no such pet in your collection")
	ErrPetDead           = errors.New("pet cannot be fed")
	ErrPetFull           = errors.New("pet is already at full health")
)

// Wallet is the slice of the user store the shop spends from.
type Wallet interface {
	Coins() int
	SpendCoins(amount int) bool
	Level() int
}

// PetKeeper receives purchased pets and healing effects.
type PetKeeper interface {
	AddPet(pet models.Pet)
	HealPet(id, amount int)
	PetByID(id int) (models.Pet, bool)
}

// Shop tracks which catalog pets have been purchased and applies purchase
// effects through the user store's narrow capabilities.
type Shop struct {
	mu        sync.Mutex
	backend   storage.Provider
	wallet    Wallet
	pets      PetKeeper
	purchased []int
}

// New loads the purchased-pet record from the backend.
func New(backend storage.Provider, wallet Wallet, pets PetKeeper) (*Shop, error) {
	purchased, err := backend.GetPurchasedPetIDs()
	if err != nil {
		return nil, err
	}
	return &Shop{
		backend:   backend,
		wallet:    wallet,
		pets:      pets,
		purchased: purchased,
	}, nil
}

func (s *Shop) persist() {
	if err := s.backend.SavePurchasedPetIDs(s.purchased); err != nil {
		logger.Warn("Failed to persist store record", "error", err)
	}
}

// Owned reports whether the catalog pet has already been purchased.
func (s *Shop) Owned(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ownedLocked(id)
}

func (s *Shop) ownedLocked(id int) bool {
	for _, p := range s.purchased {
		if p == id {
			return true
		}
	}
	return false
}

// BuyPet purchases a catalog pet: requires sufficient coins, no prior
// ownership, and the entry's minimum level. On success the pet joins the
// collection at full health.
func (s *Shop) BuyPet(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := catalog.PetByID(id)
	if !ok {
		return ErrUnknownItem
	}
	if s.ownedLocked(id) {
		return ErrAlreadyOwned
	}
	if item.MinLevel > 0 && s.wallet.Level() < item.MinLevel {
		return ErrLevelTooLow
	}
	if !s.wallet.SpendCoins(item.Price) {
		return ErrInsufficientCoins
	}

	s.purchased = append(s.purchased, id)
	s.pets.AddPet(item.NewPet())
	s.persist()
	logger.Info("Pet purchased", "pet", item.Name, "price", item.Price)
	return nil
}

// BuyFood purchases a food item and feeds it to the target pet. Feeding a
// dead or full-health pet is refused before any coins move.
func (s *Shop) BuyFood(foodID, petID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := catalog.FoodByID(foodID)
	if !ok {
		return ErrUnknownItem
	}
	pet, ok := s.pets.PetByID(petID)
	if !ok {
		return ErrNoSuchPet
	}
	if pet.Status == models.PetDead {
		return ErrPetDead
	}
	if pet.Health >= pet.MaxHealth {
		return ErrPetFull
	}
	if !s.wallet.SpendCoins(item.Price) {
		return ErrInsufficientCoins
	}

	s.pets.HealPet(petID, item.HealingPoints)
	logger.Info("Food purchased", "food", item.Name, "pet", pet.Name, "healing", item.HealingPoints)
	return nil
}
