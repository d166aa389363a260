// Package catalog holds the fixed, read-only list of purchasable pets and
// food items. Entries are reference data and are never persisted per-user
// beyond which pet IDs have been purchased.
package catalog

import "github.com/taskive/taskive/internal/models"

// Kind discriminates catalog entries.
type Kind string

const (
	KindPet  Kind = "pet"
	KindFood Kind = "food"
)

// Item is one catalog entry.
type Item struct {
	ID        int
	Name      string
	Kind      Kind
	Price     int
	Image     string
	SickImage string
	// HealthPoints is the full health a purchased pet starts with (pets only).
	HealthPoints int
	// HealingPoints is the health restored when the food is used (food only).
	HealingPoints int
	// MinLevel gates the purchase to users at or above this level. Zero means
	// no requirement.
	MinLevel int
}

var pets = []Item{
	{ID: 1, Name: "Cat", Kind: KindPet, Price: 200, Image: "cat.gif", SickImage: "cat_sick.gif", HealthPoints: 100},
	{ID: 2, Name: "Penguin", Kind: KindPet, Price: 250, Image: "penguin.gif", SickImage: "penguin_sick.gif", HealthPoints: 120, MinLevel: 2},
}

var foods = []Item{
	{ID: 3, Name: "Sushi", Kind: KindFood, Price: 50, Image: "sushi.png", HealingPoints: 40},
	{ID: 4, Name: "Tomato", Kind: KindFood, Price: 30, Image: "tomato.png", HealingPoints: 25},
}

// Pets returns the purchasable pet entries.
func Pets() []Item {
	out := make([]Item, len(pets))
	copy(out, pets)
	return out
}

// Foods returns the purchasable food entries.
func Foods() []Item {
	out := make([]Item, len(foods))
	copy(out, foods)
	return out
}

// PetByID looks up a pet entry.
func PetByID(id int) (Item, bool) {
	for _, it := range pets {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// FoodByID looks up a food entry.
func FoodByID(id int) (Item, bool) {
	for _, it := range foods {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// NewPet instantiates a fresh pet from a pet entry at full health.
func (i Item) NewPet() models.Pet {
	return models.Pet{
		ID:        i.ID,
		Name:      i.Name,
		Image:     i.Image,
		SickImage: i.SickImage,
		Health:    i.HealthPoints,
		MaxHealth: i.HealthPoints,
		Status:    models.PetHealthy,
	}
}
