package shop

import (
	"fmt"

	"github.com/taskive/taskive/internal/catalog"
	"github.com/taskive/taskive/internal/cli"
)

type BuyFoodCmd struct {
	ID  int `arg:"" help:"Catalog food ID."`
	Pet int `arg:"" help:"Owned pet ID to feed."`
}

func (c *BuyFoodCmd) Run(ctx *cli.Context) error {
	item, ok := catalog.FoodByID(c.ID)
	if !ok {
		return fmt.Errorf("no food with ID %d in the catalog", c.ID)
	}

	if err := ctx.Shop.BuyFood(c.ID, c.Pet); err != nil {
		return fmt.Errorf("cannot buy %s: %w", item.Name, err)
	}

	pet, _ := ctx.User.PetByID(c.Pet)
	fmt.Printf("Fed %s to %s — now %d/%d HP. %d coins left.\n",
		item.Name, pet.Name, pet.Health, pet.MaxHealth, ctx.User.Coins())
	return nil
}
