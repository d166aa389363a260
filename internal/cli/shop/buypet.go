package shop

import (
	"fmt"

	"github.com/taskive/taskive/internal/catalog"
	"github.com/taskive/taskive/internal/cli"
)

type BuyPetCmd struct {
	ID int `arg:"" help:"Catalog pet ID."`
}

func (c *BuyPetCmd) Run(ctx *cli.Context) error {
	item, ok := catalog.PetByID(c.ID)
	if !ok {
		return fmt.Errorf("no pet with ID %d in the catalog", c.ID)
	}

	if err := ctx.Shop.BuyPet(c.ID); err != nil {
		return fmt.Errorf("cannot buy %s: %w", item.Name, err)
	}

	fmt.Printf("Bought %s for %d coins. %d coins left.\n", item.Name, item.Price, ctx.User.Coins())
	return nil
}
