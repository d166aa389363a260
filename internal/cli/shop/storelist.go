package shop

import (
	"fmt"

	"github.com/taskive/taskive/internal/catalog"
	"github.com/taskive/taskive/internal/cli"
)

type StoreListCmd struct{}

func (c *StoreListCmd) Run(ctx *cli.Context) error {
	fmt.Printf("Coins: %d\n\n", ctx.User.Coins())

	fmt.Println("Pets:")
	for _, item := range catalog.Pets() {
		line := fmt.Sprintf("  #%d %s — %d coins (%d HP)", item.ID, item.Name, item.Price, item.HealthPoints)
		if item.MinLevel > 0 {
			line += fmt.Sprintf(", requires level %d", item.MinLevel)
		}
		if ctx.Shop.Owned(item.ID) {
			line += " [owned]"
		}
		fmt.Println(line)
	}

	fmt.Println("Food:")
	for _, item := range catalog.Foods() {
		fmt.Printf("  #%d %s — %d coins (heals %d HP)\n", item.ID, item.Name, item.Price, item.HealingPoints)
	}
	return nil
}
