package profile

import (
	"fmt"

	"github.com/taskive/taskive/internal/cli"
)

type ShowCmd struct{}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	fmt.Printf("%s — level %d (%d/%d XP)\n",
		ctx.User.Username(), ctx.User.Level(), ctx.User.XP(), ctx.User.XPRequired())
	fmt.Printf("Coins: %d\n", ctx.User.Coins())
	fmt.Printf("Tasks completed: %d\n", ctx.User.CompletedCount())

	pets := ctx.User.Pets()
	if len(pets) == 0 {
		fmt.Println("No pets yet — visit the store.")
		return nil
	}
	fmt.Println("Pets:")
	for _, p := range pets {
		fmt.Printf("  %s\n", cli.FormatPet(p))
	}
	return nil
}
