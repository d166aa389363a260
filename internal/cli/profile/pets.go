package profile

import (
	"fmt"

	"github.com/taskive/taskive/internal/cli"
)

type PetsCmd struct{}

func (c *PetsCmd) Run(ctx *cli.Context) error {
	pets := ctx.User.Pets()
	if len(pets) == 0 {
		fmt.Println("No pets yet — visit the store.")
		return nil
	}

	for _, p := range pets {
		fmt.Println(cli.FormatPet(p))
	}
	return nil
}
