package system

import (
	"fmt"

	"github.com/taskive/taskive/internal/cli"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}

	fmt.Printf("Initialized taskive storage at %s\n", ctx.Store.GetConfigPath())
	return nil
}
