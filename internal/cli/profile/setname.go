package profile

import (
	"fmt"
	"strings"

	"github.com/taskive/taskive/internal/cli"
)

type SetNameCmd struct {
	Name string `arg:"" help:"New username."`
}

func (c *SetNameCmd) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("username must not be blank")
	}
	return nil
}

func (c *SetNameCmd) Run(ctx *cli.Context) error {
	ctx.User.UpdateUsername(c.Name)
	fmt.Printf("Username updated to %s\n", ctx.User.Username())
	return nil
}
