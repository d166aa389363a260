package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/taskive/taskive/internal/cli"
	"github.com/taskive/taskive/internal/cli/profile"
	shopcmd "github.com/taskive/taskive/internal/cli/shop"
	"github.com/taskive/taskive/internal/cli/system"
	taskcmd "github.com/taskive/taskive/internal/cli/tasks"
	"github.com/taskive/taskive/internal/constants"
	apperrors "github.com/taskive/taskive/internal/errors"
	"github.com/taskive/taskive/internal/logger"
	"github.com/taskive/taskive/internal/shop"
	"github.com/taskive/taskive/internal/storage"
	"github.com/taskive/taskive/internal/tasks"
	"github.com/taskive/taskive/internal/user"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path. A .json suffix selects the JSON backend, anything else SQLite." type:"path" default:"~/.config/taskive/taskive.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init  system.InitCmd  `cmd:"" help:"Initialize taskive storage."`
	Tui   system.TuiCmd   `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Watch system.WatchCmd `cmd:"" help:"Run the deadline watcher in the foreground."`
	Task  struct {
		Add    taskcmd.TaskAddCmd    `cmd:"" help:"Add a new task."`
		List   taskcmd.TaskListCmd   `cmd:"" help:"List tasks."`
		Edit   taskcmd.TaskEditCmd   `cmd:"" help:"Edit an existing task."`
		Done   taskcmd.TaskDoneCmd   `cmd:"" help:"Mark a task as completed."`
		Delete taskcmd.TaskDeleteCmd `cmd:"" help:"Delete a task."`
	} `cmd:"" help:"Manage tasks."`
	Store struct {
		List    shopcmd.StoreListCmd `cmd:"" help:"List the store catalog." default:"1"`
		BuyPet  shopcmd.BuyPetCmd    `cmd:"" help:"Buy a pet."`
		BuyFood shopcmd.BuyFoodCmd   `cmd:"" help:"Buy food and feed it to a pet."`
	} `cmd:"" help:"Browse and buy from the store."`
	Pets    profile.PetsCmd `cmd:"" help:"List your pets."`
	Profile struct {
		Show    profile.ShowCmd    `cmd:"" help:"Show your profile." default:"1"`
		SetName profile.SetNameCmd `cmd:"" help:"Change your username."`
	} `cmd:"" help:"View and edit your profile."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Gamified to-do tracker where finishing tasks on time keeps your pets alive"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(CLI.Config)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{Store: store}

	// The init command creates the storage file; everything else needs it
	// loaded first.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}

		userStore, err := user.NewStore(store)
		if err != nil {
			apperrors.Fatal(err)
		}
		taskStore, err := tasks.NewStore(store, userStore, userStore)
		if err != nil {
			apperrors.Fatal(err)
		}
		shopStore, err := shop.New(store, userStore, userStore)
		if err != nil {
			apperrors.Fatal(err)
		}

		appCtx.User = userStore
		appCtx.Tasks = taskStore
		appCtx.Shop = shopStore
	}

	err := ctx.Run(appCtx)
	store.Close()
	apperrors.Fatal(err)
}
