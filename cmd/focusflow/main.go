package main

import (
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/rahulraj-lab/Focus-flow/internal/cli"
	"github.com/rahulraj-lab/Focus-flow/internal/cli/alerts"
	"github.com/rahulraj-lab/Focus-flow/internal/cli/backups"
	"github.com/rahulraj-lab/Focus-flow/internal/cli/days"
	"github.com/rahulraj-lab/Focus-flow/internal/cli/plans"
	"github.com/rahulraj-lab/Focus-flow/internal/cli/rules"
	"github.com/rahulraj-lab/Focus-flow/internal/cli/system"
	"github.com/rahulraj-lab/Focus-flow/internal/config"
	"github.com/rahulraj-lab/Focus-flow/internal/constants"
	"github.com/rahulraj-lab/Focus-flow/internal/errors"
	"github.com/rahulraj-lab/Focus-flow/internal/logger"
	"github.com/rahulraj-lab/Focus-flow/internal/notifier"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database path, PostgreSQL connection string, or \"keyring\". Overrides storage.path. Credentials must NOT be embedded in a connection string." type:"string"`
	Debug   bool   `help:"Log debug output to stderr."`

	Init      system.InitCmd    `cmd:"" help:"Initialize focusflow storage."`
	Tui       system.TuiCmd     `cmd:"" help:"Launch the interactive timeline." default:"withargs"`
	Day       days.DayCmd       `cmd:"" help:"Show the schedule for a day."`
	Set       days.SetCmd       `cmd:"" help:"Set the task, notes, recurrence or status of an hour range."`
	Done      days.DoneCmd      `cmd:"" help:"Toggle completion of the block at an hour."`
	Clear     days.ClearCmd     `cmd:"" help:"Clear an hour range."`
	Resize    days.ResizeCmd    `cmd:"" help:"Change how many hours a block lasts."`
	DeleteDay days.DeleteDayCmd `cmd:"" name:"delete-day" help:"Delete every entry for a day."`
	History   days.HistoryCmd   `cmd:"" help:"Show recent completion history."`
	Calendar  days.CalendarCmd  `cmd:"" help:"Show a month of completion history."`
	Remind    system.RemindCmd  `cmd:"" help:"Send an hourly reminder for the current block."`
	Rules     struct {
		List    rules.ListCmd    `cmd:"" help:"List recurring rules." default:"1"`
		Delete  rules.DeleteCmd  `cmd:"" help:"Delete recurring rules by id or task."`
		Preview rules.PreviewCmd `cmd:"" help:"Show upcoming occurrences of a rule."`
		Export  rules.ExportCmd  `cmd:"" help:"Export recurring rules as YAML."`
		Import  rules.ImportCmd  `cmd:"" help:"Import recurring rules from YAML."`
	} `cmd:"" help:"Manage recurring rules."`
	Inbox struct {
		List   alerts.ListCmd   `cmd:"" help:"List notifications." default:"1"`
		Read   alerts.ReadCmd   `cmd:"" help:"Mark notifications as read."`
		Remove alerts.RemoveCmd `cmd:"" help:"Remove a notification."`
		Clear  alerts.ClearCmd  `cmd:"" help:"Remove every notification."`
	} `cmd:"" help:"Manage the notification inbox."`
	AI struct {
		Plan plans.PlanCmd `cmd:"" help:"Generate schedule options with Gemini."`
	} `cmd:"" name:"ai" help:"AI planning assistant."`
	Export struct {
		ICS system.ExportICSCmd `cmd:"" name:"ics" help:"Export a day as an iCalendar file."`
	} `cmd:"" help:"Export data."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Keyring struct {
		Set       system.KeyringSetCmd       `cmd:"" help:"Store a PostgreSQL connection string."`
		SetAPIKey system.KeyringSetAPIKeyCmd `cmd:"" name:"set-api-key" help:"Store the Gemini API key."`
		Get       system.KeyringGetCmd       `cmd:"" help:"Show a stored secret (masked)."`
		Delete    system.KeyringDeleteCmd    `cmd:"" help:"Delete a stored secret."`
		Status    system.KeyringStatusCmd    `cmd:"" help:"Check keyring availability."`
	} `cmd:"" help:"Manage secrets in the OS keyring."`
	Settings struct {
		Show system.ConfigShowCmd `cmd:"" help:"Show the current configuration." default:"1"`
		Set  system.ConfigSetCmd  `cmd:"" help:"Change a configuration value."`
	} `cmd:"" name:"config" help:"Manage configuration."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Hourly day planner with recurring blocks and an AI planning assistant"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load()
	if err != nil {
		errors.Fatal(err)
	}
	if CLI.Config != "" {
		cfg.Storage.Path = config.ExpandHome(CLI.Config)
	}

	if err := logger.Init(logger.Config{
		Debug:     cfg.Log.Debug || CLI.Debug,
		ConfigDir: filepath.Dir(config.Path()),
	}); err != nil {
		errors.Fatal(err)
	}

	store, err := system.ResolveStore(cfg.Storage.Path)
	if err != nil {
		errors.Fatal(err)
	}
	defer store.Close()

	appCtx := &cli.Context{
		Store:  store,
		Config: cfg,
		Sink:   notifier.New(),
	}

	// init creates the database itself; every other command needs it loaded
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		_ = store.Close()
		errors.Fatal(err)
	}
}
