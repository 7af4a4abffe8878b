package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iudanet/tasktracker/internal/auth"
	"github.com/iudanet/tasktracker/internal/config"
	"github.com/iudanet/tasktracker/internal/iocli"
	"github.com/iudanet/tasktracker/internal/live"
	"github.com/iudanet/tasktracker/internal/settings"
	"github.com/iudanet/tasktracker/internal/storage/boltdb"
	"github.com/iudanet/tasktracker/internal/storage/sqlite"
	"github.com/iudanet/tasktracker/internal/tasks"
)

// BuildInfo is set via ldflags
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// App owns the storages and services of one command invocation
type App struct {
	io      iocli.IO
	v       *viper.Viper
	cli     *Cli
	closers []func() error
	info    BuildInfo
	cfgFile string
}

// NewApp creates the application. Storages are opened lazily by the command
// being run.
func NewApp(io iocli.IO, info BuildInfo) *App {
	return &App{
		io:   io,
		v:    config.New(),
		info: info,
	}
}

// Command returns the root cobra command
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           "tasktracker",
		Short:         "Personal task tracker",
		Long:          "tasktracker keeps dated tasks in a local database and shows them by day, week or month.",
		Version:       a.info.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !needsStorage(cmd) {
				return nil
			}
			return a.open(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (yaml, json or toml)")
	flags.String("db", "", "path to the task database")
	flags.String("prefs", "", "path to the preferences database")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("timezone", "", "IANA time zone used for days, e.g. Europe/Moscow")
	// Флаги существуют, ошибка невозможна
	_ = config.BindFlags(a.v, flags)

	root.SetVersionTemplate(a.versionText())
	root.AddCommand(commands(func() *Cli { return a.cli })...)
	root.AddCommand(a.versionCommand())

	return root
}

// Close releases storages opened for the command
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) open(ctx context.Context) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}

	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}

	logger := config.NewLogger(os.Stderr, cfg.LogLevel, false)
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	db, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	a.closers = append(a.closers, db.Close)

	prefs, err := boltdb.New(ctx, cfg.PrefsPath)
	if err != nil {
		return fmt.Errorf("failed to open preferences: %w", err)
	}
	a.closers = append(a.closers, prefs.Close)

	hub := live.NewHub(cfg.LiveKeepAlive, logger)
	a.closers = append(a.closers, func() error {
		hub.Close()
		return nil
	})

	logger.Debug("Storage opened", "db", cfg.DBPath, "prefs", cfg.PrefsPath, "timezone", loc.String())

	a.cli = New(
		a.io,
		auth.NewService(db, prefs, logger),
		tasks.NewService(db, hub, loc, logger),
		settings.NewService(prefs, logger),
		loc,
	)
	return nil
}

const annotationNoStorage = "no-storage"

// needsStorage сообщает, открывать ли базы для команды. help, completion и
// version работают без них
func needsStorage(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[annotationNoStorage] == "true" {
			return false
		}
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}

func (a *App) versionText() string {
	return fmt.Sprintf("tasktracker %s\nBuild date: %s\nGit commit: %s\n", a.info.Version, a.info.BuildDate, a.info.GitCommit)
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Show version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoStorage: "true"},
		Run: func(_ *cobra.Command, _ []string) {
			a.io.Printf("%s", a.versionText())
		},
	}
}

// commands строит подкоманды. get вызывается при запуске команды, когда
// хранилища уже открыты
func commands(get func() *Cli) []*cobra.Command {
	return []*cobra.Command{
		authCommand("login", "Log in, registering the user on first login", get, (*Cli).runLogin),
		authCommand("register", "Register a new user and log in", get, (*Cli).runRegister),
		{
			Use:   "logout",
			Short: "Clear the current session",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return get().runLogout(cmd.Context())
			},
		},
		{
			Use:   "status",
			Short: "Show the current session and preferences",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return get().runStatus(cmd.Context())
			},
		},
		addCommand(get),
		editCommand(get),
		{
			Use:   "get <id>",
			Short: "Show a task",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return get().runGet(cmd.Context(), args[0])
			},
		},
		{
			Use:     "delete <id>",
			Aliases: []string{"rm"},
			Short:   "Delete a task",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return get().runDelete(cmd.Context(), args[0])
			},
		},
		clearCommand(get),
		listCommand(get),
		watchCommand(get),
		weekCommand(get),
		monthCommand(get),
		settingsCommand(get),
	}
}

func authCommand(use, short string, get func() *Cli, run func(*Cli, context.Context, string, string) error) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(get(), cmd.Context(), username, password)
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username, prompted when empty")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password, prompted when empty")
	return cmd
}

func bindTaskFlags(cmd *cobra.Command, opts *taskOptions) {
	f := cmd.Flags()
	f.StringVarP(&opts.Title, "title", "t", "", "task title")
	f.StringVarP(&opts.Description, "description", "d", "", "task description")
	f.StringVar(&opts.Tags, "tags", "", "comma separated tags")
	f.StringVar(&opts.Date, "date", "", "date YYYY-MM-DD, today when empty")
	f.StringVar(&opts.Time, "time", "", "time HH:MM, now when empty")
	f.StringVar(&opts.Icon, "icon", "", "icon name")
	f.StringVar(&opts.Color, "color", "", "color #RRGGBB")
	f.StringVar(&opts.Priority, "priority", "", "priority: high, medium or low")
}

func addCommand(get func() *Cli) *cobra.Command {
	var opts taskOptions

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return get().runAdd(cmd.Context(), opts)
		},
	}
	bindTaskFlags(cmd, &opts)
	return cmd
}

func editCommand(get func() *Cli) *cobra.Command {
	var opts taskOptions

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return get().runEdit(cmd.Context(), args[0], opts, cmd.Flags().Changed)
		},
	}
	bindTaskFlags(cmd, &opts)
	return cmd
}

func clearCommand(get func() *Cli) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all tasks of the current user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return get().runClear(cmd.Context(), yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func bindListFlags(cmd *cobra.Command, opts *listOptions) {
	f := cmd.Flags()
	f.StringVar(&opts.Day, "day", "", "only tasks of this day, YYYY-MM-DD")
	f.BoolVar(&opts.Today, "today", false, "only today's tasks")
	f.StringVarP(&opts.Search, "search", "s", "", "case-insensitive text in title or description")
	f.StringVar(&opts.Tag, "tag", "", "tag substring")
}

func listCommand(get func() *Cli) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return get().runList(cmd.Context(), opts)
		},
	}
	bindListFlags(cmd, &opts)
	return cmd
}

func watchCommand(get func() *Cli) *cobra.Command {
	var opts listOptions
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the task list every time it changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return get().runWatch(cmd.Context(), opts, interval)
		},
	}
	bindListFlags(cmd, &opts)
	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "how often to look for changes made elsewhere, 0 disables")
	return cmd
}

func weekCommand(get func() *Cli) *cobra.Command {
	var offset int
	var day string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show a week with task counts and the tasks of one day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return get().runWeek(cmd.Context(), offset, day)
		},
	}
	cmd.Flags().IntVarP(&offset, "offset", "o", 0, "weeks from the current one, negative for the past")
	cmd.Flags().StringVar(&day, "day", "", "selected day YYYY-MM-DD")
	return cmd
}

func monthCommand(get func() *Cli) *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Show a month grid, days with tasks are marked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return get().runMonth(cmd.Context(), year, time.Month(month))
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "year, current when 0")
	cmd.Flags().IntVar(&month, "month", 0, "month 1-12, current when 0")
	return cmd
}

func settingsCommand(get func() *Cli) *cobra.Command {
	var theme, language string

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return get().runSettings(cmd.Context(), theme, language)
		},
	}
	cmd.Flags().StringVar(&theme, "theme", "", "theme: light, dark or system")
	cmd.Flags().StringVar(&language, "language", "", "interface language, e.g. en or ru")
	return cmd
}
