package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"time-travel-tasks/internal/config"
	"time-travel-tasks/internal/logging"
)

// Version is set at build time with -ldflags "-X time-travel-tasks/internal/cli.Version=...".
var Version = "dev"

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
}

// serveOptions holds the serve command's flag values
type serveOptions struct {
	configPath     string
	address        string
	logLevel       string
	logFormat      string
	store          string
	sqliteDSN      string
	noSeed         bool
	requestTimeout time.Duration
}

// NewRootCommand creates the root cobra command and its subcommands
func NewRootCommand() *RootCommand {
	root := &RootCommand{}

	root.cmd = &cobra.Command{
		Use:   "tasksd",
		Short: "Time Travel Tasks API server",
		Long: `tasksd serves a small task list over HTTP.

Tasks live in memory for the lifetime of the process; five sample tasks are
loaded at startup unless seeding is disabled.

EXAMPLES:
  tasksd serve                             # Listen on :8000 with the in-memory store
  tasksd serve --address :9000 --no-seed   # Start empty on another port
  tasksd serve --store sqlite              # Use the SQLite backend (":memory:" by default)
  tasksd serve --config tasks.yaml         # Read settings from a YAML file

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > config file > defaults

    TASKS_HTTP_ADDRESS                     Listen address (default: :8000)
    TASKS_HTTP_READ_HEADER_TIMEOUT         Read header timeout (default: 5s)
    TASKS_HTTP_REQUEST_TIMEOUT             Per request timeout (default: 10s)
    TASKS_HTTP_SHUTDOWN_TIMEOUT            Graceful shutdown timeout (default: 10s)
    TASKS_LOG_LEVEL                        DEBUG, INFO, WARN or ERROR (default: INFO)
    TASKS_LOG_FORMAT                       text or json (default: text)
    TASKS_STORE_BACKEND                    memory or sqlite (default: memory)
    TASKS_STORE_SQLITE_DSN                 SQLite data source (default: :memory:)
    TASKS_STORE_SKIP_SEED                  Start without sample tasks (default: false)
    TASKS_VALIDATION_SEARCH_MIN            Minimum search length (default: 3)
    TASKS_VALIDATION_TEXT_MAX              Maximum task text length, 0 for none (default: 0)
    TASKS_DEBUG                            Force debug logging when set`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.addSubcommands()

	return root
}

// Command returns the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	opts := &serveOptions{}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long:  "Start the HTTP API and block until SIGINT or SIGTERM, then shut down gracefully.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runServe(cmd, opts)
		},
	}

	flags := serveCmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	flags.StringVar(&opts.address, "address", "", "Listen address (overrides TASKS_HTTP_ADDRESS)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (overrides TASKS_LOG_LEVEL)")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format, text or json (overrides TASKS_LOG_FORMAT)")
	flags.StringVar(&opts.store, "store", "", "Store backend, memory or sqlite (overrides TASKS_STORE_BACKEND)")
	flags.StringVar(&opts.sqliteDSN, "sqlite-dsn", "", "SQLite data source (overrides TASKS_STORE_SQLITE_DSN)")
	flags.BoolVar(&opts.noSeed, "no-seed", false, "Start without the sample tasks (overrides TASKS_STORE_SKIP_SEED)")
	flags.DurationVar(&opts.requestTimeout, "request-timeout", 0, "Per request timeout, e.g. 5s (overrides TASKS_HTTP_REQUEST_TIMEOUT)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tasksd %s\n", Version)
		},
	}

	r.cmd.AddCommand(serveCmd, versionCmd)
}

// overrides collects the flags that were set explicitly on cmd
func (o *serveOptions) overrides(cmd *cobra.Command) *config.ConfigOverrides {
	flags := cmd.Flags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("address") {
		overrides.Address = &o.address
	}
	if flags.Changed("log-level") {
		overrides.LogLevel = &o.logLevel
	}
	if flags.Changed("log-format") {
		overrides.LogFormat = &o.logFormat
	}
	if flags.Changed("store") {
		overrides.StoreBackend = &o.store
	}
	if flags.Changed("sqlite-dsn") {
		overrides.SQLiteDSN = &o.sqliteDSN
	}
	if flags.Changed("no-seed") {
		overrides.SkipSeed = &o.noSeed
	}
	if flags.Changed("request-timeout") {
		overrides.RequestTimeout = &o.requestTimeout
	}

	return overrides
}

func (r *RootCommand) runServe(cmd *cobra.Command, opts *serveOptions) error {
	errs := NewErrorHandler()

	cfg, err := config.NewLoader().LoadWithOverrides(opts.configPath, opts.overrides(cmd))
	if err != nil {
		return errs.Handle("load configuration", err)
	}

	log := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := NewApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer app.Close()

	log.Info("starting tasks API",
		"version", Version,
		"store", cfg.Store.Backend,
		"seed", !cfg.Store.SkipSeed,
	)
	return app.Run(ctx)
}
