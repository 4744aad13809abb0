// Package cli implements ledgerctl, the administrative command line for the ledger.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/SscSPs/ledger_core/internal/adapters/audit"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/core/services"
	"github.com/SscSPs/ledger_core/internal/platform/config"
	"github.com/SscSPs/ledger_core/internal/platform/storage"
	"github.com/spf13/cobra"
)

// runtime carries global flags and the storage opened for the running command.
type runtime struct {
	driver      string
	sqlitePath  string
	databaseURL string
	userID      string
	debug       bool

	logger *slog.Logger
	store  *storage.Storage
	svc    *portssvc.ServiceContainer
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rt := &runtime{}

	rootCmd := &cobra.Command{
		Use:   "ledgerctl",
		Short: "Administer a double-entry ledger",
		Long: `ledgerctl operates directly on the ledger database.

Example:
  ledgerctl --driver sqlite --sqlite-path ledger.db migrate up
  ledgerctl create-org --id acme --name "Acme Trading"
  ledgerctl seed-chart --org acme
  ledgerctl trial-balance --org acme --as-of 2024-12-31
  ledgerctl vat-summary --org acme --year 2024 --quarter 1`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logLevel := slog.LevelWarn
			if rt.debug {
				logLevel = slog.LevelDebug
			}
			rt.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: logLevel}))
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rt.driver, "driver", "", "database driver: postgres or sqlite (default from DB_DRIVER)")
	flags.StringVar(&rt.sqlitePath, "sqlite-path", "", "sqlite database file (default from SQLITE_PATH)")
	flags.StringVar(&rt.databaseURL, "database-url", "", "postgres connection URL (default from PGSQL_URL)")
	flags.StringVar(&rt.userID, "user", "ledgerctl", "identity recorded in audit fields")
	flags.BoolVar(&rt.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		newMigrateCommand(rt),
		newCreateOrgCommand(rt),
		newSeedChartCommand(rt),
		newTrialBalanceCommand(rt),
		newVATSummaryCommand(rt),
		newSuggestCommand(rt),
		newLearnCommand(rt),
	)
	return rootCmd
}

// config loads the environment configuration and applies the global flags over it.
func (rt *runtime) config() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if rt.driver != "" {
		cfg.DBDriver = rt.driver
	}
	if rt.sqlitePath != "" {
		cfg.SQLitePath = rt.sqlitePath
	}
	if rt.databaseURL != "" {
		cfg.DatabaseURL = rt.databaseURL
	}
	return cfg, nil
}

// open connects to storage and builds the services. Migrations follow RUN_MIGRATIONS
// unless migrate overrides it.
func (rt *runtime) open(ctx context.Context, migrate *bool) error {
	cfg, err := rt.config()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if migrate != nil {
		cfg.RunMigrations = *migrate
	}
	rt.store, err = storage.Open(ctx, cfg, rt.logger)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	rt.svc, err = services.NewServiceContainer(cfg, rt.store.Repos, audit.NewSlogWriter(rt.logger))
	if err != nil {
		rt.close()
		return fmt.Errorf("initializing services: %w", err)
	}
	return nil
}

func (rt *runtime) close() {
	if rt.store != nil {
		rt.store.Close()
		rt.store = nil
	}
}

func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
