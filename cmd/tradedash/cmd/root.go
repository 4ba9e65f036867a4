package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rustyeddy/tradedash/config"
	"github.com/rustyeddy/tradedash/internal/logging"
	"github.com/rustyeddy/tradedash/internal/trace"
	"github.com/rustyeddy/tradedash/journal"
	"github.com/rustyeddy/tradedash/journal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tradedash",
	Short: "Strategy backtests and a trading journal from the command line",
	Long: `Tradedash keeps a day-by-day trading journal and runs reproducible
simulated backtests for a catalog of strategies.

It provides tools for:
  - Simulated backtests, seeded from the strategy, timeframe and window
  - Journal entries with reconciled long/short trade counts
  - Calendar, win/loss, direction and bias statistics
  - A daily economic calendar with a short risk note

Storage is a JSON file by default; SQLite and Postgres are also supported.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

var (
	cfgFile   string
	storeType string
	storePath string
	logLevel  string
	traceOn   bool

	cfg    *config.Config
	logger *slog.Logger

	// now is replaced in tests.
	now = time.Now
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && logger != nil {
		logger.Error("command failed", "error", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&storeType, "store", "", "journal store: json, sqlite, postgres or memory")
	rootCmd.PersistentFlags().StringVar(&storePath, "path", "", "journal file or database path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&traceOn, "trace", false, "export spans to stderr")
}

func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	if storeType != "" {
		c.Store.Type = storeType
	}
	if storePath != "" {
		c.Store.Path = storePath
	}
	if logLevel != "" {
		c.Log.Level = logLevel
	}
	if cmd.Flags().Changed("trace") {
		c.Trace.Enabled = traceOn
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	l, err := logging.New(c.Log.Level, c.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if c.Trace.Enabled {
		if err := trace.Init(cmd.ErrOrStderr(), version); err != nil {
			return fmt.Errorf("init tracing: %w", err)
		}
	}

	cfg, logger = c, l
	logger.Debug("config loaded", "file", cfgFile, "store", c.Store.Type)
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return trace.Shutdown(ctx)
}

// openBook opens the configured store. Callers close the returned store.
func openBook() (*journal.Book, store.Repository, error) {
	repo, err := store.Open(cfg.Store.Type, cfg.Store.Path, cfg.Store.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s store: %w", cfg.Store.Type, err)
	}
	return journal.NewBook(repo, logger), repo, nil
}

func today() string {
	return now().UTC().Format("2006-01-02")
}
