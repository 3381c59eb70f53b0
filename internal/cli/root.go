// Package cli wires the cine-app commands: the web server, the booking log
// consumer and a few catalog helpers.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iliyamo/cine-app/internal/catalog"
	"github.com/iliyamo/cine-app/internal/config"
	"github.com/iliyamo/cine-app/internal/database"
	"github.com/iliyamo/cine-app/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:           "cine-app",
	Short:         "Cinema booking demo",
	Long:          `Browse movies and showtimes, pick seats and confirm a simulated payment.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

// Execute runs the command line.  SIGINT and SIGTERM cancel the command
// context so servers and consumers can stop cleanly.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.AddCommand(serveCmd, consumeCmd, showtimesCmd, seedCmd)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

// setup loads configuration and builds the logger shared by every command.
func setup() (config.Config, *zap.Logger) {
	cfg := config.Load()
	return cfg, logger.Must(cfg.IsProduction())
}

// loadCatalog returns the sample catalog, or the one stored in MySQL when
// CATALOG_SOURCE=mysql.  The database is only read here.
func loadCatalog(ctx context.Context, cfg config.Config, log *zap.Logger) (*catalog.Catalog, error) {
	if cfg.CatalogSource != "mysql" {
		return catalog.Sample(), nil
	}
	db, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open catalog database: %w", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(ctx, db); err != nil {
		return nil, err
	}
	cat, err := catalog.LoadSQL(ctx, db)
	if err != nil {
		return nil, err
	}
	log.Info("catalog loaded from mysql",
		zap.Int("cinemas", len(cat.Cinemas())),
		zap.Int("movies", len(cat.MovieIDs())))
	return cat, nil
}
