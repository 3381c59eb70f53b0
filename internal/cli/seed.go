package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iliyamo/cine-app/internal/catalog"
	"github.com/iliyamo/cine-app/internal/database"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the sample catalog into MySQL",
	Long:  `Create the catalog tables if needed and store the sample cinemas and showtimes, for use with CATALOG_SOURCE=mysql.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log := setup()
		defer func() { _ = log.Sync() }()
		if cfg.CatalogSource != "mysql" {
			return fmt.Errorf("seed needs CATALOG_SOURCE=mysql, got %q", cfg.CatalogSource)
		}

		db, err := database.Open(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := database.EnsureSchema(cmd.Context(), db); err != nil {
			return err
		}
		sample := catalog.Sample()
		if err := catalog.SeedSQL(cmd.Context(), db, sample); err != nil {
			return err
		}
		log.Info("catalog seeded", zap.Int("cinemas", len(sample.Cinemas())), zap.Int("movies", len(sample.MovieIDs())))
		return nil
	},
}
