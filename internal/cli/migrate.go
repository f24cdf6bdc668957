package cli

import (
	"github.com/fintrack-ph/backend/internal/config"
	"github.com/fintrack-ph/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newMigrateCommand(load func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the database schema and exit",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			// Connecting migrates
			if err := connect(cfg); err != nil {
				return err
			}

			sqlDB, err := models.DB.DB()
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			log.Info().Str("driver", cfg.Database.Driver).Msg("Database migrated")
			return nil
		},
	}
}
