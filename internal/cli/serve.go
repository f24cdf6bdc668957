package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fintrack-ph/backend/internal/config"
	"github.com/fintrack-ph/backend/internal/models"
	"github.com/fintrack-ph/backend/internal/router"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func newServeCommand(load func() (*config.Config, error)) *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			if address != "" {
				cfg.Server.Address = address
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg)
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "address to listen on (default: server.address)")
	return cmd
}

// connect opens the configured database. The directory of a SQLite file
// is created if it does not exist.
func connect(cfg *config.Config) error {
	if cfg.Database.Driver == models.DriverSQLite {
		if dir := filepath.Dir(cfg.Database.DSN); dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return err
			}
		}
	}

	return models.Connect(cfg.Database.Driver, cfg.Database.DSN)
}

func serve(ctx context.Context, cfg *config.Config) error {
	if err := connect(cfg); err != nil {
		return err
	}

	r, teardown, err := router.Config(cfg)
	defer teardown()
	if err != nil {
		return err
	}
	router.AttachRoutes(r.Group("/"), cfg)

	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.Info().Str("address", srv.Addr).Msg("Server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	sqlDB, err := models.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
