package cli

import (
	"io"
	"os"

	"github.com/fintrack-ph/backend/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand returns the fintrack command. Without a subcommand, it
// serves the API.
func NewRootCommand(version string) *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "fintrack",
		Short:         "Backend for fintrack, a personal and small business finance tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
	cmd.PersistentFlags().String("log-format", "", "log format (human, json)")
	cmd.PersistentFlags().String("mode", "", "gin mode (debug, release, test)")
	_ = v.BindPFlag("log.format", cmd.PersistentFlags().Lookup("log-format"))
	_ = v.BindPFlag("server.mode", cmd.PersistentFlags().Lookup("mode"))

	load := func() (*config.Config, error) {
		cfg, err := config.Load(v, cfgFile)
		if err != nil {
			return nil, err
		}
		setup(cfg, os.Stdout)
		return cfg, nil
	}

	serve := newServeCommand(load)
	cmd.RunE = serve.RunE
	cmd.Flags().AddFlagSet(serve.Flags())

	cmd.AddCommand(serve)
	cmd.AddCommand(newMigrateCommand(load))
	cmd.AddCommand(newVersionCommand(version))

	return cmd
}

// setup configures gin and the global logger.
func setup(cfg *config.Config, out io.Writer) {
	gin.SetMode(cfg.Server.Mode)

	output := out
	if cfg.Human() {
		output = zerolog.ConsoleWriter{Out: out}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()
}
