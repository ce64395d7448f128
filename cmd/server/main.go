package main

import (
	"fmt"
	"os"

	"github.com/arnavshah/team-scheduler/internal/app"
	"github.com/arnavshah/team-scheduler/internal/config"
	"github.com/arnavshah/team-scheduler/internal/logging"
	"github.com/arnavshah/team-scheduler/pkg/store"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		port     string
		seedFile string
		envFile  string
	)

	cmd := &cobra.Command{
		Use:           "team-scheduler",
		Short:         "Team work-schedule API and web view",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load .env if it exists
			paths := config.DefaultEnvPaths
			if envFile != "" {
				paths = []string{envFile}
			}
			if _, err := config.LoadEnvFile(paths...); err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}
			if seedFile != "" {
				cfg.SeedFile = seedFile
			}

			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "port to listen on (overrides PORT)")
	cmd.Flags().StringVar(&seedFile, "seed-file", "", "YAML roster to seed the team from (overrides SEED_FILE)")
	cmd.Flags().StringVar(&envFile, "env-file", "", "env file to load instead of .env")

	cmd.AddCommand(newRosterCmd())
	return cmd
}

// newRosterCmd prints the built-in roster as YAML, a starting point for SEED_FILE
func newRosterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roster",
		Short: "Print the default team roster as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(config.Roster{Users: store.DefaultRoster()}); err != nil {
				return fmt.Errorf("could not encode roster: %w", err)
			}
			return enc.Close()
		},
	}
}

func run(cfg *config.Config) error {
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer logger.Sync()

	gin.SetMode(cfg.GinMode)

	a, err := app.New(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	logger.Info("server starting",
		zap.String("port", cfg.Port),
		zap.Int("users", a.Store.Count()),
		zap.Bool("usage_tracking", cfg.UsageTracking))
	if err := a.Router.Run(":" + cfg.Port); err != nil {
		return fmt.Errorf("could not run server: %w", err)
	}
	return nil
}
