package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"roboadvisor/internal/app"
	"roboadvisor/internal/logger"
	"roboadvisor/internal/repository"

	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "roboadvisor",
		Short:         "Robo-advisor portfolio simulation service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			return serve(c.Context(), configPath, 0)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("ROBO_CONFIG"), "path to a TOML config file")

	root.AddCommand(
		newServeCommand(&configPath),
		newSimulateCommand(&configPath),
		newMigrateCommand(&configPath),
	)

	return root
}

func Execute() error {
	ctx := logger.WithContext(context.Background(), logger.New())
	return NewRootCommand().ExecuteContext(ctx)
}

func newServeCommand(configPath *string) *cobra.Command {
	var port int
	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP api",
		RunE: func(c *cobra.Command, args []string) error {
			return serve(c.Context(), *configPath, port)
		},
	}
	c.Flags().IntVarP(&port, "port", "p", 0, "port to listen on, overrides config")
	return c
}

func serve(ctx context.Context, configPath string, port int) error {
	cfg, err := loadConfigOrFail(configPath)
	if err != nil {
		return err
	}
	if port > 0 {
		cfg.Server.Port = port
	}

	deps, err := InitializeDependencies(ctx, *cfg)
	if err != nil {
		return err
	}
	defer CloseDependencies(deps)

	logger.FromContext(ctx).Infow("starting api", "port", cfg.Server.Port)
	return deps.ApiHandler.StartApi(cfg.Server.Port)
}

func newSimulateCommand(configPath *string) *cobra.Command {
	var (
		userID    string
		enableTlh bool
		harvest   bool
		rebalance bool
	)
	c := &cobra.Command{
		Use:   "simulate",
		Short: "Run a scripted advisory cycle for one user and print the report",
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			cfg, err := loadConfigOrFail(*configPath)
			if err != nil {
				return err
			}

			deps, err := InitializeDependencies(ctx, *cfg)
			if err != nil {
				return err
			}
			defer CloseDependencies(deps)

			report, err := deps.SimulationHandler.Run(ctx, userID, app.SimulationOptions{
				EnableTaxLossHarvesting: enableTlh,
				HarvestLosses:           harvest,
				Rebalance:               rebalance,
			})
			if err != nil {
				return fmt.Errorf("simulation failed: %w", err)
			}

			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode report: %w", err)
			}
			fmt.Fprintln(c.OutOrStdout(), string(out))
			return nil
		},
	}
	c.Flags().StringVarP(&userID, "user", "u", "demo", "user id to simulate")
	c.Flags().BoolVar(&enableTlh, "tlh", true, "opt the user into tax-loss harvesting first")
	c.Flags().BoolVar(&harvest, "harvest", true, "harvest open tax losses")
	c.Flags().BoolVar(&rebalance, "rebalance", true, "trade back toward the target allocation")
	return c
}

func newMigrateCommand(configPath *string) *cobra.Command {
	var down bool
	c := &cobra.Command{
		Use:   "migrate",
		Short: "Apply (or roll back one step of) the event log schema",
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := loadConfigOrFail(*configPath)
			if err != nil {
				return err
			}
			if cfg.Events.PostgresURL == "" {
				return fmt.Errorf("migrate requires events.postgres_url or ROBO_POSTGRES_URL")
			}

			db, err := repository.NewPostgresDb(cfg.Events.PostgresURL)
			if err != nil {
				return err
			}
			defer db.Close()

			log := logger.FromContext(c.Context())
			if down {
				if err := repository.RollbackMigrations(db); err != nil {
					return err
				}
				log.Info("rolled back one migration")
				return nil
			}
			if err := repository.RunMigrations(db); err != nil {
				return err
			}
			log.Info("migrations up to date")
			return nil
		},
	}
	c.Flags().BoolVar(&down, "down", false, "roll back the most recent migration")
	return c
}
