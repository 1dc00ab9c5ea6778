package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"campusguard/internal/infrastructure/config"
	"campusguard/internal/infrastructure/database"
	"campusguard/internal/infrastructure/persistence/migrations"
	"campusguard/internal/infrastructure/persistence/seeds"
	"campusguard/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage the database schema and the seeded status, severity, and department rows.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newSeedCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply the database schema",
		Long:  `Bring the database schema up to date using auto migration.`,
		RunE:  runUp,
	}
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed lookup data",
		Long:  `Insert the complaint statuses, severity levels, and departments the engine resolves at runtime. Safe to run repeatedly.`,
		RunE:  runSeed,
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}
	defer database.Close()

	return migrations.RunAutoMigrations(database.Get())
}

func runSeed(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}
	defer database.Close()

	if err := seeds.SeedAll(database.Get()); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	logger.Info("lookup data seeded")
	return nil
}

func setup() error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	return nil
}
