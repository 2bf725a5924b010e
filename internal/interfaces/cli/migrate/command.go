package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"chambers/internal/infrastructure/config"
	"chambers/internal/infrastructure/database"
	"chambers/internal/infrastructure/migration"
	"chambers/internal/shared/logger"
)

var (
	env     string
	steps   int
	version int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations: apply pending migrations, roll back, and inspect status.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
		newForceCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			migrator, err := setup()
			if err != nil {
				return err
			}
			defer database.Close()
			return migrator.Up(database.Get())
		},
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			migrator, err := setup()
			if err != nil {
				return err
			}
			defer database.Close()
			return migrator.Down(database.Get(), steps)
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")
	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			migrator, err := setup()
			if err != nil {
				return err
			}
			defer database.Close()

			current, dirty, err := migrator.Version(database.Get())
			if err != nil {
				return err
			}
			fmt.Printf("version: %d dirty: %v\n", current, dirty)
			return nil
		},
	}
}

func newCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new migration",
		Long:  `Create a pair of empty up/down migration files with the next sequence number.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
			if err != nil {
				return fmt.Errorf("failed to resolve scripts path: %w", err)
			}
			up, down, err := migration.CreateScripts(scriptsPath, args[0])
			if err != nil {
				return fmt.Errorf("failed to create migration files: %w", err)
			}
			fmt.Printf("created %s\ncreated %s\n", up, down)
			return nil
		},
	}
}

func newForceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "force",
		Short: "Force the migration version and clear the dirty flag",
		RunE: func(cmd *cobra.Command, args []string) error {
			migrator, err := setup()
			if err != nil {
				return err
			}
			defer database.Close()
			return migrator.Force(database.Get(), version)
		},
	}
	cmd.Flags().IntVarP(&version, "version", "v", 0, "Version to force")
	cmd.MarkFlagRequired("version")
	return cmd
}

func setup() (*migration.Migrator, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scripts path: %w", err)
	}

	return migration.NewMigrator(scriptsPath), nil
}
