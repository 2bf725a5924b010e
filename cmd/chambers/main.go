package main

import (
	"os"

	"github.com/spf13/cobra"

	"chambers/internal/interfaces/cli/migrate"
	"chambers/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chambers",
		Short: "Chambers - legal practice management backend",
		Long:  `Chambers is a multi-tenant practice management backend for law firms, with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
