package main

import (
	"os"

	"github.com/spf13/cobra"

	"campusguard/internal/interfaces/cli/migrate"
	"campusguard/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "campusguard",
		Short: "CampusGuard - campus misconduct reporting service",
		Long:  `CampusGuard is the complaint intake and review service for campus anti-ragging and misconduct reporting.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
