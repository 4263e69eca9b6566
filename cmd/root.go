package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	serveCmd := serveCommand()

	rootCmd := &cobra.Command{
		Use:           "motodash",
		Short:         "Motorcycle fleet backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Without a subcommand the server starts.
		RunE: serveCmd.RunE,
	}

	rootCmd.AddCommand(
		serveCmd,
		migrateCommand(),
		statsCommand(),
	)

	return rootCmd
}
