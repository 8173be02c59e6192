package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type rootFlags struct {
	configPath string
	seed       uint64
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{}

	cmd := &cobra.Command{
		Use:           "fieldguide",
		Short:         "Fieldguide grows random fractal trees and names them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd, flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, open the viewer when attached to a terminal
			if len(args) == 0 && term.IsTerminal(int(os.Stdout.Fd())) {
				ctx, logger := app.CommandContext(cmd, "command.tui")
				return runTUI(ctx, logger, app, tuiOptions{})
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file")
	cmd.PersistentFlags().Uint64Var(&flags.seed, "seed", 0, "Seed the tree sequence for reproducible output")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newGenerateCmd(app))
	cmd.AddCommand(newServeCmd(app))
	cmd.AddCommand(newTUICmd(app))
	cmd.AddCommand(newViewCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
