package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/fieldguide/internal/ports"
	"github.com/alexisbeaulieu97/fieldguide/internal/render/term"
	"github.com/alexisbeaulieu97/fieldguide/internal/tui"
)

type tuiOptions struct {
	saveDir string
}

func newTUICmd(app *AppContext) *cobra.Command {
	opts := tuiOptions{}

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse trees in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.tui")
			return runTUI(ctx, logger, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.saveDir, "save-dir", ".", "Directory for trees saved with the s key")

	return cmd
}

func runTUI(ctx context.Context, logger ports.Logger, app *AppContext, opts tuiOptions) error {
	grid := term.DefaultOptions()
	grid.Width = float64(app.Config.Canvas.Width)
	grid.Height = float64(app.Config.Canvas.Height)

	logger.Info(ctx, "launching viewer")
	err := tui.Run(ctx, app.Service, tui.Options{
		SaveDir: opts.saveDir,
		SVG:     app.Config.SVGOptions(),
		Grid:    grid,
	})
	if err != nil {
		logger.Error(ctx, "viewer failed", "error", err)
		return err
	}
	logger.Info(ctx, "viewer closed")
	return nil
}
