package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/fieldguide/internal/desktop"
)

func newViewCmd(app *AppContext) *cobra.Command {
	var saveDir string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open trees in a desktop window",
		Long:  `Open a window showing one tree at a time. Click or press R for a new tree, S to save it as SVG, Q to quit.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.view")
			cfg := app.Config
			logger.Info(ctx, "opening window", "width", cfg.Canvas.Width, "height", cfg.Canvas.Height)

			err := desktop.Run(ctx, app.Service, desktop.Options{
				Width:      cfg.Canvas.Width,
				Height:     cfg.Canvas.Height,
				Background: cfg.Canvas.Background,
				SaveDir:    saveDir,
				SVG:        cfg.SVGOptions(),
			})
			if err != nil {
				logger.Error(ctx, "window failed", "error", err)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&saveDir, "save-dir", ".", "Directory for trees saved with the s key")

	return cmd
}
