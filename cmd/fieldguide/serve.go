package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/fieldguide/internal/ports"
	"github.com/alexisbeaulieu97/fieldguide/internal/server"
)

func newServeCmd(app *AppContext) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve trees over HTTP",
		Long:  `Serve a browsable field guide page plus SVG, PNG and JSON endpoints until interrupted.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.serve")
			if addr == "" {
				addr = app.Config.Server.Addr
			}
			err := runServe(ctx, logger, app, addr)
			if err != nil {
				logger.Error(ctx, "serve command failed", "error", err)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address; defaults to the configured address")

	return cmd
}

func runServe(ctx context.Context, logger ports.Logger, app *AppContext, addr string) error {
	srv, err := server.New(app.Service, *app.Config, app.Logger.With("component", "server"))
	if err != nil {
		return err
	}
	defer srv.Close()

	if err := srv.ListenAndServe(ctx, addr); err != nil {
		return err
	}
	logger.Info(ctx, "server stopped")
	return nil
}
