package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/fieldguide/internal/config"
	"github.com/alexisbeaulieu97/fieldguide/internal/fieldguide"
	"github.com/alexisbeaulieu97/fieldguide/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/fieldguide/internal/logger"
	"github.com/alexisbeaulieu97/fieldguide/internal/ports"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config  *config.Config
	Logger  ports.Logger
	Events  ports.EventPublisher
	Service *fieldguide.Service
}

func (a *AppContext) init(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		seed := flags.seed
		cfg.Seed = &seed
	}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Log.HumanReadable || term.IsTerminal(int(os.Stderr.Fd())),
		Writer:        cmd.ErrOrStderr(),
		Component:     "cli",
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	a.Config = cfg
	a.Logger = log
	a.Events = events.NewLoggingPublisher(log)
	a.Service = fieldguide.NewService(*cfg, log, fieldguide.WithPublisher(a.Events))
	return nil
}

// CommandContext returns a context carrying a fresh correlation ID and a
// logger tagged with the command name.
func (a *AppContext) CommandContext(cmd *cobra.Command, name string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())

	var log ports.Logger = ports.NopLogger{}
	if a.Logger != nil {
		log = a.Logger.With("command", name)
	}
	return ctx, log
}
