package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/fieldguide/internal/config"
	"github.com/alexisbeaulieu97/fieldguide/internal/fieldguide"
	"github.com/alexisbeaulieu97/fieldguide/internal/ports"
	"github.com/alexisbeaulieu97/fieldguide/internal/render/raster"
	"github.com/alexisbeaulieu97/fieldguide/internal/render/svg"
)

type generateOptions struct {
	format string
	out    string
	fit    bool
	json   bool
}

func newGenerateCmd(app *AppContext) *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Grow one tree and write it to a file",
		Long: `Grow one tree, draw it to an SVG or PNG file and print its field guide entry.
The file extension is added when missing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.generate")
			err := runGenerate(ctx, logger, app, opts, cmd.OutOrStdout())
			if err != nil {
				logger.Error(ctx, "generate command failed", "error", err)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format (svg or png); defaults to the configured format")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output path; defaults to the configured path")
	cmd.Flags().BoolVar(&opts.fit, "fit", false, "Crop the SVG to the drawn tree")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the entry as JSON")

	return cmd
}

func runGenerate(ctx context.Context, logger ports.Logger, app *AppContext, opts generateOptions, out io.Writer) error {
	cfg := app.Config
	format := strings.ToLower(opts.format)
	if format == "" {
		format = cfg.Output.Format
	}
	path := opts.out
	if path == "" {
		path = cfg.Output.Path
	}
	path = withFormatExt(path, format)

	specimen, err := app.Service.Generate(ctx)
	if err != nil {
		return err
	}

	var written string
	switch format {
	case config.FormatSVG:
		svgOpts := cfg.SVGOptions()
		svgOpts.Fit = svgOpts.Fit || opts.fit
		surface := svg.New(svgOpts)
		if err := app.Service.Draw(ctx, specimen, surface); err != nil {
			return err
		}
		written, err = surface.WriteFile(path)
	case config.FormatPNG:
		surface := raster.New(cfg.RasterOptions())
		if err := app.Service.Draw(ctx, specimen, surface); err != nil {
			return err
		}
		written, err = surface.WriteFile(path)
	default:
		return fmt.Errorf("unsupported format %q (want %s or %s)", format, config.FormatSVG, config.FormatPNG)
	}
	if err != nil {
		return err
	}

	app.Service.Saved(ctx, specimen, written)
	logger.Info(ctx, "tree written", "path", written, "format", format, "seed", specimen.Seed)

	return printEntry(out, specimen.Entry(), written, opts.json)
}

// withFormatExt swaps a known image extension for the one matching format so
// "tree.svg" becomes "tree.png" rather than "tree.svg.png".
func withFormatExt(path, format string) string {
	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".svg", ".png":
		return strings.TrimSuffix(path, ext) + "." + format
	}
	return path
}

func printEntry(out io.Writer, entry fieldguide.Entry, path string, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			fieldguide.Entry
			Path string `json:"path"`
		}{entry, path})
	}
	_, err := fmt.Fprintf(out, "%s  file     %s\n", entry.Summary(), path)
	return err
}
