package config

import (
	"github.com/alexisbeaulieu97/fieldguide/internal/render"
	"github.com/alexisbeaulieu97/fieldguide/internal/render/raster"
	"github.com/alexisbeaulieu97/fieldguide/internal/render/svg"
	"github.com/alexisbeaulieu97/fieldguide/internal/tree"
)

// Output formats understood by the generate command and the server.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// Config represents the top-level field guide configuration file.
type Config struct {
	Canvas CanvasConfig `yaml:"canvas"`
	Tree   TreeConfig   `yaml:"tree"`
	Output OutputConfig `yaml:"output"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`

	// Seed pins the master seed sequence; nil draws one from the clock.
	Seed *uint64 `yaml:"seed,omitempty"`
}

// CanvasConfig sizes the drawing surface.
type CanvasConfig struct {
	Width      int    `yaml:"width" validate:"gte=100,lte=8192"`
	Height     int    `yaml:"height" validate:"gte=100,lte=8192"`
	Background string `yaml:"background" validate:"colour"`
	LabelColor string `yaml:"label_color" validate:"colour"`
}

// TreeConfig overrides the branching policy.
type TreeConfig struct {
	TrunkLength         float64 `yaml:"trunk_length" validate:"gt=0"`
	MinBranchMultiplier float64 `yaml:"min_branch_multiplier" validate:"gt=0,ltfield=MaxBranchMultiplier"`
	MaxBranchMultiplier float64 `yaml:"max_branch_multiplier" validate:"lt=1"`
	StartAngle          float64 `yaml:"start_angle"`
	MinAngle            int     `yaml:"min_angle" validate:"ltefield=MaxAngle"`
	MaxAngle            int     `yaml:"max_angle"`
	MinLength           float64 `yaml:"min_length" validate:"gt=0"`
	LeafThresholdMin    int     `yaml:"leaf_threshold_min" validate:"gte=0,ltefield=LeafThresholdMax"`
	LeafThresholdMax    int     `yaml:"leaf_threshold_max"`
	WidthDivisorMin     int     `yaml:"width_divisor_min" validate:"gte=1,ltefield=WidthDivisorMax"`
	WidthDivisorMax     int     `yaml:"width_divisor_max"`
	FanOut              []int   `yaml:"fan_out" validate:"min=1,dive,gte=0"`
	MaxDepth            int     `yaml:"max_depth" validate:"gte=0,required_without=MaxBranches"`
	MaxBranches         int     `yaml:"max_branches" validate:"gte=0"`
}

// OutputConfig controls the generate command.
type OutputConfig struct {
	Format string `yaml:"format" validate:"format"`
	Path   string `yaml:"path" validate:"required"`
	Fit    bool   `yaml:"fit"`
	Margin int    `yaml:"margin" validate:"gte=0"`
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required,hostname_port"`
}

// LogConfig controls the zerolog adapter.
type LogConfig struct {
	Level         string `yaml:"level" validate:"oneof=debug info warn error"`
	HumanReadable bool   `yaml:"human_readable"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	p := tree.DefaultParams()
	return Config{
		Canvas: CanvasConfig{
			Width:      render.DefaultWidth,
			Height:     render.DefaultHeight,
			Background: "rgb(255,255,255)",
			LabelColor: "rgb(40,40,40)",
		},
		Tree: TreeConfig{
			TrunkLength:         p.TrunkLength,
			MinBranchMultiplier: p.MinBranchMultiplier,
			MaxBranchMultiplier: p.MaxBranchMultiplier,
			StartAngle:          p.StartAngle,
			MinAngle:            p.MinAngle,
			MaxAngle:            p.MaxAngle,
			MinLength:           p.MinLength,
			LeafThresholdMin:    p.LeafThresholdMin,
			LeafThresholdMax:    p.LeafThresholdMax,
			WidthDivisorMin:     p.WidthDivisorMin,
			WidthDivisorMax:     p.WidthDivisorMax,
			FanOut:              p.FanOut,
			MaxDepth:            p.MaxDepth,
			MaxBranches:         p.MaxBranches,
		},
		Output: OutputConfig{
			Format: FormatSVG,
			Path:   "tree.svg",
			Margin: 10,
		},
		Server: ServerConfig{Addr: "localhost:8080"},
		Log:    LogConfig{Level: "info"},
	}
}

// Params converts the tree section into generator parameters.
func (c Config) Params() tree.Params {
	t := c.Tree
	return tree.Params{
		TrunkLength:         t.TrunkLength,
		MinBranchMultiplier: t.MinBranchMultiplier,
		MaxBranchMultiplier: t.MaxBranchMultiplier,
		StartAngle:          t.StartAngle,
		MinAngle:            t.MinAngle,
		MaxAngle:            t.MaxAngle,
		MinLength:           t.MinLength,
		LeafThresholdMin:    t.LeafThresholdMin,
		LeafThresholdMax:    t.LeafThresholdMax,
		WidthDivisorMin:     t.WidthDivisorMin,
		WidthDivisorMax:     t.WidthDivisorMax,
		FanOut:              append([]int(nil), t.FanOut...),
		MaxDepth:            t.MaxDepth,
		MaxBranches:         t.MaxBranches,
	}
}

// SVGOptions derives encoder options from the canvas and output sections.
func (c Config) SVGOptions() svg.Options {
	return svg.Options{
		Width:      c.Canvas.Width,
		Height:     c.Canvas.Height,
		Background: c.Canvas.Background,
		Fit:        c.Output.Fit,
		Margin:     c.Output.Margin,
	}
}

// RasterOptions derives PNG surface options from the canvas section.
func (c Config) RasterOptions() raster.Options {
	return raster.Options{
		Width:      c.Canvas.Width,
		Height:     c.Canvas.Height,
		Background: c.Canvas.Background,
		LabelColor: c.Canvas.LabelColor,
	}
}
