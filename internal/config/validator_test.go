package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	fgerrors "github.com/alexisbeaulieu97/fieldguide/pkg/errors"
)

func TestGetValidator(t *testing.T) {
	t.Parallel()

	require.Same(t, GetValidator(), GetValidator())
}

func TestColourValidation(t *testing.T) {
	t.Parallel()

	type sample struct {
		Colour string `validate:"colour"`
	}

	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"rgb", "rgb(139,69,19)", true},
		{"rgba", "rgba(0,0,0,0.5)", true},
		{"named", "brown", false},
		{"empty", "", false},
		{"out of range", "rgb(256,0,0)", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := GetValidator().Struct(sample{Colour: tt.value})
			if tt.expected {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{name: "defaults are valid"},
		{
			name:   "canvas too small",
			mutate: func(c *Config) { c.Canvas.Width = 10 },
			field:  "canvas.width",
		},
		{
			name:   "multiplier range inverted",
			mutate: func(c *Config) { c.Tree.MinBranchMultiplier = 0.9 },
			field:  "tree.min_branch_multiplier",
		},
		{
			name:   "multiplier must shrink",
			mutate: func(c *Config) { c.Tree.MaxBranchMultiplier = 1.2 },
			field:  "tree.max_branch_multiplier",
		},
		{
			name:   "zero min length",
			mutate: func(c *Config) { c.Tree.MinLength = 0 },
			field:  "tree.min_length",
		},
		{
			name:   "both safety caps disabled",
			mutate: func(c *Config) { c.Tree.MaxDepth = 0; c.Tree.MaxBranches = 0 },
			field:  "tree.max_depth",
		},
		{
			name:   "branch cap alone",
			mutate: func(c *Config) { c.Tree.MaxDepth = 0 },
		},
		{
			name:   "empty fan-out",
			mutate: func(c *Config) { c.Tree.FanOut = nil },
			field:  "tree.fan_out",
		},
		{
			name:   "negative fan-out entry",
			mutate: func(c *Config) { c.Tree.FanOut = []int{2, -1} },
			field:  "tree.fan_out[1]",
		},
		{
			name:   "width divisor below one",
			mutate: func(c *Config) { c.Tree.WidthDivisorMin = 0 },
			field:  "tree.width_divisor_min",
		},
		{
			name:   "unknown log level",
			mutate: func(c *Config) { c.Log.Level = "verbose" },
			field:  "log.level",
		},
		{
			name:   "server address needs a port",
			mutate: func(c *Config) { c.Server.Addr = "localhost" },
			field:  "server.addr",
		},
		{
			name:   "output path required",
			mutate: func(c *Config) { c.Output.Path = "" },
			field:  "output.path",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			if tc.mutate != nil {
				tc.mutate(&cfg)
			}

			err := Validate(&cfg)
			if tc.field == "" {
				require.NoError(t, err)
				return
			}

			var validationErr *fgerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestValidateNil(t *testing.T) {
	t.Parallel()

	var validationErr *fgerrors.ValidationError
	require.ErrorAs(t, Validate(nil), &validationErr)
	require.Equal(t, "config", validationErr.Field)
}

func TestParamsRoundTripDefaults(t *testing.T) {
	t.Parallel()

	cfg := Default()
	params := cfg.Params()
	require.NoError(t, params.Validate())
	require.Equal(t, cfg.Tree.FanOut, params.FanOut)

	params.FanOut[0] = 99
	require.NotEqual(t, 99, cfg.Tree.FanOut[0], "params must not alias config slices")
}

func TestSurfaceOptions(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Output.Fit = true

	svgOpts := cfg.SVGOptions()
	require.Equal(t, 800, svgOpts.Width)
	require.True(t, svgOpts.Fit)
	require.Equal(t, 10, svgOpts.Margin)

	pngOpts := cfg.RasterOptions()
	require.Equal(t, "rgb(255,255,255)", pngOpts.Background)
	require.Equal(t, "rgb(40,40,40)", pngOpts.LabelColor)
}
