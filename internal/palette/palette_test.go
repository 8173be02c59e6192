package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaletteSizes(t *testing.T) {
	t.Parallel()

	require.Len(t, Browns, 9)
	require.Len(t, Grays, 4)
	require.Len(t, Greens, 13)
	require.Len(t, Ornamental, 4)
	require.Len(t, Flowering, 6)
}

func TestEveryPaletteEntryParses(t *testing.T) {
	t.Parallel()

	for _, list := range [][]string{Browns, Grays, Greens, Ornamental, Flowering} {
		for _, token := range list {
			require.True(t, Valid(token), token)
		}
	}
}

func TestTokensKeepTheirSpelling(t *testing.T) {
	t.Parallel()

	require.Equal(t, "rgb(139, 69, 19)", Browns[0])
	require.Equal(t, "rgb(160,82,45)", Browns[1])

	hex, err := Hex(Browns[0])
	require.NoError(t, err)
	require.Equal(t, "#8b4513", hex)
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		token   string
		hex     string
		alpha   float64
		wantErr bool
	}{
		{"rgb", "rgb(139,69,19)", "#8b4513", 1, false},
		{"rgb with spaces", "rgb(139, 69, 19)", "#8b4513", 1, false},
		{"rgba", "rgba(0, 0, 200, 0.5)", "#0000c8", 0.5, false},
		{"upper case", "RGB(255,255,255)", "#ffffff", 1, false},
		{"too few channels", "rgb(1,2)", "", 0, true},
		{"out of range", "rgb(256,0,0)", "", 0, true},
		{"bad alpha", "rgba(1,2,3,2)", "", 0, true},
		{"hex is unsupported", "#ffffff", "", 0, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, alpha, err := Parse(tt.token)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.hex, c.Hex())
			require.InDelta(t, tt.alpha, alpha, 1e-9)
		})
	}
}

func TestRGBAPremultipliesAlpha(t *testing.T) {
	t.Parallel()

	c, err := RGBA("rgba(200,100,0,0.5)")
	require.NoError(t, err)
	require.Equal(t, color.RGBA{R: 100, G: 50, B: 0, A: 127}, c)

	opaque, err := RGBA("rgb(34,139,34)")
	require.NoError(t, err)
	require.Equal(t, color.RGBA{R: 34, G: 139, B: 34, A: 255}, opaque)
}

func TestHex(t *testing.T) {
	t.Parallel()

	hex, err := Hex("rgb(0,100,0)")
	require.NoError(t, err)
	require.Equal(t, "#006400", hex)

	_, err = Hex("green")
	require.Error(t, err)
}
