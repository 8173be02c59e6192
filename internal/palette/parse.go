package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Parse converts an "rgb(r,g,b)" or "rgba(r,g,b,a)" token into a colour and
// its alpha in [0, 1].
func Parse(token string) (colorful.Color, float64, error) {
	s := strings.ToLower(strings.TrimSpace(token))

	var body string
	var want int
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		body, want = s[len("rgba("):len(s)-1], 4
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		body, want = s[len("rgb("):len(s)-1], 3
	default:
		return colorful.Color{}, 0, fmt.Errorf("palette: unsupported colour %q", token)
	}

	parts := strings.Split(body, ",")
	if len(parts) != want {
		return colorful.Color{}, 0, fmt.Errorf("palette: colour %q has %d components, want %d", token, len(parts), want)
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return colorful.Color{}, 0, fmt.Errorf("palette: colour %q has invalid channel %q", token, parts[i])
		}
		channels[i] = uint8(v)
	}

	alpha := 1.0
	if want == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return colorful.Color{}, 0, fmt.Errorf("palette: colour %q has invalid alpha %q", token, parts[3])
		}
		alpha = a
	}

	c := colorful.Color{
		R: float64(channels[0]) / 255,
		G: float64(channels[1]) / 255,
		B: float64(channels[2]) / 255,
	}
	return c, alpha, nil
}

// RGBA parses token into an alpha-premultiplied color.RGBA.
func RGBA(token string) (color.RGBA, error) {
	c, alpha, err := Parse(token)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{
		R: uint8(float64(r) * alpha),
		G: uint8(float64(g) * alpha),
		B: uint8(float64(b) * alpha),
		A: uint8(255 * alpha),
	}, nil
}

// Hex parses token and returns its "#rrggbb" form, dropping alpha.
func Hex(token string) (string, error) {
	c, _, err := Parse(token)
	if err != nil {
		return "", err
	}
	return c.Clamped().Hex(), nil
}

// Valid reports whether token parses.
func Valid(token string) bool {
	_, _, err := Parse(token)
	return err == nil
}
