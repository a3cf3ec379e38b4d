package token

import (
	"fmt"
	"math"

	"github.com/hellenic-development/figma-tokens/pkg/figma"
)

// ColorValue is a normalized color: 8-bit RGB channels, alpha rounded to two
// decimals, and the derived hex and CSS forms.
type ColorValue struct {
	R, G, B int
	A       float64
	Hex     string // "#rrggbb", lower-case, always 6 digits
	CSS     string // Hex when A == 1, otherwise the rgba() form
}

// RGBA returns the CSS rgba() representation regardless of alpha.
func (c ColorValue) RGBA() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, c.A)
}

// Normalize converts source channels in the [0,1] range to a ColorValue.
// Channels are clamped to [0,1] before conversion. A non-finite channel or
// alpha makes the whole color invalid; callers must drop the owning record
// rather than substitute black.
func Normalize(r, g, b, a float64) (ColorValue, bool) {
	if !isFinite(r) || !isFinite(g) || !isFinite(b) || !isFinite(a) {
		return ColorValue{}, false
	}

	v := ColorValue{
		R: channelTo255(r),
		G: channelTo255(g),
		B: channelTo255(b),
		A: math.Round(clamp01(a)*100) / 100,
	}
	v.Hex = fmt.Sprintf("#%02x%02x%02x", v.R, v.G, v.B)
	if v.A == 1 {
		v.CSS = v.Hex
	} else {
		v.CSS = v.RGBA()
	}

	return v, true
}

// NormalizeColor normalizes a raw color. A nil color or a missing channel is
// invalid; a missing alpha means fully opaque.
func NormalizeColor(c *figma.Color) (ColorValue, bool) {
	return NormalizeColorAlpha(c, 1)
}

// NormalizeColorAlpha normalizes a raw color with an additional opacity
// multiplied into its alpha, as applied by paints and variables carrying a
// separate opacity field.
func NormalizeColorAlpha(c *figma.Color, opacity float64) (ColorValue, bool) {
	if c == nil || c.R == nil || c.G == nil || c.B == nil {
		return ColorValue{}, false
	}

	a := 1.0
	if c.A != nil {
		a = *c.A
	}

	return Normalize(*c.R, *c.G, *c.B, a*opacity)
}

func channelTo255(v float64) int {
	return int(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
