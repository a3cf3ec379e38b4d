package token

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/hellenic-development/figma-tokens/pkg/figma"
)

// The style extractors share one contract: a (nil, nil) result is a policy
// skip for structurally absent data (no paints, no effects, no grids), while
// a non-nil error is a recoverable per-record failure the caller logs and
// moves past. One bad style never aborts the batch.

// ExtractColorStyle converts a raw paint style into a color style record.
// Only the first paint layer is read; multi-paint styles are intentionally
// reduced to their first layer.
func ExtractColorStyle(raw figma.PaintStyle) (*ColorStyle, error) {
	if len(raw.Paints) == 0 {
		return nil, nil
	}

	paint := raw.Paints[0]
	rec := &ColorStyle{
		Name:        raw.Name,
		Token:       Slugify(raw.Name),
		Description: raw.Description,
	}

	switch paint.Type {
	case "SOLID":
		opacity := 1.0
		if paint.Opacity != nil {
			opacity = *paint.Opacity
		}
		cv, ok := NormalizeColorAlpha(paint.Color, opacity)
		if !ok {
			return nil, fmt.Errorf("style %q has an invalid solid color", raw.Name)
		}
		rec.Kind = PaintSolid
		rec.Hex = cv.Hex
		// opacity < 1 forces the rgba form even when the rounded alpha is
		// indistinguishable from 1, to preserve alpha precision.
		if paint.Opacity != nil && *paint.Opacity < 1 {
			rec.Value = cv.RGBA()
		} else {
			rec.Value = cv.CSS
		}

	case "GRADIENT_LINEAR", "GRADIENT_RADIAL", "GRADIENT_ANGULAR", "GRADIENT_DIAMOND":
		stops := gradientStops(paint.GradientStops)
		if len(stops) == 0 {
			return nil, nil
		}
		rec.Stops = stops

		switch paint.Type {
		case "GRADIENT_LINEAR":
			deg := gradientAngle(paint.GradientTransform)
			rec.Kind = PaintLinear
			rec.Angle = &deg
			rec.Value = fmt.Sprintf("linear-gradient(%ddeg, %s)", deg, stopList(stops))
		case "GRADIENT_RADIAL":
			rec.Kind = PaintRadial
			rec.Value = fmt.Sprintf("radial-gradient(circle, %s)", stopList(stops))
		case "GRADIENT_ANGULAR":
			rec.Kind = PaintAngular
			rec.Value = fmt.Sprintf("conic-gradient(%s)", stopList(stops))
		case "GRADIENT_DIAMOND":
			// No CSS diamond gradient exists; radial is the closest form.
			rec.Kind = PaintDiamond
			rec.Value = fmt.Sprintf("radial-gradient(circle, %s)", stopList(stops))
		}

	case "IMAGE":
		rec.Kind = PaintImage
		rec.Value = "image"

	default:
		rec.Kind = PaintUnsupported
		rec.Value = "transparent"
	}

	return rec, nil
}

// gradientStops converts raw stops, dropping entries without a valid color
// while preserving the order of the remaining stops.
func gradientStops(raw []figma.GradientStop) []GradientStop {
	stops := make([]GradientStop, 0, len(raw))
	for _, s := range raw {
		cv, ok := NormalizeColor(s.Color)
		if !ok {
			continue
		}
		stops = append(stops, GradientStop{
			Position: s.Position,
			Color:    cv.CSS,
			Hex:      cv.Hex,
		})
	}
	return stops
}

// gradientAngle derives the gradient direction in whole degrees from the
// first row of the 2x3 gradient transform. A malformed transform yields 0.
func gradientAngle(transform [][]float64) int {
	if len(transform) < 1 || len(transform[0]) < 2 {
		return 0
	}
	rad := math.Atan2(transform[0][1], transform[0][0])
	return int(math.Round(rad * 180 / math.Pi))
}

func stopList(stops []GradientStop) string {
	parts := make([]string, len(stops))
	for i, s := range stops {
		parts[i] = fmt.Sprintf("%s %s", s.Color, formatPercent(s.Position))
	}
	return strings.Join(parts, ", ")
}

func formatPercent(position float64) string {
	return fmt.Sprintf("%g%%", math.Round(position*1000)/10)
}

// weightKeywords maps font style-name keywords to numeric weights. Compound
// names are listed before their substrings so "semibold" never matches as
// "bold".
var weightKeywords = []struct {
	keyword string
	weight  int
}{
	{"extralight", 200},
	{"ultralight", 200},
	{"extrabold", 800},
	{"ultrabold", 800},
	{"semibold", 600},
	{"demibold", 600},
	{"hairline", 100},
	{"thin", 100},
	{"light", 300},
	{"medium", 500},
	{"heavy", 900},
	{"black", 900},
	{"bold", 700},
	{"regular", 400},
	{"normal", 400},
	{"book", 400},
}

var embeddedWeight = regexp.MustCompile(`[1-9]00`)

// FontWeight parses a numeric weight from a font's style name: keyword
// lookup first, then any embedded 3-digit weight, defaulting to 400.
// Spaces are ignored so "Extra Bold" matches the same as "ExtraBold".
func FontWeight(styleName string) int {
	name := strings.ReplaceAll(strings.ToLower(styleName), " ", "")
	for _, entry := range weightKeywords {
		if strings.Contains(name, entry.keyword) {
			return entry.weight
		}
	}
	if digits := embeddedWeight.FindString(name); digits != "" {
		w, _ := strconv.Atoi(digits)
		return w
	}
	return 400
}

// ExtractTextStyle converts a raw text style into a text style record.
func ExtractTextStyle(raw figma.TextStyle) (*TextStyle, error) {
	if raw.FontName == nil {
		return nil, nil
	}

	rec := &TextStyle{
		Name:        raw.Name,
		Token:       Slugify(raw.Name),
		Description: raw.Description,
		FontFamily:  raw.FontName.Family,
		FontWeight:  FontWeight(raw.FontName.Style),
		FontSize:    raw.FontSize,
		Italic:      strings.Contains(strings.ToLower(raw.FontName.Style), "italic"),
	}

	rec.LineHeight = unitString(raw.LineHeight)
	rec.LetterSpacing = unitString(raw.LetterSpacing)

	// Defaults pass through unset; everything else is kebab-cased.
	if raw.TextCase != "" && raw.TextCase != "ORIGINAL" {
		rec.TextCase = kebab(raw.TextCase)
	}
	if raw.TextDecoration != "" && raw.TextDecoration != "NONE" {
		rec.TextDecoration = kebab(raw.TextDecoration)
	}

	return rec, nil
}

// unitString renders a unit-tagged value: "{v}px" for PIXELS, "{v}%" for
// PERCENT, empty for AUTO or absent values.
func unitString(v *figma.UnitValue) string {
	if v == nil {
		return ""
	}
	switch v.Unit {
	case "PIXELS":
		return fmt.Sprintf("%gpx", v.Value)
	case "PERCENT":
		return fmt.Sprintf("%g%%", v.Value)
	default:
		return ""
	}
}

func kebab(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "_", "-")
}

// ExtractEffectStyle converts a raw effect style into an effect style
// record. All visible effects appear in the structured list; only shadow
// effects with a valid color contribute to the derived box-shadow
// declaration. A shadow without a color is dropped from CSS generation but
// does not fail the style.
func ExtractEffectStyle(raw figma.EffectStyle) (*EffectStyle, error) {
	if len(raw.Effects) == 0 {
		return nil, nil
	}

	rec := &EffectStyle{
		Name:        raw.Name,
		Token:       Slugify(raw.Name),
		Description: raw.Description,
	}

	var shadows []string
	for _, e := range raw.Effects {
		if !e.IsVisible() {
			continue
		}

		detail := EffectDetail{
			Type:   kebab(e.Type),
			Radius: e.Radius,
			Spread: e.Spread,
		}
		if e.Offset != nil {
			detail.X = e.Offset.X
			detail.Y = e.Offset.Y
		}

		cv, colorOK := NormalizeColor(e.Color)
		if colorOK {
			detail.Color = cv.CSS
		}
		rec.Effects = append(rec.Effects, detail)

		if e.Type != "DROP_SHADOW" && e.Type != "INNER_SHADOW" {
			continue
		}
		if !colorOK {
			continue
		}

		entry := fmt.Sprintf("%gpx %gpx %gpx %gpx %s", detail.X, detail.Y, e.Radius, e.Spread, cv.CSS)
		if e.Type == "INNER_SHADOW" {
			entry = "inset " + entry
		}
		shadows = append(shadows, entry)
	}

	if len(rec.Effects) == 0 {
		return nil, nil
	}

	if len(shadows) > 0 {
		rec.Shadow = strings.Join(shadows, ", ")
		rec.CSS = "box-shadow: " + rec.Shadow
	}

	return rec, nil
}

const (
	defaultGridCount  = 12
	defaultGridGutter = 20.0
	defaultGridMargin = 0.0
)

// ExtractGridStyle converts a raw grid style into a grid style record,
// applying the host defaults for absent count/gutter/margin fields.
func ExtractGridStyle(raw figma.GridStyle) (*GridStyle, error) {
	if len(raw.LayoutGrids) == 0 {
		return nil, nil
	}

	rec := &GridStyle{
		Name:        raw.Name,
		Token:       Slugify(raw.Name),
		Description: raw.Description,
	}

	for _, g := range raw.LayoutGrids {
		detail := GridDetail{
			Pattern: strings.ToLower(g.Pattern),
			Count:   defaultGridCount,
			Gutter:  defaultGridGutter,
			Margin:  defaultGridMargin,
		}
		if g.Count != nil {
			detail.Count = *g.Count
		}
		if g.GutterSize != nil {
			detail.Gutter = *g.GutterSize
		}
		if g.Offset != nil {
			detail.Margin = *g.Offset
		}
		rec.Grids = append(rec.Grids, detail)
	}

	return rec, nil
}
