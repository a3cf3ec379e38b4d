package formatter

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hellenic-development/figma-tokens/pkg/token"
)

func testDocument() *token.Document {
	return &token.Document{
		Styles: token.Styles{
			Colors: []token.ColorStyle{
				{
					Name:  "Brand / Primary",
					Token: "brand-primary",
					Kind:  token.PaintSolid,
					Hex:   "#ff0000",
					Value: "#ff0000",
				},
			},
			Text: []token.TextStyle{
				{
					Name:       "Heading / H1",
					Token:      "heading-h1",
					FontFamily: "Inter",
					FontWeight: 700,
					FontSize:   32,
					LineHeight: "40px",
				},
			},
			Effects: []token.EffectStyle{
				{
					Name:   "Elevation / 1",
					Token:  "elevation-1",
					Shadow: "0px 2px 4px 0px rgba(0, 0, 0, 0.25)",
					CSS:    "box-shadow: 0px 2px 4px 0px rgba(0, 0, 0, 0.25)",
				},
				{
					// Blur-only effect style: no shadow declaration.
					Name:  "Blur / Background",
					Token: "blur-background",
				},
			},
			Grids: []token.GridStyle{},
		},
		Variables: &token.VariableSet{
			Colors: []token.VariableRecord{
				{Name: "bg", Token: "bg", Type: token.VariableColor, Value: "#ffffff"},
			},
			Numbers: []token.VariableRecord{
				{Name: "radius", Token: "radius", Type: token.VariableFloat, Value: 4.0},
			},
			Strings:  []token.VariableRecord{},
			Booleans: []token.VariableRecord{
				{Name: "rounded", Token: "rounded", Type: token.VariableBoolean, Value: false},
			},
		},
		Metadata: token.Metadata{
			FileName:   "Design System",
			ExportDate: "2026-08-23T00:00:00Z",
		},
	}
}

func TestFormatDispatch(t *testing.T) {
	doc := testDocument()

	for _, format := range []string{FormatJSON, FormatCSS, FormatModule, FormatYAML} {
		out, err := Format(doc, format)
		require.NoError(t, err, "format %s", format)
		assert.NotEmpty(t, out, "format %s", format)
	}

	_, err := Format(doc, "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestDefaultFileName(t *testing.T) {
	assert.Equal(t, "design-tokens.json", DefaultFileName(FormatJSON))
	assert.Equal(t, "design-tokens.css", DefaultFileName(FormatCSS))
	assert.Equal(t, "design-tokens.js", DefaultFileName(FormatModule))
	assert.Equal(t, "design-tokens.yaml", DefaultFileName(FormatYAML))
	assert.Equal(t, "design-tokens.json", DefaultFileName(""))
}

func TestToJSON(t *testing.T) {
	out, err := ToJSON(testDocument())
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "\n"))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	styles, ok := decoded["styles"].(map[string]any)
	require.True(t, ok)
	colors, ok := styles["colors"].([]any)
	require.True(t, ok)
	require.Len(t, colors, 1)
	first := colors[0].(map[string]any)
	assert.Equal(t, "brand-primary", first["token"])
	assert.Equal(t, "solid", first["type"])

	meta := decoded["metadata"].(map[string]any)
	assert.Equal(t, "Design System", meta["fileName"])
}

func TestToCSS(t *testing.T) {
	out := ToCSS(testDocument())

	assert.True(t, strings.HasPrefix(out, "/* Design tokens - Design System */"))
	assert.Contains(t, out, ":root {")
	assert.True(t, strings.HasSuffix(out, "}\n"))

	assert.Contains(t, out, "  --brand-primary: #ff0000;\n")
	assert.Contains(t, out, "  --heading-h1-font-family: 'Inter';\n")
	assert.Contains(t, out, "  --heading-h1-font-weight: 700;\n")
	assert.Contains(t, out, "  --heading-h1-font-size: 32px;\n")
	assert.Contains(t, out, "  --heading-h1-line-height: 40px;\n")
	assert.Contains(t, out, "  --elevation-1: 0px 2px 4px 0px rgba(0, 0, 0, 0.25);\n")
	assert.NotContains(t, out, "--blur-background", "shadow-less effects have no CSS custom property")

	assert.Contains(t, out, "  --bg: #ffffff;\n")
	assert.Contains(t, out, "  --radius: 4;\n")
	assert.Contains(t, out, "  --rounded: false;\n")
}

func TestToCSSGroupedCollections(t *testing.T) {
	doc := testDocument()
	doc.Variables = nil
	doc.Collections = []token.CollectionGroup{
		{
			Name:  "Primitives",
			Modes: []string{"Light", "Dark"},
			VariableSet: token.VariableSet{
				Colors: []token.VariableRecord{
					{Token: "surface", Type: token.VariableColor, Value: "#fafafa"},
				},
			},
		},
	}

	out := ToCSS(doc)
	assert.Contains(t, out, "/* Primitives */")
	assert.Contains(t, out, "  --surface: #fafafa;\n")
}

func TestToModule(t *testing.T) {
	out := ToModule(testDocument())

	assert.True(t, strings.HasPrefix(out, "// Code generated by figma-tokens. DO NOT EDIT.\n"))
	assert.Contains(t, out, "export const tokens = {")
	assert.True(t, strings.HasSuffix(out, "export default tokens;\n"))

	assert.Contains(t, out, `  "brand-primary": "#ff0000",`)
	assert.Contains(t, out, `  "elevation-1": "0px 2px 4px 0px rgba(0, 0, 0, 0.25)",`)
	assert.NotContains(t, out, "blur-background")
	assert.Contains(t, out, `  "bg": "#ffffff",`)
	assert.Contains(t, out, `  "radius": 4,`)
	assert.Contains(t, out, `  "rounded": false,`)

	// Styles precede variables in the emitted map.
	assert.Less(t, strings.Index(out, `"brand-primary"`), strings.Index(out, `"bg"`))
}

func TestToYAML(t *testing.T) {
	out, err := ToYAML(testDocument())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))

	// Keys follow the JSON field names, not Go struct names.
	meta, ok := decoded["metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Design System", meta["fileName"])

	styles, ok := decoded["styles"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, styles, "textStyles")
}
