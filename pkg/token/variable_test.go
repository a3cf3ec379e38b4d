package token

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellenic-development/figma-tokens/pkg/figma"
)

func colorVal(r, g, b, a float64) figma.Color {
	return figma.Color{R: &r, G: &g, B: &b, A: &a}
}

func alias(id string) map[string]any {
	return map[string]any{"type": "VARIABLE_ALIAS", "id": id}
}

var testCollections = []figma.VariableCollection{
	{
		ID:   "c1",
		Name: "Primitives",
		Modes: []figma.Mode{
			{ModeID: "m1", Name: "Light"},
			{ModeID: "m2", Name: "Dark"},
		},
		DefaultModeID: "m1",
	},
	{
		ID:    "c2",
		Name:  "Semantic",
		Modes: []figma.Mode{{ModeID: "m3", Name: "Default"}},
	},
}

func runExport(t *testing.T, dump figma.Dump, grouping Grouping) *Document {
	t.Helper()
	exporter := NewExporter(figma.NewFileSourceFromDump(dump), Options{Grouping: grouping})
	doc, err := exporter.Run(context.Background())
	require.NoError(t, err)
	return doc
}

func TestVariableColorBothModes(t *testing.T) {
	doc := runExport(t, figma.Dump{
		Name:                "Test",
		VariableCollections: testCollections,
		Variables: []figma.Variable{{
			ID:                   "v1",
			Name:                 "bg/surface",
			VariableCollectionID: "c1",
			ResolvedType:         "COLOR",
			ValuesByMode: map[string]any{
				"m1": colorVal(1, 1, 1, 1),
				"m2": colorVal(0, 0, 0, 1),
			},
		}},
	}, GroupFlat)

	require.Len(t, doc.Variables.Colors, 1)
	rec := doc.Variables.Colors[0]
	assert.Equal(t, "bgsurface", rec.Token)
	assert.Equal(t, VariableColor, rec.Type)
	assert.Equal(t, "Primitives", rec.Collection)
	// Default value is the first mode in the collection's declared order.
	assert.Equal(t, "#ffffff", rec.Value)
	assert.Equal(t, map[string]any{"Light": "#ffffff", "Dark": "#000000"}, rec.Values)
}

func TestVariableColorWithAlpha(t *testing.T) {
	doc := runExport(t, figma.Dump{
		VariableCollections: testCollections,
		Variables: []figma.Variable{{
			ID:                   "v1",
			Name:                 "scrim",
			VariableCollectionID: "c2",
			ResolvedType:         "COLOR",
			ValuesByMode:         map[string]any{"m3": colorVal(0, 0, 0, 0.5)},
		}},
	}, GroupFlat)

	require.Len(t, doc.Variables.Colors, 1)
	assert.Equal(t, "rgba(0, 0, 0, 0.5)", doc.Variables.Colors[0].Value)
}

func TestVariableDuplicateSuppression(t *testing.T) {
	doc := runExport(t, figma.Dump{
		VariableCollections: testCollections,
		Variables: []figma.Variable{
			{
				ID: "v1", Name: "spacing/base", VariableCollectionID: "c1",
				ResolvedType: "FLOAT",
				ValuesByMode: map[string]any{"m1": 8.0},
			},
			{
				ID: "v2", Name: "spacing/base", VariableCollectionID: "c1",
				ResolvedType: "FLOAT",
				ValuesByMode: map[string]any{"m1": 16.0},
			},
			{
				// Same name in a different collection is not a duplicate.
				ID: "v3", Name: "spacing/base", VariableCollectionID: "c2",
				ResolvedType: "FLOAT",
				ValuesByMode: map[string]any{"m3": 24.0},
			},
		},
	}, GroupFlat)

	require.Len(t, doc.Variables.Numbers, 2)
	assert.Equal(t, 8.0, doc.Variables.Numbers[0].Value)
	assert.Equal(t, 24.0, doc.Variables.Numbers[1].Value)
}

func TestVariableAliasResolvesSameMode(t *testing.T) {
	doc := runExport(t, figma.Dump{
		VariableCollections: testCollections,
		Variables: []figma.Variable{
			{
				ID: "v1", Name: "base/black", VariableCollectionID: "c1",
				ResolvedType: "COLOR",
				ValuesByMode: map[string]any{
					"m1": colorVal(0.1, 0.1, 0.1, 1),
					"m2": colorVal(0, 0, 0, 1),
				},
			},
			{
				ID: "v2", Name: "text/primary", VariableCollectionID: "c1",
				ResolvedType: "COLOR",
				ValuesByMode: map[string]any{
					"m1": alias("v1"),
					"m2": alias("v1"),
				},
			},
		},
	}, GroupFlat)

	require.Len(t, doc.Variables.Colors, 2)
	rec := doc.Variables.Colors[1]
	// Each mode resolves against the target's value for the same mode id.
	assert.Equal(t, "#1a1a1a", rec.Values["Light"])
	assert.Equal(t, "#000000", rec.Values["Dark"])
}

func TestVariableAliasFallsBackToFirstMode(t *testing.T) {
	doc := runExport(t, figma.Dump{
		VariableCollections: testCollections,
		Variables: []figma.Variable{
			{
				// Target lives in a single-mode collection.
				ID: "v1", Name: "brand", VariableCollectionID: "c2",
				ResolvedType: "COLOR",
				ValuesByMode: map[string]any{"m3": colorVal(1, 0, 0, 1)},
			},
			{
				ID: "v2", Name: "accent", VariableCollectionID: "c1",
				ResolvedType: "COLOR",
				ValuesByMode: map[string]any{"m1": alias("v1")},
			},
		},
	}, GroupFlat)

	require.Len(t, doc.Variables.Colors, 2)
	assert.Equal(t, "#ff0000", doc.Variables.Colors[1].Value)
}

func TestVariableAliasChain(t *testing.T) {
	doc := runExport(t, figma.Dump{
		VariableCollections: testCollections,
		Variables: []figma.Variable{
			{
				ID: "v1", Name: "a", VariableCollectionID: "c2",
				ResolvedType: "FLOAT",
				ValuesByMode: map[string]any{"m3": alias("v2")},
			},
			{
				ID: "v2", Name: "b", VariableCollectionID: "c2",
				ResolvedType: "FLOAT",
				ValuesByMode: map[string]any{"m3": alias("v3")},
			},
			{
				ID: "v3", Name: "c", VariableCollectionID: "c2",
				ResolvedType: "FLOAT",
				ValuesByMode: map[string]any{"m3": 42.0},
			},
		},
	}, GroupFlat)

	require.Len(t, doc.Variables.Numbers, 3)
	assert.Equal(t, 42.0, doc.Variables.Numbers[0].Value)
}

func TestVariableAliasToNowhere(t *testing.T) {
	doc := runExport(t, figma.Dump{
		VariableCollections: testCollections,
		Variables: []figma.Variable{{
			ID: "v1", Name: "orphan", VariableCollectionID: "c2",
			ResolvedType: "COLOR",
			ValuesByMode: map[string]any{"m3": alias("missing")},
		}},
	}, GroupFlat)

	// The only mode fails to resolve, so no record is emitted.
	assert.Empty(t, doc.Variables.Colors)
	assert.Equal(t, 0, doc.Metadata.Counts.Variables)
}

func TestVariableAliasCycle(t *testing.T) {
	doc := runExport(t, figma.Dump{
		VariableCollections: testCollections,
		Variables: []figma.Variable{
			{
				ID: "v1", Name: "ping", VariableCollectionID: "c2",
				ResolvedType: "FLOAT",
				ValuesByMode: map[string]any{"m3": alias("v2")},
			},
			{
				ID: "v2", Name: "pong", VariableCollectionID: "c2",
				ResolvedType: "FLOAT",
				ValuesByMode: map[string]any{"m3": alias("v1")},
			},
		},
	}, GroupFlat)

	// The cycle skips both records instead of looping forever.
	assert.Empty(t, doc.Variables.Numbers)
}

func TestVariablePartialModeResolution(t *testing.T) {
	doc := runExport(t, figma.Dump{
		VariableCollections: testCollections,
		Variables: []figma.Variable{{
			ID: "v1", Name: "border", VariableCollectionID: "c1",
			ResolvedType: "COLOR",
			ValuesByMode: map[string]any{
				"m1": colorVal(0, 0, 1, 1),
				"m2": alias("missing"),
			},
		}},
	}, GroupFlat)

	require.Len(t, doc.Variables.Colors, 1)
	rec := doc.Variables.Colors[0]
	require.Len(t, rec.Values, 1)
	assert.Equal(t, "#0000ff", rec.Values["Light"])
	assert.Equal(t, rec.Value, rec.Values["Light"])
}

func TestVariableUnknownModeSynthesized(t *testing.T) {
	doc := runExport(t, figma.Dump{
		VariableCollections: testCollections,
		Variables: []figma.Variable{{
			ID: "v1", Name: "stray", VariableCollectionID: "c2",
			ResolvedType: "FLOAT",
			ValuesByMode: map[string]any{"m9": 7.0},
		}},
	}, GroupFlat)

	require.Len(t, doc.Variables.Numbers, 1)
	rec := doc.Variables.Numbers[0]
	assert.Equal(t, 7.0, rec.Value)
	// A single synthesized-name mode keeps the values map off the record.
	assert.Nil(t, rec.Values)
}

func TestVariableUnknownModeNameInValues(t *testing.T) {
	doc := runExport(t, figma.Dump{
		VariableCollections: testCollections,
		Variables: []figma.Variable{{
			ID: "v1", Name: "mixed", VariableCollectionID: "c2",
			ResolvedType: "FLOAT",
			ValuesByMode: map[string]any{"m3": 1.0, "m9": 2.0},
		}},
	}, GroupFlat)

	require.Len(t, doc.Variables.Numbers, 1)
	rec := doc.Variables.Numbers[0]
	assert.Equal(t, map[string]any{"Default": 1.0, "Mode m9": 2.0}, rec.Values)
	// Declared modes come before stray ids in the default-value order.
	assert.Equal(t, 1.0, rec.Value)
}

func TestVariableTypeCoercion(t *testing.T) {
	doc := runExport(t, figma.Dump{
		VariableCollections: testCollections,
		Variables: []figma.Variable{
			{
				ID: "v1", Name: "radius", VariableCollectionID: "c2",
				ResolvedType: "FLOAT",
				ValuesByMode: map[string]any{"m3": "12.5"},
			},
			{
				ID: "v2", Name: "not-a-number", VariableCollectionID: "c2",
				ResolvedType: "FLOAT",
				ValuesByMode: map[string]any{"m3": "abc"},
			},
			{
				ID: "v3", Name: "feature-flag", VariableCollectionID: "c2",
				ResolvedType: "BOOLEAN",
				ValuesByMode: map[string]any{"m3": false},
			},
			{
				ID: "v4", Name: "font-stack", VariableCollectionID: "c2",
				ResolvedType: "STRING",
				ValuesByMode: map[string]any{"m3": "Inter, sans-serif"},
			},
			{
				ID: "v5", Name: "empty-string", VariableCollectionID: "c2",
				ResolvedType: "STRING",
				ValuesByMode: map[string]any{"m3": ""},
			},
			{
				ID: "v6", Name: "mystery", VariableCollectionID: "c2",
				ResolvedType: "GRADIENT",
				ValuesByMode: map[string]any{"m3": 1.0},
			},
		},
	}, GroupFlat)

	require.Len(t, doc.Variables.Numbers, 1)
	assert.Equal(t, 12.5, doc.Variables.Numbers[0].Value)

	require.Len(t, doc.Variables.Booleans, 1)
	assert.Equal(t, false, doc.Variables.Booleans[0].Value)

	require.Len(t, doc.Variables.Strings, 1)
	assert.Equal(t, "Inter, sans-serif", doc.Variables.Strings[0].Value)
}

func TestVariableMetadataPassthrough(t *testing.T) {
	doc := runExport(t, figma.Dump{
		VariableCollections: testCollections,
		Variables: []figma.Variable{{
			ID: "v1", Name: "hidden", VariableCollectionID: "c2",
			Description:          "internal only",
			ResolvedType:         "FLOAT",
			Scopes:               []string{"CORNER_RADIUS"},
			HiddenFromPublishing: true,
			ValuesByMode:         map[string]any{"m3": 4.0},
		}},
	}, GroupFlat)

	require.Len(t, doc.Variables.Numbers, 1)
	rec := doc.Variables.Numbers[0]
	assert.Equal(t, "internal only", rec.Description)
	assert.Equal(t, []string{"CORNER_RADIUS"}, rec.Scopes)
	assert.True(t, rec.HiddenFromPublishing)
}

func TestGroupByCollectionPrunesEmpty(t *testing.T) {
	doc := runExport(t, figma.Dump{
		VariableCollections: testCollections,
		Variables: []figma.Variable{{
			ID: "v1", Name: "only", VariableCollectionID: "c1",
			ResolvedType: "FLOAT",
			ValuesByMode: map[string]any{"m1": 1.0},
		}},
	}, GroupByCollection)

	require.Len(t, doc.Collections, 1)
	group := doc.Collections[0]
	assert.Equal(t, "Primitives", group.Name)
	assert.Equal(t, []string{"Light", "Dark"}, group.Modes)
	assert.Len(t, group.Numbers, 1)

	assert.Equal(t, 2, doc.Metadata.Counts.CollectionsFound)
	assert.Equal(t, 1, doc.Metadata.Counts.CollectionsExported)
	assert.Nil(t, doc.Variables)
}
