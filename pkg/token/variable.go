package token

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/hellenic-development/figma-tokens/pkg/figma"
)

// maxAliasDepth bounds alias-chain traversal. Combined with the visited
// set, it turns alias cycles into a recoverable per-mode skip instead of an
// infinite loop.
const maxAliasDepth = 8

const resolveCacheSize = 512

// variableResolver resolves alias references against the run's variable and
// collection sets. Lookups for ids outside the prefetched set go through an
// LRU cache before falling back to the source, so repeated library
// references are only fetched once.
type variableResolver struct {
	source      figma.Source
	byID        map[string]*figma.Variable
	collections map[string]*figma.VariableCollection
	cache       *lru.Cache[string, *figma.Variable]
}

func newVariableResolver(source figma.Source, variables []figma.Variable, collections []figma.VariableCollection) *variableResolver {
	r := &variableResolver{
		source:      source,
		byID:        make(map[string]*figma.Variable, len(variables)),
		collections: make(map[string]*figma.VariableCollection, len(collections)),
	}
	for i := range variables {
		r.byID[variables[i].ID] = &variables[i]
	}
	for i := range collections {
		r.collections[collections[i].ID] = &collections[i]
	}
	r.cache, _ = lru.New[string, *figma.Variable](resolveCacheSize)
	return r
}

// lookup finds a variable by id: prefetched set first, then the resolution
// cache, then the source.
func (r *variableResolver) lookup(ctx context.Context, id string) *figma.Variable {
	if v, ok := r.byID[id]; ok {
		return v
	}
	if v, ok := r.cache.Get(id); ok {
		return v
	}
	v, err := r.source.VariableByID(ctx, id)
	if err != nil || v == nil {
		return nil
	}
	r.cache.Add(id, v)
	return v
}

// aliasTarget returns the referenced variable id when raw is an alias
// reference value.
func aliasTarget(raw any) (string, bool) {
	m, ok := raw.(map[string]any)
	if !ok {
		return "", false
	}
	if t, _ := m["type"].(string); t != "VARIABLE_ALIAS" {
		return "", false
	}
	id, _ := m["id"].(string)
	return id, id != ""
}

// errAliasCycle marks a cycle detected while following an alias chain.
type errAliasCycle struct {
	id string
}

func (e errAliasCycle) Error() string {
	return fmt.Sprintf("alias cycle through variable %s", e.id)
}

// resolve follows alias references starting from raw until it reaches a
// literal value, up to maxAliasDepth hops. Each hop reads the target's value
// for the same mode id, falling back to the target's first declared mode.
// A missing target or exhausted depth is an ordinary skip (nil, false, nil);
// a cycle is reported so the caller can log it.
func (r *variableResolver) resolve(ctx context.Context, raw any, modeID string) (any, bool, error) {
	visited := make(map[string]bool)

	for depth := 0; depth <= maxAliasDepth; depth++ {
		id, isAlias := aliasTarget(raw)
		if !isAlias {
			return raw, raw != nil, nil
		}

		if visited[id] {
			return nil, false, errAliasCycle{id: id}
		}
		visited[id] = true

		target := r.lookup(ctx, id)
		if target == nil {
			return nil, false, nil
		}

		next, ok := target.ValuesByMode[modeID]
		if !ok {
			next, ok = r.firstModeValue(target)
			if !ok {
				return nil, false, nil
			}
		}
		raw = next
	}

	return nil, false, nil
}

// firstModeValue returns the target's value for its first available mode,
// preferring the owning collection's declared mode order.
func (r *variableResolver) firstModeValue(v *figma.Variable) (any, bool) {
	for _, modeID := range r.modeOrder(v) {
		if value, ok := v.ValuesByMode[modeID]; ok {
			return value, true
		}
	}
	return nil, false
}

// modeOrder returns the variable's mode ids in the collection's declared
// order, followed by any stray ids in lexical order. This is the "source
// iteration order" used for first-mode and default-value selection.
func (r *variableResolver) modeOrder(v *figma.Variable) []string {
	order := make([]string, 0, len(v.ValuesByMode))
	seen := make(map[string]bool, len(v.ValuesByMode))

	if col, ok := r.collections[v.VariableCollectionID]; ok {
		for _, mode := range col.Modes {
			if _, present := v.ValuesByMode[mode.ModeID]; present {
				order = append(order, mode.ModeID)
				seen[mode.ModeID] = true
			}
		}
	}

	var stray []string
	for modeID := range v.ValuesByMode {
		if !seen[modeID] {
			stray = append(stray, modeID)
		}
	}
	sort.Strings(stray)

	return append(order, stray...)
}

// modeName maps a mode id to its display name via the owning collection,
// synthesizing "Mode {id}" for ids absent from the collection's mode list.
// The second result reports whether the name was synthesized.
func (r *variableResolver) modeName(v *figma.Variable, modeID string) (string, bool) {
	if col, ok := r.collections[v.VariableCollectionID]; ok {
		for _, mode := range col.Modes {
			if mode.ModeID == modeID {
				return mode.Name, false
			}
		}
	}
	return "Mode " + modeID, true
}

func (r *variableResolver) collectionName(v *figma.Variable) string {
	if col, ok := r.collections[v.VariableCollectionID]; ok {
		return col.Name
	}
	return ""
}

// variableType maps a raw resolvedType tag onto the closed variable type
// enum. Unknown tags are rejected so host-added types degrade to a skipped
// record instead of a mistyped one.
func variableType(resolvedType string) (VariableType, bool) {
	switch resolvedType {
	case "COLOR":
		return VariableColor, true
	case "FLOAT":
		return VariableFloat, true
	case "STRING":
		return VariableString, true
	case "BOOLEAN":
		return VariableBoolean, true
	default:
		return "", false
	}
}

// coerceValue cleans a resolved literal according to the variable's type.
// The second result is false when the value cannot serve the type, which
// skips that mode.
func coerceValue(raw any, typ VariableType) (any, bool) {
	if raw == nil {
		return nil, false
	}

	switch typ {
	case VariableColor:
		c, ok := colorFromValue(raw)
		if !ok {
			return nil, false
		}
		cv, ok := NormalizeColor(c)
		if !ok {
			return nil, false
		}
		if cv.A < 1 {
			return cv.RGBA(), true
		}
		return cv.Hex, true

	case VariableFloat:
		switch n := raw.(type) {
		case float64:
			return n, true
		case float32:
			return float64(n), true
		case int:
			return float64(n), true
		case string:
			f, err := strconv.ParseFloat(n, 64)
			if err != nil {
				return nil, false
			}
			return f, true
		default:
			return nil, false
		}

	case VariableString:
		if s, ok := raw.(string); ok {
			if s == "" {
				return nil, false
			}
			return s, true
		}
		return fmt.Sprintf("%v", raw), true

	case VariableBoolean:
		if b, ok := raw.(bool); ok {
			return b, true
		}
		// Any non-null value is accepted for booleans.
		return true, true
	}

	return nil, false
}

// colorFromValue reads a color out of a resolved value, accepting both the
// decoded-JSON map shape and typed colors from programmatic sources.
func colorFromValue(raw any) (*figma.Color, bool) {
	switch c := raw.(type) {
	case *figma.Color:
		return c, c != nil
	case figma.Color:
		return &c, true
	case map[string]any:
		out := &figma.Color{}
		if r, ok := c["r"].(float64); ok {
			out.R = &r
		}
		if g, ok := c["g"].(float64); ok {
			out.G = &g
		}
		if b, ok := c["b"].(float64); ok {
			out.B = &b
		}
		if a, ok := c["a"].(float64); ok {
			out.A = &a
		}
		return out, true
	default:
		return nil, false
	}
}

// extractVariable converts one raw variable into a record. A nil result is
// a policy skip: unknown resolved type, or zero modes producing a valid
// value after alias resolution and coercion. Alias cycles are logged and
// skip only the affected mode.
func (e *Exporter) extractVariable(ctx context.Context, v *figma.Variable, r *variableResolver) *VariableRecord {
	typ, ok := variableType(v.ResolvedType)
	if !ok {
		e.logWarn("Skipping variable %q: unsupported type %q", v.Name, v.ResolvedType)
		return nil
	}

	rec := &VariableRecord{
		Name:                 v.Name,
		Token:                Slugify(v.Name),
		Type:                 typ,
		Description:          v.Description,
		Collection:           r.collectionName(v),
		Scopes:               v.Scopes,
		HiddenFromPublishing: v.HiddenFromPublishing,
	}

	values := make(map[string]any)
	anyNamedMode := false
	first := true

	for _, modeID := range r.modeOrder(v) {
		raw := v.ValuesByMode[modeID]

		resolved, ok, err := r.resolve(ctx, raw, modeID)
		if err != nil {
			e.logWarn("Variable %q mode %s: %v", v.Name, modeID, err)
			continue
		}
		if !ok {
			continue
		}

		value, ok := coerceValue(resolved, typ)
		if !ok {
			continue
		}

		name, synthesized := r.modeName(v, modeID)
		if !synthesized {
			anyNamedMode = true
		}
		values[name] = value

		// The default value is the first mode encountered in source order.
		if first {
			rec.Value = value
			first = false
		}
	}

	if len(values) == 0 {
		return nil
	}
	if len(values) > 1 || anyNamedMode {
		rec.Values = values
	}

	return rec
}
