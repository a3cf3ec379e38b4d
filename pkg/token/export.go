package token

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hellenic-development/figma-tokens/pkg/figma"
)

// Logger receives progress and per-record warnings. A nil Logger means
// silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Options configures an export run.
type Options struct {
	Grouping Grouping // GroupFlat (default) or GroupByCollection
	Logger   Logger
}

// Exporter runs the extraction pipeline over a source and assembles the
// export document.
type Exporter struct {
	source figma.Source
	opts   Options
}

// NewExporter creates an exporter over the given source.
func NewExporter(source figma.Source, opts Options) *Exporter {
	if opts.Grouping == "" {
		opts.Grouping = GroupFlat
	}
	return &Exporter{source: source, opts: opts}
}

func (e *Exporter) logInfo(f string, a ...any) {
	if e.opts.Logger != nil {
		e.opts.Logger.Infof(f, a...)
	}
}

func (e *Exporter) logWarn(f string, a ...any) {
	if e.opts.Logger != nil {
		e.opts.Logger.Warnf(f, a...)
	}
}

// Run executes the export. All source fetches are started concurrently and
// joined before any extraction begins; any fetch failure is fatal to the
// whole run and no partial document is returned. Per-record extraction
// failures are logged and skipped, so a successful run always yields a
// document, possibly with fewer records than raw inputs. Record order
// follows source iteration order.
func (e *Exporter) Run(ctx context.Context) (*Document, error) {
	var (
		paintStyles  []figma.PaintStyle
		textStyles   []figma.TextStyle
		effectStyles []figma.EffectStyle
		gridStyles   []figma.GridStyle
		variables    []figma.Variable
		collections  []figma.VariableCollection
		fileName     string
		fileKey      string
	)

	e.logInfo("Fetching styles and variables...")

	var wg sync.WaitGroup
	var mu sync.Mutex
	var fetchErr error

	fetch := func(fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				mu.Lock()
				if fetchErr == nil {
					fetchErr = err
				}
				mu.Unlock()
			}
		}()
	}

	fetch(func() (err error) { paintStyles, err = e.source.PaintStyles(ctx); return })
	fetch(func() (err error) { textStyles, err = e.source.TextStyles(ctx); return })
	fetch(func() (err error) { effectStyles, err = e.source.EffectStyles(ctx); return })
	fetch(func() (err error) { gridStyles, err = e.source.GridStyles(ctx); return })
	fetch(func() (err error) { variables, err = e.source.Variables(ctx); return })
	fetch(func() (err error) { collections, err = e.source.VariableCollections(ctx); return })
	fetch(func() (err error) { fileName, err = e.source.DocumentName(ctx); return })
	fetch(func() (err error) { fileKey, err = e.source.DocumentKey(ctx); return })
	wg.Wait()

	if fetchErr != nil {
		return nil, fmt.Errorf("fetch design data: %w", fetchErr)
	}

	doc := &Document{
		Styles: Styles{
			Colors:  []ColorStyle{},
			Text:    []TextStyle{},
			Effects: []EffectStyle{},
			Grids:   []GridStyle{},
		},
	}

	for _, raw := range paintStyles {
		rec, err := ExtractColorStyle(raw)
		if err != nil {
			e.logWarn("Skipping color style %q: %v", raw.Name, err)
			continue
		}
		if rec != nil {
			doc.Styles.Colors = append(doc.Styles.Colors, *rec)
		}
	}

	for _, raw := range textStyles {
		rec, err := ExtractTextStyle(raw)
		if err != nil {
			e.logWarn("Skipping text style %q: %v", raw.Name, err)
			continue
		}
		if rec != nil {
			doc.Styles.Text = append(doc.Styles.Text, *rec)
		}
	}

	for _, raw := range effectStyles {
		rec, err := ExtractEffectStyle(raw)
		if err != nil {
			e.logWarn("Skipping effect style %q: %v", raw.Name, err)
			continue
		}
		if rec != nil {
			doc.Styles.Effects = append(doc.Styles.Effects, *rec)
		}
	}

	for _, raw := range gridStyles {
		rec, err := ExtractGridStyle(raw)
		if err != nil {
			e.logWarn("Skipping grid style %q: %v", raw.Name, err)
			continue
		}
		if rec != nil {
			doc.Styles.Grids = append(doc.Styles.Grids, *rec)
		}
	}

	resolver := newVariableResolver(e.source, variables, collections)

	// Duplicate suppression: the first (collection, name) occurrence in
	// source order wins; later occurrences are dropped entirely.
	type dedupKey struct{ collection, name string }
	seen := make(map[dedupKey]bool)

	var records []VariableRecord
	for i := range variables {
		v := &variables[i]
		key := dedupKey{collection: resolver.collectionName(v), name: v.Name}
		if seen[key] {
			continue
		}
		seen[key] = true

		if rec := e.extractVariable(ctx, v, resolver); rec != nil {
			records = append(records, *rec)
		}
	}

	flat := &VariableSet{
		Colors:   []VariableRecord{},
		Numbers:  []VariableRecord{},
		Strings:  []VariableRecord{},
		Booleans: []VariableRecord{},
	}
	for _, rec := range records {
		flat.add(rec)
	}

	exportedCollections := 0
	switch e.opts.Grouping {
	case GroupByCollection:
		doc.Collections = groupByCollection(records, collections)
		exportedCollections = len(doc.Collections)
	default:
		doc.Variables = flat
		populated := make(map[string]bool)
		for _, rec := range records {
			populated[rec.Collection] = true
		}
		exportedCollections = len(populated)
	}

	doc.Metadata = Metadata{
		FileName:   fileName,
		FileKey:    fileKey,
		ExportDate: time.Now().UTC().Format(time.RFC3339),
		Counts: Counts{
			Colors:              len(doc.Styles.Colors),
			TextStyles:          len(doc.Styles.Text),
			Effects:             len(doc.Styles.Effects),
			Grids:               len(doc.Styles.Grids),
			Variables:           flat.Count(),
			ColorVariables:      len(flat.Colors),
			NumberVariables:     len(flat.Numbers),
			StringVariables:     len(flat.Strings),
			BooleanVariables:    len(flat.Booleans),
			CollectionsFound:    len(collections),
			CollectionsExported: exportedCollections,
		},
	}

	e.logInfo("Extracted %d styles and %d variables", doc.Metadata.Counts.Colors+
		doc.Metadata.Counts.TextStyles+doc.Metadata.Counts.Effects+doc.Metadata.Counts.Grids,
		doc.Metadata.Counts.Variables)

	return doc, nil
}

// groupByCollection buckets records per collection in the collections'
// source order. Collections that end up with zero variables across all four
// type buckets are removed from the output.
func groupByCollection(records []VariableRecord, collections []figma.VariableCollection) []CollectionGroup {
	order := make([]string, 0, len(collections))
	groups := make(map[string]*CollectionGroup, len(collections))

	for _, col := range collections {
		if _, ok := groups[col.Name]; ok {
			continue
		}
		modes := make([]string, len(col.Modes))
		for i, m := range col.Modes {
			modes[i] = m.Name
		}
		groups[col.Name] = &CollectionGroup{Name: col.Name, Modes: modes}
		order = append(order, col.Name)
	}

	for _, rec := range records {
		group, ok := groups[rec.Collection]
		if !ok {
			// Variable with no known collection: group under its raw name.
			group = &CollectionGroup{Name: rec.Collection}
			groups[rec.Collection] = group
			order = append(order, rec.Collection)
		}
		group.add(rec)
	}

	out := make([]CollectionGroup, 0, len(order))
	for _, name := range order {
		if group := groups[name]; group.Count() > 0 {
			out = append(out, *group)
		}
	}
	return out
}
