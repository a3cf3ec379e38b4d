package figma

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
)

// Source supplies the raw style and variable records consumed by the export
// pipeline. Implementations may be backed by the REST API or by a local
// document dump; the pipeline's behavior is identical either way.
type Source interface {
	PaintStyles(ctx context.Context) ([]PaintStyle, error)
	TextStyles(ctx context.Context) ([]TextStyle, error)
	EffectStyles(ctx context.Context) ([]EffectStyle, error)
	GridStyles(ctx context.Context) ([]GridStyle, error)
	Variables(ctx context.Context) ([]Variable, error)
	VariableCollections(ctx context.Context) ([]VariableCollection, error)

	// VariableByID resolves a variable that is not part of the local set,
	// e.g. a library variable referenced by an alias. A nil result with a
	// nil error means "not found".
	VariableByID(ctx context.Context, id string) (*Variable, error)

	DocumentName(ctx context.Context) (string, error)
	DocumentKey(ctx context.Context) (string, error)
}

// Dump is the on-disk snapshot of a document's styles, variables, and
// collections, as serialized by the companion plugin. FileSource reads this
// format for offline exports and tests.
type Dump struct {
	Name                string               `json:"name"`
	Key                 string               `json:"key,omitempty"`
	PaintStyles         []PaintStyle         `json:"paintStyles"`
	TextStyles          []TextStyle          `json:"textStyles"`
	EffectStyles        []EffectStyle        `json:"effectStyles"`
	GridStyles          []GridStyle          `json:"gridStyles"`
	Variables           []Variable           `json:"variables"`
	VariableCollections []VariableCollection `json:"variableCollections"`
}

// FileSource serves a Dump loaded from a local JSON file.
type FileSource struct {
	dump Dump
	byID map[string]*Variable
}

// NewFileSource reads and parses a document dump from path.
func NewFileSource(path string) (*FileSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document dump: %w", err)
	}

	var dump Dump
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("parse document dump %q: %w", path, err)
	}

	return NewFileSourceFromDump(dump), nil
}

// NewFileSourceFromDump wraps an in-memory Dump as a Source.
func NewFileSourceFromDump(dump Dump) *FileSource {
	s := &FileSource{dump: dump, byID: make(map[string]*Variable, len(dump.Variables))}
	for i := range dump.Variables {
		v := &dump.Variables[i]
		s.byID[v.ID] = v
	}
	return s
}

func (s *FileSource) PaintStyles(context.Context) ([]PaintStyle, error)  { return s.dump.PaintStyles, nil }
func (s *FileSource) TextStyles(context.Context) ([]TextStyle, error)    { return s.dump.TextStyles, nil }
func (s *FileSource) EffectStyles(context.Context) ([]EffectStyle, error) {
	return s.dump.EffectStyles, nil
}
func (s *FileSource) GridStyles(context.Context) ([]GridStyle, error) { return s.dump.GridStyles, nil }
func (s *FileSource) Variables(context.Context) ([]Variable, error)   { return s.dump.Variables, nil }
func (s *FileSource) VariableCollections(context.Context) ([]VariableCollection, error) {
	return s.dump.VariableCollections, nil
}

func (s *FileSource) VariableByID(_ context.Context, id string) (*Variable, error) {
	return s.byID[id], nil
}

func (s *FileSource) DocumentName(context.Context) (string, error) { return s.dump.Name, nil }
func (s *FileSource) DocumentKey(context.Context) (string, error)  { return s.dump.Key, nil }

const nodesPerRequest = 100

// RemoteSource serves style and variable records from the Figma REST API.
// Published styles are assembled from the styles metadata endpoint plus the
// defining nodes' payloads; variables come from the local-variables
// endpoint. Each remote dataset is fetched once per source lifetime.
type RemoteSource struct {
	client  *Client
	fileKey string

	stylesOnce sync.Once
	stylesErr  error
	paints     []PaintStyle
	texts      []TextStyle
	effects    []EffectStyle
	grids      []GridStyle

	varsOnce    sync.Once
	varsErr     error
	variables   []Variable
	collections []VariableCollection

	metaOnce sync.Once
	metaErr  error
	fileName string
}

// NewRemoteSource creates a Source backed by the REST API for one file.
func NewRemoteSource(client *Client, fileKey string) *RemoteSource {
	return &RemoteSource{client: client, fileKey: fileKey}
}

func (s *RemoteSource) loadStyles(ctx context.Context) error {
	s.stylesOnce.Do(func() {
		resp, err := s.client.GetStyles(ctx, s.fileKey)
		if err != nil {
			s.stylesErr = fmt.Errorf("fetch styles: %w", err)
			return
		}

		metas := resp.Meta.Styles
		if len(metas) == 0 {
			return
		}

		ids := make([]string, 0, len(metas))
		for _, m := range metas {
			ids = append(ids, m.NodeID)
		}

		// Batch node fetches (max 100 ids per request).
		nodes := make(map[string]Node, len(ids))
		for i := 0; i < len(ids); i += nodesPerRequest {
			end := i + nodesPerRequest
			if end > len(ids) {
				end = len(ids)
			}
			nodesResp, err := s.client.GetNodes(ctx, s.fileKey, ids[i:end])
			if err != nil {
				s.stylesErr = fmt.Errorf("fetch style nodes: %w", err)
				return
			}
			for id, nd := range nodesResp.Nodes {
				nodes[id] = nd.Document
			}
		}

		// Preserve the styles endpoint's listing order.
		for _, m := range metas {
			node, ok := nodes[m.NodeID]
			if !ok {
				continue
			}
			switch m.StyleType {
			case "FILL":
				s.paints = append(s.paints, PaintStyle{
					ID:          m.NodeID,
					Name:        m.Name,
					Description: m.Description,
					Paints:      node.Fills,
				})
			case "TEXT":
				s.texts = append(s.texts, textStyleFromNode(m, node))
			case "EFFECT":
				s.effects = append(s.effects, EffectStyle{
					ID:          m.NodeID,
					Name:        m.Name,
					Description: m.Description,
					Effects:     node.Effects,
				})
			case "GRID":
				s.grids = append(s.grids, GridStyle{
					ID:          m.NodeID,
					Name:        m.Name,
					Description: m.Description,
					LayoutGrids: node.LayoutGrids,
				})
			}
		}
	})
	return s.stylesErr
}

// textStyleFromNode maps the REST TypeStyle payload onto the plugin-shaped
// text style record the extractors consume.
func textStyleFromNode(m StyleMetadata, node Node) TextStyle {
	ts := TextStyle{
		ID:          m.NodeID,
		Name:        m.Name,
		Description: m.Description,
	}
	if node.Style == nil {
		return ts
	}

	st := node.Style
	ts.FontSize = st.FontSize
	ts.TextCase = st.TextCase
	ts.TextDecoration = st.TextDecoration
	ts.FontName = &FontName{
		Family: st.FontFamily,
		Style:  fontStyleName(st),
	}

	switch st.LineHeightUnit {
	case "PIXELS":
		ts.LineHeight = &UnitValue{Unit: "PIXELS", Value: st.LineHeightPx}
	case "FONT_SIZE_%", "INTRINSIC_%":
		ts.LineHeight = &UnitValue{Unit: "PERCENT", Value: st.LineHeightPercent}
	}

	if st.LetterSpacing != 0 {
		ts.LetterSpacing = &UnitValue{Unit: "PIXELS", Value: st.LetterSpacing}
	}

	return ts
}

// fontStyleName recovers a named font style from the REST payload: the
// PostScript name suffix when present ("Inter-BoldItalic" -> "BoldItalic"),
// otherwise a name composed from the numeric weight and italic flag.
func fontStyleName(st *TypeStyle) string {
	if st.FontPostScriptName != "" {
		if idx := strings.LastIndex(st.FontPostScriptName, "-"); idx >= 0 && idx < len(st.FontPostScriptName)-1 {
			return st.FontPostScriptName[idx+1:]
		}
	}

	name := weightNames[int(math.Round(st.FontWeight))]
	if name == "" {
		name = "Regular"
	}
	if st.Italic {
		if name == "Regular" {
			return "Italic"
		}
		return name + " Italic"
	}
	return name
}

var weightNames = map[int]string{
	100: "Thin",
	200: "ExtraLight",
	300: "Light",
	400: "Regular",
	500: "Medium",
	600: "SemiBold",
	700: "Bold",
	800: "ExtraBold",
	900: "Black",
}

func (s *RemoteSource) loadVariables(ctx context.Context) error {
	s.varsOnce.Do(func() {
		resp, err := s.client.GetLocalVariables(ctx, s.fileKey)
		if err != nil {
			s.varsErr = fmt.Errorf("fetch variables: %w", err)
			return
		}

		// The endpoint returns maps; sort by id to give downstream
		// first-occurrence rules a stable source order.
		collectionIDs := make([]string, 0, len(resp.Meta.VariableCollections))
		for id := range resp.Meta.VariableCollections {
			collectionIDs = append(collectionIDs, id)
		}
		sort.Strings(collectionIDs)
		for _, id := range collectionIDs {
			s.collections = append(s.collections, resp.Meta.VariableCollections[id])
		}

		variableIDs := make([]string, 0, len(resp.Meta.Variables))
		for id := range resp.Meta.Variables {
			variableIDs = append(variableIDs, id)
		}
		sort.Strings(variableIDs)
		for _, id := range variableIDs {
			s.variables = append(s.variables, resp.Meta.Variables[id])
		}
	})
	return s.varsErr
}

func (s *RemoteSource) PaintStyles(ctx context.Context) ([]PaintStyle, error) {
	if err := s.loadStyles(ctx); err != nil {
		return nil, err
	}
	return s.paints, nil
}

func (s *RemoteSource) TextStyles(ctx context.Context) ([]TextStyle, error) {
	if err := s.loadStyles(ctx); err != nil {
		return nil, err
	}
	return s.texts, nil
}

func (s *RemoteSource) EffectStyles(ctx context.Context) ([]EffectStyle, error) {
	if err := s.loadStyles(ctx); err != nil {
		return nil, err
	}
	return s.effects, nil
}

func (s *RemoteSource) GridStyles(ctx context.Context) ([]GridStyle, error) {
	if err := s.loadStyles(ctx); err != nil {
		return nil, err
	}
	return s.grids, nil
}

func (s *RemoteSource) Variables(ctx context.Context) ([]Variable, error) {
	if err := s.loadVariables(ctx); err != nil {
		return nil, err
	}
	return s.variables, nil
}

func (s *RemoteSource) VariableCollections(ctx context.Context) ([]VariableCollection, error) {
	if err := s.loadVariables(ctx); err != nil {
		return nil, err
	}
	return s.collections, nil
}

// VariableByID looks the id up in the fetched local set. The public REST
// surface has no by-id lookup for library variables, so ids outside the
// local set resolve to not-found.
func (s *RemoteSource) VariableByID(ctx context.Context, id string) (*Variable, error) {
	if err := s.loadVariables(ctx); err != nil {
		return nil, err
	}
	for i := range s.variables {
		if s.variables[i].ID == id {
			return &s.variables[i], nil
		}
	}
	return nil, nil
}

func (s *RemoteSource) DocumentName(ctx context.Context) (string, error) {
	s.metaOnce.Do(func() {
		meta, err := s.client.GetFileMeta(ctx, s.fileKey)
		if err != nil {
			s.metaErr = fmt.Errorf("fetch file metadata: %w", err)
			return
		}
		s.fileName = meta.Name
	})
	return s.fileName, s.metaErr
}

func (s *RemoteSource) DocumentKey(context.Context) (string, error) {
	return s.fileKey, nil
}
