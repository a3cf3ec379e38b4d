package token

// PaintKind tags the category of a color style. Unknown paint types map to
// PaintUnsupported rather than failing, so host-added types degrade
// predictably.
type PaintKind string

const (
	PaintSolid       PaintKind = "solid"
	PaintLinear      PaintKind = "linear"
	PaintRadial      PaintKind = "radial"
	PaintAngular     PaintKind = "angular"
	PaintDiamond     PaintKind = "diamond"
	PaintImage       PaintKind = "image"
	PaintUnsupported PaintKind = "unsupported"
)

// VariableType is the resolved type of an exported variable.
type VariableType string

const (
	VariableColor   VariableType = "color"
	VariableFloat   VariableType = "float"
	VariableString  VariableType = "string"
	VariableBoolean VariableType = "boolean"
)

// Grouping selects the output shape for variables: flat categorized arrays
// or records grouped by their owning collection.
type Grouping string

const (
	GroupFlat         Grouping = "flat"
	GroupByCollection Grouping = "collections"
)

// GradientStop is one ordered color stop of a gradient color style.
type GradientStop struct {
	Position float64 `json:"position"`
	Color    string  `json:"color"`
	Hex      string  `json:"hex,omitempty"`
}

// ColorStyle is one exported paint style. Solid styles carry Hex and Value;
// gradient styles carry Stops, the derived CSS gradient in Value, and (for
// linear gradients) the angle in degrees.
type ColorStyle struct {
	Name        string         `json:"name"`
	Token       string         `json:"token"`
	Description string         `json:"description,omitempty"`
	Kind        PaintKind      `json:"type"`
	Hex         string         `json:"hex,omitempty"`
	Value       string         `json:"value,omitempty"`
	Angle       *int           `json:"angle,omitempty"`
	Stops       []GradientStop `json:"stops,omitempty"`
}

// TextStyle is one exported typographic style. LineHeight and LetterSpacing
// carry unit-suffixed strings ("20px", "150%"); TextCase and TextDecoration
// are kebab-case and present only when not the host defaults.
type TextStyle struct {
	Name           string  `json:"name"`
	Token          string  `json:"token"`
	Description    string  `json:"description,omitempty"`
	FontFamily     string  `json:"fontFamily"`
	FontWeight     int     `json:"fontWeight"`
	FontSize       float64 `json:"fontSize,omitempty"`
	Italic         bool    `json:"italic,omitempty"`
	LineHeight     string  `json:"lineHeight,omitempty"`
	LetterSpacing  string  `json:"letterSpacing,omitempty"`
	TextCase       string  `json:"textCase,omitempty"`
	TextDecoration string  `json:"textDecoration,omitempty"`
}

// EffectDetail is one effect of an effect style. All effect types appear in
// the structured list; only shadows contribute to the CSS declaration.
type EffectDetail struct {
	Type   string  `json:"type"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Radius float64 `json:"radius,omitempty"`
	Spread float64 `json:"spread,omitempty"`
	Color  string  `json:"color,omitempty"`
}

// EffectStyle is one exported effect style. CSS holds the full box-shadow
// declaration derived from the style's visible shadow effects, or is empty
// when no shadow carries a valid color.
type EffectStyle struct {
	Name        string         `json:"name"`
	Token       string         `json:"token"`
	Description string         `json:"description,omitempty"`
	Effects     []EffectDetail `json:"effects"`
	Shadow      string         `json:"shadow,omitempty"`
	CSS         string         `json:"css,omitempty"`
}

// GridDetail is one layout grid of a grid style, with host defaults applied
// for absent fields.
type GridDetail struct {
	Pattern string  `json:"pattern"`
	Count   int     `json:"count"`
	Gutter  float64 `json:"gutter"`
	Margin  float64 `json:"margin"`
}

// GridStyle is one exported layout-grid style.
type GridStyle struct {
	Name        string       `json:"name"`
	Token       string       `json:"token"`
	Description string       `json:"description,omitempty"`
	Grids       []GridDetail `json:"grids"`
}

// VariableRecord is one exported variable. Value is the first mode's value
// in the collection's declared mode order; Values maps mode display names to
// values and is present only when the variable has more than one resolved
// mode or at least one mode with a real (non-synthesized) name.
type VariableRecord struct {
	Name                 string         `json:"name"`
	Token                string         `json:"token"`
	Type                 VariableType   `json:"type"`
	Description          string         `json:"description,omitempty"`
	Collection           string         `json:"collection,omitempty"`
	Scopes               []string       `json:"scopes,omitempty"`
	HiddenFromPublishing bool           `json:"hiddenFromPublishing,omitempty"`
	Value                any            `json:"value"`
	Values               map[string]any `json:"values,omitempty"`
}

// VariableSet holds variables categorized by resolved type.
type VariableSet struct {
	Colors   []VariableRecord `json:"colors"`
	Numbers  []VariableRecord `json:"numbers"`
	Strings  []VariableRecord `json:"strings"`
	Booleans []VariableRecord `json:"booleans"`
}

// Count returns the total number of variables across all type buckets.
func (s *VariableSet) Count() int {
	return len(s.Colors) + len(s.Numbers) + len(s.Strings) + len(s.Booleans)
}

func (s *VariableSet) add(rec VariableRecord) {
	switch rec.Type {
	case VariableColor:
		s.Colors = append(s.Colors, rec)
	case VariableFloat:
		s.Numbers = append(s.Numbers, rec)
	case VariableString:
		s.Strings = append(s.Strings, rec)
	case VariableBoolean:
		s.Booleans = append(s.Booleans, rec)
	}
}

// CollectionGroup holds one collection's variables together with its
// declared mode names.
type CollectionGroup struct {
	Name  string   `json:"name"`
	Modes []string `json:"modes,omitempty"`
	VariableSet
}

// Styles groups the four exported style categories.
type Styles struct {
	Colors  []ColorStyle  `json:"colors"`
	Text    []TextStyle   `json:"textStyles"`
	Effects []EffectStyle `json:"effects"`
	Grids   []GridStyle   `json:"grids"`
}

// Counts summarizes an export run.
type Counts struct {
	Colors              int `json:"colors"`
	TextStyles          int `json:"textStyles"`
	Effects             int `json:"effects"`
	Grids               int `json:"grids"`
	Variables           int `json:"variables"`
	ColorVariables      int `json:"colorVariables"`
	NumberVariables     int `json:"numberVariables"`
	StringVariables     int `json:"stringVariables"`
	BooleanVariables    int `json:"booleanVariables"`
	CollectionsFound    int `json:"collectionsFound"`
	CollectionsExported int `json:"collectionsExported"`
}

// Metadata carries the provenance of an export run.
type Metadata struct {
	FileName   string `json:"fileName"`
	FileKey    string `json:"fileKey,omitempty"`
	ExportDate string `json:"exportDate"`
	Counts     Counts `json:"counts"`
}

// Document is the root export document. Exactly one of Variables (flat
// grouping) or Collections (by-collection grouping) is populated, per the
// exporter's Grouping option. Immutable once returned.
type Document struct {
	Styles      Styles            `json:"styles"`
	Variables   *VariableSet      `json:"variables,omitempty"`
	Collections []CollectionGroup `json:"collections,omitempty"`
	Metadata    Metadata          `json:"metadata"`
}
