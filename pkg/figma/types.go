package figma

// Version is the current release of the figma-tokens module.
const Version = "0.2.0"

// Color represents an RGBA color with float channels ranging from 0 to 1.
// Channels are pointers so that a record missing a channel can be told apart
// from a genuine zero value: a missing channel invalidates the color rather
// than rendering it as black.
type Color struct {
	R *float64 `json:"r"`
	G *float64 `json:"g"`
	B *float64 `json:"b"`
	A *float64 `json:"a,omitempty"`
}

// Vector represents a 2D coordinate or offset with X and Y values.
// Used for positioning effects like shadows.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GradientStop is a single color stop on a gradient paint. Position is in
// the 0..1 range; stop order in the slice is significant.
type GradientStop struct {
	Position float64 `json:"position"`
	Color    *Color  `json:"color,omitempty"`
}

// Paint represents a fill applied to a style. It includes the paint type
// (SOLID, GRADIENT_LINEAR, GRADIENT_RADIAL, GRADIENT_ANGULAR,
// GRADIENT_DIAMOND, IMAGE), visibility, opacity, and per-type payload.
type Paint struct {
	Type              string         `json:"type"`
	Visible           *bool          `json:"visible,omitempty"`
	Opacity           *float64       `json:"opacity,omitempty"`
	Color             *Color         `json:"color,omitempty"`
	GradientStops     []GradientStop `json:"gradientStops,omitempty"`
	GradientTransform [][]float64    `json:"gradientTransform,omitempty"`
}

// IsVisible reports whether the paint is visible. An absent visibility flag
// means visible.
func (p Paint) IsVisible() bool {
	return p.Visible == nil || *p.Visible
}

// Effect represents a visual effect such as a drop shadow, inner shadow, or
// blur. Only shadow effects carry offset, spread, and color.
type Effect struct {
	Type    string  `json:"type"`
	Visible *bool   `json:"visible,omitempty"`
	Radius  float64 `json:"radius,omitempty"`
	Spread  float64 `json:"spread,omitempty"`
	Color   *Color  `json:"color,omitempty"`
	Offset  *Vector `json:"offset,omitempty"`
}

// IsVisible reports whether the effect is visible. An absent visibility flag
// means visible.
func (e Effect) IsVisible() bool {
	return e.Visible == nil || *e.Visible
}

// FontName identifies a font by family and named style (e.g. "Bold Italic").
type FontName struct {
	Family string `json:"family"`
	Style  string `json:"style"`
}

// UnitValue is a number tagged with its unit: "PIXELS", "PERCENT", or "AUTO".
type UnitValue struct {
	Unit  string  `json:"unit"`
	Value float64 `json:"value,omitempty"`
}

// LayoutGrid describes one grid definition on a grid style. Optional numeric
// fields are pointers so that absent values can receive defaults downstream.
type LayoutGrid struct {
	Pattern     string   `json:"pattern"`
	Count       *int     `json:"count,omitempty"`
	GutterSize  *float64 `json:"gutterSize,omitempty"`
	Offset      *float64 `json:"offset,omitempty"`
	SectionSize *float64 `json:"sectionSize,omitempty"`
	Alignment   string   `json:"alignment,omitempty"`
}

// PaintStyle is a published color/paint style with its paint stack.
type PaintStyle struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Paints      []Paint `json:"paints"`
}

// TextStyle is a published typographic style.
type TextStyle struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	FontName       *FontName  `json:"fontName,omitempty"`
	FontSize       float64    `json:"fontSize,omitempty"`
	LineHeight     *UnitValue `json:"lineHeight,omitempty"`
	LetterSpacing  *UnitValue `json:"letterSpacing,omitempty"`
	TextCase       string     `json:"textCase,omitempty"`
	TextDecoration string     `json:"textDecoration,omitempty"`
}

// EffectStyle is a published effect style with its effect stack.
type EffectStyle struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Effects     []Effect `json:"effects"`
}

// GridStyle is a published layout-grid style.
type GridStyle struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	LayoutGrids []LayoutGrid `json:"layoutGrids"`
}

// Mode is a named value-set dimension within a variable collection
// (e.g. "Light"/"Dark").
type Mode struct {
	ModeID string `json:"modeId"`
	Name   string `json:"name"`
}

// VariableCollection groups variables under a name and owns the ordered
// list of modes their values are resolved against.
type VariableCollection struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Modes         []Mode `json:"modes"`
	DefaultModeID string `json:"defaultModeId,omitempty"`
}

// Variable is a named, typed, mode-dependent value. A value in ValuesByMode
// is either a literal (number, string, boolean, color object) or an alias
// reference of the form {"type": "VARIABLE_ALIAS", "id": "..."}.
type Variable struct {
	ID                   string         `json:"id"`
	Name                 string         `json:"name"`
	Description          string         `json:"description,omitempty"`
	Key                  string         `json:"key,omitempty"`
	VariableCollectionID string         `json:"variableCollectionId"`
	ResolvedType         string         `json:"resolvedType"`
	ValuesByMode         map[string]any `json:"valuesByMode"`
	Scopes               []string       `json:"scopes,omitempty"`
	HiddenFromPublishing bool           `json:"hiddenFromPublishing,omitempty"`
}
