// Package formatter renders an export document into developer-consumable
// text formats. Formatters only format fields the pipeline has already
// computed; no value is re-derived here.
package formatter

import (
	"fmt"

	"github.com/hellenic-development/figma-tokens/pkg/token"
)

// Supported output formats.
const (
	FormatJSON   = "json"
	FormatCSS    = "css"
	FormatModule = "js"
	FormatYAML   = "yaml"
)

// Format renders the document in the named format.
func Format(doc *token.Document, format string) (string, error) {
	switch format {
	case FormatJSON:
		return ToJSON(doc)
	case FormatCSS:
		return ToCSS(doc), nil
	case FormatModule:
		return ToModule(doc), nil
	case FormatYAML:
		return ToYAML(doc)
	default:
		return "", fmt.Errorf("unknown output format %q (must be json, css, js, or yaml)", format)
	}
}

// DefaultFileName returns the conventional output file name for a format.
func DefaultFileName(format string) string {
	switch format {
	case FormatCSS:
		return "design-tokens.css"
	case FormatModule:
		return "design-tokens.js"
	case FormatYAML:
		return "design-tokens.yaml"
	default:
		return "design-tokens.json"
	}
}
