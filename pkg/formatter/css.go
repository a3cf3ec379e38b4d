package formatter

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/figma-tokens/pkg/token"
)

// ToCSS renders the document as a CSS custom-properties stylesheet. Each
// variable is emitted with its default-mode value only; mode-specific
// values stay in the structured formats.
func ToCSS(doc *token.Document) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("/* Design tokens - %s */\n", doc.Metadata.FileName))
	sb.WriteString(fmt.Sprintf("/* Exported %s */\n\n", doc.Metadata.ExportDate))
	sb.WriteString(":root {\n")

	if len(doc.Styles.Colors) > 0 {
		sb.WriteString("  /* Colors */\n")
		for _, c := range doc.Styles.Colors {
			sb.WriteString(fmt.Sprintf("  --%s: %s;\n", c.Token, c.Value))
		}
	}

	if len(doc.Styles.Text) > 0 {
		sb.WriteString("\n  /* Typography */\n")
		for _, t := range doc.Styles.Text {
			sb.WriteString(fmt.Sprintf("  --%s-font-family: '%s';\n", t.Token, t.FontFamily))
			sb.WriteString(fmt.Sprintf("  --%s-font-weight: %d;\n", t.Token, t.FontWeight))
			if t.FontSize > 0 {
				sb.WriteString(fmt.Sprintf("  --%s-font-size: %gpx;\n", t.Token, t.FontSize))
			}
			if t.LineHeight != "" {
				sb.WriteString(fmt.Sprintf("  --%s-line-height: %s;\n", t.Token, t.LineHeight))
			}
		}
	}

	shadows := false
	for _, e := range doc.Styles.Effects {
		if e.Shadow == "" {
			continue
		}
		if !shadows {
			sb.WriteString("\n  /* Shadows */\n")
			shadows = true
		}
		sb.WriteString(fmt.Sprintf("  --%s: %s;\n", e.Token, e.Shadow))
	}

	writeVariables := func(label string, records []token.VariableRecord) {
		if len(records) == 0 {
			return
		}
		sb.WriteString(fmt.Sprintf("\n  /* %s */\n", label))
		for _, rec := range records {
			sb.WriteString(fmt.Sprintf("  --%s: %s;\n", rec.Token, cssValue(rec.Value)))
		}
	}

	if doc.Variables != nil {
		writeVariables("Color variables", doc.Variables.Colors)
		writeVariables("Number variables", doc.Variables.Numbers)
		writeVariables("String variables", doc.Variables.Strings)
		writeVariables("Boolean variables", doc.Variables.Booleans)
	}
	for _, group := range doc.Collections {
		writeVariables(group.Name, group.Colors)
		writeVariables(group.Name+" numbers", group.Numbers)
		writeVariables(group.Name+" strings", group.Strings)
		writeVariables(group.Name+" booleans", group.Booleans)
	}

	sb.WriteString("}\n")

	return sb.String()
}

func cssValue(v any) string {
	switch n := v.(type) {
	case float64:
		return fmt.Sprintf("%g", n)
	case bool:
		return fmt.Sprintf("%t", n)
	default:
		return fmt.Sprintf("%v", v)
	}
}
