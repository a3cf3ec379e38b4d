package formatter

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/hellenic-development/figma-tokens/pkg/token"
)

// ToModule renders the document as a JavaScript source module exporting a
// token map. Entries keep the document's record order: color styles first,
// then effect shadows, then variables with their default-mode values.
func ToModule(doc *token.Document) string {
	var sb strings.Builder

	sb.WriteString("// Code generated by figma-tokens. DO NOT EDIT.\n")
	sb.WriteString(fmt.Sprintf("// Source: %s (%s)\n\n", doc.Metadata.FileName, doc.Metadata.ExportDate))
	sb.WriteString("export const tokens = {\n")

	write := func(tok string, value any) {
		key, _ := json.Marshal(tok)
		val, _ := json.Marshal(value)
		sb.WriteString(fmt.Sprintf("  %s: %s,\n", key, val))
	}

	for _, c := range doc.Styles.Colors {
		write(c.Token, c.Value)
	}
	for _, e := range doc.Styles.Effects {
		if e.Shadow != "" {
			write(e.Token, e.Shadow)
		}
	}

	writeSet := func(set *token.VariableSet) {
		for _, rec := range set.Colors {
			write(rec.Token, rec.Value)
		}
		for _, rec := range set.Numbers {
			write(rec.Token, rec.Value)
		}
		for _, rec := range set.Strings {
			write(rec.Token, rec.Value)
		}
		for _, rec := range set.Booleans {
			write(rec.Token, rec.Value)
		}
	}

	if doc.Variables != nil {
		writeSet(doc.Variables)
	}
	for i := range doc.Collections {
		writeSet(&doc.Collections[i].VariableSet)
	}

	sb.WriteString("};\n\nexport default tokens;\n")

	return sb.String()
}
