package formatter

import (
	json "github.com/goccy/go-json"

	"github.com/hellenic-development/figma-tokens/pkg/token"
)

// ToJSON renders the document as indented JSON.
func ToJSON(doc *token.Document) (string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
