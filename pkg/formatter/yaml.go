package formatter

import (
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/hellenic-development/figma-tokens/pkg/token"
)

// ToYAML renders the document as YAML. The document is round-tripped
// through its JSON form so the YAML keys match the JSON field names.
func ToYAML(doc *token.Document) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}

	var generic map[string]any
	if err := json.Unmarshal(data, &generic); err != nil {
		return "", err
	}

	out, err := yaml.Marshal(generic)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
