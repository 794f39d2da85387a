package record

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// normalize decodes a record document and returns it re-encoded as JSON.
// Files ending in .yaml or .yml are read as YAML; everything else as JSON.
// Going through a generic value also turns integral floats such as 4.0 into
// plain integers, so they decode into int fields.
func normalize(path string, data []byte) ([]byte, error) {
	var doc any

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	}

	if doc == nil {
		return nil, fmt.Errorf("document is empty")
	}

	out, err := json.Marshal(doc)
	if err != nil {
		// yaml.v3 decodes non-string mapping keys into map[any]any.
		return nil, fmt.Errorf("unsupported document structure: %w", err)
	}
	return out, nil
}
