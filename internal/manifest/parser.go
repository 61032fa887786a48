package manifest

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Parse decodes Cargo.toml content.
func Parse(data []byte) (*CargoManifest, error) {
	var m CargoManifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}

// decodeGeneric decodes TOML into plain maps for schema validation.
func decodeGeneric(data []byte) (map[string]any, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshaling TOML: %w", err)
	}
	return raw, nil
}
