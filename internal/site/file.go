package site

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads overrides from a YAML document such as
//
//	meeting_link: https://cal.com/someone
//	available: false
//
// An empty path yields no overrides.
func LoadFile(path string) (Overrides, error) {
	var o Overrides
	if path == "" {
		return o, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return o, fmt.Errorf("failed to read site config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &o); err != nil {
		return o, fmt.Errorf("failed to parse site config %q: %w", path, err)
	}
	return o, nil
}
