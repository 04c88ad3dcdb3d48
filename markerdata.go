package pinpoint

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// MarkerData is a marker snapshot. Every field is optional.
type MarkerData struct {
	Position *PositionData `yaml:"position"`
	Label    string        `yaml:"label"`
	Link     string        `yaml:"link"`
	NewTab   Truthy        `yaml:"newTab"`
}

// PositionData is the position part of a snapshot. Missing axes are 0.
type PositionData struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Truthy is a boolean decoded by truthiness: null, false, 0, NaN and the
// empty string are false; every other value, including the string "false"
// and any mapping or sequence, is true.
type Truthy bool

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Truthy) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.AliasNode && value.Alias != nil {
		value = value.Alias
	}
	if value.Kind != yaml.ScalarNode {
		*t = true
		return nil
	}
	switch value.ShortTag() {
	case "!!null":
		*t = false
	case "!!bool":
		var b bool
		if err := value.Decode(&b); err != nil {
			return err
		}
		*t = Truthy(b)
	case "!!int", "!!float":
		var f float64
		if err := value.Decode(&f); err != nil {
			return err
		}
		*t = Truthy(f != 0 && !math.IsNaN(f))
	default:
		*t = Truthy(value.Value != "")
	}
	return nil
}

// ParseMarkerData decodes a set of snapshots keyed by marker id from YAML
// or JSON.
func ParseMarkerData(data []byte) (map[string]MarkerData, error) {
	var out map[string]MarkerData
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("pinpoint: parse marker data: %w", err)
	}
	return out, nil
}

// LoadMarkerFile reads and decodes a snapshot file.
func LoadMarkerFile(path string) (map[string]MarkerData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pinpoint: read marker file: %w", err)
	}
	return ParseMarkerData(data)
}
