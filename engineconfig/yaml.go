package engineconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/adaptivesurvey/dose/grid"
)

// fileConfig mirrors the on-disk YAML shape. Zero-valued fields fall back to
// New's defaults, letting a deployment override only the knobs it cares
// about (e.g. just se_threshold, to pin the more lenient 0.65 value).
type fileConfig struct {
	SEThreshold      float64 `yaml:"se_threshold"`
	MaxItemsPerTrait int     `yaml:"max_items_per_trait"`
	ThetaMin         float64 `yaml:"theta_min"`
	ThetaMax         float64 `yaml:"theta_max"`
	ThetaPoints      int     `yaml:"theta_points"`
}

// LoadFile reads and parses a Config from a YAML file at path.
func LoadFile(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Load(raw)
}

// Load parses a Config from raw YAML bytes. Any field omitted from the
// document falls back to New's library default for that knob.
func Load(raw []byte) (*Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return nil, err
	}

	var opts []Option
	if fc.SEThreshold != 0 {
		opts = append(opts, WithSEThreshold(fc.SEThreshold))
	}
	if fc.MaxItemsPerTrait != 0 {
		opts = append(opts, WithMaxItemsPerTrait(fc.MaxItemsPerTrait))
	}
	if fc.ThetaMin != 0 || fc.ThetaMax != 0 || fc.ThetaPoints != 0 {
		min, max, points := fc.ThetaMin, fc.ThetaMax, fc.ThetaPoints
		if min == 0 {
			min = grid.DefaultMin
		}
		if max == 0 {
			max = grid.DefaultMax
		}
		if points == 0 {
			points = grid.DefaultPoints
		}
		spec, err := grid.NewSpec(min, max, points)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidGrid, err)
		}
		opts = append(opts, WithGridSpec(spec))
	}

	return New(opts...)
}
