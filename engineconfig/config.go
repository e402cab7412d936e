package engineconfig

import "github.com/adaptivesurvey/dose/grid"

// defaultSEThreshold is the library default stopping SE. Deployments that
// need faster, less precise sessions override it with WithSEThreshold(0.65).
const defaultSEThreshold = 0.3

// defaultMaxItemsPerTrait matches the bank's four items per trait.
const defaultMaxItemsPerTrait = 4

// Option customizes a Config. Later options override earlier ones, and a
// nil-valued option (e.g. WithGridSpec(nil)) is a no-op.
type Option func(cfg *Config)

// Config is the engine's validated, immutable set of tunable knobs.
type Config struct {
	SEThreshold      float64
	MaxItemsPerTrait int
	Grid             *grid.Spec
}

// WithSEThreshold overrides the stopping-rule SE threshold.
func WithSEThreshold(threshold float64) Option {
	return func(cfg *Config) { cfg.SEThreshold = threshold }
}

// WithMaxItemsPerTrait overrides the per-trait item cap.
func WithMaxItemsPerTrait(n int) Option {
	return func(cfg *Config) { cfg.MaxItemsPerTrait = n }
}

// WithGridSpec overrides the default theta grid. A nil spec is a no-op,
// leaving the previously configured grid (or the library default) in place.
func WithGridSpec(spec *grid.Spec) Option {
	return func(cfg *Config) {
		if spec != nil {
			cfg.Grid = spec
		}
	}
}

// New builds a Config from defaults (SEThreshold 0.3, MaxItemsPerTrait 4,
// the default -4..4/161-point grid), applies opts in order, then validates
// the result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{
		SEThreshold:      defaultSEThreshold,
		MaxItemsPerTrait: defaultMaxItemsPerTrait,
		Grid:             grid.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.SEThreshold <= 0 {
		return ErrInvalidThreshold
	}
	if c.MaxItemsPerTrait <= 0 {
		return ErrInvalidMaxItems
	}
	if c.Grid == nil {
		return ErrInvalidGrid
	}

	return nil
}
