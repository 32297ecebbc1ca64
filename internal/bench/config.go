package bench

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-nvec/numeric"
	"github.com/cwbudde/algo-nvec/nvec"
)

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("bench: invalid config")

// Config controls a benchmark session.
type Config struct {
	// Kinds names the component kinds to measure, e.g. "i8" or "float64".
	Kinds []string `yaml:"kinds"`
	// Sizes lists vector lengths, each in [1, nvec.MaxDim].
	Sizes []int `yaml:"sizes"`
	// Runs is the number of times fresh random operands are drawn.
	Runs int `yaml:"runs"`
	// Iterations is the number of ElementMul calls timed per measurement.
	Iterations int `yaml:"iterations"`
	// Seed seeds operand generation. Zero picks a time-based seed.
	Seed int64 `yaml:"seed"`
}

// BenchOption mutates a Config.
type BenchOption func(*Config)

// DefaultConfig measures every kind with a float rule on vectors of
// length 1 to 6, once.
func DefaultConfig() Config {
	return Config{
		Kinds:      []string{"i8", "i16", "i32", "i64", "u8", "u16", "u32", "u64", "f32", "f64"},
		Sizes:      []int{1, 2, 3, 4, 5, 6},
		Runs:       1,
		Iterations: 100000,
	}
}

// WithKinds replaces the measured kinds.
func WithKinds(kinds ...string) BenchOption {
	return func(cfg *Config) {
		if len(kinds) > 0 {
			cfg.Kinds = append([]string(nil), kinds...)
		}
	}
}

// WithSizes replaces the measured vector lengths.
func WithSizes(sizes ...int) BenchOption {
	return func(cfg *Config) {
		if len(sizes) > 0 {
			cfg.Sizes = append([]int(nil), sizes...)
		}
	}
}

// WithRuns sets the number of operand draws.
func WithRuns(runs int) BenchOption {
	return func(cfg *Config) {
		if runs > 0 {
			cfg.Runs = runs
		}
	}
}

// WithIterations sets the timed call count per measurement.
func WithIterations(n int) BenchOption {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Iterations = n
		}
	}
}

// WithSeed fixes the operand seed.
func WithSeed(seed int64) BenchOption {
	return func(cfg *Config) {
		cfg.Seed = seed
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...BenchOption) Config {
	cfg := DefaultConfig()
	cfg.apply(opts)
	return cfg
}

func (cfg *Config) apply(opts []BenchOption) {
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
}

// LoadConfig reads a YAML config file over the defaults and then applies
// opts, so explicit options win over file values.
func LoadConfig(path string, opts ...BenchOption) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("bench: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("bench: parse config %s: %w", path, err)
	}

	cfg.apply(opts)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks kinds, sizes and counts.
func (cfg Config) Validate() error {
	if len(cfg.Kinds) == 0 {
		return fmt.Errorf("%w: no kinds", ErrInvalidConfig)
	}
	if _, err := cfg.parsedKinds(); err != nil {
		return err
	}
	if len(cfg.Sizes) == 0 {
		return fmt.Errorf("%w: no sizes", ErrInvalidConfig)
	}
	for _, n := range cfg.Sizes {
		if n < 1 || n > nvec.MaxDim {
			return fmt.Errorf("%w: size %d outside [1, %d]", ErrInvalidConfig, n, nvec.MaxDim)
		}
	}
	if cfg.Runs < 1 {
		return fmt.Errorf("%w: runs must be positive, got %d", ErrInvalidConfig, cfg.Runs)
	}
	if cfg.Iterations < 1 {
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidConfig, cfg.Iterations)
	}
	return nil
}

func (cfg Config) parsedKinds() ([]numeric.Kind, error) {
	kinds := make([]numeric.Kind, 0, len(cfg.Kinds))
	for _, name := range cfg.Kinds {
		k, err := numeric.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
