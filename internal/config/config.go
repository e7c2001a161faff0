// Package config is the behavior policy governing one evaluation (random()
// availability and source, recursion-depth ceiling; it has no integer-width
// setting), plus its CLI-facing YAML persistence form. Modeled on the
// original crate's src/configuration/mod.rs (a policy struct threaded
// through evaluation) and built with the option-function construction
// style go-dws's internal/lexer uses for LexerOption/WithPreserveComments.
package config

import (
	"math/rand"
	"os"

	"github.com/goccy/go-yaml"
)

// Config governs policy that is not expressible purely in the expression
// text: whether random() may run, and how deep evaluation may recurse
// before failing RecursionLimitExceeded (spec section 5, "Resource
// bounds").
type Config struct {
	RandEnabled bool
	Rand        *rand.Rand
	MaxDepth    int
}

// Option configures a Config at construction time.
type Option func(*Config)

// WithRandEnabled toggles random().
func WithRandEnabled(enabled bool) Option {
	return func(c *Config) { c.RandEnabled = enabled }
}

// WithRandSource fixes random()'s source, for reproducible evaluation.
func WithRandSource(r *rand.Rand) Option {
	return func(c *Config) { c.Rand = r }
}

// WithMaxDepth overrides the recursion-depth ceiling.
func WithMaxDepth(depth int) Option {
	return func(c *Config) { c.MaxDepth = depth }
}

// defaultMaxDepth mirrors internal/tree.DefaultMaxDepth; duplicated here
// (rather than imported) to keep config dependency-free of tree, which
// itself depends on builtins.Config rather than this package directly —
// see DESIGN.md for why the two Config types are kept distinct.
const defaultMaxDepth = 4096

// New builds a Config with conservative defaults (no randomness, the
// default recursion ceiling), applying opts in order.
func New(opts ...Option) Config {
	c := Config{MaxDepth: defaultMaxDepth}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// file is the YAML-persisted subset of Config: Rand is a runtime handle
// and is never serialized.
type file struct {
	RandEnabled bool `yaml:"rand_enabled"`
	MaxDepth    int  `yaml:"max_depth"`
}

// Load reads a YAML config file written by Save, applying CLI defaults on
// top of New()'s baseline.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Config{}, err
	}
	c := New(WithRandEnabled(f.RandEnabled))
	if f.MaxDepth > 0 {
		c.MaxDepth = f.MaxDepth
	}
	return c, nil
}

// Save persists c's YAML-expressible fields to path.
func Save(path string, c Config) error {
	data, err := yaml.Marshal(file{RandEnabled: c.RandEnabled, MaxDepth: c.MaxDepth})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
