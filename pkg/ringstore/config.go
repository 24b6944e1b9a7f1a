package ringstore

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/c360/ringstore/errors"
)

// DefaultCapacity is the capacity used by DefaultConfig.
const DefaultCapacity = 1024

// Config describes a RingStore for callers that build stores from configuration
// files. JSON documents are accepted as well, being valid YAML.
type Config struct {
	Capacity       int    `json:"capacity" yaml:"capacity"`
	Name           string `json:"name,omitempty" yaml:"name,omitempty"`
	ReleaseOnClear bool   `json:"release_on_clear,omitempty" yaml:"release_on_clear,omitempty"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Capacity: DefaultCapacity,
		Name:     DefaultName,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return errors.WrapInvalid(
			fmt.Errorf("%w: capacity must be positive, got %d", errors.ErrInvalidConfig, c.Capacity),
			"Config", "Validate", "check capacity")
	}
	return nil
}

// ParseConfig decodes a YAML (or JSON) document over DefaultConfig and validates
// the result. Unknown fields are rejected; an empty document yields the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return Config{}, errors.WrapInvalid(
			fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err),
			"Config", "ParseConfig", "decode document")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Options converts the configuration into constructor options.
func (c Config) Options() []Option {
	opts := []Option{WithName(c.Name)}
	if c.ReleaseOnClear {
		opts = append(opts, WithReleaseOnClear())
	}
	return opts
}

// NewFromConfig validates cfg and creates a RingStore from it. Explicit options
// are applied after the ones derived from cfg and take precedence.
func NewFromConfig[T any](cfg Config, options ...Option) (*RingStore[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return New[T](cfg.Capacity, append(cfg.Options(), options...)...)
}
