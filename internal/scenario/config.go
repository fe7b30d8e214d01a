package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rawbytedev/fixedcstr"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownFormat = errors.New("unknown scenario file format")
	ErrInvalid       = errors.New("invalid scenario")
)

const (
	KindText   = "text"
	KindFormat = "format"

	AllocatorGo = "go"
	AllocatorC  = "c"

	DefaultIterations = 10000
)

// Config describes a profiling run.
type Config struct {
	Iterations int    `yaml:"iterations" toml:"iterations"`
	Allocator  string `yaml:"allocator" toml:"allocator"`
	Cases      []Case `yaml:"cases" toml:"cases"`
}

// Case is one construction to measure. Text cases build a string of Length
// bytes; format cases render Format with Args.
type Case struct {
	Name   string `yaml:"name" toml:"name"`
	Kind   string `yaml:"kind" toml:"kind"`
	Length int    `yaml:"length" toml:"length"`
	Format string `yaml:"format" toml:"format"`
	Args   []any  `yaml:"args" toml:"args"`
}

// Default covers both sides of the inline/heap boundary.
func Default() *Config {
	return &Config{
		Iterations: DefaultIterations,
		Allocator:  AllocatorGo,
		Cases: []Case{
			{Name: "short", Kind: KindText, Length: 4},
			{Name: "last-inline", Kind: KindText, Length: fixedcstr.Capacity - 1},
			{Name: "first-heap", Kind: KindText, Length: fixedcstr.Capacity},
			{Name: "long", Kind: KindText, Length: fixedcstr.Capacity + 88},
			{Name: "format", Kind: KindFormat, Format: "hello %d", Args: []any{123}},
		},
	}
}

// Load reads a YAML (.yaml, .yml) or TOML (.toml) scenario file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	cfg := &Config{}
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, cfg)
	case ".toml":
		_, err = toml.Decode(string(raw), cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Iterations == 0 {
		c.Iterations = DefaultIterations
	}
	if c.Allocator == "" {
		c.Allocator = AllocatorGo
	}
	for i := range c.Cases {
		if c.Cases[i].Kind == "" {
			c.Cases[i].Kind = KindText
		}
	}
}

func (c *Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalid, c.Iterations)
	}
	if c.Allocator != AllocatorGo && c.Allocator != AllocatorC {
		return fmt.Errorf("%w: allocator %q", ErrInvalid, c.Allocator)
	}
	if len(c.Cases) == 0 {
		return fmt.Errorf("%w: no cases", ErrInvalid)
	}
	seen := make(map[string]struct{}, len(c.Cases))
	for i, cs := range c.Cases {
		if cs.Name == "" {
			return fmt.Errorf("%w: case %d has no name", ErrInvalid, i)
		}
		if _, dup := seen[cs.Name]; dup {
			return fmt.Errorf("%w: duplicate case %q", ErrInvalid, cs.Name)
		}
		seen[cs.Name] = struct{}{}
		switch cs.Kind {
		case KindText:
			if cs.Length < 0 {
				return fmt.Errorf("%w: case %q has negative length", ErrInvalid, cs.Name)
			}
		case KindFormat:
			if cs.Format == "" {
				return fmt.Errorf("%w: case %q has no format", ErrInvalid, cs.Name)
			}
		default:
			return fmt.Errorf("%w: case %q has kind %q", ErrInvalid, cs.Name, cs.Kind)
		}
	}
	return nil
}
