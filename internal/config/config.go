package config

import (
	"fmt"
	"os"

	"github.com/san-kum/modviz/internal/modarith"
	"gopkg.in/yaml.v3"
)

const (
	DefaultOperand   = 7
	DefaultModulus   = 3
	DefaultGenerator = 1
	DefaultTicks     = 60
	DefaultFPS       = 60
	DefaultWidth     = 1280
	DefaultHeight    = 720

	// MaxModulus bounds the number of points laid out on a ring.
	MaxModulus = 360
	// MaxValue bounds operand and generator so reduction rings stay drawable.
	MaxValue = 9999
)

const (
	ModeReduction = "reduction"
	ModeCycle     = "cycle"
)

type Config struct {
	Operand   int          `yaml:"operand"`
	Modulus   int          `yaml:"modulus"`
	Generator int          `yaml:"generator"`
	Mode      string       `yaml:"mode"`
	Ticks     int          `yaml:"ticks"`
	FPS       int          `yaml:"fps"`
	Window    WindowConfig `yaml:"window"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Operand:   DefaultOperand,
		Modulus:   DefaultModulus,
		Generator: DefaultGenerator,
		Mode:      ModeReduction,
		Ticks:     DefaultTicks,
		FPS:       DefaultFPS,
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks ranges the front ends rely on.
func (c *Config) Validate() error {
	if c.Modulus < 1 || c.Modulus > MaxModulus {
		return fmt.Errorf("config: modulus %d: %w", c.Modulus, modarith.ErrInvalidModulus)
	}
	if c.Operand < 0 || c.Operand > MaxValue {
		return fmt.Errorf("config: operand %d: %w", c.Operand, modarith.ErrInvalidInput)
	}
	if c.Generator < 0 || c.Generator > MaxValue {
		return fmt.Errorf("config: generator %d: %w", c.Generator, modarith.ErrInvalidInput)
	}
	switch c.Mode {
	case ModeReduction, ModeCycle:
	default:
		return fmt.Errorf("config: unknown mode %q: %w", c.Mode, modarith.ErrInvalidInput)
	}
	if c.Ticks < 1 {
		return fmt.Errorf("config: ticks %d: %w", c.Ticks, modarith.ErrInvalidInput)
	}
	if c.FPS < 1 {
		return fmt.Errorf("config: fps %d: %w", c.FPS, modarith.ErrInvalidInput)
	}
	return nil
}

// Cycle reports whether the configured mode is cycle mode.
func (c *Config) Cycle() bool {
	return c.Mode == ModeCycle
}
