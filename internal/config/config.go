package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/freefall/internal/freefall"
)

const (
	DefaultHeight  = 5.0
	DefaultMass    = 1.0
	DefaultFrames  = 200
	DefaultFPS     = 30
	DefaultBody    = "earth"
	DefaultTheme   = "classic"
	DefaultDataDir = ".freefall"
)

// Choices offered by the interactive hosts.
var (
	Heights = []float64{1.0, 2.0, 5.0, 10.0}
	Masses  = []float64{0.5, 1.0, 2.0, 5.0}
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid value")

type Config struct {
	Body         string  `yaml:"body"`
	Gravity      float64 `yaml:"gravity"`
	Height       float64 `yaml:"height"`
	Mass         float64 `yaml:"mass"`
	ShowFormulas bool    `yaml:"show_formulas"`
	Frames       int     `yaml:"frames"`
	FPS          int     `yaml:"fps"`
	Theme        string  `yaml:"theme"`
	DataDir      string  `yaml:"data_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Body:         DefaultBody,
		Gravity:      freefall.StandardGravity,
		Height:       DefaultHeight,
		Mass:         DefaultMass,
		ShowFormulas: true,
		Frames:       DefaultFrames,
		FPS:          DefaultFPS,
		Theme:        DefaultTheme,
		DataDir:      DefaultDataDir,
	}
}

// Load reads a YAML file over the defaults. A file that names a body but no
// gravity takes the body's gravity.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Gravity = 0
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Gravity == 0 {
		g, ok := BodyGravity(cfg.Body)
		if !ok {
			return nil, fmt.Errorf("%w: unknown body %q", ErrInvalidConfig, cfg.Body)
		}
		cfg.Gravity = g
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

func (c *Config) Validate() error {
	if math.IsNaN(c.Gravity) || math.IsInf(c.Gravity, 0) || c.Gravity <= 0 {
		return fmt.Errorf("%w: gravity %g must be positive", ErrInvalidConfig, c.Gravity)
	}
	if err := (freefall.Params{InitialHeight: c.Height, Mass: c.Mass}).Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Frames < 1 {
		return fmt.Errorf("%w: frames %d must be at least 1", ErrInvalidConfig, c.Frames)
	}
	if c.FPS < 1 {
		return fmt.Errorf("%w: fps %d must be at least 1", ErrInvalidConfig, c.FPS)
	}
	return nil
}

// Model builds the kinematics model for the configured gravity.
func (c *Config) Model() (freefall.Model, error) {
	return freefall.New(c.Gravity)
}

// Params returns the per-run choices.
func (c *Config) Params() freefall.Params {
	return freefall.Params{
		InitialHeight: c.Height,
		Mass:          c.Mass,
		ShowFormulas:  c.ShowFormulas,
	}
}

// IsAllowedHeight reports whether h is one of Heights.
func IsAllowedHeight(h float64) bool {
	return indexOf(Heights, h) >= 0
}

// NextHeight returns the choice after h, wrapping around. Values outside the
// set move to the first choice.
func NextHeight(h float64) float64 {
	return next(Heights, h)
}

// NextMass is NextHeight for Masses.
func NextMass(m float64) float64 {
	return next(Masses, m)
}

func next(choices []float64, v float64) float64 {
	i := indexOf(choices, v)
	return choices[(i+1)%len(choices)]
}

func indexOf(choices []float64, v float64) int {
	for i, c := range choices {
		if c == v {
			return i
		}
	}
	return -1
}
