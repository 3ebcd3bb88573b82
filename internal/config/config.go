package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/lorenzviz/internal/dynamo"
	"github.com/san-kum/lorenzviz/internal/physics"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.005
	DefaultSteps    = 8000
	DefaultTail     = 1500
	DefaultStride   = 20
	DefaultInterval = 25 * time.Millisecond
)

var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full, immutable description of one visualization.
type Config struct {
	Params   physics.Params `yaml:"params"`
	Dt       float64        `yaml:"dt"`
	Steps    int            `yaml:"steps"`
	Seeds    [][3]float64   `yaml:"seeds"`
	Colors   []string       `yaml:"colors"`
	Tail     int            `yaml:"tail"`
	Stride   int            `yaml:"stride"`
	Interval time.Duration  `yaml:"interval"`
	Repeat   bool           `yaml:"repeat"`
	Theme    string         `yaml:"theme"`
}

func DefaultSeeds() [][3]float64 {
	return [][3]float64{
		{0.1, 0.0, 0.0},
		{0.1, 0.01, 0.0},
		{-0.1, 0.0, 0.0},
		{0.0, 0.1, 0.0},
		{0.0, -0.1, 0.0},
	}
}

func DefaultColors() []string {
	return []string{"#00f5ff", "#ff00ff", "#ff6b9d", "#ffd93d", "#4ecdc4"}
}

func DefaultConfig() *Config {
	return &Config{
		Params:   physics.DefaultParams(),
		Dt:       DefaultDt,
		Steps:    DefaultSteps,
		Seeds:    DefaultSeeds(),
		Colors:   DefaultColors(),
		Tail:     DefaultTail,
		Stride:   DefaultStride,
		Interval: DefaultInterval,
		Repeat:   true,
		Theme:    "neon",
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
		return nil, err
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
	switch {
	case c.Dt <= 0:
		return fmt.Errorf("dt must be positive, got %f: %w", c.Dt, ErrInvalid)
	case c.Steps < 0:
		return fmt.Errorf("steps must not be negative, got %d: %w", c.Steps, ErrInvalid)
	case c.Tail <= 0:
		return fmt.Errorf("tail must be positive, got %d: %w", c.Tail, ErrInvalid)
	case c.Stride <= 0:
		return fmt.Errorf("stride must be positive, got %d: %w", c.Stride, ErrInvalid)
	case c.Interval <= 0:
		return fmt.Errorf("interval must be positive, got %s: %w", c.Interval, ErrInvalid)
	case len(c.Seeds) == 0:
		return fmt.Errorf("at least one seed is required: %w", ErrInvalid)
	case len(c.Seeds) != len(c.Colors):
		return fmt.Errorf("%d seeds but %d colors: %w", len(c.Seeds), len(c.Colors), ErrInvalid)
	}
	return nil
}

// Clone returns a deep copy so presets can be modified safely.
func (c *Config) Clone() *Config {
	out := *c
	out.Seeds = append([][3]float64(nil), c.Seeds...)
	out.Colors = append([]string(nil), c.Colors...)
	return &out
}

// InitStates converts the configured seeds to states.
func (c *Config) InitStates() []dynamo.State {
	states := make([]dynamo.State, len(c.Seeds))
	for i, s := range c.Seeds {
		states[i] = dynamo.State{s[0], s[1], s[2]}
	}
	return states
}

// TrajectoryLen is the number of states in every generated trajectory.
func (c *Config) TrajectoryLen() int { return c.Steps + 1 }
