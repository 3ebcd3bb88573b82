package config

import (
	"sort"
	"time"

	"github.com/san-kum/lorenzviz/internal/physics"
)

var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"butterfly": {
		Params:   physics.DefaultParams(),
		Dt:       0.005,
		Steps:    12000,
		Seeds:    [][3]float64{{1, 1, 1}, {1.001, 1, 1}, {-1, -1, 1}},
		Colors:   []string{"#00f5ff", "#ff00ff", "#ffd93d"},
		Tail:     3000,
		Stride:   30,
		Interval: DefaultInterval,
		Repeat:   true,
		Theme:    "neon",
	},
	"long-tail": {
		Params:   physics.DefaultParams(),
		Dt:       DefaultDt,
		Steps:    DefaultSteps,
		Seeds:    DefaultSeeds(),
		Colors:   DefaultColors(),
		Tail:     4000,
		Stride:   DefaultStride,
		Interval: DefaultInterval,
		Repeat:   true,
		Theme:    "neon",
	},
	"sprint": {
		Params:   physics.DefaultParams(),
		Dt:       0.01,
		Steps:    4000,
		Seeds:    DefaultSeeds(),
		Colors:   DefaultColors(),
		Tail:     800,
		Stride:   40,
		Interval: 16 * time.Millisecond,
		Repeat:   true,
		Theme:    "mono",
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
