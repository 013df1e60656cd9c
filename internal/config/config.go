// Package config resolves game setups: the named presets from the
// classic rule sheets, or a YAML file for custom boards.
package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v2"

	"github.com/josephcrivera/Blokus-Game-Simulation/engine"
)

// GameConfig describes one game setup. Start positions are (row, col)
// pairs.
type GameConfig struct {
	Players        int      `yaml:"players"`
	Size           int      `yaml:"size"`
	StartPositions [][2]int `yaml:"start_positions"`
}

// StartPoints converts the raw start positions to engine points.
func (c GameConfig) StartPoints() []engine.Point {
	out := make([]engine.Point, len(c.StartPositions))
	for i, p := range c.StartPositions {
		out[i] = engine.Point{Row: p[0], Col: p[1]}
	}
	return out
}

// NewGame constructs an engine game from the config. Validation is the
// engine's; configuration errors wrap engine.ErrInvalidConfig.
func (c GameConfig) NewGame() (*engine.Game, error) {
	return engine.NewGame(c.Players, c.Size, c.StartPoints())
}

// The standard board layouts.
var presets = map[string]GameConfig{
	"mono": {
		Players:        1,
		Size:           11,
		StartPositions: [][2]int{{5, 5}},
	},
	"duo": {
		Players:        2,
		Size:           14,
		StartPositions: [][2]int{{4, 4}, {9, 9}},
	},
	"classic-2": {
		Players:        2,
		Size:           20,
		StartPositions: [][2]int{{0, 0}, {0, 19}, {19, 0}, {19, 19}},
	},
	"classic-3": {
		Players:        3,
		Size:           20,
		StartPositions: [][2]int{{0, 0}, {0, 19}, {19, 0}, {19, 19}},
	},
	"classic-4": {
		Players:        4,
		Size:           20,
		StartPositions: [][2]int{{0, 0}, {0, 19}, {19, 0}, {19, 19}},
	},
}

// Preset returns the named standard layout.
func Preset(name string) (GameConfig, error) {
	c, ok := presets[name]
	if !ok {
		return GameConfig{}, fmt.Errorf("unknown preset %q (have %v)", name, PresetNames())
	}
	return c, nil
}

// PresetNames lists the available presets, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load reads a GameConfig from a YAML file.
func Load(path string) (GameConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return GameConfig{}, fmt.Errorf("read config: %w", err)
	}
	var c GameConfig
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return GameConfig{}, fmt.Errorf("parse config: %w", err)
	}
	return c, nil
}
