package config

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// Key is an ebiten key spelled by name in yaml ("W", "ArrowUp").
type Key struct {
	ebiten.Key
}

func (k *Key) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("key must be a string")
	}
	if err := k.Key.UnmarshalText([]byte(value.Value)); err != nil {
		return fmt.Errorf("unknown key %q: %w", value.Value, err)
	}
	return nil
}

// Axis binds a named input axis. Any Pos key held contributes +1 and any
// Neg key -1. When GamepadAxis is set and the stick on Gamepad is outside
// Deadzone, the stick value replaces the keyboard value.
type Axis struct {
	Pos         []Key   `yaml:"pos"`
	Neg         []Key   `yaml:"neg"`
	Gamepad     int     `yaml:"gamepad"`
	GamepadAxis *int    `yaml:"gamepad_axis"`
	Invert      bool    `yaml:"invert"`
	Deadzone    float64 `yaml:"deadzone"`
}

type Bindings struct {
	Axes map[string]Axis `yaml:"axes"`
}

// DefaultBindings maps W/S to left_paddle and ArrowUp/ArrowDown to
// right_paddle, keyboard only.
func DefaultBindings() Bindings {
	return Bindings{Axes: map[string]Axis{
		"left_paddle": {
			Pos: []Key{{ebiten.KeyW}},
			Neg: []Key{{ebiten.KeyS}},
		},
		"right_paddle": {
			Pos: []Key{{ebiten.KeyArrowUp}},
			Neg: []Key{{ebiten.KeyArrowDown}},
		},
	}}
}

func ParseBindings(data []byte) (Bindings, error) {
	var b Bindings
	if err := yaml.Unmarshal(data, &b); err != nil {
		return Bindings{}, fmt.Errorf("config: unmarshal bindings: %w", err)
	}
	if err := b.Validate(); err != nil {
		return Bindings{}, err
	}
	return b, nil
}

func LoadBindings(dir string) (Bindings, error) {
	data, err := Load(dir, BindingsFile)
	if err != nil {
		return Bindings{}, fmt.Errorf("config: load %s: %w", BindingsFile, err)
	}
	return ParseBindings(data)
}

func (b Bindings) Validate() error {
	if len(b.Axes) == 0 {
		return invalidf("bindings define no axes")
	}
	for _, name := range b.Names() {
		axis := b.Axes[name]
		if name == "" {
			return invalidf("axis with empty name")
		}
		if len(axis.Pos) == 0 && len(axis.Neg) == 0 && axis.GamepadAxis == nil {
			return invalidf("axis %q has no keys or gamepad axis", name)
		}
		if axis.Deadzone < 0 || axis.Deadzone >= 1 {
			return invalidf("axis %q deadzone %v outside [0, 1)", name, axis.Deadzone)
		}
		if axis.Gamepad < 0 {
			return invalidf("axis %q gamepad index %d", name, axis.Gamepad)
		}
		if axis.GamepadAxis != nil && *axis.GamepadAxis < 0 {
			return invalidf("axis %q gamepad axis %d", name, *axis.GamepadAxis)
		}
	}
	return nil
}

// Names returns the bound axis names sorted.
func (b Bindings) Names() []string {
	names := make([]string, 0, len(b.Axes))
	for name := range b.Axes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
