package config

import (
	"fmt"
	"image/color"

	"gopkg.in/yaml.v3"
)

// Display holds window settings. Fields missing from the file keep the
// values from DefaultDisplay.
type Display struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	TPS        int    `yaml:"tps"`
	ClearColor Color  `yaml:"clear_color"`
}

// DefaultDisplay is a 500x500 window titled "pong" at 60 ticks per second,
// vsync on, cleared to a slate blue.
func DefaultDisplay() Display {
	return Display{
		Title:      "pong",
		Width:      500,
		Height:     500,
		VSync:      true,
		TPS:        60,
		ClearColor: Color{color.NRGBA{R: 87, G: 92, B: 133, A: 255}},
	}
}

func ParseDisplay(data []byte) (Display, error) {
	d := DefaultDisplay()
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Display{}, fmt.Errorf("config: unmarshal display: %w", err)
	}
	if err := d.Validate(); err != nil {
		return Display{}, err
	}
	return d, nil
}

func LoadDisplay(dir string) (Display, error) {
	data, err := Load(dir, DisplayFile)
	if err != nil {
		return Display{}, fmt.Errorf("config: load %s: %w", DisplayFile, err)
	}
	return ParseDisplay(data)
}

func (d Display) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return invalidf("display dimensions %dx%d", d.Width, d.Height)
	}
	if d.TPS <= 0 {
		return invalidf("display tps %d", d.TPS)
	}
	return nil
}
