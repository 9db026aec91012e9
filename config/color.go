package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Color accepts a CSS colour name ("slateblue"), a hex string
// ("#rrggbb" or "#rrggbbaa") or a list of 3 or 4 channel floats in [0, 1].
type Color struct {
	color.Color
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		parsed, err := parseColorString(value.Value)
		if err != nil {
			return err
		}
		c.Color = parsed
		return nil
	case yaml.SequenceNode:
		var channels []float64
		if err := value.Decode(&channels); err != nil {
			return fmt.Errorf("color channels: %w", err)
		}
		parsed, err := colorFromChannels(channels)
		if err != nil {
			return err
		}
		c.Color = parsed
		return nil
	default:
		return fmt.Errorf("color must be a name, hex string or channel list")
	}
}

// NRGBA returns c as 8-bit non-premultiplied channels; a nil colour is black.
func (c Color) NRGBA() color.NRGBA {
	if c.Color == nil {
		return color.NRGBA{A: 255}
	}
	return color.NRGBAModel.Convert(c.Color).(color.NRGBA)
}

func parseColorString(raw string) (color.Color, error) {
	s := strings.TrimSpace(raw)
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return named, nil
	}

	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("invalid color format: %s", raw)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var ch [4]uint8
	ch[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return nil, fmt.Errorf("invalid color format: %s", raw)
		}
		ch[i] = v
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

func colorFromChannels(ch []float64) (color.Color, error) {
	if len(ch) != 3 && len(ch) != 4 {
		return nil, fmt.Errorf("color needs 3 or 4 channels, got %d", len(ch))
	}
	if len(ch) == 3 {
		ch = append(ch, 1)
	}
	var out [4]uint8
	for i, v := range ch {
		if v < 0 || v > 1 {
			return nil, fmt.Errorf("color channel %d out of range: %v", i, v)
		}
		out[i] = uint8(v*255 + 0.5)
	}
	return color.NRGBA{R: out[0], G: out[1], B: out[2], A: out[3]}, nil
}
