package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

const SpriteSheetFile = "spritesheet.yaml"

// Sprite indices in the default sheet.
const (
	SpritePaddle = 0
	SpriteBall   = 1
)

//go:embed *.yaml
var assetsFS embed.FS

type SpriteSpec struct {
	Name   string `yaml:"name"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

func (s SpriteSpec) Rect() image.Rectangle {
	return image.Rect(s.X, s.Y, s.X+s.Width, s.Y+s.Height)
}

type SpriteSheetSpec struct {
	Texture       string       `yaml:"texture"`
	TextureWidth  int          `yaml:"texture_width"`
	TextureHeight int          `yaml:"texture_height"`
	Sprites       []SpriteSpec `yaml:"sprites"`
}

// SpriteSheet is a texture plus the sub-rectangles cut from it.
type SpriteSheet struct {
	Image   *ebiten.Image
	sprites []*ebiten.Image
}

// Sprite returns sprite i, or nil when the sheet has no such sprite.
func (s *SpriteSheet) Sprite(i int) *ebiten.Image {
	if s == nil || i < 0 || i >= len(s.sprites) {
		return nil
	}
	return s.sprites[i]
}

func (s *SpriteSheet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.sprites)
}

func ParseSpriteSheetSpec(data []byte) (SpriteSheetSpec, error) {
	var spec SpriteSheetSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return SpriteSheetSpec{}, fmt.Errorf("assets: unmarshal sprite sheet: %w", err)
	}
	if spec.TextureWidth <= 0 || spec.TextureHeight <= 0 {
		return SpriteSheetSpec{}, fmt.Errorf("assets: sprite sheet texture size %dx%d", spec.TextureWidth, spec.TextureHeight)
	}
	if len(spec.Sprites) == 0 {
		return SpriteSheetSpec{}, fmt.Errorf("assets: sprite sheet defines no sprites")
	}
	bounds := image.Rect(0, 0, spec.TextureWidth, spec.TextureHeight)
	for i, sp := range spec.Sprites {
		r := sp.Rect()
		if r.Empty() || !r.In(bounds) {
			return SpriteSheetSpec{}, fmt.Errorf("assets: sprite %d (%s) %v outside texture %v", i, sp.Name, r, bounds)
		}
	}
	return spec, nil
}

// LoadSpriteSheet reads spritesheet.yaml from dir when present, otherwise
// the embedded copy, and builds the texture.
func LoadSpriteSheet(dir string) (*SpriteSheet, error) {
	data, err := loadFile(dir, SpriteSheetFile)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", SpriteSheetFile, err)
	}
	spec, err := ParseSpriteSheetSpec(data)
	if err != nil {
		return nil, err
	}

	var tex *ebiten.Image
	if spec.Texture != "" {
		tex, err = loadTexture(dir, spec.Texture)
		if err != nil {
			return nil, fmt.Errorf("assets: load texture %q: %w", spec.Texture, err)
		}
	} else {
		tex = ebiten.NewImage(spec.TextureWidth, spec.TextureHeight)
		tex.Fill(color.White)
	}

	sheet := &SpriteSheet{Image: tex}
	for _, sp := range spec.Sprites {
		sub, ok := tex.SubImage(sp.Rect()).(*ebiten.Image)
		if !ok {
			return nil, fmt.Errorf("assets: cut sprite %q", sp.Name)
		}
		sheet.sprites = append(sheet.sprites, sub)
	}
	return sheet, nil
}

func loadFile(dir, name string) ([]byte, error) {
	clean := cleanAssetPath(name)
	if dir != "" {
		if b, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(clean))); err == nil {
			return b, nil
		}
	}
	return assetsFS.ReadFile(clean)
}

func loadTexture(dir, path string) (*ebiten.Image, error) {
	b, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(cleanAssetPath(path))))
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
