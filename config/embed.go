package config

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

const (
	DisplayFile  = "display.yaml"
	BindingsFile = "bindings.yaml"
)

//go:embed *.yaml
var ConfigFS embed.FS

// Load reads name from dir when present on disk, falling back to the copy
// embedded in the binary.
func Load(dir, name string) ([]byte, error) {
	clean := cleanConfigPath(name)
	if dir != "" {
		if data, err := os.ReadFile(diskConfigPath(dir, clean)); err == nil {
			return data, nil
		}
	}
	return ConfigFS.ReadFile(clean)
}

func cleanConfigPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "config/"); ok {
		return after
	}
	return s
}

func diskConfigPath(dir, clean string) string {
	return filepath.Join(dir, filepath.FromSlash(clean))
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
