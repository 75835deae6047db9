package twcss

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadTheme reads a YAML or TOML theme file and merges it over DefaultTheme.
// The format is chosen by extension: .toml is TOML, anything else is YAML.
func LoadTheme(path string) (Theme, error) {
	// #nosec G304 - path comes from trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme: %w", err)
	}

	override, err := ParseTheme(data, filepath.Ext(path))
	if err != nil {
		return Theme{}, fmt.Errorf("parse theme %s: %w", path, err)
	}

	return DefaultTheme().Merge(override), nil
}

// ParseTheme decodes theme overrides without merging them into the defaults.
// ext is a file extension such as ".yaml" or ".toml".
func ParseTheme(data []byte, ext string) (Theme, error) {
	var theme Theme

	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &theme); err != nil {
			return Theme{}, err
		}
	default:
		if err := yaml.Unmarshal(data, &theme); err != nil {
			return Theme{}, err
		}
	}

	switch theme.DarkMode {
	case "", DarkModeClass, DarkModeMedia:
	default:
		return Theme{}, fmt.Errorf("dark-mode must be %q or %q, got %q", DarkModeClass, DarkModeMedia, theme.DarkMode)
	}

	return theme, nil
}
