// Package config loads and watches richclip settings.
//
// Settings live in a single TOML file. A missing file is not an error:
// Load returns the defaults so the tool works without any configuration.
// The Watcher reports settings and scheme file changes for the preview's
// live reload.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Settings holds every user-tunable option.
type Settings struct {
	Export  ExportSettings  `toml:"export"`
	Fonts   FontSettings    `toml:"fonts"`
	Preview PreviewSettings `toml:"preview"`
}

// ExportSettings controls artifact construction.
type ExportSettings struct {
	// Enabled gates export entirely. When false the export command
	// reports an error instead of producing an artifact.
	Enabled bool `toml:"enabled"`

	// StripIndents removes the common leading whitespace of a
	// single-selection export.
	StripIndents bool `toml:"strip_indents"`

	// Scheme names the color scheme to export with. Empty selects the
	// built-in default.
	Scheme string `toml:"scheme"`

	// Format is the default serializer name used when the command line
	// does not pass one.
	Format string `toml:"format"`

	// ColorProfile selects the terminal color depth for the ansi
	// serializer.
	ColorProfile string `toml:"color_profile"`
}

// FontSettings overrides the scheme's font when set.
type FontSettings struct {
	// Family is the logical font family. Empty keeps the scheme's.
	Family string `toml:"family"`

	// Size is the point size. Zero keeps the scheme's.
	Size int `toml:"size"`

	// Fallbacks are physical families tried in order for glyphs the
	// primary family does not cover.
	Fallbacks []string `toml:"fallbacks"`
}

// PreviewSettings controls the terminal preview.
type PreviewSettings struct {
	// LiveReload re-renders the preview when the artifact file changes.
	LiveReload bool `toml:"live_reload"`
}

// Default returns the settings used when no file exists.
func Default() Settings {
	return Settings{
		Export: ExportSettings{
			Enabled:      true,
			StripIndents: true,
			Format:       "html",
			ColorProfile: "truecolor",
		},
		Preview: PreviewSettings{
			LiveReload: true,
		},
	}
}

// DefaultPath returns the user-level settings path, or "" when the user
// config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "richclip", "config.toml")
}

// Validate checks structural constraints. Scheme, format and color
// profile names are resolved by their registries at use time and are not
// checked here.
func (s Settings) Validate() error {
	if s.Fonts.Size < 0 {
		return fmt.Errorf("fonts.size must not be negative, got %d: %w", s.Fonts.Size, ErrValidationFailed)
	}
	for i, name := range s.Fonts.Fallbacks {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("fonts.fallbacks[%d] is empty: %w", i, ErrValidationFailed)
		}
	}
	return nil
}
