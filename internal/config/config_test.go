package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	s := Default()

	if !s.Export.Enabled {
		t.Error("Export.Enabled = false, want true")
	}
	if !s.Export.StripIndents {
		t.Error("Export.StripIndents = false, want true")
	}
	if s.Export.Format != "html" {
		t.Errorf("Export.Format = %q, want %q", s.Export.Format, "html")
	}
	if s.Export.ColorProfile != "truecolor" {
		t.Errorf("Export.ColorProfile = %q, want %q", s.Export.ColorProfile, "truecolor")
	}
	if !s.Preview.LiveReload {
		t.Error("Preview.LiveReload = false, want true")
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(s, Default()) {
		t.Errorf("Load() on missing file = %+v, want defaults", s)
	}
}

func TestLoadUnreadablePath(t *testing.T) {
	// A directory cannot be read as a file.
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatal("Load() on a directory did not fail")
	}
}

func TestLoadFile(t *testing.T) {
	content := `
[export]
format = "rtf"
strip_indents = false
scheme = "midnight"

[fonts]
family = "JetBrains Mono"
size = 14
fallbacks = ["Noto Sans CJK SC", "Symbola"]

[preview]
live_reload = false
`
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if s.Export.Format != "rtf" {
		t.Errorf("Export.Format = %q, want %q", s.Export.Format, "rtf")
	}
	if s.Export.StripIndents {
		t.Error("Export.StripIndents = true, want false")
	}
	if s.Export.Scheme != "midnight" {
		t.Errorf("Export.Scheme = %q, want %q", s.Export.Scheme, "midnight")
	}
	if s.Fonts.Family != "JetBrains Mono" {
		t.Errorf("Fonts.Family = %q, want %q", s.Fonts.Family, "JetBrains Mono")
	}
	if s.Fonts.Size != 14 {
		t.Errorf("Fonts.Size = %d, want 14", s.Fonts.Size)
	}
	if want := []string{"Noto Sans CJK SC", "Symbola"}; !reflect.DeepEqual(s.Fonts.Fallbacks, want) {
		t.Errorf("Fonts.Fallbacks = %v, want %v", s.Fonts.Fallbacks, want)
	}
	if s.Preview.LiveReload {
		t.Error("Preview.LiveReload = true, want false")
	}

	// Keys the file does not set keep their defaults.
	if !s.Export.Enabled {
		t.Error("Export.Enabled = false, want default true")
	}
	if s.Export.ColorProfile != "truecolor" {
		t.Errorf("Export.ColorProfile = %q, want default %q", s.Export.ColorProfile, "truecolor")
	}
}

func TestParsePartialFileKeepsDefaults(t *testing.T) {
	s, err := Parse("test.toml", []byte("[export]\nscheme = \"dark\"\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if s.Export.Scheme != "dark" {
		t.Errorf("Export.Scheme = %q, want %q", s.Export.Scheme, "dark")
	}
	if s.Export.Format != "html" {
		t.Errorf("Export.Format = %q, want default %q", s.Export.Format, "html")
	}
	if !s.Preview.LiveReload {
		t.Error("Preview.LiveReload = false, want default true")
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse("broken.toml", []byte("[export\nenabled = true\n"))
	if err == nil {
		t.Fatal("Parse() on malformed TOML did not fail")
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if perr.Path != "broken.toml" {
		t.Errorf("ParseError.Path = %q, want %q", perr.Path, "broken.toml")
	}
	if perr.Message == "" {
		t.Error("ParseError.Message is empty")
	}
	if !strings.Contains(perr.Error(), "broken.toml") {
		t.Errorf("Error() = %q, missing path", perr.Error())
	}
}

func TestParseTypeErrorPosition(t *testing.T) {
	_, err := Parse("typed.toml", []byte("[fonts]\nsize = \"big\"\n"))
	if err == nil {
		t.Fatal("Parse() with mistyped value did not fail")
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if perr.Line <= 0 {
		t.Errorf("ParseError.Line = %d, want > 0", perr.Line)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{
			name:   "defaults",
			mutate: func(*Settings) {},
		},
		{
			name: "negative font size",
			mutate: func(s *Settings) {
				s.Fonts.Size = -1
			},
			wantErr: true,
		},
		{
			name: "blank fallback entry",
			mutate: func(s *Settings) {
				s.Fonts.Fallbacks = []string{"Noto Sans", "  "}
			},
			wantErr: true,
		},
		{
			name: "valid overrides",
			mutate: func(s *Settings) {
				s.Fonts.Size = 16
				s.Fonts.Fallbacks = []string{"Noto Sans"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(&s)

			err := s.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrValidationFailed) {
					t.Errorf("Validate() = %v, want ErrValidationFailed", err)
				}
			} else if err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	got := DefaultPath()
	if got == "" {
		t.Skip("user config dir not available")
	}
	if want := filepath.Join("richclip", "config.toml"); !strings.HasSuffix(got, want) {
		t.Errorf("DefaultPath() = %q, want suffix %q", got, want)
	}
}
