package scheme

import (
	"testing"

	"github.com/dshills/richclip/internal/highlight"
	"github.com/dshills/richclip/internal/style"
)

func TestStyleForToken(t *testing.T) {
	s := DefaultDark()

	attrs := s.StyleForToken(highlight.TokenCommentLine)
	if attrs.Foreground.IsDefault() {
		t.Error("comment style has default foreground")
	}
	if !attrs.FontStyle.Has(style.AttrItalic) {
		t.Error("comment style not italic")
	}

	// Unmapped types come back plain so merging treats them as unset.
	plain := s.StyleForToken(highlight.TokenNone)
	if !plain.Equals(style.PlainAttributes()) {
		t.Errorf("TokenNone style = %+v, want plain", plain)
	}
}

func TestStyleForScope(t *testing.T) {
	s := DefaultDark()
	s.ScopeStyles["custom.thing"] = style.PlainAttributes().WithForeground(style.ColorFromRGB(1, 2, 3))

	tests := []struct {
		name  string
		scope string
		want  style.Color
	}{
		{"custom exact", "custom.thing", style.ColorFromRGB(1, 2, 3)},
		{"custom child falls back to parent", "custom.thing.nested", style.ColorFromRGB(1, 2, 3)},
		{"token mapping", "keyword.control", s.TokenStyles[highlight.TokenKeywordControl].Foreground},
		{"unknown scope plain", "nothing.here", style.ColorDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.StyleForScope(tt.scope)
			if !got.Foreground.Equals(tt.want) {
				t.Errorf("StyleForScope(%q).Foreground = %v, want %v", tt.scope, got.Foreground, tt.want)
			}
		})
	}
}

func TestSchemeDefaults(t *testing.T) {
	s := Light()
	d := s.Defaults()
	if !d.Foreground.Equals(s.Foreground) || !d.Background.Equals(s.Background) {
		t.Errorf("Defaults() = %+v, want scheme fg/bg", d)
	}
	if d.FontFamily != s.FontFamily {
		t.Errorf("Defaults().FontFamily = %q, want %q", d.FontFamily, s.FontFamily)
	}
	if !d.FontStyle.IsPlain() {
		t.Error("Defaults() has a font style set")
	}
}

func TestRegistryBuiltins(t *testing.T) {
	r := NewRegistry()

	if r.Current() == nil || r.Current().Name != "Default Dark" {
		t.Fatalf("Current() = %v, want Default Dark", r.Current())
	}

	for _, name := range []string{"Default Dark", "Monokai", "Dracula", "Solarized Dark", "Light"} {
		if _, ok := r.Get(name); !ok {
			t.Errorf("Get(%q) missing", name)
		}
	}

	if r.SetCurrent("nope") {
		t.Error("SetCurrent accepted unknown scheme")
	}
	if !r.SetCurrent("Monokai") {
		t.Error("SetCurrent rejected Monokai")
	}
	if r.Current().Name != "Monokai" {
		t.Errorf("Current() = %q after SetCurrent", r.Current().Name)
	}

	names := r.Names()
	for i := 1; i < len(names); i++ {
		if names[i] < names[i-1] {
			t.Errorf("Names() not sorted: %v", names)
		}
	}
}
