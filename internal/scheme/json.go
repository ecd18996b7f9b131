package scheme

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/dshills/richclip/internal/highlight"
	"github.com/dshills/richclip/internal/style"
)

// ErrInvalidScheme is returned when scheme JSON cannot be parsed.
var ErrInvalidScheme = errors.New("invalid scheme")

// Parse reads a scheme from its JSON representation.
//
// The format maps scope names to style entries:
//
//	{
//	  "name": "My Scheme",
//	  "background": "#1E1E1E",
//	  "foreground": "#D4D4D4",
//	  "font": {"family": "JetBrains Mono", "size": 13},
//	  "tokens": {
//	    "comment.line": {"foreground": "#6A9955", "style": ["italic"]},
//	    "invalid": {"foreground": "#F44747", "background": "#501428"}
//	  }
//	}
//
// Scope names matching a known token type land in TokenStyles; anything
// else is kept as a custom scope style.
func Parse(data []byte) (*Scheme, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrInvalidScheme)
	}
	root := gjson.ParseBytes(data)

	name := root.Get("name").String()
	if name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrInvalidScheme)
	}

	s := &Scheme{
		Name:        name,
		Background:  style.ColorDefault,
		Foreground:  style.ColorDefault,
		FontFamily:  root.Get("font.family").String(),
		FontSize:    int(root.Get("font.size").Int()),
		TokenStyles: make(map[highlight.TokenType]style.TextAttributes),
		ScopeStyles: make(map[string]style.TextAttributes),
	}

	var err error
	if s.Background, err = parseColor(root.Get("background")); err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	if s.Foreground, err = parseColor(root.Get("foreground")); err != nil {
		return nil, fmt.Errorf("foreground: %w", err)
	}

	var tokenErr error
	root.Get("tokens").ForEach(func(key, value gjson.Result) bool {
		attrs, err := parseAttrs(value)
		if err != nil {
			tokenErr = fmt.Errorf("token %q: %w", key.String(), err)
			return false
		}
		scope := key.String()
		if t := highlight.TokenTypeFromString(scope); t != highlight.TokenNone && t.String() == scope {
			s.TokenStyles[t] = attrs
		} else {
			s.ScopeStyles[scope] = attrs
		}
		return true
	})
	if tokenErr != nil {
		return nil, tokenErr
	}

	return s, nil
}

// Marshal renders a scheme as pretty-printed JSON. Token entries are
// emitted in sorted scope order so output is stable.
func Marshal(s *Scheme) ([]byte, error) {
	out := []byte(`{}`)

	var err error
	set := func(path string, value any) {
		if err != nil {
			return
		}
		out, err = sjson.SetBytes(out, path, value)
	}

	set("name", s.Name)
	set("background", colorString(s.Background))
	set("foreground", colorString(s.Foreground))
	set("font.family", s.FontFamily)
	set("font.size", s.FontSize)
	set("tokens", map[string]any{})

	entries := make(map[string]style.TextAttributes, len(s.TokenStyles)+len(s.ScopeStyles))
	for t, attrs := range s.TokenStyles {
		entries[t.String()] = attrs
	}
	for scope, attrs := range s.ScopeStyles {
		entries[scope] = attrs
	}
	scopes := make([]string, 0, len(entries))
	for scope := range entries {
		scopes = append(scopes, scope)
	}
	sort.Strings(scopes)

	for _, scope := range scopes {
		attrs := entries[scope]
		base := "tokens." + escapePath(scope)
		if !attrs.Foreground.IsDefault() {
			set(base+".foreground", colorString(attrs.Foreground))
		}
		if !attrs.Background.IsDefault() {
			set(base+".background", colorString(attrs.Background))
		}
		if !attrs.FontStyle.IsPlain() {
			set(base+".style", attrNames(attrs.FontStyle))
		}
	}
	if err != nil {
		return nil, err
	}

	return pretty.Pretty(out), nil
}

// LoadFile reads a scheme from a JSON file.
func LoadFile(path string) (*Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// SaveFile writes a scheme to a JSON file.
func SaveFile(path string, s *Scheme) error {
	data, err := Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// parseColor reads a color value: a "#RRGGBB" hex string, "default",
// or absent (treated as default).
func parseColor(v gjson.Result) (style.Color, error) {
	if !v.Exists() || v.String() == "" || v.String() == "default" {
		return style.ColorDefault, nil
	}
	c, err := style.ColorFromHex(v.String())
	if err != nil {
		return style.ColorDefault, fmt.Errorf("%w: color %q", ErrInvalidScheme, v.String())
	}
	return c, nil
}

// parseAttrs reads one token style entry.
func parseAttrs(v gjson.Result) (style.TextAttributes, error) {
	attrs := style.PlainAttributes()

	var err error
	if attrs.Foreground, err = parseColor(v.Get("foreground")); err != nil {
		return attrs, err
	}
	if attrs.Background, err = parseColor(v.Get("background")); err != nil {
		return attrs, err
	}
	attrs.FontFamily = v.Get("font").String()

	var styleErr error
	v.Get("style").ForEach(func(_, name gjson.Result) bool {
		switch name.String() {
		case "bold":
			attrs.FontStyle = attrs.FontStyle.With(style.AttrBold)
		case "italic":
			attrs.FontStyle = attrs.FontStyle.With(style.AttrItalic)
		case "underline":
			attrs.FontStyle = attrs.FontStyle.With(style.AttrUnderline)
		case "strikethrough":
			attrs.FontStyle = attrs.FontStyle.With(style.AttrStrikethrough)
		default:
			styleErr = fmt.Errorf("%w: unknown style %q", ErrInvalidScheme, name.String())
			return false
		}
		return true
	})
	if styleErr != nil {
		return attrs, styleErr
	}

	return attrs, nil
}

// colorString renders a color for JSON output.
func colorString(c style.Color) string {
	if c.IsDefault() {
		return "default"
	}
	return c.ToHex()
}

// attrNames lists the font style flag names in canonical order.
func attrNames(a style.Attribute) []string {
	names := make([]string, 0, 4)
	if a.Has(style.AttrBold) {
		names = append(names, "bold")
	}
	if a.Has(style.AttrItalic) {
		names = append(names, "italic")
	}
	if a.Has(style.AttrUnderline) {
		names = append(names, "underline")
	}
	if a.Has(style.AttrStrikethrough) {
		names = append(names, "strikethrough")
	}
	return names
}

// escapePath escapes dots in a scope name for use as a single JSON key.
func escapePath(scope string) string {
	return strings.ReplaceAll(scope, ".", "\\.")
}
