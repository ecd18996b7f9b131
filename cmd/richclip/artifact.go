package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/dshills/richclip/internal/config"
	"github.com/dshills/richclip/internal/engine/buffer"
	"github.com/dshills/richclip/internal/engine/caret"
	"github.com/dshills/richclip/internal/fonts"
	"github.com/dshills/richclip/internal/highlight"
	"github.com/dshills/richclip/internal/markup"
	"github.com/dshills/richclip/internal/scheme"
	"github.com/dshills/richclip/internal/style"
)

// loadText reads the document from path, or from stdin for "-".
func loadText(path string) (*buffer.Text, error) {
	if path == "-" {
		return buffer.NewTextFromReader(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return buffer.NewText(string(data)), nil
}

// parseSelections turns repeated start:end byte ranges into a caret set.
// No selections means the whole document.
func parseSelections(specs []string, text *buffer.Text) (*caret.Set, error) {
	if len(specs) == 0 {
		return caret.NewSet(caret.FromRange(text.FullRange())), nil
	}
	carets := make([]caret.Caret, 0, len(specs))
	for _, spec := range specs {
		r, err := parseByteRange(spec, text.Len())
		if err != nil {
			return nil, fmt.Errorf("invalid selection %q: %w", spec, err)
		}
		carets = append(carets, caret.FromRange(r))
	}
	return caret.NewSetFromSlice(carets), nil
}

// parseByteRange parses "start:end" byte offsets against a document of
// max bytes.
func parseByteRange(spec string, max buffer.ByteOffset) (buffer.Range, error) {
	startS, endS, ok := strings.Cut(spec, ":")
	if !ok {
		return buffer.Range{}, errors.New("want start:end byte offsets")
	}
	start, err := strconv.ParseInt(strings.TrimSpace(startS), 10, 64)
	if err != nil {
		return buffer.Range{}, fmt.Errorf("bad start offset: %w", err)
	}
	end, err := strconv.ParseInt(strings.TrimSpace(endS), 10, 64)
	if err != nil {
		return buffer.Range{}, fmt.Errorf("bad end offset: %w", err)
	}
	switch {
	case start < 0:
		return buffer.Range{}, errors.New("start offset is negative")
	case end < start:
		return buffer.Range{}, errors.New("end offset before start")
	case end > max:
		return buffer.Range{}, fmt.Errorf("end offset beyond document of %d bytes", max)
	}
	return buffer.Range{Start: start, End: end}, nil
}

// parseMarks builds an overlay model from repeated start:end[:attr...]
// specs. Attrs are bold, italic, underline, strike, or a #RRGGBB
// foreground; a bare range defaults to bold.
func parseMarks(specs []string, text *buffer.Text) (*markup.Model, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	m := markup.NewModel()
	for _, spec := range specs {
		parts := strings.Split(spec, ":")
		if len(parts) < 2 {
			return nil, fmt.Errorf("invalid mark %q: want start:end[:attrs]", spec)
		}
		r, err := parseByteRange(parts[0]+":"+parts[1], text.Len())
		if err != nil {
			return nil, fmt.Errorf("invalid mark %q: %w", spec, err)
		}
		attrs := style.PlainAttributes()
		if len(parts) == 2 {
			attrs = attrs.WithFontStyle(style.AttrBold)
		}
		for _, name := range parts[2:] {
			attrs, err = applyMarkAttr(attrs, name)
			if err != nil {
				return nil, fmt.Errorf("invalid mark %q: %w", spec, err)
			}
		}
		m.Add(r, markup.LayerCustom, markup.PriorityNormal, attrs)
	}
	return m, nil
}

func applyMarkAttr(attrs style.TextAttributes, name string) (style.TextAttributes, error) {
	if strings.HasPrefix(name, "#") {
		c, err := style.ColorFromHex(name)
		if err != nil {
			return attrs, err
		}
		return attrs.WithForeground(c), nil
	}
	switch strings.ToLower(name) {
	case "bold":
		return attrs.WithFontStyle(attrs.FontStyle.With(style.AttrBold)), nil
	case "italic":
		return attrs.WithFontStyle(attrs.FontStyle.With(style.AttrItalic)), nil
	case "underline":
		return attrs.WithFontStyle(attrs.FontStyle.With(style.AttrUnderline)), nil
	case "strike":
		return attrs.WithFontStyle(attrs.FontStyle.With(style.AttrStrikethrough)), nil
	}
	return attrs, fmt.Errorf("unknown mark attribute %q", name)
}

// userSchemeDir returns the per-user scheme directory, or "" when the
// user config dir cannot be determined.
func userSchemeDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "richclip", "schemes")
}

// schemeRegistry returns the builtin schemes plus any JSON schemes from
// the user scheme directory. Unreadable user schemes are skipped with a
// warning.
func schemeRegistry() *scheme.Registry {
	reg := scheme.NewRegistry()
	dir := userSchemeDir()
	if dir == "" {
		return reg
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return reg
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		s, err := scheme.LoadFile(path)
		if err != nil {
			zap.L().Warn("skipping unreadable scheme", zap.String("path", path), zap.Error(err))
			continue
		}
		reg.Register(s)
	}
	return reg
}

// resolveScheme finds a scheme by name (builtin or user) or loads it
// from a JSON file path. An empty name means the registry default.
func resolveScheme(name string) (*scheme.Scheme, error) {
	reg := schemeRegistry()
	if name == "" {
		return reg.Current(), nil
	}
	if s, ok := reg.Get(name); ok {
		return s, nil
	}
	if looksLikePath(name) {
		s, err := scheme.LoadFile(name)
		if err != nil {
			return nil, fmt.Errorf("loading scheme: %w", err)
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown scheme %q (richclip schemes lists them)", name)
}

func looksLikePath(name string) bool {
	if strings.ContainsRune(name, os.PathSeparator) || strings.EqualFold(filepath.Ext(name), ".json") {
		return true
	}
	_, err := os.Stat(name)
	return err == nil
}

// resolveLexer picks a lexer by explicit language name, falling back to
// the file name. A file nothing matches exports unhighlighted.
func resolveLexer(language, path string) (highlight.Lexer, error) {
	reg := highlight.DefaultRegistry()
	if language != "" {
		l, ok := reg.GetByLanguage(language)
		if !ok {
			return nil, fmt.Errorf("unknown language %q (richclip languages lists them)", language)
		}
		return l, nil
	}
	if path == "-" {
		return nil, nil
	}
	l, _ := reg.GetByFilename(path)
	return l, nil
}

// exportScheme applies font overrides from settings and flags on top of
// the resolved scheme. Flags win over settings; settings win over the
// scheme's own font.
func exportScheme(base *scheme.Scheme, fontCfg config.FontSettings, family string, size int) *scheme.Scheme {
	s := *base
	if fontCfg.Family != "" {
		s.FontFamily = fontCfg.Family
	}
	if fontCfg.Size > 0 {
		s.FontSize = fontCfg.Size
	}
	if family != "" {
		s.FontFamily = family
	}
	if size > 0 {
		s.FontSize = size
	}
	return &s
}

// buildResolver seeds the font resolver with the configured fallback
// chain.
func buildResolver(fontCfg config.FontSettings) fonts.Resolver {
	r := fonts.DefaultResolver()
	if len(fontCfg.Fallbacks) > 0 {
		r.SetFallbacks(fontCfg.Fallbacks...)
	}
	return r
}

// writeOutput writes to the named file, or stdout for "" or "-".
func writeOutput(path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
