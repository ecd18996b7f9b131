// Package fonts resolves which physical font family renders a given
// character. The export pipeline consults a Resolver per character to
// split style runs where font fallback kicks in.
package fonts

import (
	"unicode"

	"github.com/dshills/richclip/internal/style"
)

// Resolver maps a character to the physical font family able to render
// it, given the requested logical family, size and style. Resolvers
// must be pure: the same inputs always produce the same family.
type Resolver interface {
	Resolve(r rune, family string, size int, fontStyle style.Attribute) string
}

// Coverage reports whether a font can display a rune.
type Coverage func(r rune) bool

// TableResolver resolves fonts from registered coverage tables and an
// ordered fallback chain. Families without a registered table are
// assumed to cover everything.
type TableResolver struct {
	coverage  map[string]Coverage
	fallbacks []string
}

// NewTableResolver creates an empty resolver. With no coverage tables
// registered, every character resolves to its requested family.
func NewTableResolver() *TableResolver {
	return &TableResolver{coverage: make(map[string]Coverage)}
}

// SetCoverage registers the coverage table for a family.
func (t *TableResolver) SetCoverage(family string, c Coverage) *TableResolver {
	t.coverage[family] = c
	return t
}

// SetFallbacks sets the ranked fallback chain consulted when the
// requested family cannot display a character.
func (t *TableResolver) SetFallbacks(families ...string) *TableResolver {
	t.fallbacks = families
	return t
}

// Resolve returns the first family able to display r: the requested
// family, then the fallback chain in order. When nothing covers r the
// requested family is returned so rendering degrades in place.
func (t *TableResolver) Resolve(r rune, family string, size int, fontStyle style.Attribute) string {
	if t.covers(family, r) {
		return family
	}
	for _, fb := range t.fallbacks {
		if fb == family {
			continue
		}
		if t.covers(fb, r) {
			return fb
		}
	}
	return family
}

func (t *TableResolver) covers(family string, r rune) bool {
	cov, ok := t.coverage[family]
	if !ok {
		return true
	}
	return cov(r)
}

// LatinCoverage covers the scripts and symbols typical monospace coding
// fonts ship: Latin, Greek, Cyrillic, general punctuation, box drawing.
func LatinCoverage(r rune) bool {
	if r < 0x2500 {
		return r < 0x0370 ||
			unicode.In(r, unicode.Greek, unicode.Cyrillic, unicode.Latin) ||
			(r >= 0x2000 && r < 0x2400)
	}
	return r >= 0x2500 && r < 0x2600
}

// CJKCoverage covers Han, Hiragana, Katakana and Hangul.
func CJKCoverage(r rune) bool {
	return unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul)
}

// EmojiCoverage covers the common emoji blocks.
func EmojiCoverage(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1FAFF:
		return true
	case r >= 0x2600 && r <= 0x27BF:
		return true
	case r == 0x200D || r == 0xFE0F:
		return true
	default:
		return false
	}
}

// DefaultResolver returns a resolver modeling a typical desktop font
// setup: coding fonts cover Latin-ish scripts, with CJK and emoji
// handled by dedicated fallback families.
func DefaultResolver() *TableResolver {
	t := NewTableResolver()
	for _, family := range []string{
		"JetBrains Mono", "Fira Code", "Menlo", "SF Mono", "Consolas", "monospace",
	} {
		t.SetCoverage(family, LatinCoverage)
	}
	t.SetCoverage("Noto Sans Mono CJK SC", func(r rune) bool {
		return CJKCoverage(r) || LatinCoverage(r)
	})
	t.SetCoverage("Noto Color Emoji", EmojiCoverage)
	t.SetFallbacks("Noto Sans Mono CJK SC", "Noto Color Emoji")
	return t
}
