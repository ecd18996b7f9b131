// Package scheme provides export color schemes: the mapping from token
// types and TextMate scopes to concrete text attributes, plus the
// default colors and font carried into exported artifacts.
package scheme

import (
	"github.com/dshills/richclip/internal/highlight"
	"github.com/dshills/richclip/internal/style"
)

// Scheme defines the colors and styles used for one export.
type Scheme struct {
	// Name is the display name of the scheme.
	Name string

	// Background is the default background color.
	Background style.Color

	// Foreground is the default text color.
	Foreground style.Color

	// FontFamily is the logical font family exported artifacts ask for.
	FontFamily string

	// FontSize is the font size in points.
	FontSize int

	// TokenStyles maps token types to their attributes.
	TokenStyles map[highlight.TokenType]style.TextAttributes

	// ScopeStyles maps scope strings to attributes (for custom scopes).
	ScopeStyles map[string]style.TextAttributes
}

// StyleForToken returns the attributes for a token type. Token types
// without an entry, including TokenNone, come back plain so that
// downstream merging treats them as unset.
func (s *Scheme) StyleForToken(tokenType highlight.TokenType) style.TextAttributes {
	if attrs, ok := s.TokenStyles[tokenType]; ok {
		return attrs
	}
	return style.PlainAttributes()
}

// StyleForScope returns the attributes for a scope string, walking
// parent scopes when no exact entry exists.
func (s *Scheme) StyleForScope(scope string) style.TextAttributes {
	if attrs, ok := s.ScopeStyles[scope]; ok {
		return attrs
	}

	if tokenType := highlight.TokenTypeFromString(scope); tokenType != highlight.TokenNone {
		if attrs, ok := s.TokenStyles[tokenType]; ok {
			return attrs
		}
	}

	for len(scope) > 0 {
		if attrs, ok := s.ScopeStyles[scope]; ok {
			return attrs
		}
		// Remove last segment
		for i := len(scope) - 1; i >= 0; i-- {
			if scope[i] == '.' {
				scope = scope[:i]
				break
			}
			if i == 0 {
				scope = ""
			}
		}
	}

	return style.PlainAttributes()
}

// Defaults returns the scheme's default attributes: foreground and
// background set, plain font style.
func (s *Scheme) Defaults() style.TextAttributes {
	return style.NewTextAttributes(s.Foreground, s.Background, s.FontFamily, style.AttrNone)
}
