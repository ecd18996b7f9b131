// Package ansi writes a styled-text artifact as ANSI escape sequences
// for terminal display. The color profile is fixed at construction
// rather than sniffed from the output, so the same artifact renders the
// same bytes everywhere; degradation to 256-color or 16-color palettes
// is handled by the styling layer.
package ansi

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/dshills/richclip/internal/richtext"
	"github.com/dshills/richclip/internal/serialize"
	"github.com/dshills/richclip/internal/style"
)

// ErrUnknownProfile is returned by ParseProfile for an unknown name.
var ErrUnknownProfile = errors.New("unknown color profile")

// Serializer renders SyntaxInfo as ANSI-styled terminal text.
type Serializer struct {
	profile      termenv.Profile
	schemeColors bool
}

// Option configures a Serializer.
type Option func(*Serializer)

// WithProfile sets the terminal color profile.
func WithProfile(p termenv.Profile) Option {
	return func(s *Serializer) {
		s.profile = p
	}
}

// WithSchemeColors paints the scheme default colors on every run instead
// of leaving default-colored text to the terminal palette.
func WithSchemeColors(enabled bool) Option {
	return func(s *Serializer) {
		s.schemeColors = enabled
	}
}

// New creates an ANSI serializer. The default profile is true color.
func New(opts ...Option) *Serializer {
	s := &Serializer{profile: termenv.TrueColor}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ParseProfile maps a profile name from configuration or a flag to a
// termenv profile.
func ParseProfile(name string) (termenv.Profile, error) {
	switch strings.ToLower(name) {
	case "truecolor", "24bit":
		return termenv.TrueColor, nil
	case "256", "ansi256":
		return termenv.ANSI256, nil
	case "16", "ansi":
		return termenv.ANSI, nil
	case "none", "ascii":
		return termenv.Ascii, nil
	}
	return termenv.Ascii, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}

// Format returns the registry name of the format.
func (s *Serializer) Format() string { return "ansi" }

// ContentType returns the MIME type of the produced output.
func (s *Serializer) ContentType() string { return "text/plain" }

// FileExtension returns the conventional file extension.
func (s *Serializer) FileExtension() string { return ".ans" }

// Serialize writes the artifact to w.
func (s *Serializer) Serialize(w io.Writer, info *richtext.SyntaxInfo) error {
	r := lipgloss.NewRenderer(w, termenv.WithProfile(s.profile))

	var b strings.Builder
	for _, run := range info.Runs {
		text := info.Text[run.Range.Start:run.Range.End]
		b.WriteString(s.runStyle(r, run, info).Render(text))
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write ansi: %w", err)
	}
	return nil
}

func (s *Serializer) runStyle(r *lipgloss.Renderer, run richtext.StyleRun, info *richtext.SyntaxInfo) lipgloss.Style {
	st := r.NewStyle()

	if fg, ok := s.resolve(run.Foreground, info.DefaultForeground); ok {
		st = st.Foreground(colorValue(fg))
	}
	if bg, ok := s.resolve(run.Background, info.DefaultBackground); ok {
		st = st.Background(colorValue(bg))
	}
	if run.FontStyle.Has(style.AttrBold) {
		st = st.Bold(true)
	}
	if run.FontStyle.Has(style.AttrItalic) {
		st = st.Italic(true)
	}
	if run.FontStyle.Has(style.AttrUnderline) {
		st = st.Underline(true)
	}
	if run.FontStyle.Has(style.AttrStrikethrough) {
		st = st.Strikethrough(true)
	}
	return st
}

// resolve decides which color a run paints, if any. Without scheme
// colors, only colors distinguishable from the scheme default emit; with
// them, defaults resolve to the concrete scheme color and always emit.
func (s *Serializer) resolve(c, schemeDefault style.Color) (style.Color, bool) {
	if s.schemeColors {
		if c.IsDefault() {
			c = schemeDefault
		}
		return c, !c.IsDefault()
	}
	if c.IsDefault() || c.Equals(schemeDefault) {
		return style.Color{}, false
	}
	return c, true
}

func colorValue(c style.Color) lipgloss.Color {
	if c.Indexed {
		return lipgloss.Color(strconv.Itoa(int(c.R)))
	}
	return lipgloss.Color(c.ToHex())
}

var _ serialize.Serializer = (*Serializer)(nil)
