// Package html writes a styled-text artifact as an HTML fragment: one pre
// element carrying the scheme defaults inline, with a span per run that
// differs from them. The fragment form is what clipboard HTML consumers
// expect; standalone mode wraps it into a minimal document.
package html

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/dshills/richclip/internal/richtext"
	"github.com/dshills/richclip/internal/serialize"
	"github.com/dshills/richclip/internal/style"
)

// Serializer renders SyntaxInfo as HTML.
type Serializer struct {
	standalone bool
}

// Option configures a Serializer.
type Option func(*Serializer)

// WithStandalone wraps the fragment into a complete HTML document.
func WithStandalone(standalone bool) Option {
	return func(s *Serializer) {
		s.standalone = standalone
	}
}

// New creates an HTML serializer.
func New(opts ...Option) *Serializer {
	s := &Serializer{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Format returns the registry name of the format.
func (s *Serializer) Format() string { return "html" }

// ContentType returns the MIME type of the produced output.
func (s *Serializer) ContentType() string { return "text/html" }

// FileExtension returns the conventional file extension.
func (s *Serializer) FileExtension() string { return ".html" }

// Serialize writes the artifact to w.
func (s *Serializer) Serialize(w io.Writer, info *richtext.SyntaxInfo) error {
	var b strings.Builder

	if s.standalone {
		b.WriteString("<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"></head>\n<body>\n")
	}

	b.WriteString(`<pre style="`)
	writeBaseStyle(&b, info)
	b.WriteString(`">`)

	for _, run := range info.Runs {
		text := info.Text[run.Range.Start:run.Range.End]
		props := runStyle(run, info)
		if props == "" {
			b.WriteString(html.EscapeString(text))
			continue
		}
		b.WriteString(`<span style="`)
		b.WriteString(props)
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(text))
		b.WriteString("</span>")
	}

	b.WriteString("</pre>\n")

	if s.standalone {
		b.WriteString("</body>\n</html>\n")
	}

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("failed to write html: %w", err)
	}
	return nil
}

// writeBaseStyle emits the scheme defaults as inline CSS on the pre element.
func writeBaseStyle(b *strings.Builder, info *richtext.SyntaxInfo) {
	if hex := info.DefaultBackground.ToHex(); hex != "" {
		fmt.Fprintf(b, "background-color:%s;", hex)
	}
	if hex := info.DefaultForeground.ToHex(); hex != "" {
		fmt.Fprintf(b, "color:%s;", hex)
	}
	if info.FontFamily != "" {
		fmt.Fprintf(b, "font-family:%s,monospace;", cssFontFamily(info.FontFamily))
	}
	if info.FontSize > 0 {
		fmt.Fprintf(b, "font-size:%dpt;", info.FontSize)
	}
}

// runStyle returns the inline CSS for one run, empty when the run is
// indistinguishable from the pre element's defaults.
func runStyle(run richtext.StyleRun, info *richtext.SyntaxInfo) string {
	var props []string

	if visible(run.Foreground, info.DefaultForeground) {
		if hex := run.Foreground.ToHex(); hex != "" {
			props = append(props, "color:"+hex)
		}
	}
	if visible(run.Background, info.DefaultBackground) {
		if hex := run.Background.ToHex(); hex != "" {
			props = append(props, "background-color:"+hex)
		}
	}
	if run.FontFamily != "" && run.FontFamily != info.FontFamily {
		props = append(props, "font-family:"+cssFontFamily(run.FontFamily)+",monospace")
	}
	if run.FontStyle.Has(style.AttrBold) {
		props = append(props, "font-weight:bold")
	}
	if run.FontStyle.Has(style.AttrItalic) {
		props = append(props, "font-style:italic")
	}
	if deco := decorations(run.FontStyle); deco != "" {
		props = append(props, "text-decoration:"+deco)
	}
	return strings.Join(props, ";")
}

func decorations(fs style.Attribute) string {
	var parts []string
	if fs.Has(style.AttrUnderline) {
		parts = append(parts, "underline")
	}
	if fs.Has(style.AttrStrikethrough) {
		parts = append(parts, "line-through")
	}
	return strings.Join(parts, " ")
}

func visible(c, schemeDefault style.Color) bool {
	return !c.IsDefault() && !c.Equals(schemeDefault)
}

// cssFontFamily quotes a family name for an inline style attribute.
// Quote characters are stripped rather than escaped: an HTML entity
// inside a CSS string would be decoded back by the HTML parser.
func cssFontFamily(family string) string {
	family = strings.NewReplacer(`'`, "", `"`, "").Replace(family)
	return "'" + family + "'"
}

var _ serialize.Serializer = (*Serializer)(nil)
