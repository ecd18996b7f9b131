// Package rtf writes a styled-text artifact as an RTF document. Fonts
// and RGB colors are collected into the header tables; runs emit only
// the control words that differ from the running character state, so
// coalesced runs stay compact. Non-ASCII text uses \u escapes with a
// cp1252 fallback byte for legacy readers (one fallback per escape,
// declared with \uc1). Indexed palette colors have no RGB form and
// resolve to the document defaults.
package rtf

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/dshills/richclip/internal/richtext"
	"github.com/dshills/richclip/internal/serialize"
	"github.com/dshills/richclip/internal/style"
)

// fallbackFamily is used when the artifact carries no font family.
const fallbackFamily = "Courier New"

// Serializer renders SyntaxInfo as RTF.
type Serializer struct{}

// New creates an RTF serializer.
func New() *Serializer {
	return &Serializer{}
}

// Format returns the registry name of the format.
func (s *Serializer) Format() string { return "rtf" }

// ContentType returns the MIME type of the produced output.
func (s *Serializer) ContentType() string { return "text/rtf" }

// FileExtension returns the conventional file extension.
func (s *Serializer) FileExtension() string { return ".rtf" }

// Serialize writes the artifact to w.
func (s *Serializer) Serialize(w io.Writer, info *richtext.SyntaxInfo) error {
	doc := newDocument(info)
	doc.writeHeader()
	for _, run := range info.Runs {
		doc.writeRun(run, info.Text[run.Range.Start:run.Range.End])
	}
	doc.b.WriteByte('}')

	if _, err := io.WriteString(w, doc.b.String()); err != nil {
		return fmt.Errorf("failed to write rtf: %w", err)
	}
	return nil
}

// document accumulates the RTF output and the running character state.
type document struct {
	b    strings.Builder
	info *richtext.SyntaxInfo

	fonts     map[string]int
	fontList  []string
	colors    map[style.Color]int
	colorList []style.Color

	curFont      int
	curFg        int
	curHighlight int
	curStyle     style.Attribute

	// needDelim is set after a bare control word; the next text chunk
	// must start with the delimiter space the parser consumes.
	needDelim bool
}

func newDocument(info *richtext.SyntaxInfo) *document {
	d := &document{
		info:   info,
		fonts:  make(map[string]int),
		colors: make(map[style.Color]int),
	}
	d.addFont(documentFamily(info))
	for _, run := range info.Runs {
		if run.FontFamily != "" {
			d.addFont(run.FontFamily)
		}
	}
	d.addColor(info.DefaultForeground)
	d.addColor(info.DefaultBackground)
	for _, run := range info.Runs {
		if visibleRGB(run.Foreground, info.DefaultForeground) {
			d.addColor(run.Foreground)
		}
		if visibleRGB(run.Background, info.DefaultBackground) {
			d.addColor(run.Background)
		}
	}
	return d
}

func documentFamily(info *richtext.SyntaxInfo) string {
	if info.FontFamily == "" {
		return fallbackFamily
	}
	return info.FontFamily
}

func (d *document) addFont(name string) {
	if _, ok := d.fonts[name]; ok {
		return
	}
	d.fonts[name] = len(d.fontList)
	d.fontList = append(d.fontList, name)
}

// addColor assigns the next color table index. Entry 0 of the table is
// the implicit auto color, so assigned indexes start at 1.
func (d *document) addColor(c style.Color) {
	if _, ok := d.colors[c]; ok {
		return
	}
	d.colors[c] = len(d.colorList) + 1
	d.colorList = append(d.colorList, c)
}

func (d *document) writeHeader() {
	d.b.WriteString(`{\rtf1\ansi\ansicpg1252\uc1\deff0`)

	d.b.WriteString(`{\fonttbl`)
	for i, name := range d.fontList {
		fmt.Fprintf(&d.b, `{\f%d\fmodern %s;}`, i, name)
	}
	d.b.WriteByte('}')

	d.b.WriteString(`{\colortbl;`)
	for _, c := range d.colorList {
		if c.IsDefault() || c.Indexed {
			d.b.WriteByte(';')
			continue
		}
		fmt.Fprintf(&d.b, `\red%d\green%d\blue%d;`, c.R, c.G, c.B)
	}
	d.b.WriteByte('}')

	fs := d.info.FontSize * 2
	if fs <= 0 {
		fs = 24
	}
	d.curFg = d.colors[d.info.DefaultForeground]
	fmt.Fprintf(&d.b, `\f0\fs%d\cf%d`, fs, d.curFg)
	d.needDelim = true
}

func (d *document) writeRun(run richtext.StyleRun, text string) {
	font := 0
	if run.FontFamily != "" {
		font = d.fonts[run.FontFamily]
	}
	if font != d.curFont {
		fmt.Fprintf(&d.b, `\f%d`, font)
		d.curFont = font
		d.needDelim = true
	}

	fg := d.colors[d.info.DefaultForeground]
	if visibleRGB(run.Foreground, d.info.DefaultForeground) {
		fg = d.colors[run.Foreground]
	}
	if fg != d.curFg {
		fmt.Fprintf(&d.b, `\cf%d`, fg)
		d.curFg = fg
		d.needDelim = true
	}

	highlight := 0
	if visibleRGB(run.Background, d.info.DefaultBackground) {
		highlight = d.colors[run.Background]
	}
	if highlight != d.curHighlight {
		fmt.Fprintf(&d.b, `\highlight%d`, highlight)
		d.curHighlight = highlight
		d.needDelim = true
	}

	d.writeStyleFlag(run.FontStyle, style.AttrBold, `\b`, `\b0`)
	d.writeStyleFlag(run.FontStyle, style.AttrItalic, `\i`, `\i0`)
	d.writeStyleFlag(run.FontStyle, style.AttrUnderline, `\ul`, `\ul0`)
	d.writeStyleFlag(run.FontStyle, style.AttrStrikethrough, `\strike`, `\strike0`)
	d.curStyle = run.FontStyle

	d.writeText(text)
}

func (d *document) writeStyleFlag(target, flag style.Attribute, on, off string) {
	if target.Has(flag) == d.curStyle.Has(flag) {
		return
	}
	if target.Has(flag) {
		d.b.WriteString(on)
	} else {
		d.b.WriteString(off)
	}
	d.needDelim = true
}

func (d *document) writeText(text string) {
	for _, r := range text {
		if d.needDelim {
			d.b.WriteByte(' ')
			d.needDelim = false
		}
		switch {
		case r == '\\' || r == '{' || r == '}':
			d.b.WriteByte('\\')
			d.b.WriteRune(r)
		case r == '\n':
			d.b.WriteString(`\line `)
		case r == '\t':
			d.b.WriteString(`\tab `)
		case r == '\r':
			// bare carriage returns carry no content
		case r < 0x20:
			// other control characters have no RTF representation
		case r <= 0x7E:
			d.b.WriteRune(r)
		default:
			d.writeUnicode(r)
		}
	}
}

// writeUnicode emits \uN with a one-byte cp1252 fallback. Runes beyond
// the basic multilingual plane become a surrogate pair, each half with
// its own fallback.
func (d *document) writeUnicode(r rune) {
	if r > 0xFFFF {
		v := r - 0x10000
		hi := 0xD800 + (v >> 10)
		lo := 0xDC00 + (v & 0x3FF)
		fmt.Fprintf(&d.b, `\u%d\'3f\u%d\'3f`, int16(hi), int16(lo))
		return
	}
	fallback := byte('?')
	if b, ok := charmap.Windows1252.EncodeRune(r); ok {
		fallback = b
	}
	fmt.Fprintf(&d.b, `\u%d\'%02x`, int16(r), fallback)
}

// visibleRGB reports whether c is a true color distinguishable from the
// scheme default, which is what earns a color table slot.
func visibleRGB(c, schemeDefault style.Color) bool {
	return !c.IsDefault() && !c.Indexed && !c.Equals(schemeDefault)
}

var _ serialize.Serializer = (*Serializer)(nil)
