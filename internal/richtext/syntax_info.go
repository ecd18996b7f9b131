package richtext

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/dshills/richclip/internal/engine/buffer"
	"github.com/dshills/richclip/internal/style"
)

// StyleRun is one styled span of the flattened output text. Offsets
// are output coordinates, not document coordinates: indent stripping
// and multi-caret stitching have already been applied. Default colors
// and an empty font family mean "use the artifact defaults".
type StyleRun struct {
	Range      buffer.Range
	Foreground style.Color
	Background style.Color
	FontFamily string
	FontStyle  style.Attribute
}

// Attributes packs the run's styling back into a TextAttributes value.
func (r StyleRun) Attributes() style.TextAttributes {
	return style.TextAttributes{
		Foreground: r.Foreground,
		Background: r.Background,
		FontFamily: r.FontFamily,
		FontStyle:  r.FontStyle,
	}
}

func (r StyleRun) String() string {
	return fmt.Sprintf("%s fg=%s bg=%s family=%q style=%s",
		r.Range, r.Foreground, r.Background, r.FontFamily, r.FontStyle)
}

// SyntaxInfo is the finished export artifact: the flattened output
// text plus its style runs, in increasing order. The runs tile the
// text exactly: every byte of Text belongs to exactly one run, with
// no gaps and no overlaps. A SyntaxInfo is immutable once built and
// owned by the caller.
type SyntaxInfo struct {
	Text string
	Runs []StyleRun

	// Scheme defaults the runs are expressed against.
	DefaultForeground style.Color
	DefaultBackground style.Color
	FontFamily        string
	FontSize          int
}

// MarshalLogObject lets a SyntaxInfo be logged as a structured zap
// field without rendering the full run list eagerly.
func (s *SyntaxInfo) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("text_len", len(s.Text))
	enc.AddInt("runs", len(s.Runs))
	enc.AddString("default_fg", s.DefaultForeground.String())
	enc.AddString("default_bg", s.DefaultBackground.String())
	enc.AddString("font_family", s.FontFamily)
	enc.AddInt("font_size", s.FontSize)
	return nil
}

func (s *SyntaxInfo) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "text %d bytes, %d runs, font %q/%d", len(s.Text), len(s.Runs), s.FontFamily, s.FontSize)
	for _, r := range s.Runs {
		sb.WriteString("\n  ")
		sb.WriteString(r.String())
	}
	return sb.String()
}

// Builder accumulates output text and style runs. Run offsets are
// derived from the accumulated length, so the builder realizes the
// single contiguous output coordinate space by construction. Adjacent
// appends with equal attributes coalesce into one run.
type Builder struct {
	text strings.Builder
	runs []StyleRun

	defaultFg  style.Color
	defaultBg  style.Color
	fontFamily string
	fontSize   int
}

// NewBuilder creates a builder carrying the scheme defaults the runs
// will be expressed against.
func NewBuilder(defaultFg, defaultBg style.Color, fontFamily string, fontSize int) *Builder {
	return &Builder{
		defaultFg:  defaultFg,
		defaultBg:  defaultBg,
		fontFamily: fontFamily,
		fontSize:   fontSize,
	}
}

// Len returns the current output text length.
func (b *Builder) Len() ByteOffset {
	return ByteOffset(b.text.Len())
}

// Append adds text styled with the given attributes. Appending an
// empty string is a no-op. The new span extends the previous run when
// the attributes match, otherwise it opens a new run.
func (b *Builder) Append(text string, attrs style.TextAttributes) {
	if text == "" {
		return
	}
	start := b.Len()
	b.text.WriteString(text)
	end := b.Len()
	if n := len(b.runs); n > 0 && b.runs[n-1].Attributes().Equals(attrs) {
		b.runs[n-1].Range.End = end
		return
	}
	b.runs = append(b.runs, StyleRun{
		Range:      buffer.NewRange(start, end),
		Foreground: attrs.Foreground,
		Background: attrs.Background,
		FontFamily: attrs.FontFamily,
		FontStyle:  attrs.FontStyle,
	})
}

// Build finalizes the artifact. The builder must not be reused after.
func (b *Builder) Build() *SyntaxInfo {
	return &SyntaxInfo{
		Text:              b.text.String(),
		Runs:              b.runs,
		DefaultForeground: b.defaultFg,
		DefaultBackground: b.defaultBg,
		FontFamily:        b.fontFamily,
		FontSize:          b.fontSize,
	}
}
