package richtext

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/dshills/richclip/internal/engine/buffer"
	"github.com/dshills/richclip/internal/engine/caret"
	"github.com/dshills/richclip/internal/fonts"
	"github.com/dshills/richclip/internal/highlight"
	"github.com/dshills/richclip/internal/markup"
	"github.com/dshills/richclip/internal/scheme"
)

// Exporter produces SyntaxInfo artifacts. Configuration is frozen at
// construction; one exporter serves any number of sequential Export
// calls. Exporters are not safe for concurrent use.
type Exporter struct {
	scheme       *scheme.Scheme
	resolver     fonts.Resolver
	logger       *zap.Logger
	stripIndents bool
}

// Option configures an Exporter during creation.
type Option func(*Exporter)

// WithScheme sets the color scheme resolved against during export.
func WithScheme(sch *scheme.Scheme) Option {
	return func(e *Exporter) {
		if sch != nil {
			e.scheme = sch
		}
	}
}

// WithResolver sets the font fallback resolver used for segmentation.
func WithResolver(r fonts.Resolver) Option {
	return func(e *Exporter) {
		if r != nil {
			e.resolver = r
		}
	}
}

// WithLogger sets the debug logger. The exporter never requires
// logging to function; the default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Exporter) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithStripIndents toggles common-indent stripping for single-caret
// exports. Enabled by default.
func WithStripIndents(strip bool) Option {
	return func(e *Exporter) {
		e.stripIndents = strip
	}
}

// NewExporter creates an exporter with the default dark scheme, the
// default font resolver, indent stripping on and no logging.
func NewExporter(opts ...Option) *Exporter {
	e := &Exporter{
		scheme:       scheme.DefaultDark(),
		resolver:     fonts.DefaultResolver(),
		logger:       zap.NewNop(),
		stripIndents: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export flattens the selected regions of text into a SyntaxInfo.
//
// The lexer may be nil, in which case the whole window is treated as
// plain text; overlay annotations still apply. The model may be nil.
// Rectangular block selections are declined: the artifact is nil with
// a nil error, and callers fall back to plain text. Carets are
// processed in document order; regions after the first are stitched
// behind a virtual newline plus the previous caret's fill padding.
func (e *Exporter) Export(text *buffer.Text, carets *caret.Set, lexer highlight.Lexer, model *markup.Model) (*SyntaxInfo, error) {
	if text == nil {
		return nil, fmt.Errorf("%w: nil text", ErrInvalidWindow)
	}
	if carets == nil {
		carets = caret.NewSetAt(0)
	}
	if carets.IsBlock() {
		e.logger.Debug("declining block selection export", zap.Int("carets", carets.Count()))
		return nil, nil
	}

	all := carets.All()
	for _, c := range all {
		if c.Start() < 0 || c.End() > text.Len() {
			return nil, fmt.Errorf("%w: selection %s outside document of %d bytes", ErrInvalidWindow, c.Range(), text.Len())
		}
	}

	first := all[0]
	startToUse := first.Start()
	stripWidth := 0
	if e.stripIndents && len(all) == 1 {
		info := AnalyzeIndent(text, first.Start(), first.End())
		startToUse = info.FirstLineStart
		stripWidth = info.Width
	}
	e.logInitial(text, all, stripWidth, startToUse)

	builder := NewBuilder(e.scheme.Foreground, e.scheme.Background, e.scheme.FontFamily, e.scheme.FontSize)
	asm := newAssembler(text, builder, e.scheme, stripWidth)

	prevFill := 0
	for i, c := range all {
		start := c.Start()
		if i == 0 {
			start = startToUse
		} else {
			asm.appendSeparator(prevFill)
		}
		end := c.End()
		asm.reset()
		prevFill = c.Fill
		if end <= start {
			continue
		}
		if err := e.exportRegion(asm, text, lexer, model, start, end); err != nil {
			return nil, err
		}
	}

	info := builder.Build()
	e.logger.Debug("constructed syntax info", zap.Object("info", info))
	return info, nil
}

// exportRegion merges, segments and assembles one caret region. The
// iterator stack is disposed on every path out.
func (e *Exporter) exportRegion(asm *assembler, text *buffer.Text, lexer highlight.Lexer, model *markup.Model, start, end ByteOffset) error {
	var base RangeIterator
	if lexer != nil {
		cursor := highlight.NewTokenCursor(text, lexer, start)
		base = NewHighlightIterator(cursor, e.scheme, start, end)
	} else {
		base = newPlainIterator(start, end)
	}
	overlay := NewMarkupIterator(model, e.scheme, start, end)
	walker := newSpanWalker(text, NewCompositeIterator(e.scheme, base, overlay), e.scheme, e.resolver)
	defer walker.dispose()
	return asm.iterate(walker, end)
}

// logInitial debug-logs the selection state before assembly begins.
// The touched line text is gathered only when debug is enabled.
func (e *Exporter) logInitial(text *buffer.Text, all []caret.Caret, stripWidth int, startToUse ByteOffset) {
	ce := e.logger.Check(zap.DebugLevel, "preparing styled export")
	if ce == nil {
		return
	}
	regions := make([]string, 0, len(all))
	for _, c := range all {
		line := text.Slice(lineBounds(text, c.Start(), c.End()))
		regions = append(regions, fmt.Sprintf("%s %q", c.Range(), line))
	}
	ce.Write(
		zap.Strings("regions", regions),
		zap.Int("strip_width", stripWidth),
		zap.Int64("first_line_start", startToUse),
	)
}

// lineBounds widens [start, end) to whole lines for logging.
func lineBounds(text *buffer.Text, start, end ByteOffset) (ByteOffset, ByteOffset) {
	if line, err := text.LineOfOffset(start); err == nil {
		if off, err := text.LineStartOffset(line); err == nil {
			start = off
		}
	}
	if line, err := text.LineOfOffset(end); err == nil {
		if off, err := text.LineEndOffset(line); err == nil {
			end = off
		}
	}
	return start, end
}
