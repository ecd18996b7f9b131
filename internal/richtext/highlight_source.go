package richtext

import (
	"github.com/dshills/richclip/internal/highlight"
	"github.com/dshills/richclip/internal/scheme"
	"github.com/dshills/richclip/internal/style"
)

// TokenSource is the token stream a HighlightIterator consumes.
// *highlight.TokenCursor satisfies it. The stream reports document
// byte spans in increasing order; Advance past the end is a no-op.
type TokenSource interface {
	AtEnd() bool
	Advance()
	Start() ByteOffset
	End() ByteOffset
	Type() highlight.TokenType
}

// HighlightIterator adapts a token stream to the RangeIterator
// protocol over one export window. Token bounds are clamped to the
// window and illegal-character tokens are skipped transparently, so
// they contribute neither style nor text to the export.
type HighlightIterator struct {
	source TokenSource
	scheme *scheme.Scheme

	windowStart ByteOffset
	windowEnd   ByteOffset

	currentStart ByteOffset
	currentEnd   ByteOffset
	currentAttrs style.TextAttributes
}

// NewHighlightIterator wraps a token source positioned at or before
// windowStart. The source is borrowed for the lifetime of the
// iterator.
func NewHighlightIterator(source TokenSource, sch *scheme.Scheme, windowStart, windowEnd ByteOffset) *HighlightIterator {
	h := &HighlightIterator{
		source:      source,
		scheme:      sch,
		windowStart: windowStart,
		windowEnd:   windowEnd,
	}
	h.skipIllegal()
	return h
}

func (h *HighlightIterator) skipIllegal() {
	for !h.source.AtEnd() && h.source.Type() == highlight.TokenInvalidIllegal {
		h.source.Advance()
	}
}

func (h *HighlightIterator) clampedStart() ByteOffset {
	return max(h.source.Start(), h.windowStart)
}

func (h *HighlightIterator) clampedEnd() ByteOffset {
	return min(h.source.End(), h.windowEnd)
}

// AtEnd reports whether no further token overlaps the window.
func (h *HighlightIterator) AtEnd() bool {
	return h.source.AtEnd() || h.clampedStart() >= h.windowEnd
}

// Advance loads the next clamped token range and its scheme-resolved
// attributes.
func (h *HighlightIterator) Advance() error {
	if h.AtEnd() {
		return ErrExhausted
	}
	h.currentStart = h.clampedStart()
	h.currentEnd = h.clampedEnd()
	h.currentAttrs = h.scheme.StyleForToken(h.source.Type())
	h.source.Advance()
	h.skipIllegal()
	return nil
}

func (h *HighlightIterator) RangeStart() ByteOffset { return h.currentStart }

func (h *HighlightIterator) RangeEnd() ByteOffset { return h.currentEnd }

func (h *HighlightIterator) Attributes() style.TextAttributes { return h.currentAttrs }

// Dispose releases nothing: the token source is owned by the caller.
func (h *HighlightIterator) Dispose() {}
