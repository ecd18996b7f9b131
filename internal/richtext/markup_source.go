package richtext

import (
	"github.com/dshills/richclip/internal/engine/buffer"
	"github.com/dshills/richclip/internal/markup"
	"github.com/dshills/richclip/internal/scheme"
	"github.com/dshills/richclip/internal/style"
)

// MarkupIterator adapts overlay annotations to the RangeIterator
// protocol over one export window. Candidates arrive start-ordered
// from the model; the iterator drops reserved presentation layers,
// invalidated annotations, candidates indistinguishable from the
// scheme defaults, and candidates overlapping the previously accepted
// range (first wins). What remains is a sparse, non-overlapping
// sequence of visibly styled ranges.
type MarkupIterator struct {
	cursor    *markup.Cursor
	defaultFg style.Color
	defaultBg style.Color

	windowStart ByteOffset
	windowEnd   ByteOffset

	currentStart ByteOffset
	currentEnd   ByteOffset
	currentAttrs style.TextAttributes

	nextStart ByteOffset
	nextEnd   ByteOffset
	nextAttrs style.TextAttributes
	nextValid bool
}

// NewMarkupIterator opens a cursor over the annotations overlapping
// the window. A nil model yields an iterator that is at end
// immediately.
func NewMarkupIterator(model *markup.Model, sch *scheme.Scheme, windowStart, windowEnd ByteOffset) *MarkupIterator {
	m := &MarkupIterator{
		defaultFg:   sch.Foreground,
		defaultBg:   sch.Background,
		windowStart: windowStart,
		windowEnd:   windowEnd,
	}
	if model != nil {
		m.cursor = model.Overlapping(buffer.NewRange(windowStart, windowEnd))
		m.findNext()
	}
	return m
}

func (m *MarkupIterator) findNext() {
	m.nextValid = false
	for {
		a, ok := m.cursor.Next()
		if !ok {
			return
		}
		if a.Layer.IsReserved() || !a.IsValid() {
			continue
		}
		start := max(a.Range.Start, m.windowStart)
		end := min(a.Range.End, m.windowEnd)
		if start >= m.windowEnd {
			return
		}
		if start < m.currentEnd {
			continue
		}
		if !a.Attributes.VisibleAgainst(m.defaultFg, m.defaultBg) {
			continue
		}
		m.nextStart = start
		m.nextEnd = end
		m.nextAttrs = a.Attributes
		m.nextValid = true
		return
	}
}

func (m *MarkupIterator) AtEnd() bool {
	return !m.nextValid
}

func (m *MarkupIterator) Advance() error {
	if !m.nextValid {
		return ErrExhausted
	}
	m.currentStart = m.nextStart
	m.currentEnd = m.nextEnd
	m.currentAttrs = m.nextAttrs
	m.findNext()
	return nil
}

func (m *MarkupIterator) RangeStart() ByteOffset { return m.currentStart }

func (m *MarkupIterator) RangeEnd() ByteOffset { return m.currentEnd }

func (m *MarkupIterator) Attributes() style.TextAttributes { return m.currentAttrs }

// Dispose closes the underlying model cursor. Safe to call more than
// once.
func (m *MarkupIterator) Dispose() {
	if m.cursor != nil {
		m.cursor.Close()
	}
}
