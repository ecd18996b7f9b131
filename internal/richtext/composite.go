package richtext

import (
	"math"
	"sort"

	"github.com/dshills/richclip/internal/scheme"
	"github.com/dshills/richclip/internal/style"
)

// CompositeIterator merges several range sources into one stream of
// elementary sub-ranges: maximal intervals crossed by no source
// boundary. Sources are ordered by priority, later strictly higher,
// and the last source wins ties. Attributes are resolved per
// sub-range by filling unset values from high priority to low:
// foreground and background accept a lower-priority value only while
// the merged value is still absent-or-default, and the font style
// keeps the first non-plain value found. Exhausted sources are
// disposed as soon as they are consumed.
type CompositeIterator struct {
	defaultFg style.Color
	defaultBg style.Color

	// Sorted live-first; exhausted entries become nil and sort last.
	wrappers []*iteratorWrapper

	overlapping  int
	currentStart ByteOffset
	currentEnd   ByteOffset
}

type iteratorWrapper struct {
	it    RangeIterator
	order int
}

// NewCompositeIterator combines the given sources, listed lowest
// priority first. The composite takes ownership: disposing it
// disposes every source.
func NewCompositeIterator(sch *scheme.Scheme, sources ...RangeIterator) *CompositeIterator {
	c := &CompositeIterator{
		defaultFg: sch.Foreground,
		defaultBg: sch.Background,
		wrappers:  make([]*iteratorWrapper, len(sources)),
	}
	for i, src := range sources {
		c.wrappers[i] = &iteratorWrapper{it: src, order: i}
	}
	return c
}

// AtEnd reports whether no live source can contribute another
// sub-range: every remaining source is exhausted and its loaded range
// fully emitted.
func (c *CompositeIterator) AtEnd() bool {
	for i, w := range c.wrappers {
		if w == nil {
			continue
		}
		if !w.it.AtEnd() || c.overlapping > 0 && (i >= c.overlapping || w.it.RangeEnd() > c.currentEnd) {
			return false
		}
	}
	return true
}

// Advance consumes every source whose loaded range ends at the
// current cursor end, re-sorts by effective start, and cuts the next
// elementary sub-range at the nearest boundary of any live source.
func (c *CompositeIterator) Advance() error {
	if c.AtEnd() {
		return ErrExhausted
	}
	limit := len(c.wrappers)
	if c.overlapping > 0 {
		limit = c.overlapping
	}
	for i := 0; i < limit; i++ {
		w := c.wrappers[i]
		if w == nil {
			continue
		}
		if c.overlapping > 0 && w.it.RangeEnd() > c.currentEnd {
			continue
		}
		if w.it.AtEnd() {
			w.it.Dispose()
			c.wrappers[i] = nil
		} else if err := w.it.Advance(); err != nil {
			return err
		}
	}
	c.sortWrappers()
	first := c.wrappers[0]
	if first == nil {
		return ErrExhausted
	}
	c.currentStart = max(first.it.RangeStart(), c.currentEnd)
	end := ByteOffset(math.MaxInt64)
	for _, w := range c.wrappers {
		if w == nil {
			break
		}
		bound := w.it.RangeEnd()
		if w.it.RangeStart() > c.currentStart {
			bound = w.it.RangeStart()
		}
		end = min(end, bound)
	}
	c.currentEnd = end
	for c.overlapping = 1; c.overlapping < len(c.wrappers); c.overlapping++ {
		w := c.wrappers[c.overlapping]
		if w == nil || w.it.RangeStart() > c.currentStart {
			break
		}
	}
	return nil
}

// sortWrappers orders by effective start (range start, or the current
// cursor end when the range began earlier), ties going to the higher
// priority source. Nil entries sort last.
func (c *CompositeIterator) sortWrappers() {
	cursorEnd := c.currentEnd
	sort.SliceStable(c.wrappers, func(i, j int) bool {
		a, b := c.wrappers[i], c.wrappers[j]
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		sa := max(a.it.RangeStart(), cursorEnd)
		sb := max(b.it.RangeStart(), cursorEnd)
		if sa != sb {
			return sa < sb
		}
		return a.order > b.order
	})
}

func (c *CompositeIterator) RangeStart() ByteOffset { return c.currentStart }

func (c *CompositeIterator) RangeEnd() ByteOffset { return c.currentEnd }

// Attributes resolves the merged attributes of the current sub-range
// from the overlapping sources.
func (c *CompositeIterator) Attributes() style.TextAttributes {
	merged := c.wrappers[0].it.Attributes()
	for i := 1; i < c.overlapping; i++ {
		merged = c.fillUnset(merged, c.wrappers[i].it.Attributes())
	}
	return merged
}

func (c *CompositeIterator) fillUnset(merged, lower style.TextAttributes) style.TextAttributes {
	if merged.Background.IsDefault() || merged.Background.Equals(c.defaultBg) {
		merged.Background = lower.Background
	}
	if merged.Foreground.IsDefault() || merged.Foreground.Equals(c.defaultFg) {
		merged.Foreground = lower.Foreground
	}
	if merged.FontFamily == "" {
		merged.FontFamily = lower.FontFamily
	}
	if merged.FontStyle.IsPlain() {
		merged.FontStyle = lower.FontStyle
	}
	return merged
}

// Dispose releases every source that has not already been disposed.
func (c *CompositeIterator) Dispose() {
	for i, w := range c.wrappers {
		if w != nil {
			w.it.Dispose()
			c.wrappers[i] = nil
		}
	}
}
