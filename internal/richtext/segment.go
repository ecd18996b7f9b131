package richtext

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/dshills/richclip/internal/engine/buffer"
	"github.com/dshills/richclip/internal/fonts"
	"github.com/dshills/richclip/internal/scheme"
	"github.com/dshills/richclip/internal/style"
)

// SegmentIterator splits one styled range into maximal runs renderable
// by a single physical font family. It walks grapheme clusters and
// resolves the family able to display each cluster's base rune through
// the injected resolver; a cluster resolving to a different family
// than the run so far ends the run and seeds the next one.
//
// Reset positions the iterator on a new range; the pending family
// carried out of a mid-range break does not survive a reset.
type SegmentIterator struct {
	text          *buffer.Text
	resolver      fonts.Resolver
	defaultFamily string
	fontSize      int

	rest      string
	pos       ByteOffset
	end       ByteOffset
	family    string
	fontStyle style.Attribute
	state     int

	currentStart  ByteOffset
	currentEnd    ByteOffset
	currentFamily string

	pendingFamily string
	pendingValid  bool
}

// NewSegmentIterator creates a segment iterator resolving against the
// given defaults. Reset must be called before the first Advance.
func NewSegmentIterator(text *buffer.Text, resolver fonts.Resolver, defaultFamily string, fontSize int) *SegmentIterator {
	return &SegmentIterator{
		text:          text,
		resolver:      resolver,
		defaultFamily: defaultFamily,
		fontSize:      fontSize,
	}
}

// Reset positions the iterator on [start, end) with the requested
// family and font style. An empty family requests the default.
func (s *SegmentIterator) Reset(start, end ByteOffset, family string, fontStyle style.Attribute) {
	s.rest = s.text.Slice(start, end)
	s.pos = start
	s.end = end
	if family == "" {
		family = s.defaultFamily
	}
	s.family = family
	s.fontStyle = fontStyle
	s.state = -1
	s.pendingFamily = ""
	s.pendingValid = false
}

// AtEnd reports whether the current range is fully segmented.
func (s *SegmentIterator) AtEnd() bool {
	return s.pos >= s.end
}

// Advance accumulates the next maximal single-family run.
func (s *SegmentIterator) Advance() {
	s.currentStart = s.pos
	family := ""
	if s.pendingValid {
		family = s.pendingFamily
		s.pendingValid = false
	}
	for len(s.rest) > 0 {
		cluster, rest, _, state := uniseg.FirstGraphemeClusterInString(s.rest, s.state)
		base, _ := utf8.DecodeRuneInString(cluster)
		resolved := s.resolver.Resolve(base, s.family, s.fontSize, s.fontStyle)
		if family == "" {
			family = resolved
		} else if family != resolved {
			s.pendingFamily = resolved
			s.pendingValid = true
			break
		}
		s.pos += ByteOffset(len(cluster))
		s.rest = rest
		s.state = state
	}
	s.currentEnd = s.pos
	s.currentFamily = family
}

// CurrentStart returns the start offset of the produced run.
func (s *SegmentIterator) CurrentStart() ByteOffset { return s.currentStart }

// CurrentEnd returns the end offset of the produced run.
func (s *SegmentIterator) CurrentEnd() ByteOffset { return s.currentEnd }

// CurrentFamily returns the physical family of the produced run.
func (s *SegmentIterator) CurrentFamily() string { return s.currentFamily }

// spanWalker composes a range iterator with font segmentation: every
// elementary sub-range from the range iterator is re-cut into
// single-family segments, which are what the assembler consumes.
type spanWalker struct {
	ranges   RangeIterator
	segments *SegmentIterator

	fontStyle  style.Attribute
	foreground style.Color
	background style.Color
}

func newSpanWalker(text *buffer.Text, ranges RangeIterator, sch *scheme.Scheme, resolver fonts.Resolver) *spanWalker {
	return &spanWalker{
		ranges:   ranges,
		segments: NewSegmentIterator(text, resolver, sch.FontFamily, sch.FontSize),
	}
}

func (w *spanWalker) atEnd() bool {
	return w.ranges.AtEnd() && w.segments.AtEnd()
}

func (w *spanWalker) advance() error {
	if w.segments.AtEnd() {
		if err := w.ranges.Advance(); err != nil {
			return err
		}
		attrs := w.ranges.Attributes()
		w.fontStyle = attrs.FontStyle
		w.foreground = attrs.Foreground
		w.background = attrs.Background
		w.segments.Reset(w.ranges.RangeStart(), w.ranges.RangeEnd(), attrs.FontFamily, attrs.FontStyle)
	}
	w.segments.Advance()
	return nil
}

func (w *spanWalker) startOffset() ByteOffset { return w.segments.CurrentStart() }

func (w *spanWalker) endOffset() ByteOffset { return w.segments.CurrentEnd() }

func (w *spanWalker) fontFamily() string { return w.segments.CurrentFamily() }

func (w *spanWalker) dispose() {
	w.ranges.Dispose()
}
