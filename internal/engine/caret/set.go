package caret

import (
	"sort"

	"github.com/dshills/richclip/internal/engine/buffer"
)

// Set holds the carets participating in one export, normalized so that
// carets are sorted by start offset and never overlap. A set built from
// a rectangular selection is marked as a block set; the export pipeline
// declines those.
type Set struct {
	carets []Caret
	block  bool
}

// NewSet creates a set holding a single caret.
func NewSet(c Caret) *Set {
	return &Set{carets: []Caret{c}}
}

// NewSetAt creates a set with a single collapsed caret at the offset.
func NewSetAt(offset ByteOffset) *Set {
	return NewSet(NewAt(offset))
}

// NewSetFromSlice creates a normalized set from the given carets.
// An empty slice yields a single collapsed caret at offset 0.
func NewSetFromSlice(carets []Caret) *Set {
	if len(carets) == 0 {
		return NewSetAt(0)
	}
	s := &Set{carets: make([]Caret, len(carets))}
	copy(s.carets, carets)
	s.normalize()
	return s
}

// NewBlockSet creates a block set from a rectangular region described in
// line/column coordinates. Each line in the rectangle contributes one
// caret; lines shorter than the right edge carry virtual fill padding up
// to the block width.
func NewBlockSet(text *buffer.Text, start, end buffer.Point) (*Set, error) {
	if start.Line > end.Line {
		start, end = end, start
	}
	leftCol, rightCol := start.Column, end.Column
	if leftCol > rightCol {
		leftCol, rightCol = rightCol, leftCol
	}
	s := &Set{block: true}
	for line := start.Line; line <= end.Line; line++ {
		lineStart, err := text.LineStartOffset(int(line))
		if err != nil {
			return nil, err
		}
		lineEnd, err := text.LineEndOffset(int(line))
		if err != nil {
			return nil, err
		}
		lineLen := lineEnd - lineStart
		selStart := lineStart + minOffset(ByteOffset(leftCol), lineLen)
		selEnd := lineStart + minOffset(ByteOffset(rightCol), lineLen)
		fill := int(ByteOffset(rightCol-leftCol) - (selEnd - selStart))
		s.carets = append(s.carets, New(selStart, selEnd).WithFill(fill))
	}
	return s, nil
}

func minOffset(a, b ByteOffset) ByteOffset {
	if a < b {
		return a
	}
	return b
}

// All returns the carets in document order. The returned slice is a copy.
func (s *Set) All() []Caret {
	out := make([]Caret, len(s.carets))
	copy(out, s.carets)
	return out
}

// Count returns the number of carets in the set.
func (s *Set) Count() int {
	return len(s.carets)
}

// IsMulti returns true if the set holds more than one caret.
func (s *Set) IsMulti() bool {
	return len(s.carets) > 1
}

// IsBlock reports whether the set came from a rectangular selection.
func (s *Set) IsBlock() bool {
	return s.block
}

// Primary returns the first caret in document order.
func (s *Set) Primary() Caret {
	return s.carets[0]
}

// Get returns the caret at the given index.
func (s *Set) Get(index int) (Caret, bool) {
	if index < 0 || index >= len(s.carets) {
		return Caret{}, false
	}
	return s.carets[index], true
}

// Add inserts a caret and renormalizes the set.
func (s *Set) Add(c Caret) {
	s.carets = append(s.carets, c)
	s.normalize()
}

// normalize sorts carets by start offset and merges overlapping ones.
// Adjacent but non-overlapping carets are kept distinct.
func (s *Set) normalize() {
	if len(s.carets) <= 1 {
		return
	}
	sort.SliceStable(s.carets, func(i, j int) bool {
		if s.carets[i].Start() != s.carets[j].Start() {
			return s.carets[i].Start() < s.carets[j].Start()
		}
		return s.carets[i].End() < s.carets[j].End()
	})
	merged := s.carets[:1]
	for _, c := range s.carets[1:] {
		last := &merged[len(merged)-1]
		if c.Start() < last.End() {
			if c.End() > last.End() {
				*last = New(last.Start(), c.End())
			}
			continue
		}
		merged = append(merged, c)
	}
	s.carets = merged
}
