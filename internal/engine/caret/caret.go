// Package caret provides the selection model handed to the export
// pipeline: individual carets (anchor/head pairs over byte offsets) and
// normalized caret sets iterated in document order.
package caret

import (
	"fmt"

	"github.com/dshills/richclip/internal/engine/buffer"
)

// Range is an alias for buffer.Range for convenience.
type Range = buffer.Range

// ByteOffset is an alias for buffer.ByteOffset.
type ByteOffset = buffer.ByteOffset

// Caret represents one selected region. Anchor is where the selection
// started; Head is the active end. Anchor == Head is a bare cursor.
// Fill is the width of virtual space padding carried after the selected
// text; it is nonzero only for carets produced by rectangular selections,
// where short lines are padded to the block width.
// Caret is an immutable value type.
type Caret struct {
	Anchor ByteOffset
	Head   ByteOffset
	Fill   int
}

// New creates a caret from anchor to head.
func New(anchor, head ByteOffset) Caret {
	return Caret{Anchor: anchor, Head: head}
}

// NewAt creates a collapsed caret (no extent) at the given offset.
func NewAt(offset ByteOffset) Caret {
	return Caret{Anchor: offset, Head: offset}
}

// FromRange creates a forward caret covering the given range.
func FromRange(r Range) Caret {
	return Caret{Anchor: r.Start, Head: r.End}
}

// IsEmpty returns true if the caret has no extent.
func (c Caret) IsEmpty() bool {
	return c.Anchor == c.Head
}

// Len returns the length of the selection in bytes.
func (c Caret) Len() ByteOffset {
	if c.Anchor <= c.Head {
		return c.Head - c.Anchor
	}
	return c.Anchor - c.Head
}

// Range returns the selection as a range (always Start <= End).
func (c Caret) Range() Range {
	if c.Anchor <= c.Head {
		return Range{Start: c.Anchor, End: c.Head}
	}
	return Range{Start: c.Head, End: c.Anchor}
}

// Start returns the lower bound of the selection.
func (c Caret) Start() ByteOffset {
	if c.Anchor <= c.Head {
		return c.Anchor
	}
	return c.Head
}

// End returns the upper bound of the selection.
func (c Caret) End() ByteOffset {
	if c.Anchor >= c.Head {
		return c.Anchor
	}
	return c.Head
}

// IsForward returns true if the selection extends forward (head >= anchor).
func (c Caret) IsForward() bool {
	return c.Head >= c.Anchor
}

// WithFill returns a copy carrying the given virtual padding width.
func (c Caret) WithFill(fill int) Caret {
	c.Fill = fill
	return c
}

// String returns a human-readable representation of the caret.
func (c Caret) String() string {
	if c.Fill > 0 {
		return fmt.Sprintf("%v+%d", c.Range(), c.Fill)
	}
	return c.Range().String()
}
