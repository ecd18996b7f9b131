// Package richtext builds styled-text export artifacts from a text
// buffer, a selection set, a lexical token stream and an overlay
// annotation model. The pipeline merges the style sources with a
// priority sweep, segments the result by physical font coverage,
// strips common leading indentation and flattens everything into a
// SyntaxInfo: one output string plus an ordered run list expressed in
// output coordinates.
//
// All iterators are forward-only and call-scoped. An export borrows
// the buffer and sources for the duration of the call and disposes
// every acquired iterator on all exit paths.
package richtext

import (
	"errors"

	"github.com/dshills/richclip/internal/engine/buffer"
	"github.com/dshills/richclip/internal/style"
)

// ByteOffset is re-exported so callers do not need to import buffer
// for plain offset arithmetic.
type ByteOffset = buffer.ByteOffset

var (
	// ErrExhausted is returned by Advance once an iterator has no
	// further range to move onto.
	ErrExhausted = errors.New("range iterator exhausted")

	// ErrInvalidWindow is returned when an export window does not fit
	// the document it was taken from.
	ErrInvalidWindow = errors.New("invalid export window")
)

// RangeIterator walks a sequence of styled ranges in document order.
//
// A fresh iterator is positioned before its first range: callers must
// check AtEnd and call Advance before reading the range accessors.
// Range starts are monotonically non-decreasing and ranges from one
// iterator never overlap. Advance after AtEnd is a protocol violation
// and reports ErrExhausted. Dispose is idempotent and must run on
// every exit path, including errors.
type RangeIterator interface {
	AtEnd() bool
	Advance() error
	RangeStart() ByteOffset
	RangeEnd() ByteOffset
	Attributes() style.TextAttributes
	Dispose()
}

// plainIterator yields a single unstyled range covering a whole
// window. It stands in for the token source when no lexer is
// available, so that composite merging still covers every character.
type plainIterator struct {
	start, end ByteOffset
	done       bool
}

func newPlainIterator(start, end ByteOffset) *plainIterator {
	return &plainIterator{start: start, end: end}
}

func (p *plainIterator) AtEnd() bool {
	return p.done || p.end <= p.start
}

func (p *plainIterator) Advance() error {
	if p.AtEnd() {
		return ErrExhausted
	}
	p.done = true
	return nil
}

func (p *plainIterator) RangeStart() ByteOffset { return p.start }

func (p *plainIterator) RangeEnd() ByteOffset { return p.end }

func (p *plainIterator) Attributes() style.TextAttributes {
	return style.PlainAttributes()
}

func (p *plainIterator) Dispose() {}
