// Package buffer provides the immutable text document consumed by the
// export pipeline: a zero-indexed byte sequence with line-boundary
// lookup. A Text is never mutated; every component of one export call
// shares the same instance.
package buffer

import (
	"errors"
	"io"
	"sort"
	"strings"
	"unicode/utf8"
)

// Errors returned by line and offset lookups.
var (
	ErrLineOutOfRange   = errors.New("buffer: line out of range")
	ErrOffsetOutOfRange = errors.New("buffer: offset out of range")
)

// Text is an immutable document with a precomputed line index.
type Text struct {
	data       string
	lineStarts []ByteOffset
}

// NewText creates a Text from a string.
func NewText(s string) *Text {
	starts := make([]ByteOffset, 1, strings.Count(s, "\n")+1)
	starts[0] = 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			starts = append(starts, ByteOffset(i+1))
		}
	}
	return &Text{data: s, lineStarts: starts}
}

// NewTextFromReader creates a Text by reading all of r.
func NewTextFromReader(r io.Reader) (*Text, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewText(string(data)), nil
}

// Len returns the total length in bytes.
func (t *Text) Len() ByteOffset {
	return ByteOffset(len(t.data))
}

// String returns the full document text.
func (t *Text) String() string {
	return t.data
}

// ByteAt returns the byte at the given offset.
// The offset must be within [0, Len()).
func (t *Text) ByteAt(offset ByteOffset) byte {
	return t.data[offset]
}

// RuneAt decodes the rune starting at the given offset and returns it
// with its byte width. Offsets past the end yield (utf8.RuneError, 0).
func (t *Text) RuneAt(offset ByteOffset) (rune, int) {
	if offset < 0 || offset >= t.Len() {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(t.data[offset:])
}

// Slice returns the text within [start, end), clamped to the document.
func (t *Text) Slice(start, end ByteOffset) string {
	if start < 0 {
		start = 0
	}
	if end > t.Len() {
		end = t.Len()
	}
	if start >= end {
		return ""
	}
	return t.data[start:end]
}

// SliceRange returns the text covered by the given range.
func (t *Text) SliceRange(r Range) string {
	return t.Slice(r.Start, r.End)
}

// LineCount returns the number of lines. An empty document has one line;
// a trailing newline opens a final empty line.
func (t *Text) LineCount() int {
	return len(t.lineStarts)
}

// LineOfOffset returns the 0-indexed line containing the given offset.
// Len() itself is a valid offset and maps to the last line.
func (t *Text) LineOfOffset(offset ByteOffset) (int, error) {
	if offset < 0 || offset > t.Len() {
		return 0, ErrOffsetOutOfRange
	}
	// Greatest line whose start is <= offset.
	line := sort.Search(len(t.lineStarts), func(i int) bool {
		return t.lineStarts[i] > offset
	}) - 1
	return line, nil
}

// LineStartOffset returns the offset of the first byte of the given line.
func (t *Text) LineStartOffset(line int) (ByteOffset, error) {
	if line < 0 || line >= len(t.lineStarts) {
		return 0, ErrLineOutOfRange
	}
	return t.lineStarts[line], nil
}

// LineEndOffset returns the offset one past the last content byte of the
// given line, excluding the trailing newline.
func (t *Text) LineEndOffset(line int) (ByteOffset, error) {
	if line < 0 || line >= len(t.lineStarts) {
		return 0, ErrLineOutOfRange
	}
	if line == len(t.lineStarts)-1 {
		return t.Len(), nil
	}
	return t.lineStarts[line+1] - 1, nil
}

// LineText returns the content of the given line without its newline.
func (t *Text) LineText(line int) (string, error) {
	start, err := t.LineStartOffset(line)
	if err != nil {
		return "", err
	}
	end, err := t.LineEndOffset(line)
	if err != nil {
		return "", err
	}
	return t.data[start:end], nil
}

// OffsetToPoint converts a byte offset to a line/column point.
func (t *Text) OffsetToPoint(offset ByteOffset) (Point, error) {
	line, err := t.LineOfOffset(offset)
	if err != nil {
		return Point{}, err
	}
	return Point{
		Line:   uint32(line),
		Column: uint32(offset - t.lineStarts[line]),
	}, nil
}

// PointToOffset converts a line/column point to a byte offset.
func (t *Text) PointToOffset(p Point) (ByteOffset, error) {
	start, err := t.LineStartOffset(int(p.Line))
	if err != nil {
		return 0, err
	}
	end, err := t.LineEndOffset(int(p.Line))
	if err != nil {
		return 0, err
	}
	offset := start + ByteOffset(p.Column)
	if offset > end {
		return 0, ErrOffsetOutOfRange
	}
	return offset, nil
}

// FullRange returns the range covering the whole document.
func (t *Text) FullRange() Range {
	return Range{Start: 0, End: t.Len()}
}
