package buffer

import "fmt"

// ByteOffset is a byte position in a document. Every coordinate the
// pipeline exchanges is a byte offset into the UTF-8 text.
type ByteOffset = int64

// Point is a line and column position. Both are zero-indexed, and the
// column counts bytes from the start of the line.
type Point struct {
	Line   uint32
	Column uint32
}

func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}
