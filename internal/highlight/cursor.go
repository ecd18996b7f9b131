package highlight

import (
	"github.com/dshills/richclip/internal/engine/buffer"
)

// tokenSpan is one contiguous run of a single token type in document
// byte offsets.
type tokenSpan struct {
	start buffer.ByteOffset
	end   buffer.ByteOffset
	typ   TokenType
}

// TokenCursor walks a document's tokens in order as contiguous
// document-offset spans. Gaps between lexer tokens, as well as line
// terminators, are reported as TokenNone spans, so consecutive spans
// always touch: each span starts where the previous one ended.
//
// A cursor is a forward-only, single-use iterator. It is not safe for
// concurrent use.
type TokenCursor struct {
	text     *buffer.Text
	lexer    Lexer
	state    LexerState
	nextLine int
	spans    []tokenSpan
	idx      int
	done     bool
}

// NewTokenCursor creates a cursor positioned at the first span whose
// end lies after start. Lexer state for the starting line is computed
// by lexing all preceding lines.
func NewTokenCursor(text *buffer.Text, lexer Lexer, start buffer.ByteOffset) *TokenCursor {
	if start < 0 {
		start = 0
	}
	if start > text.Len() {
		start = text.Len()
	}

	c := &TokenCursor{text: text, lexer: lexer, state: LexerStateNormal}

	line, err := text.LineOfOffset(start)
	if err != nil {
		line = 0
	}
	for ln := 0; ln < line; ln++ {
		lt, err := text.LineText(ln)
		if err != nil {
			break
		}
		_, c.state = lexer.HighlightLine(lt, c.state)
	}
	c.nextLine = line

	c.refill()
	for !c.done && c.spans[c.idx].end <= start {
		c.Advance()
	}
	return c
}

// AtEnd reports whether the cursor has run out of spans.
func (c *TokenCursor) AtEnd() bool {
	return c.done
}

// Advance moves to the next span. Calling Advance past the end is a
// no-op.
func (c *TokenCursor) Advance() {
	if c.done {
		return
	}
	c.idx++
	if c.idx >= len(c.spans) {
		c.refill()
	}
}

// Start returns the document offset where the current span begins.
func (c *TokenCursor) Start() buffer.ByteOffset {
	if c.done {
		return c.text.Len()
	}
	return c.spans[c.idx].start
}

// End returns the document offset just past the current span.
func (c *TokenCursor) End() buffer.ByteOffset {
	if c.done {
		return c.text.Len()
	}
	return c.spans[c.idx].end
}

// Type returns the token type of the current span.
func (c *TokenCursor) Type() TokenType {
	if c.done {
		return TokenNone
	}
	return c.spans[c.idx].typ
}

// refill lexes lines until at least one span is produced or the
// document is exhausted. Blank trailing lines produce no spans.
func (c *TokenCursor) refill() {
	c.spans = c.spans[:0]
	c.idx = 0
	for len(c.spans) == 0 {
		if c.nextLine >= c.text.LineCount() {
			c.done = true
			return
		}
		c.fillLine(c.nextLine)
		c.nextLine++
	}
}

// fillLine lexes one line and appends its spans, padding gaps and the
// trailing newline with TokenNone.
func (c *TokenCursor) fillLine(line int) {
	lineStart, err := c.text.LineStartOffset(line)
	if err != nil {
		return
	}
	lineEnd, err := c.text.LineEndOffset(line)
	if err != nil {
		return
	}

	lineText := c.text.Slice(lineStart, lineEnd)
	tokens, state := c.lexer.HighlightLine(lineText, c.state)
	c.state = state

	// Non-final lines also cover their newline byte.
	spanEnd := lineEnd
	if line < c.text.LineCount()-1 {
		spanEnd++
	}

	pos := lineStart
	for _, tok := range tokens {
		s := lineStart + buffer.ByteOffset(tok.StartCol)
		e := lineStart + buffer.ByteOffset(tok.EndCol)
		if e > lineEnd {
			e = lineEnd
		}
		if s < pos {
			s = pos
		}
		if s >= e {
			continue
		}
		if s > pos {
			c.spans = append(c.spans, tokenSpan{start: pos, end: s, typ: TokenNone})
		}
		c.spans = append(c.spans, tokenSpan{start: s, end: e, typ: tok.Type})
		pos = e
	}
	if pos < spanEnd {
		c.spans = append(c.spans, tokenSpan{start: pos, end: spanEnd, typ: TokenNone})
	}
}
