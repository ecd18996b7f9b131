package richtext

import (
	"strings"

	"github.com/dshills/richclip/internal/engine/buffer"
	"github.com/dshills/richclip/internal/scheme"
	"github.com/dshills/richclip/internal/style"
)

// assembler turns the segmented sub-range stream into builder appends.
// It tracks the pending run state (foreground, background, family,
// font style); a sub-range differing in any tracked value flushes the
// accumulated text under the old state before the new value takes
// effect, so run boundaries appear only where styling actually
// changes. Whitespace-only sub-ranges update the background alone.
//
// The flush path scans characters and applies the per-line indent
// strip budget: a newline closes the span through itself and re-arms
// the budget, leading spaces and tabs are consumed silently while
// budget remains, and any other character exhausts the budget for the
// rest of the line.
type assembler struct {
	text    *buffer.Text
	builder *Builder

	defaultFg style.Color
	defaultBg style.Color

	fg           style.Color
	bg           style.Color
	fgSet        bool
	bgSet        bool
	family       string
	fontStyle    style.Attribute
	fontStyleSet bool

	stripWidth  int
	stripBudget int
	spanStart   ByteOffset
}

func newAssembler(text *buffer.Text, builder *Builder, sch *scheme.Scheme, stripWidth int) *assembler {
	return &assembler{
		text:       text,
		builder:    builder,
		defaultFg:  sch.Foreground,
		defaultBg:  sch.Background,
		stripWidth: stripWidth,
		spanStart:  -1,
	}
}

// reset prepares for the next caret region. Pending style state
// survives so that a style unchanged across the stitch boundary does
// not open a redundant run.
func (a *assembler) reset() {
	a.spanStart = -1
	a.stripBudget = 0
}

// iterate drains the walker, emitting runs up to endOffset.
func (a *assembler) iterate(w *spanWalker, endOffset ByteOffset) error {
	for !w.atEnd() {
		if err := w.advance(); err != nil {
			return err
		}
		start := w.startOffset()
		if start >= endOffset {
			break
		}
		if a.spanStart < 0 {
			a.spanStart = start
		}
		blank := isBlank(a.text.Slice(start, w.endOffset()))
		a.processBackground(start, w.background)
		if !blank {
			a.processForeground(start, w.foreground)
			a.processFontFamily(start, w.fontFamily())
			a.processFontStyle(start, w.fontStyle)
		}
	}
	a.flushText(endOffset)
	return nil
}

func isBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r':
		default:
			return false
		}
	}
	return true
}

func (a *assembler) processForeground(offset ByteOffset, fg style.Color) {
	if !a.fgSet {
		if !fg.IsDefault() {
			a.flushText(offset)
			a.fg = fg
			a.fgSet = true
		}
		return
	}
	c := fg
	if c.IsDefault() {
		c = a.defaultFg
	}
	if !a.fg.Equals(c) {
		a.flushText(offset)
		a.fg = c
	}
}

func (a *assembler) processBackground(offset ByteOffset, bg style.Color) {
	if !a.bgSet {
		if !bg.IsDefault() && !bg.Equals(a.defaultBg) {
			a.flushText(offset)
			a.bg = bg
			a.bgSet = true
		}
		return
	}
	c := bg
	if c.IsDefault() {
		c = a.defaultBg
	}
	if !a.bg.Equals(c) {
		a.flushText(offset)
		a.bg = c
	}
}

func (a *assembler) processFontFamily(offset ByteOffset, family string) {
	if family != a.family {
		a.flushText(offset)
		a.family = family
	}
}

func (a *assembler) processFontStyle(offset ByteOffset, fs style.Attribute) {
	if !a.fontStyleSet || fs != a.fontStyle {
		a.flushText(offset)
		a.fontStyle = fs
		a.fontStyleSet = true
	}
}

// flushText emits the pending source span [spanStart, endOffset)
// under the current run state, applying the indent strip budget.
func (a *assembler) flushText(endOffset ByteOffset) {
	if a.spanStart < 0 || endOffset <= a.spanStart {
		return
	}
	base := a.spanStart
	src := a.text.Slice(base, endOffset)
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '\n':
			a.stripBudget = a.stripWidth
			a.appendRun(a.spanStart, base+ByteOffset(i)+1)
			a.spanStart = base + ByteOffset(i) + 1
		case ' ', '\t':
			if a.stripBudget > 0 {
				a.stripBudget--
				a.spanStart++
				continue
			}
			a.stripBudget = 0
		default:
			a.stripBudget = 0
		}
	}
	if a.spanStart < endOffset {
		a.appendRun(a.spanStart, endOffset)
	}
	a.spanStart = endOffset
}

func (a *assembler) appendRun(from, to ByteOffset) {
	if to <= from {
		return
	}
	a.builder.Append(a.text.Slice(from, to), a.currentAttributes())
}

// appendSeparator stitches two caret regions together: the previous
// region's fill padding, then a virtual newline, both styled with the
// carried run state.
func (a *assembler) appendSeparator(fill int) {
	a.builder.Append(strings.Repeat(" ", fill)+"\n", a.currentAttributes())
}

func (a *assembler) currentAttributes() style.TextAttributes {
	attrs := style.PlainAttributes()
	if a.fgSet {
		attrs.Foreground = a.fg
	}
	if a.bgSet {
		attrs.Background = a.bg
	}
	attrs.FontFamily = a.family
	if a.fontStyleSet {
		attrs.FontStyle = a.fontStyle
	}
	return attrs
}
