package richtext

import (
	"errors"
	"testing"

	"github.com/dshills/richclip/internal/highlight"
	"github.com/dshills/richclip/internal/scheme"
	"github.com/dshills/richclip/internal/style"
)

type fakeTokenSpan struct {
	start, end ByteOffset
	typ        highlight.TokenType
}

type fakeTokens struct {
	spans []fakeTokenSpan
	idx   int
}

func (f *fakeTokens) AtEnd() bool { return f.idx >= len(f.spans) }

func (f *fakeTokens) Advance() {
	if f.idx < len(f.spans) {
		f.idx++
	}
}

func (f *fakeTokens) Start() ByteOffset { return f.spans[f.idx].start }

func (f *fakeTokens) End() ByteOffset { return f.spans[f.idx].end }

func (f *fakeTokens) Type() highlight.TokenType { return f.spans[f.idx].typ }

func tokenScheme(strings style.Color) *scheme.Scheme {
	sch := testScheme()
	sch.TokenStyles = map[highlight.TokenType]style.TextAttributes{
		highlight.TokenString: fgAttrs(strings),
	}
	return sch
}

func drainHighlight(t *testing.T, h *HighlightIterator) []stubSpan {
	t.Helper()
	var got []stubSpan
	for !h.AtEnd() {
		if err := h.Advance(); err != nil {
			t.Fatalf("Advance() error = %v", err)
		}
		got = append(got, stubSpan{start: h.RangeStart(), end: h.RangeEnd(), attrs: h.Attributes()})
	}
	return got
}

func TestHighlightIteratorClampsToWindow(t *testing.T) {
	red := style.ColorFromRGB(0xFF, 0, 0)
	src := &fakeTokens{spans: []fakeTokenSpan{
		{0, 5, highlight.TokenString},
		{5, 12, highlight.TokenNone},
	}}
	h := NewHighlightIterator(src, tokenScheme(red), 3, 9)
	got := drainHighlight(t, h)

	if len(got) != 2 {
		t.Fatalf("ranges = %d, want 2", len(got))
	}
	if got[0].start != 3 || got[0].end != 5 {
		t.Errorf("first range = [%d:%d), want clamped [3:5)", got[0].start, got[0].end)
	}
	if !got[0].attrs.Foreground.Equals(red) {
		t.Errorf("first range fg = %s, want %s", got[0].attrs.Foreground, red)
	}
	if got[1].start != 5 || got[1].end != 9 {
		t.Errorf("second range = [%d:%d), want clamped [5:9)", got[1].start, got[1].end)
	}
	if !got[1].attrs.Equals(style.PlainAttributes()) {
		t.Errorf("unstyled token attrs = %+v, want plain", got[1].attrs)
	}
}

func TestHighlightIteratorSkipsIllegal(t *testing.T) {
	red := style.ColorFromRGB(0xFF, 0, 0)
	src := &fakeTokens{spans: []fakeTokenSpan{
		{0, 2, highlight.TokenInvalidIllegal},
		{2, 4, highlight.TokenString},
		{4, 6, highlight.TokenInvalidIllegal},
		{6, 8, highlight.TokenString},
	}}
	h := NewHighlightIterator(src, tokenScheme(red), 0, 8)
	got := drainHighlight(t, h)

	if len(got) != 2 {
		t.Fatalf("ranges = %d, want 2 with illegal tokens skipped", len(got))
	}
	if got[0].start != 2 || got[0].end != 4 || got[1].start != 6 || got[1].end != 8 {
		t.Errorf("ranges = [%d:%d) [%d:%d), want [2:4) [6:8)",
			got[0].start, got[0].end, got[1].start, got[1].end)
	}
}

func TestHighlightIteratorStopsAtWindowEnd(t *testing.T) {
	src := &fakeTokens{spans: []fakeTokenSpan{
		{0, 3, highlight.TokenString},
		{10, 12, highlight.TokenString},
	}}
	h := NewHighlightIterator(src, tokenScheme(style.ColorFromRGB(1, 1, 1)), 0, 5)
	got := drainHighlight(t, h)

	if len(got) != 1 {
		t.Fatalf("ranges = %d, want 1: the second token starts past the window", len(got))
	}
	if got[0].start != 0 || got[0].end != 3 {
		t.Errorf("range = [%d:%d), want [0:3)", got[0].start, got[0].end)
	}
}

func TestHighlightIteratorAdvancePastEnd(t *testing.T) {
	src := &fakeTokens{spans: []fakeTokenSpan{{0, 3, highlight.TokenString}}}
	h := NewHighlightIterator(src, tokenScheme(style.ColorFromRGB(1, 1, 1)), 0, 3)
	drainHighlight(t, h)
	if err := h.Advance(); !errors.Is(err, ErrExhausted) {
		t.Errorf("Advance() past end = %v, want ErrExhausted", err)
	}
}

func TestHighlightIteratorAllIllegalAtEnd(t *testing.T) {
	src := &fakeTokens{spans: []fakeTokenSpan{
		{0, 2, highlight.TokenInvalidIllegal},
		{2, 4, highlight.TokenInvalidIllegal},
	}}
	h := NewHighlightIterator(src, tokenScheme(style.ColorFromRGB(1, 1, 1)), 0, 4)
	if !h.AtEnd() {
		t.Error("iterator over only illegal tokens should start at end")
	}
}
