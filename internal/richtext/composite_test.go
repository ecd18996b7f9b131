package richtext

import (
	"errors"
	"testing"

	"github.com/dshills/richclip/internal/scheme"
	"github.com/dshills/richclip/internal/style"
)

type stubSpan struct {
	start, end ByteOffset
	attrs      style.TextAttributes
}

type stubIterator struct {
	spans    []stubSpan
	idx      int
	disposed int
}

func newStubIterator(spans ...stubSpan) *stubIterator {
	return &stubIterator{spans: spans, idx: -1}
}

func (s *stubIterator) AtEnd() bool {
	return s.idx+1 >= len(s.spans)
}

func (s *stubIterator) Advance() error {
	if s.AtEnd() {
		return ErrExhausted
	}
	s.idx++
	return nil
}

func (s *stubIterator) RangeStart() ByteOffset { return s.spans[s.idx].start }

func (s *stubIterator) RangeEnd() ByteOffset { return s.spans[s.idx].end }

func (s *stubIterator) Attributes() style.TextAttributes { return s.spans[s.idx].attrs }

func (s *stubIterator) Dispose() { s.disposed++ }

func testScheme() *scheme.Scheme {
	return &scheme.Scheme{
		Name:       "test",
		Foreground: style.ColorFromRGB(0xD4, 0xD4, 0xD4),
		Background: style.ColorFromRGB(0x1E, 0x1E, 0x1E),
		FontFamily: "Test Mono",
		FontSize:   12,
	}
}

func fgAttrs(c style.Color) style.TextAttributes {
	return style.PlainAttributes().WithForeground(c)
}

func bgAttrs(c style.Color) style.TextAttributes {
	return style.PlainAttributes().WithBackground(c)
}

func drainComposite(t *testing.T, c *CompositeIterator) []stubSpan {
	t.Helper()
	var got []stubSpan
	for !c.AtEnd() {
		if err := c.Advance(); err != nil {
			t.Fatalf("Advance() error = %v", err)
		}
		got = append(got, stubSpan{start: c.RangeStart(), end: c.RangeEnd(), attrs: c.Attributes()})
	}
	return got
}

func TestCompositeSingleSourcePassThrough(t *testing.T) {
	red := style.ColorFromRGB(0xFF, 0, 0)
	src := newStubIterator(
		stubSpan{start: 0, end: 4, attrs: fgAttrs(red)},
		stubSpan{start: 4, end: 9, attrs: style.PlainAttributes()},
	)
	c := NewCompositeIterator(testScheme(), src)
	got := drainComposite(t, c)

	if len(got) != 2 {
		t.Fatalf("sub-ranges = %d, want 2", len(got))
	}
	if got[0].start != 0 || got[0].end != 4 || !got[0].attrs.Foreground.Equals(red) {
		t.Errorf("first sub-range = [%d:%d) fg %s", got[0].start, got[0].end, got[0].attrs.Foreground)
	}
	if got[1].start != 4 || got[1].end != 9 {
		t.Errorf("second sub-range = [%d:%d), want [4:9)", got[1].start, got[1].end)
	}
}

func TestCompositeOverlayCutsToken(t *testing.T) {
	red := style.ColorFromRGB(0xFF, 0, 0)
	yellow := style.ColorFromRGB(0xFF, 0xFF, 0)
	token := newStubIterator(stubSpan{start: 0, end: 10, attrs: fgAttrs(red)})
	overlay := newStubIterator(stubSpan{start: 3, end: 6, attrs: bgAttrs(yellow)})

	c := NewCompositeIterator(testScheme(), token, overlay)
	got := drainComposite(t, c)

	want := []struct {
		start, end ByteOffset
		fg, bg     style.Color
	}{
		{0, 3, red, style.ColorDefault},
		{3, 6, red, yellow},
		{6, 10, red, style.ColorDefault},
	}
	if len(got) != len(want) {
		t.Fatalf("sub-ranges = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		g := got[i]
		if g.start != w.start || g.end != w.end {
			t.Errorf("sub-range %d = [%d:%d), want [%d:%d)", i, g.start, g.end, w.start, w.end)
		}
		if !g.attrs.Foreground.Equals(w.fg) {
			t.Errorf("sub-range %d fg = %s, want %s", i, g.attrs.Foreground, w.fg)
		}
		if !g.attrs.Background.Equals(w.bg) {
			t.Errorf("sub-range %d bg = %s, want %s", i, g.attrs.Background, w.bg)
		}
	}
}

func TestCompositeLastSourceWinsTies(t *testing.T) {
	red := style.ColorFromRGB(0xFF, 0, 0)
	blue := style.ColorFromRGB(0, 0, 0xFF)
	low := newStubIterator(stubSpan{start: 0, end: 5, attrs: fgAttrs(red)})
	high := newStubIterator(stubSpan{start: 0, end: 5, attrs: fgAttrs(blue)})

	c := NewCompositeIterator(testScheme(), low, high)
	got := drainComposite(t, c)

	if len(got) != 1 {
		t.Fatalf("sub-ranges = %d, want 1", len(got))
	}
	if !got[0].attrs.Foreground.Equals(blue) {
		t.Errorf("merged fg = %s, want the later source's %s", got[0].attrs.Foreground, blue)
	}
}

func TestCompositeFillsUnsetFromLowerPriority(t *testing.T) {
	red := style.ColorFromRGB(0xFF, 0, 0)
	yellow := style.ColorFromRGB(0xFF, 0xFF, 0)
	low := newStubIterator(stubSpan{start: 0, end: 5, attrs: fgAttrs(red).WithFontStyle(style.AttrItalic)})
	high := newStubIterator(stubSpan{start: 0, end: 5, attrs: bgAttrs(yellow)})

	c := NewCompositeIterator(testScheme(), low, high)
	got := drainComposite(t, c)

	if len(got) != 1 {
		t.Fatalf("sub-ranges = %d, want 1", len(got))
	}
	a := got[0].attrs
	if !a.Foreground.Equals(red) {
		t.Errorf("fg = %s, want filled %s", a.Foreground, red)
	}
	if !a.Background.Equals(yellow) {
		t.Errorf("bg = %s, want %s", a.Background, yellow)
	}
	if a.FontStyle != style.AttrItalic {
		t.Errorf("font style = %s, want italic filled from lower priority", a.FontStyle)
	}
}

func TestCompositeNonDefaultNotClobbered(t *testing.T) {
	red := style.ColorFromRGB(0xFF, 0, 0)
	blue := style.ColorFromRGB(0, 0, 0xFF)
	low := newStubIterator(stubSpan{start: 0, end: 5, attrs: fgAttrs(red).WithFontStyle(style.AttrItalic)})
	high := newStubIterator(stubSpan{start: 0, end: 5, attrs: fgAttrs(blue).WithFontStyle(style.AttrBold)})

	c := NewCompositeIterator(testScheme(), low, high)
	got := drainComposite(t, c)

	a := got[0].attrs
	if !a.Foreground.Equals(blue) {
		t.Errorf("fg = %s, want %s kept from the higher priority", a.Foreground, blue)
	}
	if a.FontStyle != style.AttrBold {
		t.Errorf("font style = %s, want the first non-plain by priority", a.FontStyle)
	}
}

func TestCompositeJumpsSourceGaps(t *testing.T) {
	src := newStubIterator(
		stubSpan{start: 0, end: 2, attrs: style.PlainAttributes()},
		stubSpan{start: 5, end: 7, attrs: style.PlainAttributes()},
	)
	c := NewCompositeIterator(testScheme(), src)
	got := drainComposite(t, c)

	if len(got) != 2 {
		t.Fatalf("sub-ranges = %d, want 2", len(got))
	}
	if got[0].start != 0 || got[0].end != 2 || got[1].start != 5 || got[1].end != 7 {
		t.Errorf("sub-ranges = [%d:%d) [%d:%d), want [0:2) [5:7)",
			got[0].start, got[0].end, got[1].start, got[1].end)
	}
}

func TestCompositeTilesWindow(t *testing.T) {
	red := style.ColorFromRGB(0xFF, 0, 0)
	green := style.ColorFromRGB(0, 0xFF, 0)
	yellow := style.ColorFromRGB(0xFF, 0xFF, 0)
	tokens := newStubIterator(
		stubSpan{start: 0, end: 3, attrs: fgAttrs(red)},
		stubSpan{start: 3, end: 8, attrs: style.PlainAttributes()},
		stubSpan{start: 8, end: 12, attrs: fgAttrs(green)},
	)
	overlay := newStubIterator(
		stubSpan{start: 2, end: 5, attrs: bgAttrs(yellow)},
		stubSpan{start: 9, end: 12, attrs: bgAttrs(yellow)},
	)

	c := NewCompositeIterator(testScheme(), tokens, overlay)
	got := drainComposite(t, c)

	var pos ByteOffset
	for i, g := range got {
		if g.start != pos {
			t.Errorf("sub-range %d starts at %d, want %d (no gaps, no overlaps)", i, g.start, pos)
		}
		if g.end <= g.start {
			t.Errorf("sub-range %d = [%d:%d) is empty", i, g.start, g.end)
		}
		pos = g.end
	}
	if pos != 12 {
		t.Errorf("union ends at %d, want 12", pos)
	}
}

func TestCompositeDisposesSources(t *testing.T) {
	a := newStubIterator(stubSpan{start: 0, end: 4, attrs: style.PlainAttributes()})
	b := newStubIterator(stubSpan{start: 2, end: 6, attrs: bgAttrs(style.ColorFromRGB(1, 2, 3))})

	c := NewCompositeIterator(testScheme(), a, b)
	drainComposite(t, c)
	c.Dispose()
	c.Dispose()

	if a.disposed != 1 {
		t.Errorf("source a disposed %d times, want exactly once", a.disposed)
	}
	if b.disposed != 1 {
		t.Errorf("source b disposed %d times, want exactly once", b.disposed)
	}
}

func TestCompositeAdvancePastEnd(t *testing.T) {
	c := NewCompositeIterator(testScheme(), newStubIterator(stubSpan{start: 0, end: 1, attrs: style.PlainAttributes()}))
	drainComposite(t, c)
	if err := c.Advance(); !errors.Is(err, ErrExhausted) {
		t.Errorf("Advance() past end = %v, want ErrExhausted", err)
	}
}
