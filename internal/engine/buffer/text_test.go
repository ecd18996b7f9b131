package buffer

import (
	"strings"
	"testing"
)

func TestNewTextLineIndex(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLines int
	}{
		{name: "empty", input: "", wantLines: 1},
		{name: "single line", input: "hello", wantLines: 1},
		{name: "two lines", input: "hello\nworld", wantLines: 2},
		{name: "trailing newline", input: "hello\n", wantLines: 2},
		{name: "blank lines", input: "a\n\n\nb", wantLines: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := NewText(tt.input)
			if got := text.LineCount(); got != tt.wantLines {
				t.Errorf("LineCount() = %d, want %d", got, tt.wantLines)
			}
			if got := text.Len(); got != ByteOffset(len(tt.input)) {
				t.Errorf("Len() = %d, want %d", got, len(tt.input))
			}
		})
	}
}

func TestLineOffsets(t *testing.T) {
	text := NewText("foo\nbar baz\n\nlast")

	tests := []struct {
		line      int
		wantStart ByteOffset
		wantEnd   ByteOffset
		wantText  string
	}{
		{line: 0, wantStart: 0, wantEnd: 3, wantText: "foo"},
		{line: 1, wantStart: 4, wantEnd: 11, wantText: "bar baz"},
		{line: 2, wantStart: 12, wantEnd: 12, wantText: ""},
		{line: 3, wantStart: 13, wantEnd: 17, wantText: "last"},
	}

	for _, tt := range tests {
		start, err := text.LineStartOffset(tt.line)
		if err != nil {
			t.Fatalf("LineStartOffset(%d): %v", tt.line, err)
		}
		if start != tt.wantStart {
			t.Errorf("LineStartOffset(%d) = %d, want %d", tt.line, start, tt.wantStart)
		}

		end, err := text.LineEndOffset(tt.line)
		if err != nil {
			t.Fatalf("LineEndOffset(%d): %v", tt.line, err)
		}
		if end != tt.wantEnd {
			t.Errorf("LineEndOffset(%d) = %d, want %d", tt.line, end, tt.wantEnd)
		}

		line, err := text.LineText(tt.line)
		if err != nil {
			t.Fatalf("LineText(%d): %v", tt.line, err)
		}
		if line != tt.wantText {
			t.Errorf("LineText(%d) = %q, want %q", tt.line, line, tt.wantText)
		}
	}

	if _, err := text.LineStartOffset(4); err == nil {
		t.Error("LineStartOffset(4) expected error")
	}
	if _, err := text.LineEndOffset(-1); err == nil {
		t.Error("LineEndOffset(-1) expected error")
	}
}

func TestLineOfOffset(t *testing.T) {
	text := NewText("ab\ncd\nef")

	tests := []struct {
		offset ByteOffset
		want   int
	}{
		{offset: 0, want: 0},
		{offset: 2, want: 0}, // the newline belongs to line 0
		{offset: 3, want: 1},
		{offset: 5, want: 1},
		{offset: 6, want: 2},
		{offset: 8, want: 2}, // Len() maps to the last line
	}

	for _, tt := range tests {
		got, err := text.LineOfOffset(tt.offset)
		if err != nil {
			t.Fatalf("LineOfOffset(%d): %v", tt.offset, err)
		}
		if got != tt.want {
			t.Errorf("LineOfOffset(%d) = %d, want %d", tt.offset, got, tt.want)
		}
	}

	if _, err := text.LineOfOffset(9); err == nil {
		t.Error("LineOfOffset past end expected error")
	}
	if _, err := text.LineOfOffset(-1); err == nil {
		t.Error("LineOfOffset(-1) expected error")
	}
}

func TestOffsetPointRoundTrip(t *testing.T) {
	text := NewText("hello\nwide 世界\nend")

	for _, offset := range []ByteOffset{0, 3, 6, 11, ByteOffset(len("hello\nwide 世界"))} {
		p, err := text.OffsetToPoint(offset)
		if err != nil {
			t.Fatalf("OffsetToPoint(%d): %v", offset, err)
		}
		back, err := text.PointToOffset(p)
		if err != nil {
			t.Fatalf("PointToOffset(%v): %v", p, err)
		}
		if back != offset {
			t.Errorf("round trip %d -> %v -> %d", offset, p, back)
		}
	}
}

func TestRuneAt(t *testing.T) {
	text := NewText("aβ世")

	r, size := text.RuneAt(0)
	if r != 'a' || size != 1 {
		t.Errorf("RuneAt(0) = %q,%d", r, size)
	}
	r, size = text.RuneAt(1)
	if r != 'β' || size != 2 {
		t.Errorf("RuneAt(1) = %q,%d", r, size)
	}
	r, size = text.RuneAt(3)
	if r != '世' || size != 3 {
		t.Errorf("RuneAt(3) = %q,%d", r, size)
	}
	if _, size = text.RuneAt(text.Len()); size != 0 {
		t.Errorf("RuneAt(Len()) width = %d, want 0", size)
	}
}

func TestSlice(t *testing.T) {
	text := NewText("0123456789")

	tests := []struct {
		start, end ByteOffset
		want       string
	}{
		{start: 0, end: 4, want: "0123"},
		{start: 4, end: 4, want: ""},
		{start: 8, end: 20, want: "89"},
		{start: -3, end: 2, want: "01"},
		{start: 7, end: 3, want: ""},
	}

	for _, tt := range tests {
		if got := text.Slice(tt.start, tt.end); got != tt.want {
			t.Errorf("Slice(%d,%d) = %q, want %q", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestNewTextFromReader(t *testing.T) {
	text, err := NewTextFromReader(strings.NewReader("a\nb"))
	if err != nil {
		t.Fatalf("NewTextFromReader: %v", err)
	}
	if text.String() != "a\nb" {
		t.Errorf("String() = %q", text.String())
	}
	if text.LineCount() != 2 {
		t.Errorf("LineCount() = %d, want 2", text.LineCount())
	}
}
