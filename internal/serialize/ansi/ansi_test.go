package ansi

import (
	"errors"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/dshills/richclip/internal/richtext"
	"github.com/dshills/richclip/internal/style"
)

func testInfo(t *testing.T, appendRuns func(b *richtext.Builder)) *richtext.SyntaxInfo {
	t.Helper()
	b := richtext.NewBuilder(
		style.ColorFromRGB(0xD4, 0xD4, 0xD4),
		style.ColorFromRGB(0x1E, 0x1E, 0x1E),
		"Test Mono", 12,
	)
	appendRuns(b)
	return b.Build()
}

func render(t *testing.T, s *Serializer, info *richtext.SyntaxInfo) string {
	t.Helper()
	var out strings.Builder
	if err := s.Serialize(&out, info); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	return out.String()
}

func TestSerializeTrueColor(t *testing.T) {
	red := style.ColorFromRGB(0xFF, 0x00, 0x00)
	info := testInfo(t, func(b *richtext.Builder) {
		b.Append("err", style.PlainAttributes().WithForeground(red).WithFontStyle(style.AttrBold))
		b.Append("ok", style.PlainAttributes())
	})

	got := render(t, New(), info)
	if !strings.Contains(got, "38;2;255;0;0") {
		t.Errorf("missing truecolor foreground: %q", got)
	}
	if !strings.Contains(got, "\x1b[0m") {
		t.Errorf("missing reset: %q", got)
	}
	if !strings.Contains(got, "err") || !strings.Contains(got, "ok") {
		t.Errorf("missing text: %q", got)
	}
}

func TestSerializePlainRunsUnstyled(t *testing.T) {
	info := testInfo(t, func(b *richtext.Builder) {
		b.Append("hello\nworld", style.PlainAttributes())
	})

	got := render(t, New(), info)
	if got != "hello\nworld" {
		t.Errorf("plain output = %q, want bare text", got)
	}
}

func TestSerializeSchemeDefaultSkipped(t *testing.T) {
	// Colors materialized to the scheme defaults carry no information;
	// the terminal palette stays in charge.
	info := testInfo(t, func(b *richtext.Builder) {
		attrs := style.PlainAttributes().
			WithForeground(style.ColorFromRGB(0xD4, 0xD4, 0xD4)).
			WithBackground(style.ColorFromRGB(0x1E, 0x1E, 0x1E))
		b.Append("x", attrs)
	})

	got := render(t, New(), info)
	if got != "x" {
		t.Errorf("output = %q, want %q", got, "x")
	}
}

func TestSerializeSchemeColorsPaintDefaults(t *testing.T) {
	info := testInfo(t, func(b *richtext.Builder) {
		b.Append("x", style.PlainAttributes())
	})

	got := render(t, New(WithSchemeColors(true)), info)
	if !strings.Contains(got, "38;2;212;212;212") {
		t.Errorf("default foreground not painted: %q", got)
	}
	if !strings.Contains(got, "48;2;30;30;30") {
		t.Errorf("default background not painted: %q", got)
	}
}

func TestSerializeAsciiProfileStripsColor(t *testing.T) {
	red := style.ColorFromRGB(0xFF, 0x00, 0x00)
	info := testInfo(t, func(b *richtext.Builder) {
		b.Append("x", style.PlainAttributes().WithForeground(red))
	})

	got := render(t, New(WithProfile(termenv.Ascii)), info)
	if got != "x" {
		t.Errorf("ascii output = %q, want bare text", got)
	}
}

func TestParseProfile(t *testing.T) {
	tests := []struct {
		name string
		want termenv.Profile
	}{
		{name: "truecolor", want: termenv.TrueColor},
		{name: "256", want: termenv.ANSI256},
		{name: "16", want: termenv.ANSI},
		{name: "none", want: termenv.Ascii},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProfile(tt.name)
			if err != nil {
				t.Fatalf("ParseProfile(%q): %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("profile = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := ParseProfile("vga"); !errors.Is(err, ErrUnknownProfile) {
		t.Errorf("err = %v, want ErrUnknownProfile", err)
	}
}

func TestFormatMetadata(t *testing.T) {
	s := New()
	if s.Format() != "ansi" || s.ContentType() != "text/plain" || s.FileExtension() != ".ans" {
		t.Errorf("metadata = %q/%q/%q", s.Format(), s.ContentType(), s.FileExtension())
	}
}
