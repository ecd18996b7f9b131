package scheme

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/richclip/internal/style"
)

// Derivation helpers for colors the scheme does not spell out, such as
// preview chrome and serializers that must keep text readable on
// non-scheme backgrounds. Default and indexed colors pass through
// untouched; there is nothing to compute with.

func toColorful(c style.Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(c colorful.Color) style.Color {
	c = c.Clamped()
	return style.ColorFromRGB(
		uint8(c.R*255.0+0.5),
		uint8(c.G*255.0+0.5),
		uint8(c.B*255.0+0.5),
	)
}

// RelativeLuminance returns the WCAG relative luminance of a color in
// [0, 1]. Default and indexed colors report 0.
func RelativeLuminance(c style.Color) float64 {
	if c.IsDefault() || c.Indexed {
		return 0
	}
	r, g, b := toColorful(c).LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns the WCAG contrast ratio between two colors,
// from 1 (identical) to 21 (black on white).
func ContrastRatio(a, b style.Color) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// Lighten moves a color toward white by amount in [0, 1].
func Lighten(c style.Color, amount float64) style.Color {
	if c.IsDefault() || c.Indexed {
		return c
	}
	return fromColorful(toColorful(c).BlendLab(colorful.Color{R: 1, G: 1, B: 1}, amount))
}

// Darken moves a color toward black by amount in [0, 1].
func Darken(c style.Color, amount float64) style.Color {
	if c.IsDefault() || c.Indexed {
		return c
	}
	return fromColorful(toColorful(c).BlendLab(colorful.Color{}, amount))
}

// EnsureContrast adjusts fg until it reaches at least the given
// contrast ratio against bg, stepping away from the background's side
// of the luminance scale. Returns fg unchanged when the ratio is
// already met or when either color is default or indexed.
func EnsureContrast(fg, bg style.Color, min float64) style.Color {
	if fg.IsDefault() || fg.Indexed || bg.IsDefault() || bg.Indexed {
		return fg
	}

	adjusted := fg
	darkBg := RelativeLuminance(bg) < 0.5
	for i := 0; i < 20 && ContrastRatio(adjusted, bg) < min; i++ {
		if darkBg {
			adjusted = Lighten(adjusted, 0.1)
		} else {
			adjusted = Darken(adjusted, 0.1)
		}
	}
	return adjusted
}

// DeriveLineHighlight produces a subtle variant of the background for
// marking the current line in previews.
func DeriveLineHighlight(bg style.Color) style.Color {
	if bg.IsDefault() || bg.Indexed {
		return bg
	}
	if RelativeLuminance(bg) < 0.5 {
		return Lighten(bg, 0.06)
	}
	return Darken(bg, 0.06)
}
