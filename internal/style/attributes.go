package style

import "strings"

// Attribute represents font style flags (bold, italic, etc.).
type Attribute uint16

// Font style flags.
const (
	AttrNone          Attribute = 0
	AttrBold          Attribute = 1 << iota
	AttrItalic                  // Italic text
	AttrUnderline               // Underlined text
	AttrStrikethrough           // Strikethrough text
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Without returns a new attribute set with the given attribute removed.
func (a Attribute) Without(attr Attribute) Attribute {
	return a &^ attr
}

// IsPlain returns true if no font style flags are set.
func (a Attribute) IsPlain() bool {
	return a == AttrNone
}

// String returns a "|"-joined list of set flags, or "plain".
func (a Attribute) String() string {
	if a == AttrNone {
		return "plain"
	}
	var parts []string
	if a.Has(AttrBold) {
		parts = append(parts, "bold")
	}
	if a.Has(AttrItalic) {
		parts = append(parts, "italic")
	}
	if a.Has(AttrUnderline) {
		parts = append(parts, "underline")
	}
	if a.Has(AttrStrikethrough) {
		parts = append(parts, "strikethrough")
	}
	return strings.Join(parts, "|")
}

// TextAttributes is the resolved visual style of a text range: colors,
// logical font family and font style flags. FontFamily "" inherits the
// scheme's editor font.
type TextAttributes struct {
	Foreground Color
	Background Color
	FontFamily string
	FontStyle  Attribute
}

// PlainAttributes returns attributes carrying no visible styling: both
// colors default, inherited font family, plain font style.
func PlainAttributes() TextAttributes {
	return TextAttributes{
		Foreground: ColorDefault,
		Background: ColorDefault,
	}
}

// NewTextAttributes creates attributes with the given colors and style.
func NewTextAttributes(fg, bg Color, family string, fontStyle Attribute) TextAttributes {
	return TextAttributes{
		Foreground: fg,
		Background: bg,
		FontFamily: family,
		FontStyle:  fontStyle,
	}
}

// WithForeground returns a copy with the given foreground color.
func (t TextAttributes) WithForeground(fg Color) TextAttributes {
	t.Foreground = fg
	return t
}

// WithBackground returns a copy with the given background color.
func (t TextAttributes) WithBackground(bg Color) TextAttributes {
	t.Background = bg
	return t
}

// WithFontStyle returns a copy with the given font style flags.
func (t TextAttributes) WithFontStyle(fs Attribute) TextAttributes {
	t.FontStyle = fs
	return t
}

// WithFontFamily returns a copy with the given font family.
func (t TextAttributes) WithFontFamily(family string) TextAttributes {
	t.FontFamily = family
	return t
}

// Equals returns true if two attribute sets are structurally equal.
func (t TextAttributes) Equals(other TextAttributes) bool {
	return t.Foreground.Equals(other.Foreground) &&
		t.Background.Equals(other.Background) &&
		t.FontFamily == other.FontFamily &&
		t.FontStyle == other.FontStyle
}

// VisibleAgainst reports whether the attributes are distinguishable from
// the given scheme defaults: a non-default foreground or background, or a
// non-plain font style. Attributes that are not visible carry no styling
// worth a run boundary.
func (t TextAttributes) VisibleAgainst(defaultFg, defaultBg Color) bool {
	if !t.FontStyle.IsPlain() {
		return true
	}
	if !t.Foreground.IsDefault() && !t.Foreground.Equals(defaultFg) {
		return true
	}
	if !t.Background.IsDefault() && !t.Background.Equals(defaultBg) {
		return true
	}
	return false
}
