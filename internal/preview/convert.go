package preview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/richclip/internal/richtext"
	"github.com/dshills/richclip/internal/style"
)

// baseStyle is the scheme's default colors on a tcell style. Artifact
// defaults that are themselves terminal defaults stay terminal defaults.
func (v *Viewer) baseStyle() tcell.Style {
	return tcell.StyleDefault.
		Foreground(convertColor(v.info.DefaultForeground)).
		Background(convertColor(v.info.DefaultBackground))
}

// runStyle layers a run's colors and attributes over the base style.
func (v *Viewer) runStyle(run richtext.StyleRun) tcell.Style {
	st := v.baseStyle()
	if !run.Foreground.IsDefault() {
		st = st.Foreground(convertColor(run.Foreground))
	}
	if !run.Background.IsDefault() {
		st = st.Background(convertColor(run.Background))
	}
	if run.FontStyle.Has(style.AttrBold) {
		st = st.Bold(true)
	}
	if run.FontStyle.Has(style.AttrItalic) {
		st = st.Italic(true)
	}
	if run.FontStyle.Has(style.AttrUnderline) {
		st = st.Underline(true)
	}
	if run.FontStyle.Has(style.AttrStrikethrough) {
		st = st.StrikeThrough(true)
	}
	return st
}

func convertColor(c style.Color) tcell.Color {
	if c.IsDefault() {
		return tcell.ColorDefault
	}
	if c.Indexed {
		return tcell.PaletteColor(int(c.R))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
