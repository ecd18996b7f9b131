// Package preview renders an export artifact in the terminal.
//
// The viewer lays the artifact text out in screen cells, with tab stops
// expanded and wide runes given two columns, and paints each style run
// with its colors and attributes. When live reload is enabled the
// artifact file is re-read on change and the view redrawn.
package preview

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/richclip/internal/config"
	"github.com/dshills/richclip/internal/richtext"
)

// Viewer is a scrollable artifact view.
type Viewer struct {
	screen tcell.Screen
	info   *richtext.SyntaxInfo
	lines  []lineSpan

	loader    func() (*richtext.SyntaxInfo, error)
	watchPath string

	title    string
	tabWidth int
	top      int
	left     int
	notice   string
}

// lineSpan is a line's byte range in the artifact text, newline excluded.
type lineSpan struct {
	start, end int
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithScreen uses the given screen instead of opening the terminal.
func WithScreen(s tcell.Screen) Option {
	return func(v *Viewer) {
		v.screen = s
	}
}

// WithLoader sets the function that re-reads the artifact on reload.
func WithLoader(fn func() (*richtext.SyntaxInfo, error)) Option {
	return func(v *Viewer) {
		v.loader = fn
	}
}

// WithLiveReload watches path and reloads the artifact when it changes.
// A loader must be set as well.
func WithLiveReload(path string) Option {
	return func(v *Viewer) {
		v.watchPath = path
	}
}

// WithTabWidth sets the tab stop width.
func WithTabWidth(n int) Option {
	return func(v *Viewer) {
		if n >= 1 {
			v.tabWidth = n
		}
	}
}

// WithTitle sets the status line title.
func WithTitle(title string) Option {
	return func(v *Viewer) {
		if title != "" {
			v.title = title
		}
	}
}

// New creates a viewer for the given artifact.
func New(info *richtext.SyntaxInfo, opts ...Option) *Viewer {
	v := &Viewer{
		title:    "artifact",
		tabWidth: 4,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.setInfo(info)
	return v
}

// reloadRequest and quitRequest wake the event loop through a tcell
// interrupt event.
type reloadRequest struct{}
type quitRequest struct{}

// Run owns the terminal until the user quits or ctx is canceled.
func (v *Viewer) Run(ctx context.Context) error {
	if v.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to open terminal: %w", err)
		}
		v.screen = s
	}
	if err := v.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer v.screen.Fini()

	if v.watchPath != "" && v.loader != nil {
		w, err := config.NewWatcher()
		if err != nil {
			return err
		}
		defer func() { _ = w.Close() }()
		if err := w.Watch(v.watchPath); err != nil {
			return err
		}
		go func() {
			for range w.Events() {
				_ = v.screen.PostEvent(tcell.NewEventInterrupt(reloadRequest{}))
			}
		}()
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = v.screen.PostEvent(tcell.NewEventInterrupt(quitRequest{}))
		case <-done:
		}
	}()

	v.draw()
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			v.screen.Sync()
			v.draw()
		case *tcell.EventInterrupt:
			switch ev.Data().(type) {
			case quitRequest:
				return ctx.Err()
			case reloadRequest:
				v.reload()
				v.draw()
			}
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return nil
			}
			v.draw()
		}
	}
}

// handleKey adjusts the viewport, reporting whether the viewer should
// quit. Scroll positions are clamped on the next draw.
func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	_, h := v.screen.Size()
	page := h - 2
	if page < 1 {
		page = 1
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.top--
	case tcell.KeyDown:
		v.top++
	case tcell.KeyLeft:
		v.left--
	case tcell.KeyRight:
		v.left++
	case tcell.KeyPgUp:
		v.top -= page
	case tcell.KeyPgDn:
		v.top += page
	case tcell.KeyHome:
		v.top, v.left = 0, 0
	case tcell.KeyEnd:
		v.top = len(v.lines)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'k':
			v.top--
		case 'j':
			v.top++
		case 'h':
			v.left--
		case 'l':
			v.left++
		case 'g':
			v.top, v.left = 0, 0
		case 'G':
			v.top = len(v.lines)
		case 'r':
			v.reload()
		}
	}
	return false
}

// reload swaps in a fresh artifact from the loader. A failing load keeps
// the current artifact and surfaces the error in the status line.
func (v *Viewer) reload() {
	if v.loader == nil {
		return
	}
	info, err := v.loader()
	if err != nil {
		v.notice = fmt.Sprintf("reload failed: %v", err)
		return
	}
	v.setInfo(info)
	v.notice = ""
}

func (v *Viewer) setInfo(info *richtext.SyntaxInfo) {
	if info == nil {
		info = &richtext.SyntaxInfo{}
	}
	v.info = info
	v.lines = splitLines(info.Text)
}

// splitLines indexes the artifact text by line. Text after the final
// newline forms a last line, so a trailing newline yields an empty one.
func splitLines(text string) []lineSpan {
	lines := make([]lineSpan, 0, strings.Count(text, "\n")+1)
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, lineSpan{start: start, end: i})
			start = i + 1
		}
	}
	return append(lines, lineSpan{start: start, end: len(text)})
}

// runIndexAt returns the index of the run covering the byte offset.
// Runs tile the text, so the first run ending past the offset is it.
func (v *Viewer) runIndexAt(off int) int {
	return sort.Search(len(v.info.Runs), func(i int) bool {
		return int(v.info.Runs[i].Range.End) > off
	})
}

func (v *Viewer) clampScroll(contentH int) {
	maxTop := len(v.lines) - contentH
	if maxTop < 0 {
		maxTop = 0
	}
	if v.top > maxTop {
		v.top = maxTop
	}
	if v.top < 0 {
		v.top = 0
	}
	if v.left < 0 {
		v.left = 0
	}
}

// draw repaints the whole screen: artifact lines above a status line.
func (v *Viewer) draw() {
	width, height := v.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}
	contentH := height - 1
	v.clampScroll(contentH)

	v.screen.Fill(' ', v.baseStyle())
	for row := 0; row < contentH; row++ {
		idx := v.top + row
		if idx >= len(v.lines) {
			break
		}
		v.drawLine(row, v.lines[idx], width)
	}
	v.drawStatus(width, height)
	v.screen.Show()
}

func (v *Viewer) drawLine(row int, ln lineSpan, width int) {
	text := v.info.Text[ln.start:ln.end]
	runIdx := v.runIndexAt(ln.start)

	visCol := 0
	off := ln.start
	for _, r := range text {
		if visCol-v.left >= width {
			break
		}
		for runIdx < len(v.info.Runs) && off >= int(v.info.Runs[runIdx].Range.End) {
			runIdx++
		}
		st := v.baseStyle()
		if runIdx < len(v.info.Runs) && off >= int(v.info.Runs[runIdx].Range.Start) {
			st = v.runStyle(v.info.Runs[runIdx])
		}

		if r == '\t' {
			stop := v.tabWidth - (visCol % v.tabWidth)
			for i := 0; i < stop; i++ {
				v.setCell(visCol, row, ' ', st, width)
				visCol++
			}
		} else if w := runewidth.RuneWidth(r); w > 0 {
			v.setCell(visCol, row, r, st, width)
			visCol += w
		}
		off += utf8.RuneLen(r)
	}
}

func (v *Viewer) setCell(visCol, row int, r rune, st tcell.Style, width int) {
	x := visCol - v.left
	if x < 0 || x >= width {
		return
	}
	v.screen.SetContent(x, row, r, nil, st)
}

func (v *Viewer) drawStatus(width, height int) {
	st := v.baseStyle().Reverse(true)
	row := height - 1
	for x := 0; x < width; x++ {
		v.screen.SetContent(x, row, ' ', nil, st)
	}

	left := " " + v.title
	if v.info.FontFamily != "" {
		left += fmt.Sprintf("  %s %dpt", v.info.FontFamily, v.info.FontSize)
	}

	right := fmt.Sprintf("%d runs  %d/%d  q quit ", len(v.info.Runs), v.top+1, len(v.lines))
	if v.loader != nil {
		right = fmt.Sprintf("%d runs  %d/%d  q quit  r reload ", len(v.info.Runs), v.top+1, len(v.lines))
	}
	if v.notice != "" {
		right = " " + v.notice + " "
	}

	v.drawText(0, row, left, st, width)
	v.drawText(width-runewidth.StringWidth(right), row, right, st, width)
}

func (v *Viewer) drawText(x, y int, text string, st tcell.Style, width int) {
	for _, r := range text {
		if x >= width {
			return
		}
		if x >= 0 {
			v.screen.SetContent(x, y, r, nil, st)
		}
		x += runewidth.RuneWidth(r)
	}
}
