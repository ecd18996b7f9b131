// Package script runs a user-provided Lua script as a serializer, so
// custom clipboard formats need no recompilation. The script defines
//
//	function serialize(info) ... return output end
//
// and receives the artifact as a table: text, font_family, font_size,
// foreground/background (hex strings, nil when the scheme default has
// no RGB form), and runs, an array of tables with from/to (1-based
// inclusive byte positions, ready for string.sub), text, foreground,
// background, font_family and the bold/italic/underline/strikethrough
// flags.
//
// Each call runs on a fresh interpreter with a deadline, so one
// Serializer is safe for concurrent use. The script loaders (dofile,
// loadfile, load, loadstring) are removed; everything else of the
// standard library is available, scripts being the user's own code.
package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/richclip/internal/richtext"
	"github.com/dshills/richclip/internal/serialize"
	"github.com/dshills/richclip/internal/style"
)

// DefaultTimeout bounds one script invocation.
const DefaultTimeout = 5 * time.Second

// serializeFn is the global function the script must define.
const serializeFn = "serialize"

var (
	// ErrNoSerializeFunc is returned when the script defines no serialize function.
	ErrNoSerializeFunc = errors.New("script does not define serialize()")

	// ErrBadResult is returned when serialize() returns a non-string.
	ErrBadResult = errors.New("script serialize() must return a string")
)

// Serializer renders SyntaxInfo through a Lua script.
type Serializer struct {
	name    string
	source  string
	timeout time.Duration
}

// Option configures a Serializer.
type Option func(*Serializer)

// WithTimeout bounds one script invocation.
func WithTimeout(d time.Duration) Option {
	return func(s *Serializer) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// NewFromString creates a script serializer from Lua source. The name
// becomes the registry format name.
func NewFromString(name, source string, opts ...Option) *Serializer {
	s := &Serializer{
		name:    name,
		source:  source,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromFile creates a script serializer from a Lua file. The format
// name is the file name without its extension.
func NewFromFile(path string, opts ...Option) (*Serializer, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return NewFromString(name, string(source), opts...), nil
}

// Format returns the registry name of the format.
func (s *Serializer) Format() string { return s.name }

// ContentType returns the MIME type of the produced output. Scripts
// produce arbitrary text, so this is always text/plain.
func (s *Serializer) ContentType() string { return "text/plain" }

// FileExtension returns the conventional file extension.
func (s *Serializer) FileExtension() string { return ".txt" }

// Serialize writes the artifact to w.
func (s *Serializer) Serialize(w io.Writer, info *richtext.SyntaxInfo) error {
	L := lua.NewState()
	defer L.Close()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	L.SetContext(ctx)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}

	if err := L.DoString(s.source); err != nil {
		return fmt.Errorf("failed to load script %q: %w", s.name, err)
	}

	fn := L.GetGlobal(serializeFn)
	if fn.Type() != lua.LTFunction {
		return fmt.Errorf("%w: script %q", ErrNoSerializeFunc, s.name)
	}

	if err := L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, infoTable(L, info)); err != nil {
		return fmt.Errorf("script %q failed: %w", s.name, err)
	}
	ret := L.Get(-1)
	L.Pop(1)

	str, ok := ret.(lua.LString)
	if !ok {
		return fmt.Errorf("%w: script %q returned %s", ErrBadResult, s.name, ret.Type())
	}

	if _, err := io.WriteString(w, string(str)); err != nil {
		return fmt.Errorf("failed to write script output: %w", err)
	}
	return nil
}

// infoTable converts the artifact to the Lua-side table shape.
func infoTable(L *lua.LState, info *richtext.SyntaxInfo) *lua.LTable {
	t := L.NewTable()
	L.SetField(t, "text", lua.LString(info.Text))
	L.SetField(t, "font_family", lua.LString(info.FontFamily))
	L.SetField(t, "font_size", lua.LNumber(info.FontSize))
	L.SetField(t, "foreground", colorValue(info.DefaultForeground))
	L.SetField(t, "background", colorValue(info.DefaultBackground))

	runs := L.NewTable()
	for i, run := range info.Runs {
		rt := L.NewTable()
		L.SetField(rt, "from", lua.LNumber(run.Range.Start+1))
		L.SetField(rt, "to", lua.LNumber(run.Range.End))
		L.SetField(rt, "text", lua.LString(info.Text[run.Range.Start:run.Range.End]))
		L.SetField(rt, "foreground", colorValue(run.Foreground))
		L.SetField(rt, "background", colorValue(run.Background))
		L.SetField(rt, "font_family", lua.LString(run.FontFamily))
		L.SetField(rt, "bold", lua.LBool(run.FontStyle.Has(style.AttrBold)))
		L.SetField(rt, "italic", lua.LBool(run.FontStyle.Has(style.AttrItalic)))
		L.SetField(rt, "underline", lua.LBool(run.FontStyle.Has(style.AttrUnderline)))
		L.SetField(rt, "strikethrough", lua.LBool(run.FontStyle.Has(style.AttrStrikethrough)))
		runs.RawSetInt(i+1, rt)
	}
	L.SetField(t, "runs", runs)
	return t
}

func colorValue(c style.Color) lua.LValue {
	if hex := c.ToHex(); hex != "" {
		return lua.LString(hex)
	}
	return lua.LNil
}

var _ serialize.Serializer = (*Serializer)(nil)
