// Package pack encodes styled-text artifacts in a compact msgpack
// interchange form, so an export can be piped between tools or cached
// and re-rendered later without repeating the merge. Runs are stored as
// parallel arrays; colors pack into one uint32 apiece.
package pack

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/dshills/richclip/internal/engine/buffer"
	"github.com/dshills/richclip/internal/richtext"
	"github.com/dshills/richclip/internal/serialize"
	"github.com/dshills/richclip/internal/style"
)

// SchemaVersion is incremented when the payload format changes.
const SchemaVersion uint16 = 1

var (
	// ErrSchema is returned when a payload carries an unknown schema version.
	ErrSchema = errors.New("unsupported artifact schema")

	// ErrCorrupt is returned when a payload fails structural validation.
	ErrCorrupt = errors.New("corrupt artifact payload")
)

// Payload is the wire form of a SyntaxInfo artifact.
type Payload struct {
	Schema uint16

	Text       string
	Foreground uint32
	Background uint32
	FontFamily string
	FontSize   int32

	// Parallel per-run arrays.
	RunStarts      []int64
	RunEnds        []int64
	RunForegrounds []uint32
	RunBackgrounds []uint32
	RunFamilies    []string
	RunStyles      []uint16
}

const (
	colorFlagDefault = 1 << 24
	colorFlagIndexed = 1 << 25
)

func colorBits(c style.Color) uint32 {
	switch {
	case c.Default:
		return colorFlagDefault
	case c.Indexed:
		return colorFlagIndexed | uint32(c.R)
	default:
		return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	}
}

func colorFromBits(v uint32) style.Color {
	switch {
	case v&colorFlagDefault != 0:
		return style.ColorDefault
	case v&colorFlagIndexed != 0:
		return style.ColorFromIndex(uint8(v))
	default:
		return style.ColorFromRGB(uint8(v>>16), uint8(v>>8), uint8(v))
	}
}

// Encode writes the artifact to w in msgpack form.
func Encode(w io.Writer, info *richtext.SyntaxInfo) error {
	p := &Payload{
		Schema:     SchemaVersion,
		Text:       info.Text,
		Foreground: colorBits(info.DefaultForeground),
		Background: colorBits(info.DefaultBackground),
		FontFamily: info.FontFamily,
		FontSize:   int32(info.FontSize),

		RunStarts:      make([]int64, len(info.Runs)),
		RunEnds:        make([]int64, len(info.Runs)),
		RunForegrounds: make([]uint32, len(info.Runs)),
		RunBackgrounds: make([]uint32, len(info.Runs)),
		RunFamilies:    make([]string, len(info.Runs)),
		RunStyles:      make([]uint16, len(info.Runs)),
	}
	for i, run := range info.Runs {
		p.RunStarts[i] = int64(run.Range.Start)
		p.RunEnds[i] = int64(run.Range.End)
		p.RunForegrounds[i] = colorBits(run.Foreground)
		p.RunBackgrounds[i] = colorBits(run.Background)
		p.RunFamilies[i] = run.FontFamily
		p.RunStyles[i] = uint16(run.FontStyle)
	}

	if err := msgpack.NewEncoder(w).Encode(p); err != nil {
		return fmt.Errorf("failed to encode artifact: %w", err)
	}
	return nil
}

// Decode reads a msgpack artifact and reconstructs the SyntaxInfo.
func Decode(r io.Reader) (*richtext.SyntaxInfo, error) {
	var p Payload
	if err := msgpack.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to decode artifact: %w", err)
	}
	if p.Schema != SchemaVersion {
		return nil, fmt.Errorf("%w: version %d", ErrSchema, p.Schema)
	}

	n := len(p.RunStarts)
	if len(p.RunEnds) != n || len(p.RunForegrounds) != n ||
		len(p.RunBackgrounds) != n || len(p.RunFamilies) != n ||
		len(p.RunStyles) != n {
		return nil, fmt.Errorf("%w: run arrays disagree on length", ErrCorrupt)
	}

	runs := make([]richtext.StyleRun, n)
	var prevEnd int64
	for i := 0; i < n; i++ {
		start, end := p.RunStarts[i], p.RunEnds[i]
		if start != prevEnd || end < start || end > int64(len(p.Text)) {
			return nil, fmt.Errorf("%w: run %d spans [%d,%d)", ErrCorrupt, i, start, end)
		}
		prevEnd = end
		runs[i] = richtext.StyleRun{
			Range:      buffer.NewRange(buffer.ByteOffset(start), buffer.ByteOffset(end)),
			Foreground: colorFromBits(p.RunForegrounds[i]),
			Background: colorFromBits(p.RunBackgrounds[i]),
			FontFamily: p.RunFamilies[i],
			FontStyle:  style.Attribute(p.RunStyles[i]),
		}
	}
	if prevEnd != int64(len(p.Text)) {
		return nil, fmt.Errorf("%w: runs cover %d of %d bytes", ErrCorrupt, prevEnd, len(p.Text))
	}

	return &richtext.SyntaxInfo{
		Text:              p.Text,
		Runs:              runs,
		DefaultForeground: colorFromBits(p.Foreground),
		DefaultBackground: colorFromBits(p.Background),
		FontFamily:        p.FontFamily,
		FontSize:          int(p.FontSize),
	}, nil
}

// Serializer renders SyntaxInfo in the msgpack interchange form.
type Serializer struct{}

// New creates a pack serializer.
func New() *Serializer {
	return &Serializer{}
}

// Format returns the registry name of the format.
func (s *Serializer) Format() string { return "pack" }

// ContentType returns the MIME type of the produced output.
func (s *Serializer) ContentType() string { return "application/x-msgpack" }

// FileExtension returns the conventional file extension.
func (s *Serializer) FileExtension() string { return ".mp" }

// Serialize writes the artifact to w.
func (s *Serializer) Serialize(w io.Writer, info *richtext.SyntaxInfo) error {
	return Encode(w, info)
}

var _ serialize.Serializer = (*Serializer)(nil)
