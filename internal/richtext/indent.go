package richtext

import (
	"github.com/dshills/richclip/internal/engine/buffer"
)

// IndentInfo is the result of indent analysis over a selection.
type IndentInfo struct {
	// FirstLineStart is the adjusted start offset for the first
	// selected line: the raw selection start moved forward past the
	// common indent, never before the raw start and never past the
	// first line's content end.
	FirstLineStart ByteOffset

	// Width is the number of leading space/tab symbols shared by
	// every non-blank touched line, to strip from each line.
	Width int
}

// AnalyzeIndent computes the common leading indentation of the lines
// touched by [start, end). Blank lines (and lines whose selected part
// is all whitespace) do not constrain the result; a selection with no
// constraining line strips nothing. Each line is scanned no further
// than the running minimum, and the scan stops entirely once the
// minimum hits zero.
func AnalyzeIndent(text *buffer.Text, start, end ByteOffset) IndentInfo {
	none := IndentInfo{FirstLineStart: start}
	startLine, err := text.LineOfOffset(start)
	if err != nil {
		return none
	}
	endLine, err := text.LineOfOffset(end)
	if err != nil {
		return none
	}

	width := -1
	firstLineStart := start
	firstLineEnd := start
	for line := startLine; line <= endLine; line++ {
		lineStart, err := text.LineStartOffset(line)
		if err != nil {
			return none
		}
		lineEnd, err := text.LineEndOffset(line)
		if err != nil {
			return none
		}
		if line == startLine {
			firstLineStart = lineStart
			firstLineEnd = lineEnd
		}
		leading := text.Slice(lineStart, min(lineEnd, end))
		indent := -1
		for i := 0; i < len(leading); i++ {
			if width >= 0 && i >= width {
				break
			}
			if leading[i] != ' ' && leading[i] != '\t' {
				indent = i
				break
			}
		}
		if indent < 0 {
			continue
		}
		if width < 0 || indent < width {
			width = indent
		}
		if width == 0 {
			break
		}
	}
	if width < 0 {
		width = 0
	}
	return IndentInfo{
		FirstLineStart: min(firstLineEnd, max(start, firstLineStart+ByteOffset(width))),
		Width:          width,
	}
}
