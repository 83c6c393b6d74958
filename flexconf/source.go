package flexconf

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Source holds a validated UTF-8 document together with a line index so
// diagnostics can be rendered without rescanning the input.
type Source struct {
	file  string
	data  []byte
	lines []int // byte offset of the start of each line
}

// NewSource validates data as UTF-8, strips an optional leading BOM, and
// builds the line index. Invalid input yields an EncodingError pointing
// at the first bad byte.
func NewSource(data []byte, file string) (*Source, *Error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	src := &Source{file: file, data: data}
	line, col := 1, 1
	src.lines = append(src.lines, 0)
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			pos := Position{File: file, Offset: i, Line: line, Column: col}
			return nil, &Error{
				Kind:    EncodingError,
				Message: "invalid UTF-8 byte sequence",
				Span:    Span{Start: pos, End: pos},
			}
		}
		if r == '\n' {
			line++
			col = 1
			src.lines = append(src.lines, i+1)
		} else {
			col++
		}
		i += size
	}
	return src, nil
}

func (s *Source) Data() []byte { return s.data }

func (s *Source) File() string { return s.file }

// LineCol converts a byte offset into a 1-based line and code-point
// column.
func (s *Source) LineCol(offset int) (int, int) {
	line := 1
	for line < len(s.lines) && s.lines[line] <= offset {
		line++
	}
	start := s.lines[line-1]
	if offset > len(s.data) {
		offset = len(s.data)
	}
	col := 1 + utf8.RuneCount(s.data[start:offset])
	return line, col
}

// Line returns the text of the given 1-based line without its
// terminating newline.
func (s *Source) Line(n int) string {
	if n < 1 || n > len(s.lines) {
		return ""
	}
	start := s.lines[n-1]
	end := len(s.data)
	if n < len(s.lines) {
		end = s.lines[n] - 1
	}
	return strings.TrimSuffix(string(s.data[start:end]), "\r")
}

// Snippet renders the line containing span's start with a caret run
// underneath the offending columns.
func (s *Source) Snippet(span Span) string {
	line := span.Start.Line
	text := s.Line(line)

	width := 1
	if span.End.Line == line && span.End.Column > span.Start.Column {
		width = span.End.Column - span.Start.Column
	}
	if max := utf8.RuneCountInString(text) - span.Start.Column + 1; width > max && max > 0 {
		width = max
	}

	var b strings.Builder
	num := fmt.Sprintf("%4d", line)
	fmt.Fprintf(&b, "%s | %s\n", num, text)
	fmt.Fprintf(&b, "%s | %s%s", strings.Repeat(" ", len(num)),
		strings.Repeat(" ", span.Start.Column-1), strings.Repeat("^", width))
	return b.String()
}
