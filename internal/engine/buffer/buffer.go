package buffer

import "strings"

// Buffer is an immutable snapshot of model lines.
// A buffer always holds at least one line; an empty document is a single
// empty line.
type Buffer struct {
	lines []string
}

// New creates a buffer from a slice of model lines.
// The slice is copied; an empty slice yields a single empty line.
func New(lines []string) *Buffer {
	if len(lines) == 0 {
		return &Buffer{lines: []string{""}}
	}
	b := &Buffer{lines: make([]string, len(lines))}
	copy(b.lines, lines)
	return b
}

// NewFromString creates a buffer by splitting text on newlines.
// Carriage returns before newlines are stripped.
func NewFromString(text string) *Buffer {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return New(lines)
}

// LineCount returns the number of model lines. Always at least 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the text of the 1-indexed model line.
// Out-of-range lines return the empty string.
func (b *Buffer) Line(line int) string {
	if line < 1 || line > len(b.lines) {
		return ""
	}
	return b.lines[line-1]
}

// LineLength returns the length of the 1-indexed model line in UTF-16 code
// units, which is the unit of the column coordinate space.
func (b *Buffer) LineLength(line int) int {
	return UTF16Len(b.Line(line))
}

// EndColumn returns the column one past the last character of the line.
func (b *Buffer) EndColumn(line int) int {
	return b.LineLength(line) + 1
}

// StartPosition returns the first valid position in the buffer.
func (b *Buffer) StartPosition() Position {
	return Position{Line: 1, Column: 1}
}

// EndPosition returns the last valid position in the buffer.
func (b *Buffer) EndPosition() Position {
	last := len(b.lines)
	return Position{Line: last, Column: b.EndColumn(last)}
}

// ClampPosition clamps p into the valid position space of the buffer and
// snaps the column onto a codepoint boundary.
func (b *Buffer) ClampPosition(p Position) Position {
	if p.Line < 1 {
		p.Line = 1
	}
	if p.Line > len(b.lines) {
		p.Line = len(b.lines)
	}
	if p.Column < 1 {
		p.Column = 1
	}
	if end := b.EndColumn(p.Line); p.Column > end {
		p.Column = end
	}
	p.Column = AlignColumn(b.Line(p.Line), p.Column)
	return p
}
