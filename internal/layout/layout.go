// Package layout implements the line-metric oracle the movement engine
// queries: soft-wrap segmentation, whitespace-aware columns, and
// vertical moves that keep the visual column steady across lines with
// tabs and wide characters.
package layout

import (
	"github.com/dshills/caret/internal/engine/buffer"
	"github.com/dshills/caret/internal/viewport"
)

// DefaultTabSize is used when options carry no tab size.
const DefaultTabSize = 4

// Options controls how lines are measured and wrapped.
type Options struct {
	// TabSize is the tab stop width in cells. Values below 1 fall back to
	// DefaultTabSize.
	TabSize int

	// WrapColumn is the soft-wrap width in cells. Zero or negative
	// disables wrapping.
	WrapColumn int
}

// Layout measures a buffer for the movement engine.
// It implements movement.Layout over an immutable buffer snapshot and a
// viewport; build a new Layout when the text changes.
type Layout struct {
	buf        *buffer.Buffer
	view       *viewport.Viewport
	tabSize    int
	wrapColumn int
}

// New creates a layout over the given buffer and viewport.
func New(buf *buffer.Buffer, view *viewport.Viewport, opts Options) *Layout {
	tabSize := opts.TabSize
	if tabSize < 1 {
		tabSize = DefaultTabSize
	}
	return &Layout{
		buf:        buf,
		view:       view,
		tabSize:    tabSize,
		wrapColumn: opts.WrapColumn,
	}
}

// Buffer returns the underlying buffer snapshot.
func (l *Layout) Buffer() *buffer.Buffer {
	return l.buf
}

// LineCount returns the number of model lines.
func (l *Layout) LineCount() int {
	return l.buf.LineCount()
}

// LineLength returns the line length in UTF-16 code units.
func (l *Layout) LineLength(line int) int {
	return l.buf.LineLength(line)
}

// LineContent returns the text of the model line.
func (l *Layout) LineContent(line int) string {
	return l.buf.Line(line)
}

// FirstNonWhitespaceColumn returns the column of the first character that
// is not a space or tab, or the end-of-line column for a blank line.
func (l *Layout) FirstNonWhitespaceColumn(line int) int {
	text := l.buf.Line(line)
	col := 1
	for _, r := range text {
		if r != ' ' && r != '\t' {
			return col
		}
		col++
	}
	return l.buf.EndColumn(line)
}

// LastNonWhitespaceColumn returns the column just after the last character
// that is not a space or tab, or the end-of-line column for a blank line.
func (l *Layout) LastNonWhitespaceColumn(line int) int {
	text := l.buf.Line(line)
	col := 1
	after := 0
	for _, r := range text {
		next := col + utf16Width(r)
		if r != ' ' && r != '\t' {
			after = next
		}
		col = next
	}
	if after == 0 {
		return l.buf.EndColumn(line)
	}
	return after
}

// ColumnAtHalfWrappedLine returns the column at half the width of the
// wrapped segment containing (line, column). Width is counted in UTF-16
// code units and halved rounding down.
func (l *Layout) ColumnAtHalfWrappedLine(line, column int) int {
	seg := l.segmentAt(line, column)
	return seg.startCol + (seg.endCol-seg.startCol)/2
}

// WrappedLineRange returns the column bounds of the wrapped segment
// containing p. Start is the segment's first column; End is one past its
// last character.
func (l *Layout) WrappedLineRange(p buffer.Position) buffer.Range {
	seg := l.segmentAt(p.Line, p.Column)
	return buffer.Range{
		Start: buffer.Position{Line: p.Line, Column: seg.startCol},
		End:   buffer.Position{Line: p.Line, Column: seg.endCol},
	}
}

// VisibleLineRange returns the first and last fully visible model lines.
// Without a viewport the whole buffer counts as visible.
func (l *Layout) VisibleLineRange() buffer.Range {
	first, last := 1, l.buf.LineCount()
	if l.view != nil {
		first, last = l.view.VisibleRange()
		if first < 1 {
			first = 1
		}
		if last > l.buf.LineCount() {
			last = l.buf.LineCount()
		}
		if last < first {
			last = first
		}
	}
	return buffer.Range{
		Start: buffer.Position{Line: first, Column: 1},
		End:   buffer.Position{Line: last, Column: 1},
	}
}

// utf16Width returns the column width of r in UTF-16 code units.
func utf16Width(r rune) int {
	if r > 0xFFFF {
		return 2
	}
	return 1
}
