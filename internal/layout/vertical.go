package layout

import (
	"github.com/rivo/uniseg"

	"github.com/dshills/caret/internal/engine/buffer"
)

// PositionAfterModelMove moves deltaLines model lines from from, carrying
// the visual column (tabs expanded, wide runes at cell width) onto the
// target line and clamping to its length. Moving past the first line lands
// at (1,1); past the last line, at the end of the buffer.
func (l *Layout) PositionAfterModelMove(from buffer.Position, deltaLines int) buffer.Position {
	target := from.Line + deltaLines
	if target < 1 {
		return l.buf.StartPosition()
	}
	if target > l.buf.LineCount() {
		return l.buf.EndPosition()
	}

	cells := l.visualColumn(from.Line, from.Column)
	return buffer.Position{Line: target, Column: l.columnForVisualColumn(target, cells)}
}

// PositionAfterWrappedMove moves deltaRows wrapped rows from from, carrying
// the visual offset within the row. Clamping mirrors PositionAfterModelMove.
func (l *Layout) PositionAfterWrappedMove(from buffer.Position, deltaRows int) buffer.Position {
	line := from.Line
	if line < 1 || line > l.buf.LineCount() {
		return l.buf.ClampPosition(from)
	}

	segs := l.segments(line)
	idx := segmentIndexAt(segs, from.Column)
	rowStart := segs[idx].startCol

	// Offset of the cursor within its row, in cells.
	offset := l.visualColumn(line, from.Column) - l.visualColumn(line, rowStart)

	// Walk row by row toward the target.
	for deltaRows > 0 {
		if idx+1 < len(segs) {
			idx++
		} else if line < l.buf.LineCount() {
			line++
			segs = l.segments(line)
			idx = 0
		} else {
			return l.buf.EndPosition()
		}
		deltaRows--
	}
	for deltaRows < 0 {
		if idx > 0 {
			idx--
		} else if line > 1 {
			line--
			segs = l.segments(line)
			idx = len(segs) - 1
		} else {
			return l.buf.StartPosition()
		}
		deltaRows++
	}

	seg := segs[idx]
	cells := l.visualColumn(line, seg.startCol) + offset
	col := l.columnForVisualColumn(line, cells)
	if col < seg.startCol {
		col = seg.startCol
	}
	if col > seg.endCol {
		col = seg.endCol
	}
	return buffer.Position{Line: line, Column: col}
}

// visualColumn returns the cell offset of column within its line: the
// display width of everything before it, with tabs expanded to tab stops.
func (l *Layout) visualColumn(line, column int) int {
	text := l.buf.Line(line)
	col := 1
	cells := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() && col < column {
		cluster := g.Str()
		cells += l.clusterCells(cluster, cells)
		col += buffer.UTF16Len(cluster)
	}
	return cells
}

// columnForVisualColumn returns the column on line closest to the given
// cell offset. When the offset falls inside a cluster (a tab's span, a
// wide rune), the nearer edge wins, ties going right.
func (l *Layout) columnForVisualColumn(line, cells int) int {
	text := l.buf.Line(line)
	if cells <= 0 {
		return 1
	}

	col := 1
	before := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		after := before + l.clusterCells(cluster, before)
		if after >= cells {
			if cells-before < after-cells {
				return col
			}
			return col + buffer.UTF16Len(cluster)
		}
		before = after
		col += buffer.UTF16Len(cluster)
	}
	return col
}
