package layout

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/dshills/caret/internal/engine/buffer"
)

// segment is one wrapped (visual) row of a model line, expressed as a pair
// of UTF-16 column bounds. endCol is one past the segment's last character,
// which is also the next segment's startCol.
type segment struct {
	startCol int
	endCol   int
}

// segments splits a model line into wrapped rows at the configured wrap
// column. Break points fall on grapheme cluster boundaries, never inside
// one, so a wide emoji or a combining sequence stays on one row. Tabs
// expand to the next tab stop measured from the row start.
//
// With wrapping disabled the whole line is one segment.
func (l *Layout) segments(line int) []segment {
	text := l.buf.Line(line)
	endCol := buffer.UTF16Len(text) + 1
	if l.wrapColumn <= 0 || text == "" {
		return []segment{{startCol: 1, endCol: endCol}}
	}

	var segs []segment
	start := 1
	col := 1
	cells := 0

	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		w := l.clusterCells(cluster, cells)
		if cells > 0 && cells+w > l.wrapColumn {
			segs = append(segs, segment{startCol: start, endCol: col})
			start = col
			cells = 0
			w = l.clusterCells(cluster, 0)
		}
		col += buffer.UTF16Len(cluster)
		cells += w
	}
	return append(segs, segment{startCol: start, endCol: endCol})
}

// segmentAt returns the segment of line containing column.
// A column sitting exactly on a wrap boundary belongs to the following
// segment; the end-of-line column belongs to the last segment.
func (l *Layout) segmentAt(line, column int) segment {
	segs := l.segments(line)
	return segs[segmentIndexAt(segs, column)]
}

// segmentIndexAt returns the index of the segment containing column, given
// the line's segment slice.
func segmentIndexAt(segs []segment, column int) int {
	for i, seg := range segs {
		if column < seg.endCol {
			return i
		}
	}
	return len(segs) - 1
}

// WrappedRanges returns every wrapped row of the line as column ranges,
// for frontends that render wrapped text.
func (l *Layout) WrappedRanges(line int) []buffer.Range {
	segs := l.segments(line)
	out := make([]buffer.Range, len(segs))
	for i, seg := range segs {
		out[i] = buffer.Range{
			Start: buffer.Position{Line: line, Column: seg.startCol},
			End:   buffer.Position{Line: line, Column: seg.endCol},
		}
	}
	return out
}

// clusterCells returns the display width of one grapheme cluster when it
// starts at the given cell offset. Tabs expand to the next tab stop.
func (l *Layout) clusterCells(cluster string, cell int) int {
	if cluster == "\t" {
		return l.tabSize - cell%l.tabSize
	}
	return runewidth.StringWidth(cluster)
}
