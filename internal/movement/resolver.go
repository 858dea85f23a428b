package movement

import (
	"github.com/dshills/caret/internal/engine/buffer"
	"github.com/dshills/caret/internal/engine/cursor"
)

// resolverFunc computes the target position for one cursor.
// Targets are clamped by the caller; resolvers may return out-of-bounds
// positions when the layout misbehaves.
type resolverFunc func(c cursor.Cursor, count int, l Layout) buffer.Position

// dispatchKey identifies one (direction, unit) combination.
type dispatchKey struct {
	to Direction
	by Unit
}

// resolvers maps every dispatchable (direction, unit) pair to its resolver.
// Normalize guarantees only keys present here reach Resolve.
var resolvers = map[dispatchKey]resolverFunc{
	{DirLeft, UnitCharacter}:  resolveCharacterLeft,
	{DirRight, UnitCharacter}: resolveCharacterRight,
	{DirLeft, UnitHalfLine}:   resolveHalfLineLeft,
	{DirRight, UnitHalfLine}:  resolveHalfLineRight,

	{DirUp, UnitLine}:          resolveModelUp,
	{DirDown, UnitLine}:        resolveModelDown,
	{DirUp, UnitWrappedLine}:   resolveWrappedUp,
	{DirDown, UnitWrappedLine}: resolveWrappedDown,
	{DirUp, UnitPage}:          resolvePageUp,
	{DirDown, UnitPage}:        resolvePageDown,

	{DirWrappedLineStart, UnitCharacter}:             resolveWrappedLineStart,
	{DirWrappedLineEnd, UnitCharacter}:               resolveWrappedLineEnd,
	{DirWrappedLineFirstNonWhitespace, UnitCharacter}: resolveFirstNonWhitespace,
	{DirWrappedLineLastNonWhitespace, UnitCharacter}:  resolveLastNonWhitespace,
	{DirWrappedLineColumnCenter, UnitCharacter}:       resolveColumnCenter,

	{DirViewPortTop, UnitCharacter}:    resolveViewPortTop,
	{DirViewPortCenter, UnitCharacter}: resolveViewPortCenter,
	{DirViewPortBottom, UnitCharacter}: resolveViewPortBottom,
}

// resolveCharacterLeft moves count codepoints toward the buffer start.
// The first count-1 steps are codepoint steps clamped within the line; the
// final step crosses into the previous line's end when the cursor sits at
// column 1. At (1,1) the move is a no-op.
func resolveCharacterLeft(c cursor.Cursor, count int, l Layout) buffer.Position {
	p := c.Position()
	text := l.LineContent(p.Line)

	col := buffer.AlignColumn(text, p.Column)
	for i := 0; i < count-1 && col > 1; i++ {
		col = buffer.PrevColumn(text, col)
	}

	if col > 1 {
		return buffer.Position{Line: p.Line, Column: buffer.PrevColumn(text, col)}
	}
	if p.Line > 1 {
		return buffer.Position{Line: p.Line - 1, Column: l.LineLength(p.Line-1) + 1}
	}
	return buffer.Position{Line: 1, Column: 1}
}

// resolveCharacterRight mirrors resolveCharacterLeft toward the buffer end.
func resolveCharacterRight(c cursor.Cursor, count int, l Layout) buffer.Position {
	p := c.Position()
	text := l.LineContent(p.Line)
	end := l.LineLength(p.Line) + 1

	col := buffer.AlignColumn(text, p.Column)
	for i := 0; i < count-1 && col < end; i++ {
		col = buffer.NextColumn(text, col)
	}

	if col < end {
		return buffer.Position{Line: p.Line, Column: buffer.NextColumn(text, col)}
	}
	if p.Line < l.LineCount() {
		return buffer.Position{Line: p.Line + 1, Column: 1}
	}
	return buffer.Position{Line: p.Line, Column: end}
}

// halfLineStep returns the column step for one half-line move: half the
// width of the wrapped segment containing p.
func halfLineStep(p buffer.Position, l Layout) (seg buffer.Range, step int) {
	seg = l.WrappedLineRange(p)
	step = l.ColumnAtHalfWrappedLine(p.Line, p.Column) - seg.Start.Column
	if step < 0 {
		step = 0
	}
	return seg, step
}

// resolveHalfLineLeft moves count half-line widths left, clamped inside the
// current wrapped segment. At the segment start a further step is a no-op.
func resolveHalfLineLeft(c cursor.Cursor, count int, l Layout) buffer.Position {
	p := c.Position()
	seg, step := halfLineStep(p, l)
	col := p.Column - count*step
	if col < seg.Start.Column {
		col = seg.Start.Column
	}
	return buffer.Position{Line: p.Line, Column: col}
}

// resolveHalfLineRight mirrors resolveHalfLineLeft.
func resolveHalfLineRight(c cursor.Cursor, count int, l Layout) buffer.Position {
	p := c.Position()
	seg, step := halfLineStep(p, l)
	col := p.Column + count*step
	if col > seg.End.Column {
		col = seg.End.Column
	}
	return buffer.Position{Line: p.Line, Column: col}
}

func resolveModelUp(c cursor.Cursor, count int, l Layout) buffer.Position {
	return l.PositionAfterModelMove(c.Position(), -count)
}

func resolveModelDown(c cursor.Cursor, count int, l Layout) buffer.Position {
	return l.PositionAfterModelMove(c.Position(), count)
}

func resolveWrappedUp(c cursor.Cursor, count int, l Layout) buffer.Position {
	return l.PositionAfterWrappedMove(c.Position(), -count)
}

func resolveWrappedDown(c cursor.Cursor, count int, l Layout) buffer.Position {
	return l.PositionAfterWrappedMove(c.Position(), count)
}

// pageSize returns the height of the visible line range, at least 1.
func pageSize(l Layout) int {
	vr := l.VisibleLineRange()
	n := vr.End.Line - vr.Start.Line + 1
	if n < 1 {
		n = 1
	}
	return n
}

func resolvePageUp(c cursor.Cursor, count int, l Layout) buffer.Position {
	return l.PositionAfterModelMove(c.Position(), -count*pageSize(l))
}

func resolvePageDown(c cursor.Cursor, count int, l Layout) buffer.Position {
	return l.PositionAfterModelMove(c.Position(), count*pageSize(l))
}

func resolveWrappedLineStart(c cursor.Cursor, _ int, l Layout) buffer.Position {
	p := c.Position()
	seg := l.WrappedLineRange(p)
	return buffer.Position{Line: p.Line, Column: seg.Start.Column}
}

func resolveWrappedLineEnd(c cursor.Cursor, _ int, l Layout) buffer.Position {
	p := c.Position()
	seg := l.WrappedLineRange(p)
	return buffer.Position{Line: p.Line, Column: seg.End.Column}
}

func resolveFirstNonWhitespace(c cursor.Cursor, _ int, l Layout) buffer.Position {
	p := c.Position()
	return buffer.Position{Line: p.Line, Column: l.FirstNonWhitespaceColumn(p.Line)}
}

func resolveLastNonWhitespace(c cursor.Cursor, _ int, l Layout) buffer.Position {
	p := c.Position()
	return buffer.Position{Line: p.Line, Column: l.LastNonWhitespaceColumn(p.Line)}
}

func resolveColumnCenter(c cursor.Cursor, _ int, l Layout) buffer.Position {
	p := c.Position()
	return buffer.Position{Line: p.Line, Column: l.ColumnAtHalfWrappedLine(p.Line, p.Column)}
}

// resolveViewPortTop targets the count-th fully visible line from the top
// of the viewport, at its first non-whitespace column.
func resolveViewPortTop(_ cursor.Cursor, count int, l Layout) buffer.Position {
	vr := l.VisibleLineRange()
	line := vr.Start.Line + count - 1
	if line > vr.End.Line {
		line = vr.End.Line
	}
	if line < vr.Start.Line {
		line = vr.Start.Line
	}
	return buffer.Position{Line: line, Column: l.FirstNonWhitespaceColumn(line)}
}

// resolveViewPortBottom targets the count-th fully visible line from the
// bottom of the viewport.
func resolveViewPortBottom(_ cursor.Cursor, count int, l Layout) buffer.Position {
	vr := l.VisibleLineRange()
	line := vr.End.Line - count + 1
	if line < vr.Start.Line {
		line = vr.Start.Line
	}
	if line > vr.End.Line {
		line = vr.End.Line
	}
	return buffer.Position{Line: line, Column: l.FirstNonWhitespaceColumn(line)}
}

// resolveViewPortCenter targets the midpoint of the visible line range.
func resolveViewPortCenter(_ cursor.Cursor, _ int, l Layout) buffer.Position {
	vr := l.VisibleLineRange()
	line := (vr.Start.Line + vr.End.Line) / 2
	if line < vr.Start.Line {
		line = vr.Start.Line
	}
	return buffer.Position{Line: line, Column: l.FirstNonWhitespaceColumn(line)}
}
