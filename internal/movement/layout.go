package movement

import "github.com/dshills/caret/internal/engine/buffer"

// Layout answers the line-metric questions resolvers ask about the text and
// its rendering. It is implemented by the surrounding editor (the reference
// implementation lives in internal/layout) and passed explicitly into every
// resolution; the engine keeps no ambient view state.
//
// Every resolved target is clamped back into buffer bounds before it
// reaches a cursor, so out-of-range Layout answers cannot produce an
// out-of-range position.
type Layout interface {
	// LineCount returns the number of model lines in the buffer.
	LineCount() int

	// LineLength returns the length of a model line in UTF-16 code units.
	LineLength(line int) int

	// LineContent returns the text of a model line.
	LineContent(line int) string

	// WrappedLineRange returns the column range of the wrapped (visual)
	// line containing p. Start.Column is the first column of the segment;
	// End.Column is one past its last character.
	WrappedLineRange(p buffer.Position) buffer.Range

	// ColumnAtHalfWrappedLine returns the column at half the width of the
	// wrapped line containing (line, column).
	ColumnAtHalfWrappedLine(line, column int) int

	// FirstNonWhitespaceColumn returns the column of the first
	// non-space/tab character of the line, or the end-of-line column when
	// the line is all whitespace.
	FirstNonWhitespaceColumn(line int) int

	// LastNonWhitespaceColumn returns the column just after the last
	// non-space/tab character of the line, or the end-of-line column when
	// the line is all whitespace.
	LastNonWhitespaceColumn(line int) int

	// PositionAfterWrappedMove returns the position deltaRows visual rows
	// away from from, preserving the visual column as closely as the
	// target row permits.
	PositionAfterWrappedMove(from buffer.Position, deltaRows int) buffer.Position

	// PositionAfterModelMove returns the position deltaLines model lines
	// away from from, preserving the visual column as closely as the
	// target line permits. Moving past the first line lands at (1,1);
	// moving past the last lands at the end of the buffer.
	PositionAfterModelMove(from buffer.Position, deltaLines int) buffer.Position

	// VisibleLineRange returns the first and last fully visible model
	// lines as the Line fields of the range endpoints.
	VisibleLineRange() buffer.Range
}
