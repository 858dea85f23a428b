package buffer

import "fmt"

// Position is a location in the buffer.
// Line and Column are both 1-indexed; Column is measured in UTF-16 code
// units from the start of the model line, with column 1 sitting before the
// first character.
type Position struct {
	Line   int
	Column int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Column < other.Column {
		return -1
	}
	if p.Column > other.Column {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// WithColumn returns a copy of p with the given column.
func (p Position) WithColumn(column int) Position {
	return Position{Line: p.Line, Column: column}
}

// Range is an ordered pair of positions. Start never comes after End.
// A range may be empty (Start == End).
type Range struct {
	Start Position
	End   Position
}

// NewRange creates a range from two positions, ordering them if needed.
func NewRange(a, b Position) Range {
	if b.Before(a) {
		return Range{Start: b, End: a}
	}
	return Range{Start: a, End: b}
}

// IsEmpty returns true if the range covers no positions.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains returns true if p falls inside the range (Start inclusive,
// End exclusive).
func (r Range) Contains(p Position) bool {
	return !p.Before(r.Start) && p.Before(r.End)
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%s-%s]", r.Start, r.End)
}
