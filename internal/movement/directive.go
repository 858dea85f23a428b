package movement

// Direction identifies where a movement directive is headed.
type Direction uint8

const (
	// DirNone indicates no direction; it never normalizes.
	DirNone Direction = iota
	// DirLeft moves toward the start of the buffer.
	DirLeft
	// DirRight moves toward the end of the buffer.
	DirRight
	// DirUp moves toward earlier lines.
	DirUp
	// DirDown moves toward later lines.
	DirDown
	// DirWrappedLineStart targets column 1 of the current wrapped line.
	DirWrappedLineStart
	// DirWrappedLineEnd targets the column past the last character of the
	// current wrapped line.
	DirWrappedLineEnd
	// DirWrappedLineFirstNonWhitespace targets the first non-space/tab
	// character of the current line.
	DirWrappedLineFirstNonWhitespace
	// DirWrappedLineLastNonWhitespace targets the column just after the
	// last non-whitespace character of the current line.
	DirWrappedLineLastNonWhitespace
	// DirWrappedLineColumnCenter targets the middle column of the current
	// wrapped line.
	DirWrappedLineColumnCenter
	// DirViewPortTop targets a line at the top of the visible range.
	DirViewPortTop
	// DirViewPortCenter targets the middle of the visible range.
	DirViewPortCenter
	// DirViewPortBottom targets a line at the bottom of the visible range.
	DirViewPortBottom
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirWrappedLineStart:
		return "wrappedLineStart"
	case DirWrappedLineEnd:
		return "wrappedLineEnd"
	case DirWrappedLineFirstNonWhitespace:
		return "wrappedLineFirstNonWhitespaceCharacter"
	case DirWrappedLineLastNonWhitespace:
		return "wrappedLineLastNonWhitespaceCharacter"
	case DirWrappedLineColumnCenter:
		return "wrappedLineColumnCenter"
	case DirViewPortTop:
		return "viewPortTop"
	case DirViewPortCenter:
		return "viewPortCenter"
	case DirViewPortBottom:
		return "viewPortBottom"
	default:
		return "none"
	}
}

// Unit is the granularity a relative movement counts in.
type Unit uint8

const (
	// UnitDefault means the caller did not name a unit; normalization
	// substitutes the default for the direction.
	UnitDefault Unit = iota
	// UnitCharacter counts Unicode codepoints. Default for left/right.
	UnitCharacter
	// UnitHalfLine counts half the current wrapped line's width.
	UnitHalfLine
	// UnitWrappedLine counts visual (wrapped) rows.
	UnitWrappedLine
	// UnitLine counts model lines. Default for up/down.
	UnitLine
	// UnitPage counts the visible line range's height.
	UnitPage
)

// String returns a string representation of the unit.
func (u Unit) String() string {
	switch u {
	case UnitCharacter:
		return "character"
	case UnitHalfLine:
		return "halfLine"
	case UnitWrappedLine:
		return "wrappedLine"
	case UnitLine:
		return "line"
	case UnitPage:
		return "page"
	case UnitDefault:
		return "default"
	default:
		return "unknown"
	}
}

// RawDirective is a movement request as it arrives from a keybinding or
// command surface, before defaults are applied.
type RawDirective struct {
	// To is the movement direction or absolute target.
	To Direction

	// By is the movement unit. Zero means "use the default for To".
	By Unit

	// Value is the repeat count. Zero means the default of 1.
	// For the viewport targets it is the line offset into the view.
	Value int

	// Select extends the selection instead of collapsing it.
	Select bool
}

// Directive is a normalized movement directive: defaults applied, the
// (direction, unit) pair known to be dispatchable.
type Directive struct {
	To     Direction
	By     Unit
	Value  int
	Select bool
}
