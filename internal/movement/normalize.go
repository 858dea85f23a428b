package movement

import "fmt"

// Normalize validates a raw directive and applies defaults, producing the
// canonical form Resolve dispatches on. It is pure validation: no cursor or
// layout state is consulted.
//
// Defaults: Value 0 becomes 1; an unset unit becomes UnitCharacter for
// left/right and UnitLine for up/down. The absolute directions accept only
// the default unit. Errors wrap ErrInvalidDirective.
func Normalize(raw RawDirective) (Directive, error) {
	if raw.Value < 0 {
		return Directive{}, fmt.Errorf("%w: negative value %d", ErrInvalidDirective, raw.Value)
	}

	d := Directive{To: raw.To, By: raw.By, Value: raw.Value, Select: raw.Select}
	if d.Value == 0 {
		d.Value = 1
	}

	switch raw.To {
	case DirLeft, DirRight:
		switch raw.By {
		case UnitDefault:
			d.By = UnitCharacter
		case UnitCharacter, UnitHalfLine:
			// compatible
		default:
			return Directive{}, incompatible(raw)
		}

	case DirUp, DirDown:
		switch raw.By {
		case UnitDefault:
			d.By = UnitLine
		case UnitLine, UnitWrappedLine, UnitPage:
			// compatible
		default:
			return Directive{}, incompatible(raw)
		}

	case DirWrappedLineStart, DirWrappedLineEnd,
		DirWrappedLineFirstNonWhitespace, DirWrappedLineLastNonWhitespace,
		DirWrappedLineColumnCenter,
		DirViewPortTop, DirViewPortCenter, DirViewPortBottom:
		if raw.By != UnitDefault {
			return Directive{}, incompatible(raw)
		}
		d.By = UnitCharacter

	default:
		return Directive{}, fmt.Errorf("%w: unrecognized direction %d", ErrInvalidDirective, raw.To)
	}

	return d, nil
}

func incompatible(raw RawDirective) error {
	return fmt.Errorf("%w: unit %q is incompatible with direction %q",
		ErrInvalidDirective, raw.By, raw.To)
}
