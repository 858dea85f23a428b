package movement

import (
	"github.com/dshills/caret/internal/engine/buffer"
	"github.com/dshills/caret/internal/engine/cursor"
)

// Resolve applies one movement directive to a cursor set and returns the
// new set. The input set is never mutated; on error it is returned
// untouched alongside the error.
//
// A malformed directive fails with an error wrapping ErrInvalidDirective
// before any cursor is considered. Everything else clamps: targets outside
// the buffer, including ones produced by a misbehaving Layout, are pulled
// back into bounds rather than rejected.
//
// If the directive selects, each cursor keeps its anchor and only the head
// moves. Otherwise each cursor collapses onto its target.
func Resolve(raw RawDirective, set *cursor.Set, l Layout) (*cursor.Set, error) {
	d, err := Normalize(raw)
	if err != nil {
		return set, err
	}
	if set == nil {
		return nil, ErrNilCursors
	}
	if l == nil {
		return set, ErrNilLayout
	}

	fn := resolvers[dispatchKey{to: d.To, by: d.By}]

	return set.Transform(func(c cursor.Cursor) cursor.Cursor {
		target := clampPosition(l, fn(c, d.Value, l))
		if d.Select {
			return c.WithSelection(c.Selection().Extend(target))
		}
		return c.WithSelection(cursor.Caret(target))
	}), nil
}

// clampPosition pulls p back into the valid position space of the buffer
// behind l. Degenerate layout answers (zero lines, negative lengths) clamp
// to (1,1) instead of being trusted.
func clampPosition(l Layout, p buffer.Position) buffer.Position {
	lines := l.LineCount()
	if lines < 1 {
		lines = 1
	}
	if p.Line < 1 {
		p.Line = 1
	}
	if p.Line > lines {
		p.Line = lines
	}

	end := l.LineLength(p.Line) + 1
	if end < 1 {
		end = 1
	}
	if p.Column < 1 {
		p.Column = 1
	}
	if p.Column > end {
		p.Column = end
	}
	return p
}
