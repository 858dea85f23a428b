package cursor

// Set is an ordered collection of cursors.
// Order is creation order, not document order, and is preserved by every
// operation. The cursor at index 0 is the primary cursor. A Set is never
// empty.
type Set struct {
	cursors []Cursor
}

// NewSet creates a set from one or more cursors. The first is primary.
func NewSet(primary Cursor, rest ...Cursor) *Set {
	cursors := make([]Cursor, 0, 1+len(rest))
	cursors = append(cursors, primary)
	cursors = append(cursors, rest...)
	return &Set{cursors: cursors}
}

// NewSetAt creates a set with a single collapsed cursor at the position.
func NewSetAt(p Position) *Set {
	return NewSet(NewAt(p))
}

// FromCursors creates a set from a slice of cursors.
// An empty slice yields a single cursor at (1,1).
func FromCursors(cursors []Cursor) *Set {
	if len(cursors) == 0 {
		return NewSetAt(Position{Line: 1, Column: 1})
	}
	s := &Set{cursors: make([]Cursor, len(cursors))}
	copy(s.cursors, cursors)
	return s
}

// Primary returns the primary (first) cursor.
func (s *Set) Primary() Cursor {
	return s.cursors[0]
}

// Count returns the number of cursors.
func (s *Set) Count() int {
	return len(s.cursors)
}

// IsMulti returns true if there is more than one cursor.
func (s *Set) IsMulti() bool {
	return len(s.cursors) > 1
}

// Get returns the cursor at the given index.
// Out-of-range indexes return the primary cursor.
func (s *Set) Get(index int) Cursor {
	if index < 0 || index >= len(s.cursors) {
		return s.cursors[0]
	}
	return s.cursors[index]
}

// All returns a copy of all cursors in creation order.
func (s *Set) All() []Cursor {
	out := make([]Cursor, len(s.cursors))
	copy(out, s.cursors)
	return out
}

// Add returns a new set with the cursor appended.
func (s *Set) Add(c Cursor) *Set {
	cursors := make([]Cursor, 0, len(s.cursors)+1)
	cursors = append(cursors, s.cursors...)
	cursors = append(cursors, c)
	return &Set{cursors: cursors}
}

// Transform returns a new set produced by applying f to every cursor.
// Order and cardinality are unchanged; f is expected to preserve IDs by
// deriving its result via Cursor.WithSelection.
func (s *Set) Transform(f func(Cursor) Cursor) *Set {
	cursors := make([]Cursor, len(s.cursors))
	for i, c := range s.cursors {
		cursors[i] = f(c)
	}
	return &Set{cursors: cursors}
}

// CollapseAll returns a new set with every selection collapsed to its head.
func (s *Set) CollapseAll() *Set {
	return s.Transform(func(c Cursor) Cursor {
		return c.WithSelection(c.Selection().Collapse())
	})
}

// HasSelection returns true if any cursor has a non-empty selection.
func (s *Set) HasSelection() bool {
	for _, c := range s.cursors {
		if !c.Selection().IsEmpty() {
			return true
		}
	}
	return false
}
