package cursor

import (
	"fmt"

	"github.com/google/uuid"
)

// Cursor is one selection plus a stable identity.
// The ID is assigned at creation and survives every transform, so a caller
// holding an old Set can match cursors against the Set a movement returned.
// Cursor is an immutable value type.
type Cursor struct {
	id  string
	sel Selection
}

// New creates a cursor with a fresh ID and the given selection.
func New(sel Selection) Cursor {
	return Cursor{id: uuid.NewString(), sel: sel}
}

// NewAt creates a collapsed cursor at the given position.
func NewAt(p Position) Cursor {
	return New(Caret(p))
}

// ID returns the cursor's stable identity.
func (c Cursor) ID() string {
	return c.id
}

// Selection returns the cursor's selection.
func (c Cursor) Selection() Selection {
	return c.sel
}

// Position returns the active (head) position.
func (c Cursor) Position() Position {
	return c.sel.Head
}

// Anchor returns the selection anchor (selectionStart).
func (c Cursor) Anchor() Position {
	return c.sel.Anchor
}

// WithSelection returns a copy of the cursor with the given selection,
// keeping the same ID.
func (c Cursor) WithSelection(sel Selection) Cursor {
	return Cursor{id: c.id, sel: sel}
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%s)", c.sel)
}
