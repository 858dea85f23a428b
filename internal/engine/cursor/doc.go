// Package cursor provides selections and multi-cursor collections for the
// movement engine.
//
// Selection Model:
//
// Selections use an anchor/head model where:
//   - Anchor: the position where the selection started (selectionStart)
//   - Head: the active position movement directives update
//
// When Anchor == Head, the selection represents just a caret with no
// selected text. A selection can extend forward (head after anchor) or
// backward (head before anchor), preserving the user's selection direction.
//
// Multi-Cursor Support:
//
// Set manages multiple cursors in creation order. The first cursor is the
// primary one. Movement never adds, removes, or reorders cursors; every
// update produces a whole new Set, so prior Sets stay valid for callers
// that need them (gesture replay, undo).
//
// Identity:
//
// Each Cursor carries an ID assigned at creation and preserved across every
// transform, letting callers correlate cursors between the old and new Set
// of a pure update.
//
// Thread Safety:
//
// Selection and Cursor are immutable value types. Set is immutable after
// construction; all its update methods return a new Set.
package cursor
