// Package movement resolves cursor movement directives into new cursor
// positions and selections.
//
// A directive names a direction (left, right, up, down, one of the
// wrapped-line targets, or a viewport target), a unit (character,
// half-line, wrapped line, model line, page), a repeat count, and whether
// the move extends the selection. Resolve normalizes the directive,
// dispatches to the resolver registered for the (direction, unit) pair,
// asks the Layout for the line metrics it needs, and applies the resolved
// target to every cursor in the set.
//
// The engine is pure: nothing persists across calls, no cursor is mutated
// in place, and a failed directive leaves the input set untouched. The
// Layout interface is the only window onto the surrounding editor; callers
// pass it explicitly into every resolution.
//
// Basic usage:
//
//	set := cursor.NewSetAt(buffer.Position{Line: 1, Column: 1})
//	set, err := movement.Resolve(movement.RawDirective{
//		To:    movement.DirDown,
//		Value: 3,
//	}, set, layout)
//
// Dispatch is table-driven: an explicit map from (direction, unit) to a
// resolver function, populated once at package init. Unsupported pairs are
// rejected during normalization, before any cursor is touched.
package movement
