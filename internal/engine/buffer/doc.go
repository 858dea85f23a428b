// Package buffer provides the position model and the immutable line buffer
// the movement engine operates on.
//
// The buffer package provides:
//
//   - Position: 1-based line/column coordinates, column in UTF-16 code units
//   - Range: an ordered pair of positions
//   - Buffer: an immutable snapshot of model lines
//   - Column helpers for mapping between UTF-16 columns, byte indexes, and
//     codepoint boundaries
//
// Coordinate System:
//
// Positions follow the editor convention: line 1 is the first line, column 1
// sits before the first character of a line. Columns count UTF-16 code
// units, so a character outside the Basic Multilingual Plane occupies two
// columns. The column helpers in this package keep movement code on
// codepoint boundaries even though the column space is UTF-16.
//
// Model Lines:
//
// A Buffer holds model lines: raw buffer lines as stored, delimited by
// newlines. Soft-wrapping into view lines is a layout concern and lives
// outside this package.
//
// Thread Safety:
//
// Buffer is immutable after construction and safe for concurrent use.
// Position and Range are value types.
package buffer
