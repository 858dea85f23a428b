package buffer

import "unicode/utf8"

// utf16RuneLen returns the number of UTF-16 code units r occupies.
func utf16RuneLen(r rune) int {
	if r > 0xFFFF {
		return 2
	}
	return 1
}

// UTF16Len returns the length of s in UTF-16 code units.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16RuneLen(r)
	}
	return n
}

// ColumnToIndex converts a 1-based UTF-16 column into a byte index in line.
// Columns beyond the end of the line map to len(line). A column that falls
// between the two code units of a surrogate pair rounds down to the start
// of that codepoint.
func ColumnToIndex(line string, column int) int {
	col := 1
	for i, r := range line {
		if column < col+utf16RuneLen(r) {
			return i
		}
		col += utf16RuneLen(r)
	}
	return len(line)
}

// IndexToColumn converts a byte index in line into a 1-based UTF-16 column.
// Indexes beyond the end of the line map to the end-of-line column.
func IndexToColumn(line string, index int) int {
	col := 1
	for i, r := range line {
		if i >= index {
			return col
		}
		col += utf16RuneLen(r)
	}
	return col
}

// AlignColumn snaps column onto a codepoint boundary, rounding down.
func AlignColumn(line string, column int) int {
	return IndexToColumn(line, ColumnToIndex(line, column))
}

// PrevColumn returns the column of the codepoint immediately before column.
// At or before the start of the line it returns 1.
func PrevColumn(line string, column int) int {
	i := ColumnToIndex(line, column)
	if i <= 0 {
		return 1
	}
	_, size := utf8.DecodeLastRuneInString(line[:i])
	return IndexToColumn(line, i-size)
}

// NextColumn returns the column just past the codepoint at column.
// At or past the end of the line it returns the end-of-line column.
func NextColumn(line string, column int) int {
	i := ColumnToIndex(line, column)
	if i >= len(line) {
		return UTF16Len(line) + 1
	}
	_, size := utf8.DecodeRuneInString(line[i:])
	return IndexToColumn(line, i+size)
}
