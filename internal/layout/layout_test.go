package layout

import (
	"testing"

	"github.com/dshills/caret/internal/engine/buffer"
	"github.com/dshills/caret/internal/viewport"
)

func newLayout(lines []string, opts Options) *Layout {
	buf := buffer.New(lines)
	return New(buf, nil, opts)
}

func TestFirstNonWhitespaceColumn(t *testing.T) {
	l := newLayout([]string{
		"    \tMy First Line\t ",
		"code",
		"   \t  ",
		"",
	}, Options{})

	tests := []struct {
		line int
		want int
	}{
		{1, 6},
		{2, 1},
		{3, 7}, // all whitespace falls back to end of line
		{4, 1},
	}
	for _, tt := range tests {
		if got := l.FirstNonWhitespaceColumn(tt.line); got != tt.want {
			t.Errorf("line %d: FirstNonWhitespaceColumn = %d, want %d", tt.line, got, tt.want)
		}
	}
}

func TestLastNonWhitespaceColumn(t *testing.T) {
	l := newLayout([]string{
		"    \tMy First Line\t ",
		"word  ",
		"   ",
		"tail\U0001F436",
	}, Options{})

	tests := []struct {
		line int
		want int
	}{
		{1, 19},
		{2, 5},
		{3, 4}, // all whitespace falls back to end of line
		{4, 7}, // astral character counts two columns
	}
	for _, tt := range tests {
		if got := l.LastNonWhitespaceColumn(tt.line); got != tt.want {
			t.Errorf("line %d: LastNonWhitespaceColumn = %d, want %d", tt.line, got, tt.want)
		}
	}
}

func TestColumnAtHalfWrappedLineUnwrapped(t *testing.T) {
	l := newLayout([]string{"    \tMy First Line\t ", "", "ab"}, Options{})

	if got := l.ColumnAtHalfWrappedLine(1, 8); got != 11 {
		t.Errorf("half of 20-unit line = %d, want 11", got)
	}
	if got := l.ColumnAtHalfWrappedLine(2, 1); got != 1 {
		t.Errorf("half of empty line = %d, want 1", got)
	}
	if got := l.ColumnAtHalfWrappedLine(3, 1); got != 2 {
		t.Errorf("half of 2-unit line = %d, want 2", got)
	}
}

func TestWrappedRangesNoWrap(t *testing.T) {
	l := newLayout([]string{"hello world"}, Options{})

	rngs := l.WrappedRanges(1)
	if len(rngs) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rngs))
	}
	if rngs[0].Start.Column != 1 || rngs[0].End.Column != 12 {
		t.Errorf("row bounds = [%d,%d), want [1,12)", rngs[0].Start.Column, rngs[0].End.Column)
	}
}

func TestWrappedRangesBreakAtWrapColumn(t *testing.T) {
	// 10 cells per row, plain ASCII: "aaaa bbbb " | "cccc"
	l := newLayout([]string{"aaaa bbbb cccc"}, Options{WrapColumn: 10})

	rngs := l.WrappedRanges(1)
	if len(rngs) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rngs))
	}
	if rngs[0].Start.Column != 1 || rngs[0].End.Column != 11 {
		t.Errorf("row 1 = [%d,%d), want [1,11)", rngs[0].Start.Column, rngs[0].End.Column)
	}
	if rngs[1].Start.Column != 11 || rngs[1].End.Column != 15 {
		t.Errorf("row 2 = [%d,%d), want [11,15)", rngs[1].Start.Column, rngs[1].End.Column)
	}
}

func TestWrappedRangesNeverSplitWideRune(t *testing.T) {
	// Each CJK rune is 2 cells; a 5-cell row can hold two of them.
	l := newLayout([]string{"世界世界世"}, Options{WrapColumn: 5})

	rngs := l.WrappedRanges(1)
	if len(rngs) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rngs))
	}
	for i, rng := range rngs[:2] {
		if rng.End.Column-rng.Start.Column != 2 {
			t.Errorf("row %d holds %d columns, want 2", i+1, rng.End.Column-rng.Start.Column)
		}
	}
}

func TestWrappedLineRangeSelectsContainingRow(t *testing.T) {
	l := newLayout([]string{"aaaa bbbb cccc"}, Options{WrapColumn: 10})

	tests := []struct {
		column    int
		wantStart int
		wantEnd   int
	}{
		{1, 1, 11},
		{10, 1, 11},
		{11, 11, 15}, // wrap boundary belongs to the next row
		{15, 11, 15}, // end of line belongs to the last row
	}
	for _, tt := range tests {
		rng := l.WrappedLineRange(buffer.Position{Line: 1, Column: tt.column})
		if rng.Start.Column != tt.wantStart || rng.End.Column != tt.wantEnd {
			t.Errorf("col %d: row = [%d,%d), want [%d,%d)",
				tt.column, rng.Start.Column, rng.End.Column, tt.wantStart, tt.wantEnd)
		}
	}
}

func TestPositionAfterModelMoveTabAlignment(t *testing.T) {
	l := newLayout([]string{
		"\tindented",
		"12345678x",
	}, Options{TabSize: 4})

	// Column 2 on line 1 sits after the tab, 4 cells in; on line 2 the
	// same visual spot is column 5.
	got := l.PositionAfterModelMove(buffer.Position{Line: 1, Column: 2}, 1)
	want := buffer.Position{Line: 2, Column: 5}
	if got != want {
		t.Errorf("down from after-tab = %s, want %s", got, want)
	}

	back := l.PositionAfterModelMove(got, -1)
	if back != (buffer.Position{Line: 1, Column: 2}) {
		t.Errorf("up should restore the column, got %s", back)
	}
}

func TestPositionAfterModelMoveMidTabRoundsToNearerEdge(t *testing.T) {
	l := newLayout([]string{
		"12345678",
		"\ttext",
	}, Options{TabSize: 4})

	// Cell 1 is inside the tab on line 2, nearer its left edge.
	got := l.PositionAfterModelMove(buffer.Position{Line: 1, Column: 2}, 1)
	if got != (buffer.Position{Line: 2, Column: 1}) {
		t.Errorf("cell 1 should round to tab start, got %s", got)
	}

	// Cell 3 is nearer the right edge.
	got = l.PositionAfterModelMove(buffer.Position{Line: 1, Column: 4}, 1)
	if got != (buffer.Position{Line: 2, Column: 2}) {
		t.Errorf("cell 3 should round past the tab, got %s", got)
	}
}

func TestPositionAfterModelMoveClamps(t *testing.T) {
	l := newLayout([]string{"abc", "de"}, Options{})

	if got := l.PositionAfterModelMove(buffer.Position{Line: 1, Column: 3}, -5); got != (buffer.Position{Line: 1, Column: 1}) {
		t.Errorf("past first line = %s, want (1,1)", got)
	}
	if got := l.PositionAfterModelMove(buffer.Position{Line: 2, Column: 1}, 7); got != (buffer.Position{Line: 2, Column: 3}) {
		t.Errorf("past last line = %s, want (2,3)", got)
	}
}

func TestPositionAfterWrappedMoveWithinLine(t *testing.T) {
	l := newLayout([]string{"aaaa bbbb cccc", "short"}, Options{WrapColumn: 10})

	// Down one row stays inside line 1, keeping the row offset.
	got := l.PositionAfterWrappedMove(buffer.Position{Line: 1, Column: 3}, 1)
	if got != (buffer.Position{Line: 1, Column: 13}) {
		t.Errorf("down one row = %s, want (1,13)", got)
	}

	// Another row down crosses into line 2.
	got = l.PositionAfterWrappedMove(got, 1)
	if got != (buffer.Position{Line: 2, Column: 3}) {
		t.Errorf("down again = %s, want (2,3)", got)
	}

	// Offset clamps to the row width on the way back up.
	got = l.PositionAfterWrappedMove(buffer.Position{Line: 2, Column: 5}, -1)
	if got != (buffer.Position{Line: 1, Column: 15}) {
		t.Errorf("up into short row = %s, want (1,15)", got)
	}
}

func TestPositionAfterWrappedMoveClamps(t *testing.T) {
	l := newLayout([]string{"aaaa bbbb cccc"}, Options{WrapColumn: 10})

	if got := l.PositionAfterWrappedMove(buffer.Position{Line: 1, Column: 12}, -5); got != (buffer.Position{Line: 1, Column: 1}) {
		t.Errorf("past first row = %s, want (1,1)", got)
	}
	if got := l.PositionAfterWrappedMove(buffer.Position{Line: 1, Column: 2}, 9); got != (buffer.Position{Line: 1, Column: 15}) {
		t.Errorf("past last row = %s, want (1,15)", got)
	}
}

func TestVisibleLineRangeWithoutViewport(t *testing.T) {
	l := newLayout([]string{"a", "b", "c"}, Options{})

	vr := l.VisibleLineRange()
	if vr.Start.Line != 1 || vr.End.Line != 3 {
		t.Errorf("range = %d..%d, want 1..3", vr.Start.Line, vr.End.Line)
	}
}

func TestVisibleLineRangeClampsViewport(t *testing.T) {
	buf := buffer.New([]string{"a", "b", "c"})
	view := viewport.New(10)
	view.SetMaxLine(buf.LineCount())
	l := New(buf, view, Options{})

	vr := l.VisibleLineRange()
	if vr.Start.Line != 1 || vr.End.Line != 3 {
		t.Errorf("range = %d..%d, want 1..3", vr.Start.Line, vr.End.Line)
	}
}
