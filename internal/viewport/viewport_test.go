package viewport

import "testing"

func TestNewClampsHeight(t *testing.T) {
	v := New(0)
	if v.Height() != 1 {
		t.Errorf("height = %d, want 1", v.Height())
	}
	if v.TopLine() != 1 {
		t.Errorf("top = %d, want 1", v.TopLine())
	}
}

func TestVisibleRange(t *testing.T) {
	v := New(10)
	v.SetMaxLine(100)
	v.ScrollTo(5)

	first, last := v.VisibleRange()
	if first != 5 || last != 14 {
		t.Errorf("range = %d..%d, want 5..14", first, last)
	}
}

func TestBottomLineClampsToBuffer(t *testing.T) {
	v := New(10)
	v.SetMaxLine(6)

	if got := v.BottomLine(); got != 6 {
		t.Errorf("bottom = %d, want 6", got)
	}
}

func TestScrollToClamps(t *testing.T) {
	v := New(5)
	v.SetMaxLine(20)

	v.ScrollTo(-3)
	if v.TopLine() != 1 {
		t.Errorf("top after negative scroll = %d, want 1", v.TopLine())
	}

	v.ScrollTo(50)
	if v.TopLine() != 20 {
		t.Errorf("top after overscroll = %d, want 20", v.TopLine())
	}
}

func TestIsLineVisible(t *testing.T) {
	v := New(5)
	v.SetMaxLine(100)
	v.ScrollTo(10)

	tests := []struct {
		line int
		want bool
	}{
		{9, false},
		{10, true},
		{14, true},
		{15, false},
	}
	for _, tt := range tests {
		if got := v.IsLineVisible(tt.line); got != tt.want {
			t.Errorf("IsLineVisible(%d) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestEnsureVisibleScrollsDown(t *testing.T) {
	v := New(5)
	v.SetMaxLine(100)

	if moved := v.EnsureVisible(3); moved {
		t.Error("visible line should not move the viewport")
	}
	if moved := v.EnsureVisible(12); !moved {
		t.Error("line below the viewport should move it")
	}
	// Minimum scroll: line 12 becomes the bottom row.
	if v.TopLine() != 8 {
		t.Errorf("top = %d, want 8", v.TopLine())
	}
}

func TestEnsureVisibleScrollsUp(t *testing.T) {
	v := New(5)
	v.SetMaxLine(100)
	v.ScrollTo(20)

	if moved := v.EnsureVisible(15); !moved {
		t.Error("line above the viewport should move it")
	}
	if v.TopLine() != 15 {
		t.Errorf("top = %d, want 15", v.TopLine())
	}
}

func TestEnsureVisibleHonorsScrollOff(t *testing.T) {
	v := New(10)
	v.SetMaxLine(100)
	v.SetScrollOff(2)
	v.ScrollTo(20)

	// Line 21 is inside the top margin, so the viewport pulls back.
	v.EnsureVisible(21)
	if v.TopLine() != 19 {
		t.Errorf("top = %d, want 19", v.TopLine())
	}

	// Line 27 sits against the bottom margin of rows 19..28.
	v.EnsureVisible(27)
	if v.TopLine() != 20 {
		t.Errorf("top = %d, want 20", v.TopLine())
	}
}

func TestEnsureVisibleShrinksMarginInShortViewport(t *testing.T) {
	v := New(3)
	v.SetMaxLine(100)
	v.SetScrollOff(5)
	v.ScrollTo(10)

	// A margin wider than half the height collapses to (height-1)/2.
	v.EnsureVisible(13)
	if v.TopLine() != 12 {
		t.Errorf("top = %d, want 12", v.TopLine())
	}
}

func TestResizeKeepsTopValid(t *testing.T) {
	v := New(10)
	v.SetMaxLine(20)
	v.ScrollTo(18)

	v.Resize(-1)
	if v.Height() != 1 {
		t.Errorf("height = %d, want 1", v.Height())
	}
	if v.TopLine() != 18 {
		t.Errorf("top = %d, want 18", v.TopLine())
	}
}
