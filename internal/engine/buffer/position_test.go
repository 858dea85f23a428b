package buffer

import "testing"

func TestPositionCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Position
		want int
	}{
		{"same position", Position{1, 1}, Position{1, 1}, 0},
		{"earlier line", Position{1, 9}, Position{2, 1}, -1},
		{"later line", Position{3, 1}, Position{2, 9}, 1},
		{"same line earlier column", Position{2, 3}, Position{2, 7}, -1},
		{"same line later column", Position{2, 7}, Position{2, 3}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPositionBeforeAfter(t *testing.T) {
	a := Position{Line: 1, Column: 5}
	b := Position{Line: 2, Column: 1}

	if !a.Before(b) {
		t.Error("a should be before b")
	}
	if !b.After(a) {
		t.Error("b should be after a")
	}
	if a.After(b) || b.Before(a) {
		t.Error("ordering should not be symmetric")
	}
}

func TestNewRangeOrders(t *testing.T) {
	a := Position{Line: 3, Column: 2}
	b := Position{Line: 1, Column: 8}

	r := NewRange(a, b)
	if r.Start != b || r.End != a {
		t.Errorf("NewRange should order endpoints, got %s", r)
	}
}

func TestRangeIsEmpty(t *testing.T) {
	p := Position{Line: 2, Column: 4}
	if !(Range{Start: p, End: p}).IsEmpty() {
		t.Error("range with equal endpoints should be empty")
	}
	if (Range{Start: p, End: Position{Line: 2, Column: 5}}).IsEmpty() {
		t.Error("range with extent should not be empty")
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{Start: Position{1, 3}, End: Position{2, 5}}

	tests := []struct {
		name string
		p    Position
		want bool
	}{
		{"start is inclusive", Position{1, 3}, true},
		{"inside", Position{2, 1}, true},
		{"end is exclusive", Position{2, 5}, false},
		{"before start", Position{1, 2}, false},
		{"after end", Position{3, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%s) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}
