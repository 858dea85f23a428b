// Package viewport tracks the visible slice of model lines.
//
// The movement engine only needs one fact from the view: which model lines
// are currently fully visible. Viewport tracks that range (top line plus
// height) and provides follow-cursor scrolling for the demo frontend.
// Lines are 1-indexed to match the engine's position space.
package viewport

import "sync"

// Viewport represents the visible portion of the buffer.
type Viewport struct {
	mu sync.RWMutex

	// First visible model line, 1-indexed.
	topLine int

	// Size in screen rows.
	height int

	// Keep the cursor this many lines from the edges when following.
	scrollOff int

	// Last line of the buffer, for clamping. Zero means unknown.
	maxLine int
}

// New creates a viewport with the given height in rows.
// Height is clamped to a minimum of 1 to prevent underflow.
func New(height int) *Viewport {
	if height < 1 {
		height = 1
	}
	return &Viewport{topLine: 1, height: height}
}

// Height returns the viewport height in rows.
func (v *Viewport) Height() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.height
}

// Resize updates the viewport height, clamped to a minimum of 1.
func (v *Viewport) Resize(height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if height < 1 {
		height = 1
	}
	v.height = height
	v.clampTop()
}

// TopLine returns the first visible model line.
func (v *Viewport) TopLine() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.topLine
}

// BottomLine returns the last fully visible model line.
func (v *Viewport) BottomLine() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.bottomLine()
}

// bottomLine returns the last visible line (internal, no lock).
func (v *Viewport) bottomLine() int {
	bottom := v.topLine + v.height - 1
	if v.maxLine > 0 && bottom > v.maxLine {
		bottom = v.maxLine
	}
	return bottom
}

// VisibleRange returns the first and last fully visible model lines.
func (v *Viewport) VisibleRange() (first, last int) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.topLine, v.bottomLine()
}

// IsLineVisible returns true if the line is within the viewport.
func (v *Viewport) IsLineVisible(line int) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return line >= v.topLine && line <= v.bottomLine()
}

// SetMaxLine sets the last line of the buffer, clamping the top if needed.
func (v *Viewport) SetMaxLine(maxLine int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if maxLine < 0 {
		maxLine = 0
	}
	v.maxLine = maxLine
	v.clampTop()
}

// SetScrollOff sets how many lines to keep between the cursor and the
// viewport edges when following.
func (v *Viewport) SetScrollOff(n int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if n < 0 {
		n = 0
	}
	v.scrollOff = n
}

// ScrollTo makes line the top of the viewport, clamped to the buffer.
func (v *Viewport) ScrollTo(line int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.topLine = line
	v.clampTop()
}

// EnsureVisible scrolls the minimum amount needed so line is visible with
// the configured scroll-off margin. Returns true if the viewport moved.
func (v *Viewport) EnsureVisible(line int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	off := v.scrollOff
	if 2*off >= v.height {
		off = (v.height - 1) / 2
	}

	top := v.topLine
	if line < v.topLine+off {
		top = line - off
	} else if bottom := v.topLine + v.height - 1 - off; line > bottom {
		top = line - v.height + 1 + off
	}
	if top == v.topLine {
		return false
	}
	v.topLine = top
	v.clampTop()
	return true
}

// clampTop keeps topLine inside the buffer (internal, no lock).
func (v *Viewport) clampTop() {
	if v.maxLine > 0 && v.topLine > v.maxLine {
		v.topLine = v.maxLine
	}
	if v.topLine < 1 {
		v.topLine = 1
	}
}
