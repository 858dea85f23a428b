package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/caret/internal/engine/buffer"
)

var (
	styleText      = tcell.StyleDefault
	styleSelection = tcell.StyleDefault.Reverse(true)
	styleStatus    = tcell.StyleDefault.Bold(true)
)

// draw repaints the whole pad: wrapped buffer rows then the status line.
func (p *Pad) draw() {
	p.screen.Clear()

	cols, rows := p.screen.Size()
	textRows := rows - 1

	first, _ := p.view.VisibleRange()
	y := 0
	for line := first; line <= p.buf.LineCount() && y < textRows; line++ {
		for _, rng := range p.lay.WrappedRanges(line) {
			if y >= textRows {
				break
			}
			p.drawRow(y, line, rng)
			y++
		}
	}

	p.drawStatus(textRows, cols)
	p.screen.Show()
}

// drawRow paints one wrapped row of a model line.
func (p *Pad) drawRow(y, line int, rng buffer.Range) {
	text := p.buf.Line(line)
	start := buffer.ColumnToIndex(text, rng.Start.Column)
	end := buffer.ColumnToIndex(text, rng.End.Column)

	x := 0
	col := rng.Start.Column
	for _, r := range text[start:end] {
		style := styleText
		if p.isSelected(buffer.Position{Line: line, Column: col}) {
			style = styleSelection
		}

		if r == '\t' {
			pad := p.cfg.Editor.TabSize - x%p.cfg.Editor.TabSize
			for i := 0; i < pad; i++ {
				p.screen.SetContent(x, y, ' ', nil, style)
				x++
			}
		} else {
			p.screen.SetContent(x, y, r, nil, style)
			x += runewidth.RuneWidth(r)
		}

		col++
		if r > 0xFFFF {
			col++
		}
	}

	p.markCursorsOnRow(y, line, rng)
}

// markCursorsOnRow places the terminal cursor and cursor markers for any
// cursor head sitting on this row.
func (p *Pad) markCursorsOnRow(y, line int, rng buffer.Range) {
	for i, c := range p.cursors.All() {
		pos := c.Position()
		if pos.Line != line || pos.Column < rng.Start.Column || pos.Column > rng.End.Column {
			continue
		}
		x := p.cellOffset(line, rng.Start.Column, pos.Column)
		if i == 0 {
			p.screen.ShowCursor(x, y)
		} else {
			p.screen.SetContent(x, y, ' ', nil, styleSelection)
		}
	}
}

// cellOffset returns the screen column of pos.Column within a row that
// starts at startCol, with tabs expanded from the row start.
func (p *Pad) cellOffset(line, startCol, column int) int {
	text := p.buf.Line(line)
	start := buffer.ColumnToIndex(text, startCol)
	end := buffer.ColumnToIndex(text, column)

	x := 0
	for _, r := range text[start:end] {
		if r == '\t' {
			x += p.cfg.Editor.TabSize - x%p.cfg.Editor.TabSize
		} else {
			x += runewidth.RuneWidth(r)
		}
	}
	return x
}

// isSelected reports whether any cursor's selection covers the position.
func (p *Pad) isSelected(pos buffer.Position) bool {
	for _, c := range p.cursors.All() {
		sel := c.Selection()
		if !sel.IsEmpty() && sel.Range().Contains(pos) {
			return true
		}
	}
	return false
}

// drawStatus paints the status line.
func (p *Pad) drawStatus(y, cols int) {
	primary := p.cursors.Primary()
	left := fmt.Sprintf(" %s  %s", primary.Position(), p.status)

	x := 0
	for _, r := range left {
		if x >= cols {
			break
		}
		p.screen.SetContent(x, y, r, nil, styleStatus)
		x += runewidth.RuneWidth(r)
	}
	for ; x < cols; x++ {
		p.screen.SetContent(x, y, ' ', nil, styleStatus)
	}
}
