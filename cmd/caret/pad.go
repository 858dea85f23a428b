package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/caret/internal/config"
	"github.com/dshills/caret/internal/engine/buffer"
	"github.com/dshills/caret/internal/engine/cursor"
	"github.com/dshills/caret/internal/layout"
	"github.com/dshills/caret/internal/movement"
	"github.com/dshills/caret/internal/viewport"
)

// Pad is the interactive movement playground.
type Pad struct {
	buf     *buffer.Buffer
	view    *viewport.Viewport
	cfg     config.Config
	lay     *layout.Layout
	cursors *cursor.Set
	watcher *config.Watcher

	screen tcell.Screen
	status string
}

// Run initializes the terminal and processes events until quit.
func (p *Pad) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	p.screen = screen

	_, rows := screen.Size()
	p.view.Resize(rows - 1) // last row is the status line

	var configs <-chan config.Config
	if p.watcher != nil {
		configs = p.watcher.Configs()
	}

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	p.draw()
	for {
		select {
		case cfg := <-configs:
			p.applyConfig(cfg)
			p.status = "config reloaded"
			p.draw()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				_, rows := ev.Size()
				p.view.Resize(rows - 1)
				screen.Sync()
				p.draw()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
				p.handleKey(ev)
				p.draw()
			}
		}
	}
}

// applyConfig swaps in reloaded options and rebuilds the layout.
func (p *Pad) applyConfig(cfg config.Config) {
	p.cfg = cfg
	p.view.SetScrollOff(cfg.Editor.ScrollOff)
	p.lay = newLayout(p.buf, p.view, cfg)
}

// handleKey maps a key event to a movement directive and applies it.
func (p *Pad) handleKey(ev *tcell.EventKey) {
	raw, ok := directiveForKey(ev)
	if !ok {
		return
	}

	next, err := movement.Resolve(raw, p.cursors, p.lay)
	if err != nil {
		p.status = err.Error()
		return
	}
	p.cursors = next
	p.view.EnsureVisible(next.Primary().Position().Line)
	p.status = fmt.Sprintf("%s by %s x%d -> %s",
		raw.To, raw.By, max(raw.Value, 1), next.Primary().Position())
}

// directiveForKey translates terminal keys into raw directives.
// Shift extends the selection; Alt switches vertical moves to wrapped rows.
func directiveForKey(ev *tcell.EventKey) (movement.RawDirective, bool) {
	sel := ev.Modifiers()&tcell.ModShift != 0
	wrapped := ev.Modifiers()&tcell.ModAlt != 0

	vertUnit := movement.UnitDefault
	if wrapped {
		vertUnit = movement.UnitWrappedLine
	}

	switch ev.Key() {
	case tcell.KeyLeft:
		return movement.RawDirective{To: movement.DirLeft, Select: sel}, true
	case tcell.KeyRight:
		return movement.RawDirective{To: movement.DirRight, Select: sel}, true
	case tcell.KeyUp:
		return movement.RawDirective{To: movement.DirUp, By: vertUnit, Select: sel}, true
	case tcell.KeyDown:
		return movement.RawDirective{To: movement.DirDown, By: vertUnit, Select: sel}, true
	case tcell.KeyHome:
		return movement.RawDirective{To: movement.DirWrappedLineStart, Select: sel}, true
	case tcell.KeyEnd:
		return movement.RawDirective{To: movement.DirWrappedLineEnd, Select: sel}, true
	case tcell.KeyPgUp:
		return movement.RawDirective{To: movement.DirUp, By: movement.UnitPage, Select: sel}, true
	case tcell.KeyPgDn:
		return movement.RawDirective{To: movement.DirDown, By: movement.UnitPage, Select: sel}, true
	}

	if ev.Key() != tcell.KeyRune {
		return movement.RawDirective{}, false
	}

	switch ev.Rune() {
	case '^':
		return movement.RawDirective{To: movement.DirWrappedLineFirstNonWhitespace}, true
	case '$':
		return movement.RawDirective{To: movement.DirWrappedLineLastNonWhitespace}, true
	case 'c':
		return movement.RawDirective{To: movement.DirWrappedLineColumnCenter}, true
	case '[':
		return movement.RawDirective{To: movement.DirLeft, By: movement.UnitHalfLine}, true
	case ']':
		return movement.RawDirective{To: movement.DirRight, By: movement.UnitHalfLine}, true
	case 'H':
		return movement.RawDirective{To: movement.DirViewPortTop}, true
	case 'M':
		return movement.RawDirective{To: movement.DirViewPortCenter}, true
	case 'L':
		return movement.RawDirective{To: movement.DirViewPortBottom}, true
	}
	return movement.RawDirective{}, false
}
