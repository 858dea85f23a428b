// Package main is the entry point for the caret movement playground, an
// interactive pad for exercising the movement engine against a real
// terminal: arrows and friends become directives, the screen shows where
// the cursors land.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/caret/internal/config"
	"github.com/dshills/caret/internal/engine/buffer"
	"github.com/dshills/caret/internal/engine/cursor"
	"github.com/dshills/caret/internal/layout"
	"github.com/dshills/caret/internal/viewport"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

// sampleLines is shown when no file is given.
var sampleLines = []string{
	"    \tMy First Line\t ",
	"\tMy Second Line",
	"    Third Line\U0001F436",
	"",
	"1",
}

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	var wrapColumn int
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.IntVar(&wrapColumn, "wrap", -1, "Soft-wrap width in cells (overrides config; 0 disables)")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("caret %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if wrapColumn >= 0 {
		cfg.Editor.WrapColumn = wrapColumn
	}

	buf := buffer.New(sampleLines)
	if path := flag.Arg(0); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: reading %s: %v\n", path, err)
			return 1
		}
		buf = buffer.NewFromString(string(data))
	}

	return runPad(buf, cfg, configPath)
}

// runPad wires the engine together and runs the event loop.
func runPad(buf *buffer.Buffer, cfg config.Config, configPath string) int {
	view := viewport.New(1)
	view.SetMaxLine(buf.LineCount())
	view.SetScrollOff(cfg.Editor.ScrollOff)

	pad := &Pad{
		buf:     buf,
		view:    view,
		cfg:     cfg,
		lay:     newLayout(buf, view, cfg),
		cursors: cursor.NewSetAt(buffer.Position{Line: 1, Column: 1}),
	}

	if configPath != "" {
		watcher, err := config.NewWatcher(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: config watch unavailable: %v\n", err)
		} else {
			pad.watcher = watcher
			defer watcher.Close()
		}
	}

	if err := pad.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newLayout(buf *buffer.Buffer, view *viewport.Viewport, cfg config.Config) *layout.Layout {
	return layout.New(buf, view, layout.Options{
		TabSize:    cfg.Editor.TabSize,
		WrapColumn: cfg.Editor.WrapColumn,
	})
}
