package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "caret.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("config = %+v, want defaults", cfg)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("config = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[editor]
tab_size = 8
wrap_column = 80
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Editor.TabSize != 8 {
		t.Errorf("TabSize = %d, want 8", cfg.Editor.TabSize)
	}
	if cfg.Editor.WrapColumn != 80 {
		t.Errorf("WrapColumn = %d, want 80", cfg.Editor.WrapColumn)
	}
	// Unset keys keep their defaults.
	if cfg.Editor.ScrollOff != Default().Editor.ScrollOff {
		t.Errorf("ScrollOff = %d, want default %d", cfg.Editor.ScrollOff, Default().Editor.ScrollOff)
	}
}

func TestLoadNormalizesValues(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[editor]
tab_size = 0
wrap_column = -10
scroll_off = -1
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Editor.TabSize != Default().Editor.TabSize {
		t.Errorf("TabSize = %d, want default %d", cfg.Editor.TabSize, Default().Editor.TabSize)
	}
	if cfg.Editor.WrapColumn != 0 {
		t.Errorf("WrapColumn = %d, want 0", cfg.Editor.WrapColumn)
	}
	if cfg.Editor.ScrollOff != 0 {
		t.Errorf("ScrollOff = %d, want 0", cfg.Editor.ScrollOff)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "not = [valid")

	cfg, err := Load(path)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if cfg != Default() {
		t.Errorf("config after parse error = %+v, want defaults", cfg)
	}
}

func TestWatcherDeliversReload(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[editor]\ntab_size = 4\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("[editor]\ntab_size = 2\n"), 0o644); err != nil {
		t.Fatalf("rewriting config: %v", err)
	}

	select {
	case cfg := <-w.Configs():
		if cfg.Editor.TabSize != 2 {
			t.Errorf("TabSize = %d, want 2", cfg.Editor.TabSize)
		}
	case err := <-w.Errors():
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[editor]\ntab_size = 4\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	other := filepath.Join(dir, "other.toml")
	if err := os.WriteFile(other, []byte("[editor]\ntab_size = 9\n"), 0o644); err != nil {
		t.Fatalf("writing sibling: %v", err)
	}

	select {
	case cfg := <-w.Configs():
		t.Errorf("unexpected reload: %+v", cfg)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
