package sprig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIsAssetFile(t *testing.T) {
	cases := map[string]bool{
		"anim.yaml":        true,
		"anim.YML":         true,
		"atlas.json":       true,
		"atlas.png":        false,
		"notes.txt":        false,
		"dir/sub/run.yaml": true,
	}
	for path, want := range cases {
		if got := isAssetFile(path); got != want {
			t.Errorf("isAssetFile(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestWatcher_ReportsYAMLChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "ignored.png"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "animations.yaml")
	if err := os.WriteFile(path, []byte(storeYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if filepath.Base(got) != "animations.yaml" {
			t.Errorf("event for %q, want animations.yaml", got)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("no event within 2s")
	}
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Error("Events should be closed")
	}
}

func TestNewWatcher_MissingDir(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}
