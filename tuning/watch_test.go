package tuning

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("ship:\n  speed: 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	if err := os.WriteFile(path, []byte("ship:\n  speed: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "tuning.yaml" {
			t.Fatalf("event for %q, want tuning.yaml", name)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("no event within 2s")
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	// after Close the pump exits and both channels close
	deadline := time.After(2 * time.Second)
	for open := true; open; {
		select {
		case _, open = <-w.Events:
		case <-deadline:
			t.Fatalf("Events not closed after Close")
		}
	}
	for open := true; open; {
		select {
		case _, open = <-w.Errors:
		case <-deadline:
			t.Fatalf("Errors not closed after Close")
		}
	}
}
