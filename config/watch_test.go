package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestTuningWatcherReportsBurstOnceAfterItSettles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "levels.yaml")
	if err := os.WriteFile(path, []byte("levels: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	quiet := 150 * time.Millisecond
	w, err := watchFile(path, quiet)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("levels: []\n# edit\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	// the last write is still inside the quiet period
	if changed, err := w.Poll(); err != nil || changed {
		t.Fatalf("Poll() = %v, %v before the writes settled", changed, err)
	}

	select {
	case name := <-w.Events:
		if name != filepath.Clean(path) {
			t.Fatalf("event for %q, want %q", name, path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event after the writes settled")
	}

	select {
	case name := <-w.Events:
		t.Fatalf("second event for %q from a single burst", name)
	case <-time.After(3 * quiet):
	}
}

func TestTuningWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "levels.yaml")

	w, err := watchFile(path, 50*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		t.Fatalf("event for unrelated file %q", name)
	case <-time.After(300 * time.Millisecond):
	}
}
