package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRunInvokesCallbackOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reactions.txt")
	if err := os.WriteFile(path, []byte("H2 + O2 -> H2O\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	calls := make(chan struct{}, 16)
	w := New(path, 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() { calls <- struct{}{} })
	}()

	// Initial run happens before any file change.
	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("initial callback never ran")
	}

	// A write to the watched file triggers a debounced re-run.
	if err := os.WriteFile(path, []byte("Fe + O2 -> Fe2O3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("callback did not run after file change")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop on context cancellation")
	}
}

func TestRunIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reactions.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	calls := make(chan struct{}, 16)
	w := New(path, 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx, func() { calls <- struct{}{} }) }()

	<-calls // initial run

	// Changes to other files in the directory must not trigger the
	// callback.
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-calls:
		t.Fatal("callback ran for an unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestRunMissingDirectory(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "missing", "file.txt"), 0, nil)
	if err := w.Run(context.Background(), func() {}); err == nil {
		t.Error("expected error for missing directory")
	}
}
