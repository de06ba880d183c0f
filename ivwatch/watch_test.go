package ivwatch

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/abh/ivstore/ivstore"
	"github.com/abh/ivstore/ivtypes"
)

func TestStartLoadsExistingDumpFiles(t *testing.T) {
	dir := t.TempDir()
	if err := ivtypes.WriteDump(filepath.Join(dir, "a.yaml"), []ivtypes.Range{
		{From: 10, To: 20}, {From: 15, To: 25},
	}); err != nil {
		t.Fatalf("WriteDump: %v", err)
	}

	store := ivstore.New()
	w, err := New(dir, store)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if store.Size() != 2 {
		t.Fatalf("Size() after Start = %d, want 2", store.Size())
	}
}

func TestReloadPicksUpNewFile(t *testing.T) {
	dir := t.TempDir()

	store := ivstore.New()
	reloaded := make(chan int, 10)
	w, err := New(dir, store,
		WithBatchDelay(20*time.Millisecond),
		WithReloadCallback(func(count int, _ time.Duration) { reloaded <- count }),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	<-reloaded // initial empty load

	if err := ivtypes.WriteDump(filepath.Join(dir, "b.yaml"), []ivtypes.Range{
		{From: 1, To: 2},
	}); err != nil {
		t.Fatalf("WriteDump: %v", err)
	}

	select {
	case count := <-reloaded:
		if count != 1 {
			t.Fatalf("reload count = %d, want 1", count)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reload after file write")
	}

	if store.Size() != 1 {
		t.Fatalf("Size() after reload = %d, want 1", store.Size())
	}
}
