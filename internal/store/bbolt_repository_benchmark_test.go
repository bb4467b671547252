package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/netrom-source/notator/internal/session"
)

func BenchmarkBboltStateSaveLarge(b *testing.B) {
	repo, err := NewBboltRepository(filepath.Join(b.TempDir(), "bench.db"))
	if err != nil {
		b.Fatalf("NewBboltRepository: %v", err)
	}
	defer repo.Close()
	ctx := context.Background()

	snap := session.Snapshot{Active: "tab1"}
	for i := 0; i < 500; i++ {
		file := fmt.Sprintf("/notes/note-%04d.txt", i)
		snap.Tabs = append(snap.Tabs, session.SnapshotTab{
			ID:    fmt.Sprintf("tab%d", i+1),
			Title: fmt.Sprintf("Note %d", i+1),
			File:  &file,
		})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := repo.State().Save(ctx, snap); err != nil {
			b.Fatalf("save: %v", err)
		}
		loaded, err := repo.State().Load(ctx)
		if err != nil {
			b.Fatalf("load: %v", err)
		}
		if len(loaded.Tabs) != 500 {
			b.Fatalf("unexpected tab count: %d", len(loaded.Tabs))
		}
	}
}

func BenchmarkNoteStoreListLarge(b *testing.B) {
	ctx := context.Background()
	dir := b.TempDir()
	store := NewNoteStore(dir)
	for i := 0; i < 2000; i++ {
		path := filepath.Join(dir, fmt.Sprintf("note-%04d.txt", i))
		if err := store.Write(ctx, path, "benchmark"); err != nil {
			b.Fatalf("seed note %d: %v", i, err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		notes, err := store.List(ctx)
		if err != nil {
			b.Fatalf("list: %v", err)
		}
		if len(notes) != 2000 {
			b.Fatalf("unexpected notes length: %d", len(notes))
		}
	}
}
