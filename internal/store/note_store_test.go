package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNoteStoreReadWriteRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewNoteStore(dir)
	path := filepath.Join(dir, "notes1.txt")

	if err := store.Write(ctx, path, "første linje\nanden linje\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	text, err := store.Read(ctx, path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if text != "første linje\nanden linje\n" {
		t.Fatalf("unexpected contents: %q", text)
	}

	if err := store.Write(ctx, path, "ny tekst"); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	text, err = store.Read(ctx, path)
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if text != "ny tekst" {
		t.Fatalf("unexpected contents after rewrite: %q", text)
	}
	// The atomic write must not leave temp files behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the note file, found %d entries", len(entries))
	}
}

func TestNoteStoreReadMissing(t *testing.T) {
	store := NewNoteStore(t.TempDir())
	_, err := store.Read(context.Background(), filepath.Join(t.TempDir(), "absent.txt"))
	if !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestNoteStoreDelete(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewNoteStore(dir)
	path := filepath.Join(dir, "doomed.txt")

	if err := store.Write(ctx, path, "snart væk"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := store.Delete(ctx, path); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected file gone, got %v", err)
	}
	if err := store.Delete(ctx, path); !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestNoteStoreListFiltersAndSorts(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewNoteStore(dir)

	old := filepath.Join(dir, "old.txt")
	fresh := filepath.Join(dir, "fresh.txt")
	if err := store.Write(ctx, old, "gammel"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := store.Write(ctx, fresh, "ny"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "skip.md"), []byte("nope"), 0o644); err != nil {
		t.Fatalf("write decoy: %v", err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.txt"), 0o755); err != nil {
		t.Fatalf("mkdir decoy: %v", err)
	}
	base := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	if err := os.Chtimes(old, base, base); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	if err := os.Chtimes(fresh, base.Add(time.Hour), base.Add(time.Hour)); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	notes, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[0].Name != "fresh.txt" || notes[1].Name != "old.txt" {
		t.Fatalf("unexpected order: %q, %q", notes[0].Name, notes[1].Name)
	}
}

func TestNoteStoreListMissingDir(t *testing.T) {
	store := NewNoteStore(filepath.Join(t.TempDir(), "nowhere"))
	notes, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(notes) != 0 {
		t.Fatalf("expected empty list, got %d", len(notes))
	}
}
