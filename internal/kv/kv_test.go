package kv

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func testRoundTrip(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := store.Get(ctx, KeyTransactions); err != nil || ok {
		t.Fatalf("fresh key: ok=%v err=%v, want absent", ok, err)
	}

	payload := []byte(`[{"id":"a"}]`)
	if err := store.Set(ctx, KeyTransactions, payload); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok, err := store.Get(ctx, KeyTransactions)
	if err != nil || !ok {
		t.Fatalf("get after set: ok=%v err=%v", ok, err)
	}
	if string(got) != string(payload) {
		t.Fatalf("got %s, want %s", got, payload)
	}

	// Overwrite replaces, never appends
	if err := store.Set(ctx, KeyTransactions, []byte(`[]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _, _ = store.Get(ctx, KeyTransactions)
	if string(got) != `[]` {
		t.Fatalf("after overwrite got %s", got)
	}
}

func TestMemoryStore(t *testing.T) {
	testRoundTrip(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	testRoundTrip(t, store)
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	if err := first.Set(ctx, KeyGoals, []byte(`[{"id":"g1"}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}

	second, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, ok, err := second.Get(ctx, KeyGoals)
	if err != nil || !ok || string(got) != `[{"id":"g1"}]` {
		t.Fatalf("reopened get: %s ok=%v err=%v", got, ok, err)
	}
}

func TestFileStoreSanitizesKeys(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	ctx := context.Background()
	if err := store.Set(ctx, "../evil/key", []byte(`x`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	for _, e := range entries {
		if filepath.Dir(filepath.Join(dir, e.Name())) != dir {
			t.Fatalf("entry escaped base dir: %s", e.Name())
		}
	}
	if _, ok, _ := store.Get(ctx, "../evil/key"); !ok {
		t.Fatalf("sanitized key must round-trip")
	}
}

func TestBackendValidation(t *testing.T) {
	for _, b := range Backends() {
		if !b.IsValid() {
			t.Errorf("%s should be valid", b)
		}
	}
	if Backend("postgres").IsValid() {
		t.Errorf("unknown backend must be invalid")
	}
}

func TestOpenMemory(t *testing.T) {
	store, cleanup, err := Open(Config{Backend: MemoryBackend}, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if cleanup != nil {
		t.Fatalf("memory store needs no cleanup")
	}
	testRoundTrip(t, store)
}

func TestOpenUnknownBackend(t *testing.T) {
	if _, _, err := Open(Config{Backend: "nope"}, nil); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
