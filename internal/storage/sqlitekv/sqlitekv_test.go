package sqlitekv_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/mountainmajesty/stays/internal/storage/sqlitekv"
)

func TestOpen_RequiresPath(t *testing.T) {
	if _, err := sqlitekv.Open("  "); err == nil {
		t.Error("expected error for blank path")
	}
}

func TestReadWrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stays.db")

	store, err := sqlitekv.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = store.Close() }()

	if _, ok, err := store.Read("mm_bookings"); err != nil || ok {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}

	value := []byte(`[{"roomId":"mm-villa","date":"2026-03-10"}]`)

	if err := store.Write("mm_bookings", value); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, ok, err := store.Read("mm_bookings")
	if err != nil || !ok {
		t.Fatalf("read: ok=%v err=%v", ok, err)
	}

	if !bytes.Equal(got, value) {
		t.Fatalf("value mismatch: %s", got)
	}
}

func TestWrite_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stays.db")

	store, err := sqlitekv.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Write("k", []byte("first")); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := store.Write("k", []byte("second")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, _, err := store.Read("k")
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if string(got) != "second" {
		t.Fatalf("expected overwritten value, got %s", got)
	}
}

func TestValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stays.db")

	store, err := sqlitekv.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if err := store.Write("k", []byte("persisted")); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := sqlitekv.Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = reopened.Close() }()

	got, ok, err := reopened.Read("k")
	if err != nil || !ok {
		t.Fatalf("read after reopen: ok=%v err=%v", ok, err)
	}

	if string(got) != "persisted" {
		t.Fatalf("expected persisted value, got %s", got)
	}
}
