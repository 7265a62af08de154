package sqlite

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rahulraj-lab/Focus-flow/internal/storage"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "nested", "focusflow.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLoadBeforeInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	err := store.Load()
	if !errors.Is(err, storage.ErrNotInitialized) {
		t.Errorf("Load() error = %v, want %v", err, storage.ErrNotInitialized)
	}
}

func TestPutGetDelete(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.Get("day:2026-01-14"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Get() on empty store error = %v, want ErrNotFound", err)
	}

	if err := store.Put("day:2026-01-14", `[1]`); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if err := store.Put("day:2026-01-14", `[2]`); err != nil {
		t.Fatalf("Put() overwrite failed: %v", err)
	}

	got, err := store.Get("day:2026-01-14")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got != `[2]` {
		t.Errorf("Get() = %q, want %q", got, `[2]`)
	}

	if err := store.Delete("day:2026-01-14"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := store.Get("day:2026-01-14"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Get() after Delete error = %v, want ErrNotFound", err)
	}
	if err := store.Delete("day:2026-01-14"); err != nil {
		t.Errorf("Delete() of missing key failed: %v", err)
	}
}

func TestKeys(t *testing.T) {
	store := setupTestStore(t)

	for _, k := range []string{"day:2026-01-15", "recurring_rules", "day:2026-01-14", "notifications"} {
		if err := store.Put(k, "[]"); err != nil {
			t.Fatalf("Put(%q) failed: %v", k, err)
		}
	}

	keys, err := store.Keys("day:")
	if err != nil {
		t.Fatalf("Keys() failed: %v", err)
	}
	want := []string{"day:2026-01-14", "day:2026-01-15"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("Keys() = %v, want %v", keys, want)
	}
}

func TestReopenKeepsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "focusflow.db")
	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if err := store.Put("recurring_rules", "[]"); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	store.Close()

	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	defer reopened.Close()

	if got, err := reopened.Get("recurring_rules"); err != nil || got != "[]" {
		t.Errorf("Get() = %q, %v; want [] nil", got, err)
	}
	if reopened.GetConfigPath() != path {
		t.Errorf("GetConfigPath() = %q, want %q", reopened.GetConfigPath(), path)
	}
}
