package backup

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/rahulraj-lab/Focus-flow/internal/constants"
	"github.com/rahulraj-lab/Focus-flow/internal/storage"
	"github.com/rahulraj-lab/Focus-flow/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "focusflow.db")

	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	defer store.Close()

	for _, key := range []string{storage.DayKey("2026-01-14"), storage.DayKey("2026-01-15")} {
		if err := store.Put(key, "[]"); err != nil {
			t.Fatalf("Put() failed: %v", err)
		}
	}
	return dbPath
}

func steppingClock(start time.Time) func() time.Time {
	n := 0
	return func() time.Time {
		n++
		return start.Add(time.Duration(n) * time.Minute)
	}
}

func TestCreate(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	path, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if filepath.Dir(path) != filepath.Join(filepath.Dir(dbPath), constants.BackupDirName) {
		t.Errorf("backup written to %s", path)
	}

	info, err := Inspect(path)
	if err != nil {
		t.Fatalf("Inspect() failed: %v", err)
	}
	if info.Records != 2 {
		t.Errorf("backup has %d records, want 2", info.Records)
	}
}

func TestCreate_MissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "absent.db"))
	if _, err := mgr.Create(); !errors.Is(err, ErrNoDatabase) {
		t.Errorf("Create() error = %v, want ErrNoDatabase", err)
	}
}

func TestRotation(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	mgr.now = steppingClock(time.Date(2026, 1, 14, 8, 0, 0, 0, time.UTC))

	for i := 0; i < constants.MaxBackups+3; i++ {
		if _, err := mgr.Create(); err != nil {
			t.Fatalf("Create() #%d failed: %v", i, err)
		}
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(backups) != constants.MaxBackups {
		t.Fatalf("kept %d backups, want %d", len(backups), constants.MaxBackups)
	}
	for i := 1; i < len(backups); i++ {
		if !backups[i-1].Timestamp.After(backups[i].Timestamp) {
			t.Errorf("backups not sorted newest first at %d", i)
		}
	}
	// the three oldest were pruned
	oldest := time.Date(2026, 1, 14, 8, 4, 0, 0, time.UTC)
	if got := backups[len(backups)-1].Timestamp; !got.Equal(oldest) {
		t.Errorf("oldest kept = %v, want %v", got, oldest)
	}
}

func TestList(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	if backups, err := mgr.List(); err != nil || len(backups) != 0 {
		t.Fatalf("List() on empty dir = %v, %v", backups, err)
	}

	if err := os.MkdirAll(mgr.Dir(), 0o700); err != nil {
		t.Fatal(err)
	}
	names := []string{
		"focusflow-20260114-080000.db",
		"focusflow-20260114-080000-1.db",
		"focusflow-20260113-230000.db",
		"focusflow-garbage.db",
		"notes.txt",
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(mgr.Dir(), name), []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("got %d backups, want 3", len(backups))
	}
	if filepath.Base(backups[0].Path) != "focusflow-20260114-080000-1.db" {
		t.Errorf("newest = %s", backups[0].Path)
	}
	if filepath.Base(backups[2].Path) != "focusflow-20260113-230000.db" {
		t.Errorf("oldest = %s", backups[2].Path)
	}
}

func TestUniqueNames(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	fixed := time.Date(2026, 1, 14, 8, 0, 0, 0, time.UTC)
	mgr.now = func() time.Time { return fixed }

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		path, err := mgr.Create()
		if err != nil {
			t.Fatalf("Create() failed: %v", err)
		}
		if seen[path] {
			t.Fatalf("duplicate backup path %s", path)
		}
		seen[path] = true
	}
}

func TestRestore(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	mgr.now = steppingClock(time.Date(2026, 1, 14, 8, 0, 0, 0, time.UTC))

	snapshot, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	// diverge the live database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("DELETE FROM records"); err != nil {
		t.Fatal(err)
	}
	db.Close()

	previous, err := mgr.Restore(snapshot)
	if err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}
	if previous == "" {
		t.Fatal("Restore() should snapshot the current database first")
	}

	prevInfo, err := Inspect(previous)
	if err != nil || prevInfo.Records != 0 {
		t.Errorf("pre-restore backup = %+v, %v", prevInfo, err)
	}

	store := sqlite.NewStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatalf("Load() after restore failed: %v", err)
	}
	defer store.Close()
	if _, err := store.Get(storage.DayKey("2026-01-14")); err != nil {
		t.Errorf("restored record missing: %v", err)
	}
}

func TestRestore_RejectsInvalidFile(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	bogus := filepath.Join(t.TempDir(), "bogus.db")
	if err := os.WriteFile(bogus, []byte("not a database"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []string{bogus, filepath.Join(t.TempDir(), "missing.db")}
	for _, path := range tests {
		t.Run(filepath.Base(path), func(t *testing.T) {
			if _, err := mgr.Restore(path); err == nil {
				t.Errorf("Restore(%s) should fail", path)
			}
		})
	}

	backups, _ := mgr.List()
	if len(backups) != 0 {
		t.Errorf("failed restore created %d backups", len(backups))
	}
}

func TestParseName(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"focusflow-20260114-080000.db", true},
		{"focusflow-20260114-080000-12.db", true},
		{"focusflow-20260114.db", false},
		{"otherapp-20260114-080000.db", false},
		{fmt.Sprintf("focusflow-%s.sqlite", "20260114-080000"), false},
	}
	for _, tt := range tests {
		if _, ok := parseName(tt.name); ok != tt.ok {
			t.Errorf("parseName(%q) ok = %v, want %v", tt.name, ok, tt.ok)
		}
	}
}
