package rules

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rahulraj-lab/Focus-flow/internal/cli"
	"github.com/rahulraj-lab/Focus-flow/internal/models"
	"github.com/rahulraj-lab/Focus-flow/internal/storage"
	"github.com/rahulraj-lab/Focus-flow/internal/storage/sqlite"
)

func intPtr(i int) *int { return &i }

func setupTestDB(t *testing.T) (*cli.Context, func()) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}

	rules := []models.RecurringRule{
		{ID: "r1", Hour: 7, Task: "Morning run", Type: models.RecurrenceDaily},
		{ID: "r2", Hour: 9, Task: "Standup", Type: models.RecurrenceWeekly, DayValue: intPtr(1)},
		{ID: "r3", Hour: 10, Task: "Standup", Type: models.RecurrenceWeekly, DayValue: intPtr(1)},
		{ID: "r4", Hour: 18, Task: "Pay rent", Type: models.RecurrenceMonthly, DayValue: intPtr(1)},
	}
	if err := storage.SaveRules(store, rules); err != nil {
		t.Fatalf("SaveRules() failed: %v", err)
	}

	ctx := &cli.Context{
		Store: store,
		Now:   func() time.Time { return time.Date(2026, 1, 14, 10, 30, 0, 0, time.Local) },
	}
	return ctx, func() { _ = store.Close() }
}

func TestFind(t *testing.T) {
	rules := []models.RecurringRule{
		{ID: "r1", Task: "Morning run"},
		{ID: "r2", Task: "Standup"},
		{ID: "r3", Task: "Standup"},
	}

	tests := []struct {
		target string
		want   []string
	}{
		{"r1", []string{"r1"}},
		{"standup", []string{"r2", "r3"}},
		{"standp", []string{"r2", "r3"}},
		{"morning rn", []string{"r1"}},
		{"groceries", nil},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			got := Find(rules, tt.target)
			if len(got) != len(tt.want) {
				t.Fatalf("Find(%q) = %v, want %v", tt.target, got, tt.want)
			}
			for i := range got {
				if got[i].ID != tt.want[i] {
					t.Errorf("Find(%q)[%d] = %s, want %s", tt.target, i, got[i].ID, tt.want[i])
				}
			}
		})
	}
}

func TestDeleteCmd(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	if err := (&DeleteCmd{Target: "stand up", Yes: true}).Run(ctx); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	rules, _ := storage.LoadRules(ctx.Store)
	if len(rules) != 2 {
		t.Fatalf("got %d rules, want 2", len(rules))
	}
	for _, r := range rules {
		if r.Task == "Standup" {
			t.Errorf("standup rule %s survived", r.ID)
		}
	}

	log, _ := storage.LoadNotifications(ctx.Store)
	if len(log) != 2 || log[0].Title != "Template Removed" {
		t.Errorf("notifications = %+v", log)
	}

	if err := (&DeleteCmd{Target: "nonexistent", Yes: true}).Run(ctx); err == nil {
		t.Error("deleting an unknown rule should fail")
	}
}

func TestListAndPreview(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	cmds := []interface{ Run(*cli.Context) error }{
		&ListCmd{ShowIDs: true},
		&PreviewCmd{Count: 3},
		&PreviewCmd{Target: "rent"},
	}
	for _, cmd := range cmds {
		if err := cmd.Run(ctx); err != nil {
			t.Errorf("%T failed: %v", cmd, err)
		}
	}
	if err := (&PreviewCmd{Target: "zzzzzz"}).Run(ctx); err == nil {
		t.Error("preview of an unknown rule should fail")
	}
}

func TestExportImport(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := (&ExportCmd{Output: path}).Run(ctx); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("export file missing: %v", err)
	}

	// merging an identical set is a no-op
	if err := (&ImportCmd{File: path}).Run(ctx); err != nil {
		t.Fatalf("import failed: %v", err)
	}
	rules, _ := storage.LoadRules(ctx.Store)
	if len(rules) != 4 {
		t.Errorf("after merge: %d rules, want 4", len(rules))
	}

	single := filepath.Join(t.TempDir(), "single.yaml")
	doc := "version: 1\nrules:\n  - id: new\n    hour: 21\n    task: Read\n    type: daily\n"
	if err := os.WriteFile(single, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := (&ImportCmd{File: single, Replace: true}).Run(ctx); err != nil {
		t.Fatalf("replace import failed: %v", err)
	}
	rules, _ = storage.LoadRules(ctx.Store)
	if len(rules) != 1 || rules[0].ID != "new" {
		t.Errorf("after replace: %+v", rules)
	}
}
