package schedule

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/rahulraj-lab/Focus-flow/internal/models"
)

func dayWith(entries map[int]models.Slot) []models.Slot {
	slots := EmptyDay()
	for h, s := range entries {
		s.Hour = h
		if s.Recurrence == "" {
			s.Recurrence = models.RecurrenceNone
		}
		slots[h] = s
	}
	return slots
}

func randomDay(r *rand.Rand) []models.Slot {
	tasks := []string{"", "", "Deep work", "Gym"}
	notes := []string{"", "focus"}
	recs := []models.RecurrenceType{models.RecurrenceNone, models.RecurrenceDaily}
	slots := EmptyDay()
	for h := range slots {
		slots[h] = models.Slot{
			Hour:       h,
			Task:       tasks[r.Intn(len(tasks))],
			Completed:  r.Intn(4) == 0,
			Notes:      notes[r.Intn(len(notes))],
			Recurrence: recs[r.Intn(len(recs))],
		}
	}
	return slots
}

func TestMergeSlots_EmptyDayIsAllSingletons(t *testing.T) {
	ranges := MergeSlots(EmptyDay())
	if len(ranges) != 24 {
		t.Fatalf("MergeSlots(EmptyDay()) returned %d ranges, want 24", len(ranges))
	}
	for i, r := range ranges {
		if r.StartHour != i || r.EndHour != i {
			t.Errorf("range %d = %d-%d, want %d-%d", i, r.StartHour, r.EndHour, i, i)
		}
	}
}

func TestMergeSlots_CollapsesIdenticalHours(t *testing.T) {
	slots := dayWith(map[int]models.Slot{
		9:  {Task: "Deep work", Notes: "draft"},
		10: {Task: "Deep work", Notes: "draft"},
		11: {Task: "Deep work", Notes: "draft"},
		12: {Task: "Deep work", Notes: "draft", Completed: true},
		14: {Task: "Gym", Recurrence: models.RecurrenceDaily},
		15: {Task: "Gym"},
	})

	ranges := MergeSlots(slots)

	var got []models.MergedRange
	for _, r := range ranges {
		if r.Task != "" {
			got = append(got, r)
		}
	}

	want := []models.MergedRange{
		{StartHour: 9, EndHour: 11, Task: "Deep work", Notes: "draft", Recurrence: models.RecurrenceNone},
		{StartHour: 12, EndHour: 12, Task: "Deep work", Notes: "draft", Completed: true, Recurrence: models.RecurrenceNone},
		{StartHour: 14, EndHour: 14, Task: "Gym", Recurrence: models.RecurrenceDaily},
		{StartHour: 15, EndHour: 15, Task: "Gym", Recurrence: models.RecurrenceNone},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeSlots() occupied ranges = %+v, want %+v", got, want)
	}
	if len(ranges) != 24-2 {
		t.Errorf("MergeSlots() returned %d ranges, want %d", len(ranges), 22)
	}
}

func TestMergeSlots_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		slots := randomDay(r)
		ranges := MergeSlots(slots)

		next := 0
		for j, rg := range ranges {
			if rg.StartHour != next {
				t.Fatalf("case %d: range %d starts at %d, want %d", i, j, rg.StartHour, next)
			}
			if rg.EndHour < rg.StartHour {
				t.Fatalf("case %d: range %d ends before it starts", i, j)
			}
			if rg.Task == "" && rg.Hours() != 1 {
				t.Fatalf("case %d: empty range %d spans %d hours", i, j, rg.Hours())
			}
			if j > 0 {
				prev := ranges[j-1]
				first := models.Slot{Hour: rg.StartHour, Task: rg.Task, Completed: rg.Completed, Notes: rg.Notes, Recurrence: rg.Recurrence}
				if canExtend(prev, first) {
					t.Fatalf("case %d: ranges %d and %d could be merged", i, j-1, j)
				}
			}
			next = rg.EndHour + 1
		}
		if next != 24 {
			t.Fatalf("case %d: ranges cover up to hour %d, want 24", i, next)
		}

		if again := MergeSlots(Expand(ranges)); !reflect.DeepEqual(again, ranges) {
			t.Fatalf("case %d: MergeSlots is not idempotent", i)
		}
		if !reflect.DeepEqual(Expand(ranges), slots) {
			t.Fatalf("case %d: Expand(MergeSlots(x)) != x", i)
		}
	}
}

func TestMergeSlots_Deterministic(t *testing.T) {
	slots := randomDay(rand.New(rand.NewSource(7)))
	a := MergeSlots(slots)
	b := MergeSlots(slots)
	if !reflect.DeepEqual(a, b) {
		t.Error("MergeSlots() returned different results for the same input")
	}
}

func TestPendingAndRangeAt(t *testing.T) {
	slots := dayWith(map[int]models.Slot{
		8:  {Task: "Email", Completed: true},
		9:  {Task: "Write"},
		10: {Task: "Write"},
	})
	ranges := MergeSlots(slots)

	pending := Pending(ranges)
	if len(pending) != 1 || pending[0].Task != "Write" || pending[0].Hours() != 2 {
		t.Errorf("Pending() = %+v, want a single two-hour Write block", pending)
	}

	r, ok := RangeAt(ranges, 10)
	if !ok || r.StartHour != 9 || r.EndHour != 10 {
		t.Errorf("RangeAt(10) = %+v, %v; want 9-10", r, ok)
	}
	if _, ok := RangeAt(ranges, 30); ok {
		t.Error("RangeAt(30) should not find a range")
	}
}
