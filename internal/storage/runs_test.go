package storage

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveRunAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	want := Run{
		Variant:     "seed",
		Outcome:     "win",
		ElapsedMs:   41250.5,
		Thrusts:     4,
		Score:       1147,
		TickMs:      1000.0 / 60,
		ThrustTicks: []int{30, 90, 91, 400},
		Fingerprint: "abcdef0123456789",
	}

	id, err := store.SaveRun(want)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("Expected a UUID, got %q", id)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}

	want.ID = id
	want.CreatedAt = got.CreatedAt
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RunByID() = %+v, expected %+v", got, want)
	}

	// Lookup is case-insensitive like uuid.Parse.
	if _, err := store.RunByID(strings.ToUpper(id)); err != nil {
		t.Errorf("RunByID() with upper-case ID failed: %v", err)
	}
}

func TestSaveRunWithoutThrusts(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{Variant: "seed", Outcome: "void", TickMs: 16})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if len(got.ThrustTicks) != 0 {
		t.Errorf("Expected no thrust ticks, got %v", got.ThrustTicks)
	}
}

func TestRunByIDNotFound(t *testing.T) {
	store := openTestStore(t)

	for _, id := range []string{uuid.NewString(), "not-a-uuid", ""} {
		if _, err := store.RunByID(id); !errors.Is(err, ErrRunNotFound) {
			t.Errorf("RunByID(%q): expected ErrRunNotFound, got %v", id, err)
		}
	}
}

func TestRecentRuns(t *testing.T) {
	store := openTestStore(t)

	var ids []string
	for _, outcome := range []string{"crashed", "void", "win"} {
		id, err := store.SaveRun(Run{Variant: "seed", Outcome: outcome, TickMs: 16})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		ids = append(ids, id)
	}

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs with limit, got %d", len(runs))
	}
	// Same-second inserts fall back to insertion order, newest first.
	if runs[0].ID != ids[2] || runs[1].ID != ids[1] {
		t.Errorf("Runs not newest first: %s, %s", runs[0].ID, runs[1].ID)
	}
}

func TestOutcomeCounts(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Run{
		{Variant: "seed", Outcome: "win"},
		{Variant: "seed", Outcome: "win"},
		{Variant: "seed", Outcome: "crashed"},
		{Variant: "seed_biome", Outcome: "void"},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	counts, err := store.OutcomeCounts("seed")
	if err != nil {
		t.Fatalf("OutcomeCounts() failed: %v", err)
	}
	want := map[string]int{"win": 2, "crashed": 1}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("OutcomeCounts() = %v, expected %v", counts, want)
	}
}
