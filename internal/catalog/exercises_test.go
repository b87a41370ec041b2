package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCatalogFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

const exerciseFixture = `[
  {"id": "Pushups", "name": "Pushups", "level": "beginner", "equipment": "body only",
   "primaryMuscles": ["chest"], "secondaryMuscles": ["triceps"], "category": "strength",
   "instructions": ["Get down."], "images": ["Pushups/0.jpg"]},
  {"id": "Plank", "name": "Plank", "level": "beginner", "equipment": "body only",
   "primaryMuscles": ["abdominals"], "secondaryMuscles": [], "category": "strength",
   "instructions": [], "images": []},
  {"id": "Lat_Pulldown", "name": "Lat Pulldown", "level": "intermediate", "equipment": "cable",
   "primaryMuscles": ["lats"], "secondaryMuscles": ["biceps"], "category": "strength",
   "instructions": [], "images": []}
]`

func TestLoadExercises(t *testing.T) {
	t.Parallel()

	path := writeCatalogFile(t, "exercises.json", exerciseFixture)
	store, err := LoadExercises(path)
	if err != nil {
		t.Fatalf("LoadExercises: %v", err)
	}

	if store.Len() != 3 {
		t.Fatalf("len: want=3 got=%d", store.Len())
	}

	names := store.Names()
	want := []string{"Pushups", "Plank", "Lat Pulldown"}
	for i, n := range want {
		if names[i] != n {
			t.Fatalf("names[%d]: want=%q got=%q", i, n, names[i])
		}
	}

	e, ok := store.Get("lat pulldown")
	if !ok {
		t.Fatal("case-insensitive lookup failed")
	}
	if e.Name != "Lat Pulldown" {
		t.Fatalf("name: want=%q got=%q", "Lat Pulldown", e.Name)
	}
}

func TestLoadExercisesDuplicateKeepsPosition(t *testing.T) {
	t.Parallel()

	path := writeCatalogFile(t, "exercises.json", `[
	  {"id": "a", "name": "Pushups", "level": "beginner"},
	  {"id": "b", "name": "Plank", "level": "beginner"},
	  {"id": "c", "name": "pushups", "level": "expert"}
	]`)
	store, err := LoadExercises(path)
	if err != nil {
		t.Fatalf("LoadExercises: %v", err)
	}

	if store.Len() != 2 {
		t.Fatalf("len: want=2 got=%d", store.Len())
	}
	// first occurrence keeps its position, last value wins
	if store.Names()[0] != "Pushups" {
		t.Fatalf("names[0]: want=Pushups got=%q", store.Names()[0])
	}
	e, _ := store.Get("Pushups")
	if e.Level != "expert" {
		t.Fatalf("level: want=expert got=%q", e.Level)
	}
}

func TestLoadExercisesErrors(t *testing.T) {
	t.Parallel()

	if _, err := LoadExercises(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}

	path := writeCatalogFile(t, "bad.json", "not json")
	if _, err := LoadExercises(path); err == nil {
		t.Fatal("expected error for malformed file")
	}
}

func TestExerciseList(t *testing.T) {
	t.Parallel()

	path := writeCatalogFile(t, "exercises.json", exerciseFixture)
	store, err := LoadExercises(path)
	if err != nil {
		t.Fatalf("LoadExercises: %v", err)
	}

	t.Run("filter by level", func(t *testing.T) {
		t.Parallel()
		entries, matched := store.List(ExerciseFilter{Level: "beginner"}, 50, 0)
		if matched != 2 || len(entries) != 2 {
			t.Fatalf("matched=%d returned=%d, want 2/2", matched, len(entries))
		}
	})

	t.Run("filter by muscle substring", func(t *testing.T) {
		t.Parallel()
		entries, matched := store.List(ExerciseFilter{Muscle: "tricep"}, 50, 0)
		if matched != 1 || entries[0].Name != "Pushups" {
			t.Fatalf("muscle filter: matched=%d entries=%v", matched, entries)
		}
	})

	t.Run("pagination", func(t *testing.T) {
		t.Parallel()
		entries, matched := store.List(ExerciseFilter{}, 1, 1)
		if matched != 3 {
			t.Fatalf("matched: want=3 got=%d", matched)
		}
		if len(entries) != 1 || entries[0].Name != "Plank" {
			t.Fatalf("page: got=%v", entries)
		}
	})
}
