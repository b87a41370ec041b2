package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/posturelab/coach-backend/internal/domain"
)

// ExerciseStore indexes the exercise catalog by lower-cased name. It is
// populated once at startup and read-only afterwards, so unsynchronized
// concurrent reads are safe.
type ExerciseStore struct {
	byKey map[string]domain.Exercise
	names []string
}

// LoadExercises reads a JSON array of exercise records. Any read or parse
// failure is returned as-is; callers treat it as fatal, the process must
// not serve traffic without catalog data.
func LoadExercises(path string) (*ExerciseStore, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read exercise catalog: %w", err)
	}

	var records []domain.Exercise
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse exercise catalog %s: %w", path, err)
	}

	store := &ExerciseStore{byKey: make(map[string]domain.Exercise, len(records))}
	for _, rec := range records {
		key := normalizeKey(rec.Name)
		if key == "" {
			continue
		}
		if _, exists := store.byKey[key]; !exists {
			store.names = append(store.names, rec.Name)
		}
		store.byKey[key] = rec
	}
	return store, nil
}

// Names returns the canonical exercise names in load order.
func (s *ExerciseStore) Names() []string { return s.names }

func (s *ExerciseStore) Len() int { return len(s.byKey) }

// Get looks up an exercise by name, case-insensitively.
func (s *ExerciseStore) Get(name string) (domain.Exercise, bool) {
	e, ok := s.byKey[normalizeKey(name)]
	return e, ok
}

// GetMany resolves names by exact lookup, skipping names that are absent.
func (s *ExerciseStore) GetMany(names []string) []domain.Exercise {
	out := make([]domain.Exercise, 0, len(names))
	for _, name := range names {
		if e, ok := s.Get(name); ok {
			out = append(out, e)
		}
	}
	return out
}

// ExerciseFilter narrows a catalog listing. Zero values match everything.
type ExerciseFilter struct {
	Level     string
	Equipment string
	Category  string
	Muscle    string
}

func (f ExerciseFilter) matches(e domain.Exercise) bool {
	if f.Level != "" && e.Level != f.Level {
		return false
	}
	if f.Equipment != "" && e.Equipment != f.Equipment {
		return false
	}
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if f.Muscle != "" {
		muscle := strings.ToLower(f.Muscle)
		found := false
		for _, m := range append(append([]string{}, e.PrimaryMuscles...), e.SecondaryMuscles...) {
			if strings.Contains(strings.ToLower(m), muscle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// List returns up to limit entries matching the filter after skipping
// offset matches, plus the total number of matches.
func (s *ExerciseStore) List(filter ExerciseFilter, limit, offset int) ([]domain.Exercise, int) {
	matched := 0
	var out []domain.Exercise
	for _, name := range s.names {
		e := s.byKey[normalizeKey(name)]
		if !filter.matches(e) {
			continue
		}
		matched++
		if matched <= offset {
			continue
		}
		if limit > 0 && len(out) >= limit {
			continue
		}
		out = append(out, e)
	}
	return out, matched
}

func normalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
