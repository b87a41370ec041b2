package catalog

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/posturelab/coach-backend/internal/domain"
)

// ProductStore indexes the product catalog by lower-cased label. Like the
// exercise store it is loaded once and read-only afterwards.
type ProductStore struct {
	byKey  map[string]domain.Product
	labels []string
}

// LoadProducts reads a JSON array of product records and synthesizes any
// fields the source file is missing. seed fixes the synthesis RNG so a
// given catalog file always yields the same prices/ratings.
func LoadProducts(path string, seed int64) (*ProductStore, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read product catalog: %w", err)
	}

	var records []domain.Product
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse product catalog %s: %w", path, err)
	}

	rng := rand.New(rand.NewSource(seed))
	store := &ProductStore{byKey: make(map[string]domain.Product, len(records))}
	for _, rec := range records {
		key := normalizeKey(rec.Label)
		if key == "" {
			continue
		}
		SynthesizeProduct(&rec, rng)
		if _, exists := store.byKey[key]; !exists {
			store.labels = append(store.labels, rec.Label)
		}
		store.byKey[key] = rec
	}
	return store, nil
}

// Labels returns the canonical product labels in load order.
func (s *ProductStore) Labels() []string { return s.labels }

func (s *ProductStore) Len() int { return len(s.byKey) }

// Get looks up a product by label, case-insensitively.
func (s *ProductStore) Get(label string) (domain.Product, bool) {
	p, ok := s.byKey[normalizeKey(label)]
	return p, ok
}

// GetMany resolves labels to products, silently skipping unknown ones.
// Order follows the input.
func (s *ProductStore) GetMany(labels []string) []domain.Product {
	out := make([]domain.Product, 0, len(labels))
	for _, label := range labels {
		if p, ok := s.Get(label); ok {
			out = append(out, p)
		}
	}
	return out
}

// Search returns up to limit products whose label contains the query
// (case-insensitive), after skipping offset matches, plus the match total.
// An empty query matches everything.
func (s *ProductStore) Search(query string, limit, offset int) ([]domain.Product, int) {
	q := strings.ToLower(strings.TrimSpace(query))
	matched := 0
	var out []domain.Product
	for _, label := range s.labels {
		p := s.byKey[normalizeKey(label)]
		if q != "" && !strings.Contains(strings.ToLower(p.Label), q) {
			continue
		}
		matched++
		if matched <= offset {
			continue
		}
		if limit > 0 && len(out) >= limit {
			continue
		}
		out = append(out, p)
	}
	return out, matched
}
