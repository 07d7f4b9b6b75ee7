// Package vectorstore is a flat, file-backed collection of embedded text
// chunks. There is no index: every query scans all items and ranks them by
// cosine similarity. Item order is ingestion order and carries no meaning.
package vectorstore

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
)

// epsilon keeps the cosine denominator away from zero for zero vectors.
const epsilon = 1e-9

// Meta records where a chunk came from.
type Meta struct {
	Source string `json:"source"`
}

// Item is one embedded chunk. Immutable once written.
type Item struct {
	Text      string    `json:"text"`
	Embedding []float64 `json:"embedding"`
	Meta      Meta      `json:"meta"`
}

// Store is the whole collection, serialized as a single JSON document.
type Store struct {
	Items []Item `json:"items"`
}

// Scored is an item annotated with its similarity to a query vector.
type Scored struct {
	Item
	Score float64 `json:"score"`
}

// Load reads the store file wholesale. A missing file is an empty store; a
// malformed file is an error.
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Store{}, nil
		}
		return nil, errors.Wrapf(err, "read store %s", path)
	}

	store := &Store{}
	if err := json.Unmarshal(raw, store); err != nil {
		return nil, errors.Wrapf(err, "parse store %s", path)
	}
	return store, nil
}

// Save writes the whole store through a temp file and rename, so readers never
// see a half-written document. Concurrent writers still race (last one wins);
// the ingestion tool is never run concurrently with itself.
func (s *Store) Save(path string) error {
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal store")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create store dir %s", dir)
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return errors.Wrapf(err, "write store %s", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "rename store %s", path)
	}
	return nil
}

// CosineSim is dot(a,b) / (||a||*||b|| + eps). Mismatched lengths score over
// the shorter prefix.
func CosineSim(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
	}
	for _, v := range a {
		na += v * v
	}
	for _, v := range b {
		nb += v * v
	}
	return dot / (math.Sqrt(na)*math.Sqrt(nb) + epsilon)
}

// TopK returns up to k items ranked by descending similarity to queryVec.
// Similarity is always recomputed; nothing is cached between queries.
func (s *Store) TopK(queryVec []float64, k int) []Scored {
	scored := make([]Scored, 0, len(s.Items))
	for _, it := range s.Items {
		scored = append(scored, Scored{Item: it, Score: CosineSim(queryVec, it.Embedding)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if k < 0 {
		k = 0
	}
	if k > len(scored) {
		k = len(scored)
	}
	return scored[:k]
}
