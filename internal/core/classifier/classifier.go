// Package classifier produces the statistical truthful-probability signal.
// The model is a fixed-vocabulary linear classifier over weighted term
// frequencies, loaded once from the embedded model.json at process start and
// read-only afterwards, so concurrent requests share it without locking
package classifier

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"

	"clariflo/internal/core/normalize"
)

//go:embed model.json
var embedded []byte

type rawTerm struct {
	Term   string  `json:"term"`
	IDF    float64 `json:"idf"`
	Weight float64 `json:"weight"`
}

type rawModel struct {
	Version    int       `json:"version"`
	Intercept  float64   `json:"intercept"`
	Vocabulary []rawTerm `json:"vocabulary"`
}

type term struct {
	idf    float64
	weight float64
}

// Model is the compiled classifier. Immutable after Load
type Model struct {
	version   int
	intercept float64
	vocab     map[string]term
}

// Load parses and validates the embedded model.json
func Load() (*Model, error) {
	var rm rawModel
	if err := json.Unmarshal(embedded, &rm); err != nil {
		return nil, fmt.Errorf("classifier: parse model.json: %w", err)
	}
	if rm.Version <= 0 {
		return nil, fmt.Errorf("classifier: missing or invalid version")
	}
	if len(rm.Vocabulary) == 0 {
		return nil, fmt.Errorf("classifier: empty vocabulary")
	}

	m := &Model{
		version:   rm.Version,
		intercept: rm.Intercept,
		vocab:     make(map[string]term, len(rm.Vocabulary)),
	}
	for _, t := range rm.Vocabulary {
		if t.Term == "" {
			return nil, fmt.Errorf("classifier: vocabulary entry with empty term")
		}
		if t.IDF <= 0 {
			return nil, fmt.Errorf("classifier: term %q has non-positive idf", t.Term)
		}
		if _, dup := m.vocab[t.Term]; dup {
			return nil, fmt.Errorf("classifier: duplicate term %q", t.Term)
		}
		m.vocab[t.Term] = term{idf: t.IDF, weight: t.Weight}
	}
	return m, nil
}

// Version reports the model version for readiness endpoints
func (m *Model) Version() int { return m.version }

// Predict maps the stemmed view of t to a truthful probability in (0,1).
// Terms outside the vocabulary are ignored, never an error; an input with no
// usable stems lands on the intercept alone
func (m *Model) Predict(t normalize.Text) float64 {
	z := m.intercept
	if n := len(t.Stems); n > 0 {
		counts := make(map[string]int, n)
		for _, s := range t.Stems {
			counts[s]++
		}
		// walk stems in first-appearance order so float summation stays
		// deterministic across runs
		inv := 1 / float64(n)
		seen := make(map[string]struct{}, len(counts))
		for _, s := range t.Stems {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			v, ok := m.vocab[s]
			if !ok {
				continue
			}
			tf := float64(counts[s]) * inv
			z += tf * v.idf * v.weight
		}
	}
	return 1 / (1 + math.Exp(-z))
}
