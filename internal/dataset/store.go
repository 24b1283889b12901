package dataset

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed diseases.json
var bundled []byte

type table struct {
	Diseases  []Disease  `json:"diseases"`
	Medicines []Medicine `json:"medicines"`
}

// Store is the read-only view over the bundled disease and medicine table.
// It is built once at startup and never mutated.
type Store struct {
	diseases  []Disease
	medicines []Medicine
}

// Load parses and validates the bundled table. Any record missing a language
// variant fails the whole load.
func Load() (*Store, error) {
	return loadFrom(bundled)
}

func loadFrom(raw []byte) (*Store, error) {
	var t table
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("parse bundled dataset: %w", err)
	}
	seen := make(map[string]bool, len(t.Diseases))
	for _, d := range t.Diseases {
		if err := d.validate(); err != nil {
			return nil, fmt.Errorf("invalid dataset: %w", err)
		}
		if seen[d.ID] {
			return nil, fmt.Errorf("invalid dataset: duplicate disease id %q", d.ID)
		}
		seen[d.ID] = true
	}
	for _, m := range t.Medicines {
		if err := m.validate(); err != nil {
			return nil, fmt.Errorf("invalid dataset: %w", err)
		}
	}
	return &Store{diseases: t.Diseases, medicines: t.Medicines}, nil
}

// FindDiseases returns every record whose name or any symptom in the
// requested language contains the query, case-insensitively. Results keep
// table declaration order; callers that use a single record take the first
// match, there is no relevance ranking.
func (s *Store) FindDiseases(query string, lang Language) []Disease {
	q := strings.ToLower(query)
	var out []Disease
	for _, d := range s.diseases {
		if strings.Contains(strings.ToLower(d.Name.In(lang)), q) {
			out = append(out, d)
			continue
		}
		for _, sym := range d.Symptoms {
			if strings.Contains(strings.ToLower(sym.In(lang)), q) {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

// FindMedicinesByCategory filters by exact category equality, declaration
// order preserved. An empty result is not an error.
func (s *Store) FindMedicinesByCategory(category string) []Medicine {
	var out []Medicine
	for _, m := range s.medicines {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out
}

// Diseases returns all records in declaration order.
func (s *Store) Diseases() []Disease {
	out := make([]Disease, len(s.diseases))
	copy(out, s.diseases)
	return out
}
