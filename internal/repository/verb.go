// Package repository provides access to the static vocabulary dataset.
package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/kotobadev/verb-trainer-bot/internal/domain/entities"
)

var (
	ErrNoVerbs     = errors.New("no verbs loaded")
	ErrInvalidVerb = errors.New("invalid verb entry")
)

// VerbRepository holds the vocabulary loaded once at startup. The dataset
// is read-only for the lifetime of the process.
type VerbRepository struct {
	verbs []*entities.Verb
}

// NewVerbRepository loads and validates the verb dataset from a JSON file.
// A dataset that fails structural validation refuses to load at all: a
// broken entry discovered mid-quiz would be much harder to diagnose.
func NewVerbRepository(path string) (*VerbRepository, error) {
	verbs, err := loadVerbs(path)
	if err != nil {
		return nil, err
	}

	return &VerbRepository{verbs: verbs}, nil
}

// GetAll returns all verbs in dataset order.
func (r *VerbRepository) GetAll() []*entities.Verb {
	return r.verbs
}

func loadVerbs(path string) ([]*entities.Verb, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read verbs file: %w", err)
	}

	var verbs []*entities.Verb
	if err := json.Unmarshal(data, &verbs); err != nil {
		return nil, fmt.Errorf("unmarshal verbs JSON: %w", err)
	}

	if len(verbs) == 0 {
		return nil, ErrNoVerbs
	}

	for i, verb := range verbs {
		if err := validateVerb(verb); err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i, verb.Dictionary, err)
		}
	}

	return verbs, nil
}

// validateVerb enforces the structural invariants every quizzable entry
// must satisfy: identity fields present, a known tier, a known group and
// the four core conjugations.
func validateVerb(v *entities.Verb) error {
	if v.Dictionary == "" || v.Furigana == "" || v.Meaning == "" {
		return fmt.Errorf("%w: missing dictionary, furigana or meaning", ErrInvalidVerb)
	}

	known := false
	for _, tier := range entities.KnownDifficulties {
		if v.Level == tier {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: unknown level %q", ErrInvalidVerb, v.Level)
	}

	if v.Group < 1 || v.Group > 3 {
		return fmt.Errorf("%w: group must be 1, 2 or 3, got %d", ErrInvalidVerb, v.Group)
	}

	if !v.HasCoreForms() {
		return fmt.Errorf("%w: missing one of the core forms", ErrInvalidVerb)
	}

	return nil
}
