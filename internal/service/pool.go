package service

import (
	"github.com/samber/lo"

	"github.com/kotobadev/verb-trainer-bot/internal/domain/entities"
)

// SelectPool narrows the full vocabulary down to the active difficulty tier.
// When the tier has no entries the full set is returned instead, so callers
// never get an empty pool while any data exists at all. An empty input
// yields an empty pool, which callers must treat as "no data loaded".
// Relative order of the input is preserved.
func SelectPool(all []*entities.Verb, difficulty entities.Difficulty) []*entities.Verb {
	if len(all) == 0 {
		return nil
	}

	pool := lo.Filter(all, func(v *entities.Verb, _ int) bool {
		return v.Level == difficulty
	})
	if len(pool) == 0 {
		return all
	}

	return pool
}
