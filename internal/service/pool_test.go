package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotobadev/verb-trainer-bot/internal/domain/entities"
)

func testVerb(dict string, level entities.Difficulty) *entities.Verb {
	return &entities.Verb{
		Dictionary: dict,
		Furigana:   dict,
		Meaning:    "test",
		Group:      1,
		Level:      level,
		Forms: map[entities.FormKey]string{
			entities.FormMasu:     dict + "ます",
			entities.FormNegative: dict + "ない",
			entities.FormTe:       dict + "て",
			entities.FormPast:     dict + "た",
		},
	}
}

func TestSelectPool(t *testing.T) {
	n5a := testVerb("a", entities.DifficultyN5)
	n5b := testVerb("b", entities.DifficultyN5)
	n4a := testVerb("c", entities.DifficultyN4)

	t.Run("filters by difficulty preserving order", func(t *testing.T) {
		pool := SelectPool([]*entities.Verb{n5a, n4a, n5b}, entities.DifficultyN5)
		require.Len(t, pool, 2)
		assert.Same(t, n5a, pool[0])
		assert.Same(t, n5b, pool[1])
	})

	t.Run("falls back to the full set when the tier is empty", func(t *testing.T) {
		all := []*entities.Verb{n5a, n5b}
		pool := SelectPool(all, entities.DifficultyN4)
		assert.Equal(t, all, pool)
	})

	t.Run("empty input yields empty pool", func(t *testing.T) {
		assert.Empty(t, SelectPool(nil, entities.DifficultyN5))
		assert.Empty(t, SelectPool([]*entities.Verb{}, entities.DifficultyN4))
	})
}
