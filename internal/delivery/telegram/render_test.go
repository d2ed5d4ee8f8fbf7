package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotobadev/verb-trainer-bot/internal/domain/entities"
)

func sampleVerb(dict string) *entities.Verb {
	return &entities.Verb{
		Dictionary: dict,
		Furigana:   "ふりがな",
		Meaning:    "test verb",
		Group:      1,
		Level:      entities.DifficultyN5,
		Forms: map[entities.FormKey]string{
			entities.FormMasu:     dict + "ます",
			entities.FormNegative: dict + "ない",
			entities.FormTe:       dict + "て",
			entities.FormPast:     dict + "た",
		},
	}
}

func TestBuildVerbsPage(t *testing.T) {
	verbs := []*entities.Verb{
		sampleVerb("a"), sampleVerb("b"), sampleVerb("c"),
		sampleVerb("d"), sampleVerb("e"), sampleVerb("f"),
	}

	t.Run("first page is full", func(t *testing.T) {
		text, totalPages := buildVerbsPage(verbs, 0)
		assert.Equal(t, 2, totalPages)
		assert.Contains(t, text, "a")
		assert.Contains(t, text, "Page 1/2")
		assert.NotContains(t, text, "f【")
	})

	t.Run("last page holds the remainder", func(t *testing.T) {
		text, totalPages := buildVerbsPage(verbs, 1)
		assert.Equal(t, 2, totalPages)
		assert.Contains(t, text, "f")
		assert.Contains(t, text, "Page 2/2")
	})

	t.Run("out of range page renders nothing", func(t *testing.T) {
		text, totalPages := buildVerbsPage(verbs, 5)
		assert.Equal(t, 2, totalPages)
		assert.Empty(t, text)
	})
}

func TestRenderStudyCard(t *testing.T) {
	verb := sampleVerb("飲む")

	t.Run("everything hidden initially", func(t *testing.T) {
		card := renderStudyCard(verb, 0)
		assert.Contains(t, card, "？？？")
		assert.NotContains(t, card, "飲むます")
	})

	t.Run("reveal mask uncovers forms one by one", func(t *testing.T) {
		// Bit 0 is the first core form key.
		card := renderStudyCard(verb, 1)
		assert.Contains(t, card, verb.Forms[entities.CoreFormKeys[0]])
		assert.Contains(t, card, "？？？")

		card = renderStudyCard(verb, 15)
		assert.NotContains(t, card, "？？？")
	})
}

func TestRenderLives(t *testing.T) {
	assert.Equal(t, "♥♥♥", renderLives(3))
	assert.Equal(t, "♥♡♡", renderLives(1))
	assert.Equal(t, "♡♡♡", renderLives(0))
	assert.Equal(t, "♡♡♡", renderLives(-1))
}

func TestBuildVerbsKeyboard(t *testing.T) {
	assert.Nil(t, buildVerbsKeyboard(0, 1))

	kb := buildVerbsKeyboard(0, 3)
	require.NotNil(t, kb)
	require.Len(t, kb.InlineKeyboard, 1)
	assert.Len(t, kb.InlineKeyboard[0], 1) // only "next" on the first page

	kb = buildVerbsKeyboard(1, 3)
	require.NotNil(t, kb)
	assert.Len(t, kb.InlineKeyboard[0], 2) // both directions in the middle
}
