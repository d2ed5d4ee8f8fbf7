package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotobadev/verb-trainer-bot/internal/domain/entities"
)

func newTestGenerator() *Generator {
	return NewGeneratorWithSource(rand.NewSource(42))
}

func TestNextQuestion_SameVerb(t *testing.T) {
	g := newTestGenerator()
	pool := []*entities.Verb{testVerb("食べる", entities.DifficultyN5)}

	for i := 0; i < 50; i++ {
		q, err := g.NextQuestion(pool, entities.ModeSameVerb)
		require.NoError(t, err)

		require.Len(t, q.Options, 4)
		assert.Equal(t, q.CorrectAnswer, q.Options[q.CorrectIndex])

		correct, ok := q.Verb.Form(q.FormKey)
		require.True(t, ok)
		assert.Equal(t, correct, q.CorrectAnswer)

		// Distractors are the verb's other core forms, so all four options
		// must be distinct conjugations of the same verb.
		seen := map[string]bool{}
		for _, opt := range q.Options {
			assert.False(t, seen[opt], "duplicate option %q", opt)
			seen[opt] = true
		}
	}
}

func TestNextQuestion_SameForm(t *testing.T) {
	g := newTestGenerator()
	pool := []*entities.Verb{
		testVerb("飲む", entities.DifficultyN5),
		testVerb("読む", entities.DifficultyN5),
		testVerb("書く", entities.DifficultyN5),
		testVerb("話す", entities.DifficultyN5),
	}

	for i := 0; i < 50; i++ {
		q, err := g.NextQuestion(pool, entities.ModeSameForm)
		require.NoError(t, err)

		require.Len(t, q.Options, 4)
		assert.Equal(t, q.CorrectAnswer, q.Options[q.CorrectIndex])

		seen := map[string]bool{}
		for _, opt := range q.Options {
			assert.False(t, seen[opt], "duplicate option %q", opt)
			seen[opt] = true
		}
	}
}

func TestNextQuestion_SameFormBackfillsFromOwnForms(t *testing.T) {
	g := newTestGenerator()
	// A single-verb pool has no other verbs to borrow the form from, so the
	// deficit is covered by the verb's own other conjugations.
	pool := []*entities.Verb{testVerb("する", entities.DifficultyN5)}

	q, err := g.NextQuestion(pool, entities.ModeSameForm)
	require.NoError(t, err)

	require.Len(t, q.Options, 4)
	assert.Equal(t, q.CorrectAnswer, q.Options[q.CorrectIndex])
	assert.Contains(t, q.Options, q.CorrectAnswer)
}

func TestNextQuestion_DeduplicatesIdenticalConjugations(t *testing.T) {
	g := newTestGenerator()

	// Two verbs whose target form collides on the surface string. The
	// duplicate value must not appear twice among the options.
	a := testVerb("帰る", entities.DifficultyN5)
	b := testVerb("帰る", entities.DifficultyN5)
	b.Meaning = "to change"

	pool := []*entities.Verb{a, b}
	for i := 0; i < 20; i++ {
		q, err := g.NextQuestion(pool, entities.ModeSameForm)
		require.NoError(t, err)

		seen := map[string]bool{}
		for _, opt := range q.Options {
			assert.False(t, seen[opt], "duplicate option %q", opt)
			seen[opt] = true
		}
	}
}

func TestNextQuestion_EmptyPool(t *testing.T) {
	g := newTestGenerator()
	_, err := g.NextQuestion(nil, entities.ModeSameVerb)
	assert.ErrorIs(t, err, ErrEmptyPool)
}

func TestNextRecognitionRound(t *testing.T) {
	g := newTestGenerator()
	pool := []*entities.Verb{testVerb("見る", entities.DifficultyN5)}

	for i := 0; i < 20; i++ {
		round, err := g.NextRecognitionRound(pool)
		require.NoError(t, err)

		display, ok := round.Verb.Form(round.FormKey)
		require.True(t, ok)
		assert.Equal(t, display, round.Display)
		assert.Len(t, round.OptionKeys, 5)
		assert.Contains(t, round.OptionKeys, round.FormKey)
	}

	_, err := g.NextRecognitionRound(nil)
	assert.ErrorIs(t, err, ErrEmptyPool)
}

func TestNextGroupRound(t *testing.T) {
	g := newTestGenerator()
	verb := testVerb("行く", entities.DifficultyN5)

	round, err := g.NextGroupRound([]*entities.Verb{verb})
	require.NoError(t, err)
	assert.Same(t, verb, round.Verb)

	_, err = g.NextGroupRound(nil)
	assert.ErrorIs(t, err, ErrEmptyPool)
}
