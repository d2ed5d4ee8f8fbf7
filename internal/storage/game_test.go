package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kotobadev/verb-trainer-bot/internal/domain/entities"
)

func TestGameStorage(t *testing.T) {
	s := NewGameStorage()
	assert.Nil(t, s.Get(1))

	first := entities.NewGameSession(entities.QuizConfig())
	s.Store(1, first)
	assert.Same(t, first, s.Get(1))

	// Starting a new game overwrites the old session.
	second := entities.NewGameSession(entities.EndlessConfig())
	s.Store(1, second)
	assert.Same(t, second, s.Get(1))

	s.Delete(1)
	assert.Nil(t, s.Get(1))
}

func TestRoundStorage(t *testing.T) {
	s := NewRoundStorage()
	assert.Nil(t, s.GetRecognition(1))
	assert.Nil(t, s.GetGroup(1))

	recognition := &entities.RecognitionRound{FormKey: entities.FormTe}
	group := &entities.GroupRound{}

	s.StoreRecognition(1, recognition)
	s.StoreGroup(1, group)

	// The two round kinds do not shadow each other.
	assert.Same(t, recognition, s.GetRecognition(1))
	assert.Same(t, group, s.GetGroup(1))
	assert.Nil(t, s.GetRecognition(2))

	// Deleting one kind leaves the other intact.
	s.DeleteRecognition(1)
	assert.Nil(t, s.GetRecognition(1))
	assert.Same(t, group, s.GetGroup(1))

	s.DeleteGroup(1)
	assert.Nil(t, s.GetGroup(1))
}
