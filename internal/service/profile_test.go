package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kotobadev/verb-trainer-bot/internal/domain/entities"
	"github.com/kotobadev/verb-trainer-bot/internal/infra/postgres/repository"
)

// memoryRecords is an in-memory RecordRepository for tests.
type memoryRecords struct {
	records map[string][]byte
}

func newMemoryRecords() *memoryRecords {
	return &memoryRecords{records: make(map[string][]byte)}
}

func (m *memoryRecords) key(userID int64, key string) string {
	return fmt.Sprintf("%d/%s", userID, key)
}

func (m *memoryRecords) Get(_ context.Context, userID int64, key string) ([]byte, error) {
	payload, ok := m.records[m.key(userID, key)]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	return payload, nil
}

func (m *memoryRecords) Set(_ context.Context, userID int64, key string, payload []byte) error {
	m.records[m.key(userID, key)] = payload
	return nil
}

func newTestProfileService() (*ProfileService, *memoryRecords) {
	records := newMemoryRecords()
	return NewProfileService(records, zap.NewNop()), records
}

func TestProfileService_SettingsDefaults(t *testing.T) {
	svc, _ := newTestProfileService()

	settings, err := svc.Settings(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, entities.DifficultyN5, settings.Difficulty)
	assert.Equal(t, entities.ModeSameVerb, settings.QuizMode)
	assert.Equal(t, 0, settings.XP)
}

func TestProfileService_SettingsMalformedFieldRecovery(t *testing.T) {
	svc, records := newTestProfileService()
	ctx := context.Background()

	// Unknown difficulty and negative xp fall back to defaults; the valid
	// quizMode in the same record survives.
	payload := []byte(`{"theme":"neon-dark","difficulty":"N1","quizMode":"sameForm","xp":-5}`)
	require.NoError(t, records.Set(ctx, 1, entities.RecordSettings, payload))

	settings, err := svc.Settings(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, entities.DifficultyN5, settings.Difficulty)
	assert.Equal(t, entities.ModeSameForm, settings.QuizMode)
	assert.Equal(t, 0, settings.XP)
}

func TestProfileService_SettingsUnparseableRecord(t *testing.T) {
	svc, records := newTestProfileService()
	ctx := context.Background()

	require.NoError(t, records.Set(ctx, 1, entities.RecordSettings, []byte("not json")))

	settings, err := svc.Settings(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, entities.NewSettings(), settings)
}

func TestProfileService_AddXPPersists(t *testing.T) {
	svc, _ := newTestProfileService()
	ctx := context.Background()

	award, err := svc.AddXP(ctx, 1, 55)
	require.NoError(t, err)

	assert.Equal(t, 55, award.Amount)
	assert.Equal(t, 55, award.NewXP)
	assert.True(t, award.LeveledUp)
	assert.Equal(t, 2, award.NewLevel)

	settings, err := svc.Settings(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 55, settings.XP)

	// A zero award changes nothing.
	award, err = svc.AddXP(ctx, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, award.Amount)
	assert.Equal(t, 55, award.NewXP)
	assert.False(t, award.LeveledUp)
}

func TestProfileService_HighScoreIsMonotonic(t *testing.T) {
	svc, _ := newTestProfileService()
	ctx := context.Background()

	require.NoError(t, svc.SetHighScore(ctx, 1, 7))
	require.NoError(t, svc.SetHighScore(ctx, 1, 5))

	score, err := svc.HighScore(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, score)

	require.NoError(t, svc.SetHighScore(ctx, 1, 9))
	score, err = svc.HighScore(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 9, score)
}

func TestProfileService_RecordQuizResult(t *testing.T) {
	svc, _ := newTestProfileService()
	ctx := context.Background()

	require.NoError(t, svc.RecordQuizResult(ctx, 1, 8))
	require.NoError(t, svc.RecordQuizResult(ctx, 1, 6))

	stats, err := svc.Stats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.QuizGames)
	assert.Equal(t, 8, stats.QuizBestScore)

	score, err := svc.HighScore(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 8, score)
}

func TestProfileService_RecordEndlessResult(t *testing.T) {
	svc, _ := newTestProfileService()
	ctx := context.Background()

	require.NoError(t, svc.RecordEndlessResult(ctx, 1, 12, 6))
	require.NoError(t, svc.RecordEndlessResult(ctx, 1, 4, 9))

	stats, err := svc.Stats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.EndlessGames)
	assert.Equal(t, 12, stats.EndlessBestScore)
	assert.Equal(t, 9, stats.EndlessBestStreak)
}

func TestProfileService_ResetKeepsPreferences(t *testing.T) {
	svc, _ := newTestProfileService()
	ctx := context.Background()

	require.NoError(t, svc.UpdateDifficulty(ctx, 1, entities.DifficultyN4))
	require.NoError(t, svc.UpdateQuizMode(ctx, 1, entities.ModeMixed))
	_, err := svc.AddXP(ctx, 1, 100)
	require.NoError(t, err)
	require.NoError(t, svc.RecordQuizResult(ctx, 1, 9))

	require.NoError(t, svc.ResetProgress(ctx, 1))

	settings, err := svc.Settings(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, entities.DifficultyN4, settings.Difficulty)
	assert.Equal(t, entities.ModeMixed, settings.QuizMode)
	assert.Equal(t, 0, settings.XP)

	stats, err := svc.Stats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, &entities.Stats{}, stats)

	score, err := svc.HighScore(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, score)
}
