package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kotobadev/verb-trainer-bot/internal/domain/entities"
	"github.com/kotobadev/verb-trainer-bot/internal/infra/postgres/repository"
)

// RecordRepository is the opaque persistence sink: JSON blobs keyed by user
// and record name.
type RecordRepository interface {
	Get(ctx context.Context, userID int64, key string) ([]byte, error)
	Set(ctx context.Context, userID int64, key string, payload []byte) error
}

// XPAward describes the result of adding XP to a profile.
type XPAward struct {
	Amount    int
	NewXP     int
	LeveledUp bool
	NewLevel  int
	LevelInfo entities.LevelInfo
}

// ProfileService owns the persistent profile: settings (including XP),
// lifetime stats and the quiz high score. Every mutation is written through
// to the repository immediately, so an interrupted session never loses
// already-earned progress. Settings and stats are separate records updated
// independently.
type ProfileService struct {
	records RecordRepository
	logger  *zap.Logger
}

// NewProfileService creates a ProfileService.
func NewProfileService(records RecordRepository, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		records: records,
		logger:  logger,
	}
}

// Settings loads the user's settings record. A missing or malformed record
// degrades to defaults field by field; it never fails the caller.
func (s *ProfileService) Settings(ctx context.Context, userID int64) (*entities.Settings, error) {
	settings := entities.NewSettings()

	payload, err := s.records.Get(ctx, userID, entities.RecordSettings)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return settings, nil
		}
		return nil, fmt.Errorf("get settings record: %w", err)
	}

	s.decodeSettings(payload, settings)
	return settings, nil
}

// decodeSettings applies fields from a persisted payload onto defaults.
// Each field is decoded independently: a corrupt difficulty does not
// invalidate a valid xp in the same record.
func (s *ProfileService) decodeSettings(payload []byte, settings *entities.Settings) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		s.logger.Warn("malformed settings record, using defaults", zap.Error(err))
		return
	}

	var theme string
	if err := json.Unmarshal(fields["theme"], &theme); err == nil && theme != "" {
		settings.Theme = theme
	}

	var difficulty entities.Difficulty
	if err := json.Unmarshal(fields["difficulty"], &difficulty); err == nil {
		for _, known := range entities.KnownDifficulties {
			if difficulty == known {
				settings.Difficulty = difficulty
			}
		}
	}

	var mode entities.QuizMode
	if err := json.Unmarshal(fields["quizMode"], &mode); err == nil {
		switch mode {
		case entities.ModeSameVerb, entities.ModeSameForm, entities.ModeMixed:
			settings.QuizMode = mode
		}
	}

	var xp int
	if err := json.Unmarshal(fields["xp"], &xp); err == nil && xp >= 0 {
		settings.XP = xp
	}
}

func (s *ProfileService) saveSettings(ctx context.Context, userID int64, settings *entities.Settings) error {
	payload, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := s.records.Set(ctx, userID, entities.RecordSettings, payload); err != nil {
		return fmt.Errorf("set settings record: %w", err)
	}
	return nil
}

// Stats loads the user's lifetime counters, defaulting malformed fields to
// zero individually.
func (s *ProfileService) Stats(ctx context.Context, userID int64) (*entities.Stats, error) {
	stats := &entities.Stats{}

	payload, err := s.records.Get(ctx, userID, entities.RecordStats)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return stats, nil
		}
		return nil, fmt.Errorf("get stats record: %w", err)
	}

	s.decodeStats(payload, stats)
	return stats, nil
}

func (s *ProfileService) decodeStats(payload []byte, stats *entities.Stats) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		s.logger.Warn("malformed stats record, using defaults", zap.Error(err))
		return
	}

	counters := map[string]*int{
		"quizGames":          &stats.QuizGames,
		"quizBestScore":      &stats.QuizBestScore,
		"endlessGames":       &stats.EndlessGames,
		"endlessBestScore":   &stats.EndlessBestScore,
		"endlessBestStreak":  &stats.EndlessBestStreak,
		"recognitionCorrect": &stats.RecognitionCorrect,
		"groupCorrect":       &stats.GroupCorrect,
	}
	for name, target := range counters {
		var value int
		if err := json.Unmarshal(fields[name], &value); err == nil && value >= 0 {
			*target = value
		}
	}
}

func (s *ProfileService) saveStats(ctx context.Context, userID int64, stats *entities.Stats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	if err := s.records.Set(ctx, userID, entities.RecordStats, payload); err != nil {
		return fmt.Errorf("set stats record: %w", err)
	}
	return nil
}

// HighScore loads the quiz high score, defaulting to zero.
func (s *ProfileService) HighScore(ctx context.Context, userID int64) (int, error) {
	payload, err := s.records.Get(ctx, userID, entities.RecordHighScore)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("get highscore record: %w", err)
	}

	var score int
	if err := json.Unmarshal(payload, &score); err != nil || score < 0 {
		s.logger.Warn("malformed highscore record, using zero")
		return 0, nil
	}
	return score, nil
}

// SetHighScore raises the stored high score if the new score beats it.
func (s *ProfileService) SetHighScore(ctx context.Context, userID int64, score int) error {
	current, err := s.HighScore(ctx, userID)
	if err != nil {
		return err
	}
	if score <= current {
		return nil
	}

	payload, err := json.Marshal(score)
	if err != nil {
		return fmt.Errorf("marshal highscore: %w", err)
	}
	if err := s.records.Set(ctx, userID, entities.RecordHighScore, payload); err != nil {
		return fmt.Errorf("set highscore record: %w", err)
	}
	return nil
}

// AddXP awards XP to the user and reports whether a level boundary was
// crossed. Non-positive amounts are ignored.
func (s *ProfileService) AddXP(ctx context.Context, userID int64, amount int) (*XPAward, error) {
	settings, err := s.Settings(ctx, userID)
	if err != nil {
		return nil, err
	}

	previousXP := settings.XP
	newXP, leveledUp, newLevel := AwardXP(previousXP, amount)
	if newXP != previousXP {
		settings.XP = newXP
		if err := s.saveSettings(ctx, userID, settings); err != nil {
			return nil, err
		}
	}

	return &XPAward{
		Amount:    newXP - previousXP,
		NewXP:     newXP,
		LeveledUp: leveledUp,
		NewLevel:  newLevel,
		LevelInfo: ComputeLevelInfo(newXP),
	}, nil
}

// RecordQuizResult folds a finished quiz into the stats and high score
// records.
func (s *ProfileService) RecordQuizResult(ctx context.Context, userID int64, score int) error {
	stats, err := s.Stats(ctx, userID)
	if err != nil {
		return err
	}

	stats.QuizGames++
	if score > stats.QuizBestScore {
		stats.QuizBestScore = score
	}
	if err := s.saveStats(ctx, userID, stats); err != nil {
		return err
	}

	return s.SetHighScore(ctx, userID, score)
}

// RecordEndlessResult folds a finished endless run into the stats record.
func (s *ProfileService) RecordEndlessResult(ctx context.Context, userID int64, score, maxStreak int) error {
	stats, err := s.Stats(ctx, userID)
	if err != nil {
		return err
	}

	stats.EndlessGames++
	if score > stats.EndlessBestScore {
		stats.EndlessBestScore = score
	}
	if maxStreak > stats.EndlessBestStreak {
		stats.EndlessBestStreak = maxStreak
	}
	return s.saveStats(ctx, userID, stats)
}

// RecordRecognitionCorrect counts one correct form-recognition answer.
func (s *ProfileService) RecordRecognitionCorrect(ctx context.Context, userID int64) error {
	stats, err := s.Stats(ctx, userID)
	if err != nil {
		return err
	}
	stats.RecognitionCorrect++
	return s.saveStats(ctx, userID, stats)
}

// RecordGroupCorrect counts one correct group answer.
func (s *ProfileService) RecordGroupCorrect(ctx context.Context, userID int64) error {
	stats, err := s.Stats(ctx, userID)
	if err != nil {
		return err
	}
	stats.GroupCorrect++
	return s.saveStats(ctx, userID, stats)
}

// UpdateDifficulty changes the active difficulty tier.
func (s *ProfileService) UpdateDifficulty(ctx context.Context, userID int64, difficulty entities.Difficulty) error {
	settings, err := s.Settings(ctx, userID)
	if err != nil {
		return err
	}
	settings.Difficulty = difficulty
	return s.saveSettings(ctx, userID, settings)
}

// UpdateQuizMode changes the distractor mode.
func (s *ProfileService) UpdateQuizMode(ctx context.Context, userID int64, mode entities.QuizMode) error {
	settings, err := s.Settings(ctx, userID)
	if err != nil {
		return err
	}
	settings.QuizMode = mode
	return s.saveSettings(ctx, userID, settings)
}

// ResetProgress zeroes XP, stats and the high score while keeping the
// user's preferences.
func (s *ProfileService) ResetProgress(ctx context.Context, userID int64) error {
	settings, err := s.Settings(ctx, userID)
	if err != nil {
		return err
	}
	settings.XP = 0
	if err := s.saveSettings(ctx, userID, settings); err != nil {
		return err
	}

	if err := s.saveStats(ctx, userID, &entities.Stats{}); err != nil {
		return err
	}

	payload, err := json.Marshal(0)
	if err != nil {
		return fmt.Errorf("marshal highscore: %w", err)
	}
	if err := s.records.Set(ctx, userID, entities.RecordHighScore, payload); err != nil {
		return fmt.Errorf("set highscore record: %w", err)
	}
	return nil
}
