package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kotobadev/verb-trainer-bot/internal/domain/entities"
)

// ErrNoActiveSession means an answer or advance arrived without a running
// game for that user.
var ErrNoActiveSession = errors.New("no active game session")

// VerbProvider supplies the loaded vocabulary set.
type VerbProvider interface {
	GetAll() []*entities.Verb
}

// GameStorage keeps the per-user active session between updates.
type GameStorage interface {
	Store(userID int64, session *entities.GameSession)
	Get(userID int64) *entities.GameSession
	Delete(userID int64)
}

// RoundStorage keeps the per-user pending mini-game rounds.
type RoundStorage interface {
	StoreRecognition(userID int64, round *entities.RecognitionRound)
	GetRecognition(userID int64) *entities.RecognitionRound
	DeleteRecognition(userID int64)
	StoreGroup(userID int64, round *entities.GroupRound)
	GetGroup(userID int64) *entities.GroupRound
	DeleteGroup(userID int64)
}

// SessionResult summarizes a finished quiz or endless run.
type SessionResult struct {
	Kind      entities.GameKind
	Score     int
	Total     int // question count for the quiz, 0 for endless
	MaxStreak int
	Award     *XPAward
}

// RoundResult reports one answered mini-game round.
type RoundResult struct {
	Correct bool
	Award   *XPAward // nil on a wrong answer
}

// Fixed XP values for the mini-games.
const (
	recognitionXP = 2
	groupXP       = 3
)

// GameService drives the game modes: it builds sessions from the vocabulary
// pool, routes answers through the session state machine and folds finished
// sessions into the persistent profile.
type GameService struct {
	verbs     VerbProvider
	generator *Generator
	profile   *ProfileService
	games     GameStorage
	rounds    RoundStorage
}

// NewGameService creates a GameService.
func NewGameService(
	verbs VerbProvider,
	generator *Generator,
	profile *ProfileService,
	games GameStorage,
	rounds RoundStorage,
) *GameService {
	return &GameService{
		verbs:     verbs,
		generator: generator,
		profile:   profile,
		games:     games,
		rounds:    rounds,
	}
}

// pool resolves the active pool for a user from their difficulty setting.
func (s *GameService) pool(ctx context.Context, userID int64) ([]*entities.Verb, entities.QuizMode, error) {
	settings, err := s.profile.Settings(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	pool := SelectPool(s.verbs.GetAll(), settings.Difficulty)
	if len(pool) == 0 {
		return nil, "", ErrEmptyPool
	}

	return pool, settings.QuizMode, nil
}

// StartGame begins a new quiz or endless session for the user, replacing
// any session already in flight, and returns the first question.
func (s *GameService) StartGame(ctx context.Context, userID int64, kind entities.GameKind) (*entities.GameSession, error) {
	pool, mode, err := s.pool(ctx, userID)
	if err != nil {
		return nil, err
	}

	cfg := entities.QuizConfig()
	if kind == entities.GameEndless {
		cfg = entities.EndlessConfig()
	}

	session := entities.NewGameSession(cfg)
	session.Pool = pool
	session.Mode = mode
	session.Start()

	question, err := s.generator.NextQuestion(pool, mode)
	if err != nil {
		return nil, fmt.Errorf("generate first question: %w", err)
	}
	session.SetQuestion(question)

	s.games.Store(userID, session)
	return session, nil
}

// Session returns the user's active session, if any.
func (s *GameService) Session(userID int64) *entities.GameSession {
	return s.games.Get(userID)
}

// SubmitAnswer records the user's choice against the active session.
// A repeated submission for the same question returns a nil outcome.
// When the answer exhausts the last endless life the session is folded into
// the profile immediately and the result is returned alongside the outcome.
func (s *GameService) SubmitAnswer(ctx context.Context, userID int64, choice string) (*entities.AnswerOutcome, *SessionResult, error) {
	session := s.games.Get(userID)
	if session == nil {
		return nil, nil, ErrNoActiveSession
	}

	outcome := session.SubmitAnswer(choice)
	if outcome == nil {
		return nil, nil, nil
	}

	if outcome.Ended {
		result, err := s.finish(ctx, userID, session)
		if err != nil {
			return nil, nil, err
		}
		return outcome, result, nil
	}

	return outcome, nil, nil
}

// Advance moves the active session to the next question, or ends it when
// the bounded question count has been reached. Exactly one of the return
// values is set. While the current question is unanswered, Advance returns
// it unchanged: the next question is never generated before the current
// answer has been recorded.
func (s *GameService) Advance(ctx context.Context, userID int64) (*entities.Question, *SessionResult, error) {
	session := s.games.Get(userID)
	if session == nil {
		return nil, nil, ErrNoActiveSession
	}

	if !session.Answered() && !session.ShouldEnd() {
		return session.Current, nil, nil
	}

	if session.ShouldEnd() {
		result, err := s.finish(ctx, userID, session)
		if err != nil {
			return nil, nil, err
		}
		return nil, result, nil
	}

	question, err := s.generator.NextQuestion(session.Pool, session.Mode)
	if err != nil {
		return nil, nil, fmt.Errorf("generate question: %w", err)
	}
	session.SetQuestion(question)

	return question, nil, nil
}

// finish folds a finished session into the persistent profile: stats first,
// then the XP award. The two records are updated independently on purpose.
func (s *GameService) finish(ctx context.Context, userID int64, session *entities.GameSession) (*SessionResult, error) {
	xpGain := session.Finish()
	s.games.Delete(userID)

	switch session.Config.Kind {
	case entities.GameEndless:
		if err := s.profile.RecordEndlessResult(ctx, userID, session.Score, session.MaxStreak); err != nil {
			return nil, err
		}
	default:
		if err := s.profile.RecordQuizResult(ctx, userID, session.Score); err != nil {
			return nil, err
		}
	}

	award, err := s.profile.AddXP(ctx, userID, xpGain)
	if err != nil {
		return nil, err
	}

	return &SessionResult{
		Kind:      session.Config.Kind,
		Score:     session.Score,
		Total:     session.Config.TotalQuestions,
		MaxStreak: session.MaxStreak,
		Award:     award,
	}, nil
}

// StartRecognitionRound deals a new form-recognition round.
func (s *GameService) StartRecognitionRound(ctx context.Context, userID int64) (*entities.RecognitionRound, error) {
	pool, _, err := s.pool(ctx, userID)
	if err != nil {
		return nil, err
	}

	round, err := s.generator.NextRecognitionRound(pool)
	if err != nil {
		return nil, err
	}

	s.rounds.StoreRecognition(userID, round)
	return round, nil
}

// AnswerRecognition scores one recognition round: a correct answer earns a
// fixed 2 XP and bumps the lifetime counter, a wrong one earns nothing.
// The first answer consumes the round, so a repeated callback for the same
// round cannot award twice.
func (s *GameService) AnswerRecognition(ctx context.Context, userID int64, chosen entities.FormKey) (*RoundResult, *entities.RecognitionRound, error) {
	round := s.rounds.GetRecognition(userID)
	if round == nil {
		return nil, nil, ErrNoActiveSession
	}
	s.rounds.DeleteRecognition(userID)

	if chosen != round.FormKey {
		return &RoundResult{}, round, nil
	}

	if err := s.profile.RecordRecognitionCorrect(ctx, userID); err != nil {
		return nil, nil, err
	}
	award, err := s.profile.AddXP(ctx, userID, recognitionXP)
	if err != nil {
		return nil, nil, err
	}

	return &RoundResult{Correct: true, Award: award}, round, nil
}

// StartGroupRound deals a new verb-group round.
func (s *GameService) StartGroupRound(ctx context.Context, userID int64) (*entities.GroupRound, error) {
	pool, _, err := s.pool(ctx, userID)
	if err != nil {
		return nil, err
	}

	round, err := s.generator.NextGroupRound(pool)
	if err != nil {
		return nil, err
	}

	s.rounds.StoreGroup(userID, round)
	return round, nil
}

// AnswerGroup scores one group round: a correct answer earns a fixed 3 XP.
// The first answer consumes the round, same as AnswerRecognition.
func (s *GameService) AnswerGroup(ctx context.Context, userID int64, chosen int) (*RoundResult, *entities.GroupRound, error) {
	round := s.rounds.GetGroup(userID)
	if round == nil {
		return nil, nil, ErrNoActiveSession
	}
	s.rounds.DeleteGroup(userID)

	if chosen != round.Verb.Group {
		return &RoundResult{}, round, nil
	}

	if err := s.profile.RecordGroupCorrect(ctx, userID); err != nil {
		return nil, nil, err
	}
	award, err := s.profile.AddXP(ctx, userID, groupXP)
	if err != nil {
		return nil, nil, err
	}

	return &RoundResult{Correct: true, Award: award}, round, nil
}
