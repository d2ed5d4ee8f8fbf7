package entities

// SessionState describes where a game session is in its lifecycle.
type SessionState string

const (
	SessionNotStarted     SessionState = "not_started"
	SessionAwaitingAnswer SessionState = "awaiting_answer"
	SessionAnswered       SessionState = "answered"
	SessionEnded          SessionState = "ended"
)

// GameKind distinguishes the bounded quiz from the endless survival mode.
type GameKind string

const (
	GameQuiz    GameKind = "quiz"
	GameEndless GameKind = "endless"
)

// SessionConfig parameterizes the session state machine so the quiz and
// endless modes share one implementation.
type SessionConfig struct {
	Kind           GameKind
	TotalQuestions int // 0 means unbounded
	Lives          int // 0 means no lives
	XPReward       func(score, maxStreak int) int
}

// QuizConfig is the Quick Quiz: 10 questions, no lives, 8 XP per point.
func QuizConfig() SessionConfig {
	return SessionConfig{
		Kind:           GameQuiz,
		TotalQuestions: 10,
		XPReward: func(score, _ int) int {
			return score * 8
		},
	}
}

// EndlessConfig is the survival mode: unbounded, 3 lives,
// 5 XP per point plus 2 XP per best-streak step.
func EndlessConfig() SessionConfig {
	return SessionConfig{
		Kind:  GameEndless,
		Lives: 3,
		XPReward: func(score, maxStreak int) int {
			return score*5 + maxStreak*2
		},
	}
}

// AnswerOutcome reports what a submitted answer did to the session.
type AnswerOutcome struct {
	Correct       bool
	CorrectAnswer string
	Ended         bool // endless mode ends immediately on the last life
}

// GameSession is the per-play-through state machine shared by the quiz and
// endless modes. It owns all transient session state and knows nothing about
// rendering or persistence.
type GameSession struct {
	Config SessionConfig
	State  SessionState

	QuestionIndex int
	Score         int
	Streak        int
	MaxStreak     int
	Lives         int

	Current  *Question
	answered bool

	// Pool and Mode are fixed at session start so every question of one
	// play-through draws from the same tier with the same distractor mode.
	Pool []*Verb
	Mode QuizMode
}

// NewGameSession creates a session in the NotStarted state.
func NewGameSession(cfg SessionConfig) *GameSession {
	return &GameSession{
		Config: cfg,
		State:  SessionNotStarted,
	}
}

// Start resets all per-session counters. The caller must attach the first
// question via SetQuestion before answers can be submitted.
func (s *GameSession) Start() {
	s.QuestionIndex = 0
	s.Score = 0
	s.Streak = 0
	s.MaxStreak = 0
	s.Lives = s.Config.Lives
	s.Current = nil
	s.answered = false
	s.State = SessionAwaitingAnswer
}

// SetQuestion attaches the next question and re-arms the answer guard.
func (s *GameSession) SetQuestion(q *Question) {
	s.Current = q
	s.answered = false
	s.State = SessionAwaitingAnswer
}

// SubmitAnswer records the user's choice. The second and any further call
// for the same question is a no-op and returns nil, so double-clicks cannot
// score twice. Answers are compared by exact string equality.
func (s *GameSession) SubmitAnswer(choice string) *AnswerOutcome {
	if s.State != SessionAwaitingAnswer || s.answered || s.Current == nil {
		return nil
	}
	s.answered = true
	s.State = SessionAnswered

	outcome := &AnswerOutcome{CorrectAnswer: s.Current.CorrectAnswer}
	outcome.Correct = choice == s.Current.CorrectAnswer

	switch s.Config.Kind {
	case GameEndless:
		if outcome.Correct {
			s.Score++
			s.Streak++
			if s.Streak > s.MaxStreak {
				s.MaxStreak = s.Streak
			}
		} else {
			s.Lives--
			s.Streak = 0
			// Lives are checked before any next question is offered.
			if s.Lives <= 0 {
				s.State = SessionEnded
				outcome.Ended = true
			}
		}
	default:
		if outcome.Correct {
			s.Score++
		}
		s.QuestionIndex++
	}

	return outcome
}

// ShouldEnd reports whether the session is over after the current answer.
// For the quiz this is reaching the fixed question count; for endless it is
// running out of lives (already reflected in State by SubmitAnswer).
func (s *GameSession) ShouldEnd() bool {
	if s.State == SessionEnded {
		return true
	}
	if s.Config.TotalQuestions > 0 && s.QuestionIndex >= s.Config.TotalQuestions {
		return true
	}
	return false
}

// Finish marks the session ended and returns the XP this play-through earned.
func (s *GameSession) Finish() int {
	s.State = SessionEnded
	if s.Config.XPReward == nil {
		return 0
	}
	return s.Config.XPReward(s.Score, s.MaxStreak)
}

// Answered reports whether the current question has already been answered.
func (s *GameSession) Answered() bool {
	return s.answered
}
