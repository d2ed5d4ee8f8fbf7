package entities

// Record keys for the persistence sink. Each is an independent JSON record;
// they are never updated as one transaction.
const (
	RecordSettings  = "settings"
	RecordStats     = "stats"
	RecordHighScore = "highscore"
)

// Settings stores user preferences plus the accumulated XP.
// Theme is kept for display-client compatibility and is not interpreted
// by the bot.
type Settings struct {
	Theme      string     `json:"theme"`
	Difficulty Difficulty `json:"difficulty"`
	QuizMode   QuizMode   `json:"quizMode"`
	XP         int        `json:"xp"`
}

// NewSettings returns settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Theme:      "neon-dark",
		Difficulty: DifficultyN5,
		QuizMode:   ModeSameVerb,
		XP:         0,
	}
}

// Stats holds lifetime counters. All fields only grow, except via an
// explicit reset.
type Stats struct {
	QuizGames          int `json:"quizGames"`
	QuizBestScore      int `json:"quizBestScore"`
	EndlessGames       int `json:"endlessGames"`
	EndlessBestScore   int `json:"endlessBestScore"`
	EndlessBestStreak  int `json:"endlessBestStreak"`
	RecognitionCorrect int `json:"recognitionCorrect"`
	GroupCorrect       int `json:"groupCorrect"`
}

// LevelInfo is the tiered representation of a total XP value.
type LevelInfo struct {
	Level     int // current level, starts at 1
	IntoLevel int // XP accumulated within the current level
	PerLevel  int // XP needed to clear the current level
}
