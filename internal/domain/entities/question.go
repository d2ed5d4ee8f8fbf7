package entities

// QuizMode controls how distractors are generated for a question.
type QuizMode string

const (
	ModeSameVerb QuizMode = "sameVerb" // wrong answers are other forms of the same verb
	ModeSameForm QuizMode = "sameForm" // wrong answers are the same form of other verbs
	ModeMixed    QuizMode = "mixed"    // coin flip between the two per question
)

// Question is a single multiple-choice question: guess the requested
// conjugation of the shown verb.
type Question struct {
	Verb          *Verb
	FormKey       FormKey
	CorrectAnswer string
	Options       []string // shuffled, contains CorrectAnswer exactly once
	CorrectIndex  int      // index of CorrectAnswer within Options
}

// RecognitionRound shows one surface form of a verb and asks which
// conjugation it is.
type RecognitionRound struct {
	Verb       *Verb
	FormKey    FormKey // the correct answer
	Display    string  // the surface string the user sees
	OptionKeys []FormKey
}

// GroupRound shows a verb and asks for its conjugation group.
type GroupRound struct {
	Verb *Verb
}
