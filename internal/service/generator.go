package service

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/kotobadev/verb-trainer-bot/internal/domain/entities"
)

var (
	// ErrEmptyPool means a question was requested against an empty pool.
	// Callers must check pool non-emptiness before starting a session.
	ErrEmptyPool = errors.New("vocabulary pool is empty")

	// ErrMissingForm means a verb admitted into a quiz pool lacks a core
	// conjugation. This is a data-integrity violation, not a fallback case.
	ErrMissingForm = errors.New("verb is missing a core form")
)

const optionCount = 4

// Generator produces multiple-choice questions and mini-game rounds from a
// vocabulary pool.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator with its own random source.
func NewGenerator() *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewGeneratorWithSource creates a Generator with the given source,
// used by tests that need reproducible output.
func NewGeneratorWithSource(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// NextQuestion builds one question: a random verb, a random core form and
// four shuffled options (fewer when the data cannot supply three distinct
// distractors).
func (g *Generator) NextQuestion(pool []*entities.Verb, mode entities.QuizMode) (*entities.Question, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}

	verb := pool[g.rng.Intn(len(pool))]
	formKey := entities.CoreFormKeys[g.rng.Intn(len(entities.CoreFormKeys))]

	correct, ok := verb.Form(formKey)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no %s form", ErrMissingForm, verb.Dictionary, formKey)
	}

	var wrongs []string
	switch g.resolveMode(mode) {
	case entities.ModeSameForm:
		wrongs = g.wrongAnswersSameForm(correct, formKey, pool, verb)
	default:
		wrongs = g.wrongAnswersSameVerb(formKey, verb)
	}

	options := append([]string{correct}, wrongs...)
	g.shuffle(options)

	correctIndex := 0
	for i, opt := range options {
		if opt == correct {
			correctIndex = i
			break
		}
	}

	return &entities.Question{
		Verb:          verb,
		FormKey:       formKey,
		CorrectAnswer: correct,
		Options:       options,
		CorrectIndex:  correctIndex,
	}, nil
}

// resolveMode resolves the mixed mode with a fair coin flip per question.
func (g *Generator) resolveMode(mode entities.QuizMode) entities.QuizMode {
	if mode != entities.ModeMixed {
		return mode
	}
	if g.rng.Intn(2) == 0 {
		return entities.ModeSameVerb
	}
	return entities.ModeSameForm
}

// wrongAnswersSameVerb takes the other defined core forms of the same verb.
// Sparse data legitimately yields fewer than three distractors.
func (g *Generator) wrongAnswersSameVerb(formKey entities.FormKey, verb *entities.Verb) []string {
	wrongs := make([]string, 0, optionCount-1)
	for _, key := range entities.CoreFormKeys {
		if key == formKey {
			continue
		}
		if candidate, ok := verb.Form(key); ok {
			wrongs = append(wrongs, candidate)
		}
		if len(wrongs) >= optionCount-1 {
			break
		}
	}
	return wrongs
}

// wrongAnswersSameForm draws the same form from other verbs in the pool,
// deduplicated by surface string so two verbs that conjugate identically
// cannot produce a duplicate option. A deficit is backfilled from the
// question verb's own other forms; whatever was found is returned even if
// fewer than three.
func (g *Generator) wrongAnswersSameForm(
	correct string,
	formKey entities.FormKey,
	pool []*entities.Verb,
	questionVerb *entities.Verb,
) []string {
	seen := map[string]struct{}{correct: {}}
	wrongs := make([]string, 0, optionCount-1)

	shuffled := make([]*entities.Verb, len(pool))
	copy(shuffled, pool)
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	for _, verb := range shuffled {
		if verb == questionVerb {
			continue
		}
		candidate, ok := verb.Form(formKey)
		if !ok {
			continue
		}
		if _, dup := seen[candidate]; dup {
			continue
		}
		seen[candidate] = struct{}{}
		wrongs = append(wrongs, candidate)
		if len(wrongs) >= optionCount-1 {
			break
		}
	}

	// Not enough distinct cross-verb values: fall back to the question
	// verb's other forms, same dedup rule.
	if len(wrongs) < optionCount-1 {
		for _, key := range entities.CoreFormKeys {
			if key == formKey {
				continue
			}
			candidate, ok := questionVerb.Form(key)
			if !ok {
				continue
			}
			if _, dup := seen[candidate]; dup {
				continue
			}
			seen[candidate] = struct{}{}
			wrongs = append(wrongs, candidate)
			if len(wrongs) >= optionCount-1 {
				break
			}
		}
	}

	return wrongs
}

// recognitionFormKeys includes the dictionary form on top of the core four.
var recognitionFormKeys = append([]entities.FormKey{entities.FormDictionary}, entities.CoreFormKeys...)

// NextRecognitionRound picks a random verb and a random form to display;
// the user has to name which conjugation it is.
func (g *Generator) NextRecognitionRound(pool []*entities.Verb) (*entities.RecognitionRound, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}

	verb := pool[g.rng.Intn(len(pool))]
	formKey := recognitionFormKeys[g.rng.Intn(len(recognitionFormKeys))]

	display, ok := verb.Form(formKey)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no %s form", ErrMissingForm, verb.Dictionary, formKey)
	}

	return &entities.RecognitionRound{
		Verb:       verb,
		FormKey:    formKey,
		Display:    display,
		OptionKeys: recognitionFormKeys,
	}, nil
}

// NextGroupRound picks a random verb; the user has to name its group.
func (g *Generator) NextGroupRound(pool []*entities.Verb) (*entities.GroupRound, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}

	return &entities.GroupRound{Verb: pool[g.rng.Intn(len(pool))]}, nil
}

// shuffle applies an in-place Fisher–Yates shuffle so option order carries
// no information about correctness.
func (g *Generator) shuffle(options []string) {
	for i := len(options) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		options[i], options[j] = options[j], options[i]
	}
}
