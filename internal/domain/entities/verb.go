// Package entities contains domain entities used across the application.
package entities

// FormKey identifies a grammatical conjugation of a verb.
type FormKey string

const (
	FormDictionary FormKey = "dictionary" // plain dictionary form
	FormMasu       FormKey = "masu"       // polite form
	FormNegative   FormKey = "negative"   // plain negative form
	FormTe         FormKey = "te"         // te-form
	FormPast       FormKey = "past"       // plain past form
)

// CoreFormKeys are the conjugations every quizzable verb must define.
var CoreFormKeys = []FormKey{FormMasu, FormNegative, FormTe, FormPast}

// FormLabels maps form keys to the labels shown to the user.
var FormLabels = map[FormKey]string{
	FormDictionary: "Dictionary",
	FormMasu:       "Polite (〜ます)",
	FormNegative:   "Negative (〜ない)",
	FormTe:         "Te-form (〜て)",
	FormPast:       "Past (〜た)",
}

// Difficulty is a JLPT difficulty tier.
type Difficulty string

const (
	DifficultyN5 Difficulty = "N5"
	DifficultyN4 Difficulty = "N4"
)

// KnownDifficulties lists the tiers present in the dataset.
var KnownDifficulties = []Difficulty{DifficultyN5, DifficultyN4}

// Verb represents a single vocabulary entry. Verbs are loaded once at
// startup and are read-only afterwards.
type Verb struct {
	Dictionary   string             `json:"dictionary"`             // headword
	Furigana     string             `json:"furigana"`               // phonetic reading of the headword
	Meaning      string             `json:"meaning"`                // English gloss
	Group        int                `json:"group"`                  // conjugation class: 1, 2 or 3
	Level        Difficulty         `json:"level"`                  // difficulty tier
	Forms        map[FormKey]string `json:"forms"`                  // conjugated forms; sparse
	FormsReading map[FormKey]string `json:"formsReading,omitempty"` // readings for forms containing kanji
}

// Form returns the conjugated form for the given key.
// FormDictionary resolves to the headword itself.
func (v *Verb) Form(key FormKey) (string, bool) {
	if key == FormDictionary {
		return v.Dictionary, true
	}
	value, ok := v.Forms[key]
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// HasCoreForms reports whether all four core conjugations are defined,
// which is required for the quiz and endless modes.
func (v *Verb) HasCoreForms() bool {
	for _, key := range CoreFormKeys {
		if _, ok := v.Form(key); !ok {
			return false
		}
	}
	return true
}
