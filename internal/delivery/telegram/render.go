// render.go turns domain values into message text.
package telegram

import (
	"fmt"
	"strings"

	"github.com/kotobadev/verb-trainer-bot/internal/domain/entities"
	"github.com/kotobadev/verb-trainer-bot/internal/service"
)

// furigana renders a headword with its reading, e.g. 食べる【たべる】.
func furigana(verb *entities.Verb) string {
	return fmt.Sprintf("%s【%s】", verb.Dictionary, verb.Furigana)
}

// formPrompt names the conjugation asked for in a quiz question.
var formPrompt = map[entities.FormKey]string{
	entities.FormMasu:     "ます form",
	entities.FormNegative: "ない form",
	entities.FormTe:       "て form",
	entities.FormPast:     "た form",
}

func renderQuestion(session *entities.GameSession) string {
	q := session.Current

	var b strings.Builder
	switch session.Config.Kind {
	case entities.GameEndless:
		b.WriteString(fmt.Sprintf(
			"%s  ·  Score: %d  ·  Streak: %d\n\n",
			renderLives(session.Lives), session.Score, session.Streak,
		))
	default:
		b.WriteString(fmt.Sprintf(
			"Question %d/%d  ·  Score: %d\n\n",
			session.QuestionIndex+1, session.Config.TotalQuestions, session.Score,
		))
	}

	b.WriteString(fmt.Sprintf("<b>%s</b>\n", furigana(q.Verb)))
	b.WriteString(fmt.Sprintf("Which option is the <b>%s</b> for this verb?", formPrompt[q.FormKey]))

	return b.String()
}

func renderLives(lives int) string {
	if lives < 0 {
		lives = 0
	}
	full := strings.Repeat("♥", lives)
	empty := strings.Repeat("♡", 3-lives)
	return full + empty
}

func renderSessionResult(result *service.SessionResult) string {
	var b strings.Builder

	switch result.Kind {
	case entities.GameEndless:
		b.WriteString(fmt.Sprintf(
			"Game over!\n\nFinal score: <b>%d</b>  ·  Longest streak: <b>%d</b>",
			result.Score, result.MaxStreak,
		))
	default:
		b.WriteString(fmt.Sprintf(
			"Quiz finished!\n\nYou scored <b>%d / %d</b>.",
			result.Score, result.Total,
		))
	}

	b.WriteString(fmt.Sprintf("\nYou gained <b>%d XP</b>.", result.Award.Amount))
	if result.Award.LeveledUp {
		b.WriteString(fmt.Sprintf(msgLevelUpFmt, result.Award.NewLevel))
	}

	return b.String()
}

func renderRecognitionRound(round *entities.RecognitionRound) string {
	return fmt.Sprintf(
		"Verb: <b>%s</b>\n\nWhich form is this?\n\n<b>%s</b>",
		furigana(round.Verb), round.Display,
	)
}

func renderGroupRound(round *entities.GroupRound) string {
	return fmt.Sprintf(
		"<b>%s</b>\nMeaning: %s\n\nWhich group does this verb belong to?",
		furigana(round.Verb), round.Verb.Meaning,
	)
}

func renderRoundFeedback(result *service.RoundResult, correctLabel string) string {
	if !result.Correct {
		return fmt.Sprintf(msgIncorrectFmt, correctLabel)
	}

	text := fmt.Sprintf("%s (+%d XP)", msgCorrect, result.Award.Amount)
	if result.Award.LeveledUp {
		text += fmt.Sprintf(msgLevelUpFmt, result.Award.NewLevel)
	}
	return text
}

// renderStudyCard shows a verb with the forms revealed so far. The reveal
// mask has one bit per core form, in CoreFormKeys order.
func renderStudyCard(verb *entities.Verb, revealMask int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<b>%s</b>\n", furigana(verb)))
	b.WriteString(fmt.Sprintf("Meaning: %s\nGroup: %d\n\n", verb.Meaning, verb.Group))

	for i, key := range entities.CoreFormKeys {
		value := "？？？"
		if revealMask&(1<<i) != 0 {
			if form, ok := verb.Form(key); ok {
				value = form
			}
		}
		b.WriteString(fmt.Sprintf("%s: %s\n", entities.FormLabels[key], value))
	}

	return b.String()
}

func renderVerbCard(verb *entities.Verb) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<b>%s</b>\n", furigana(verb)))
	b.WriteString(fmt.Sprintf("Meaning: %s\nGroup: %d  ·  Level: %s\n", verb.Meaning, verb.Group, verb.Level))

	for _, key := range entities.CoreFormKeys {
		if form, ok := verb.Form(key); ok {
			b.WriteString(fmt.Sprintf("%s: %s\n", entities.FormLabels[key], form))
		}
	}

	return b.String()
}

func renderProfile(settings *entities.Settings, stats *entities.Stats, highScore int) string {
	info := service.ComputeLevelInfo(settings.XP)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("👤 <b>Level %d</b>\n", info.Level))
	b.WriteString(fmt.Sprintf("%s %d/%d XP  ·  %d total\n\n", renderXPBar(info), info.IntoLevel, info.PerLevel, settings.XP))

	b.WriteString(fmt.Sprintf("🎯 Quiz: %d played, best %d/10 (record %d)\n", stats.QuizGames, stats.QuizBestScore, highScore))
	b.WriteString(fmt.Sprintf("♾ Endless: %d played, best score %d, best streak %d\n", stats.EndlessGames, stats.EndlessBestScore, stats.EndlessBestStreak))
	b.WriteString(fmt.Sprintf("🔍 Forms recognized: %d\n", stats.RecognitionCorrect))
	b.WriteString(fmt.Sprintf("🔢 Groups guessed: %d\n\n", stats.GroupCorrect))

	b.WriteString(fmt.Sprintf("Difficulty: %s  ·  Quiz mode: %s", settings.Difficulty, quizModeLabel(settings.QuizMode)))

	return b.String()
}

const xpBarWidth = 10

func renderXPBar(info entities.LevelInfo) string {
	filled := 0
	if info.PerLevel > 0 {
		filled = info.IntoLevel * xpBarWidth / info.PerLevel
	}
	if filled > xpBarWidth {
		filled = xpBarWidth
	}
	return strings.Repeat("▰", filled) + strings.Repeat("▱", xpBarWidth-filled)
}

func quizModeLabel(mode entities.QuizMode) string {
	switch mode {
	case entities.ModeSameForm:
		return "same form"
	case entities.ModeMixed:
		return "mixed"
	default:
		return "same verb"
	}
}

const verbsPerPage = 5

// buildVerbsPage renders one page of the dictionary list.
func buildVerbsPage(verbs []*entities.Verb, page int) (text string, totalPages int) {
	totalPages = (len(verbs) + verbsPerPage - 1) / verbsPerPage
	if totalPages == 0 || page < 0 || page >= totalPages {
		return "", totalPages
	}

	start := page * verbsPerPage
	end := start + verbsPerPage
	if end > len(verbs) {
		end = len(verbs)
	}

	var b strings.Builder
	for i, verb := range verbs[start:end] {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(fmt.Sprintf(
			"<b>%s</b> — %s\nGroup %d  ·  %s",
			furigana(verb), verb.Meaning, verb.Group, verb.Level,
		))
	}
	b.WriteString(fmt.Sprintf("\n\nPage %d/%d", page+1, totalPages))

	return b.String(), totalPages
}
