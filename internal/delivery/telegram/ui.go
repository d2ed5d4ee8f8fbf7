// ui.go builds the inline keyboards.
package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/kotobadev/verb-trainer-bot/internal/domain/entities"
)

// buildAnswerKeyboard lays out the answer options, one per row, in the
// shuffled order the generator produced.
func buildAnswerKeyboard(options []string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(options))
	for i, option := range options {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(option, buildAnswerCallback(i)),
		))
	}
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func buildNextKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Next ▶️", cbNext),
		),
	)
}

func buildResultKeyboard(kind entities.GameKind) tgbotapi.InlineKeyboardMarkup {
	restart := cbQuizStart
	if kind == entities.GameEndless {
		restart = cbEndlessStart
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Play again", restart),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👤 My profile", cbProfile),
		),
	)
}

func buildRecognitionKeyboard(optionKeys []entities.FormKey) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(optionKeys))
	for _, key := range optionKeys {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(entities.FormLabels[key], buildRecognitionCallback(string(key))),
		))
	}
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func buildRecognitionNextKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Next round ▶️", cbRecognitionNext),
		),
	)
}

func buildGroupKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Group 1", buildGroupCallback(1)),
			tgbotapi.NewInlineKeyboardButtonData("Group 2", buildGroupCallback(2)),
			tgbotapi.NewInlineKeyboardButtonData("Group 3", buildGroupCallback(3)),
		),
	)
}

func buildGroupNextKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Next round ▶️", cbGroupNext),
		),
	)
}

// buildStudyKeyboard offers a reveal button per still-hidden form plus a
// "next verb" button. Reveal buttons carry the verb index and the updated
// reveal mask, so the flow needs no server-side study state.
func buildStudyKeyboard(verbIndex, revealMask int) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, key := range entities.CoreFormKeys {
		bit := 1 << i
		if revealMask&bit != 0 {
			continue
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("Reveal %s", entities.FormLabels[key]),
				buildStudyCallback(verbIndex, revealMask|bit, string(key)),
			),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Next verb ▶️", buildStudyCallback(verbIndex, 0, "next")),
	))
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// buildVerbsKeyboard builds the pagination keyboard for the dictionary list.
func buildVerbsKeyboard(page, totalPages int) *tgbotapi.InlineKeyboardMarkup {
	if totalPages <= 1 {
		return nil
	}

	var row []tgbotapi.InlineKeyboardButton
	if page > 0 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("◀️ Previous", buildVerbsCallback(page-1)))
	}
	if page < totalPages-1 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("Next ▶️", buildVerbsCallback(page+1)))
	}

	kb := tgbotapi.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{row},
	}
	return &kb
}

func buildSettingsKeyboard(settings *entities.Settings) tgbotapi.InlineKeyboardMarkup {
	check := func(active bool, label string) string {
		if active {
			return "✅ " + label
		}
		return label
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(check(settings.Difficulty == entities.DifficultyN5, "N5"), cbSettingsDiffPrefix+"N5"),
			tgbotapi.NewInlineKeyboardButtonData(check(settings.Difficulty == entities.DifficultyN4, "N4"), cbSettingsDiffPrefix+"N4"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(check(settings.QuizMode == entities.ModeSameVerb, "Same verb"), cbSettingsModePrefix+string(entities.ModeSameVerb)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(check(settings.QuizMode == entities.ModeSameForm, "Same form"), cbSettingsModePrefix+string(entities.ModeSameForm)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(check(settings.QuizMode == entities.ModeMixed, "Mixed"), cbSettingsModePrefix+string(entities.ModeMixed)),
		),
	)
}

func buildResetKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Yes, reset", cbResetConfirm),
			tgbotapi.NewInlineKeyboardButtonData("Cancel", cbResetCancel),
		),
	)
}
