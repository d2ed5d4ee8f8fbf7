// messages.go contains message templates and formatting helpers.
package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	msgWelcome = "こんにちは！ I'm your Japanese verb trainer.\n\n" +
		"🎯 /quiz — 10-question conjugation quiz\n" +
		"♾ /endless — survival mode, 3 lives\n" +
		"🔍 /forms — guess which form you see\n" +
		"🔢 /groups — guess the verb group\n" +
		"📖 /study — flip through conjugations\n" +
		"🎲 /random — a random verb\n" +
		"📚 /verbs — browse the dictionary\n" +
		"👤 /profile — level, XP and stats\n" +
		"⚙️ /settings — difficulty and quiz mode\n" +
		"/help — this message"

	msgUnknownCommand = "Unknown command. Use /help to see what I can do."

	msgNoVocabulary   = "The vocabulary is not available right now. Try again later."
	msgNoActiveGame   = "No game in progress. Start one with /quiz or /endless."
	msgNoActiveRound  = "That round is over. Start a new one with /forms or /groups."
	msgInternalError  = "Something went wrong. Try again later."
	msgSettingsSaved  = "Saved."
	msgResetConfirm   = "Reset all progress? This clears your XP, stats and best scores. Your settings are kept."
	msgResetDone      = "Progress reset. Fresh start — good luck!"
	msgResetCancelled = "Nothing was reset."
	msgCorrect        = "Correct! ✅"
	msgIncorrectFmt   = "Incorrect. Correct answer: %s"
	msgLevelUpFmt     = "\n\n🎉 Level up! You reached level %d."
)

func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}
