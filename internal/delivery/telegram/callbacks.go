package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/kotobadev/verb-trainer-bot/internal/domain/entities"
	"github.com/kotobadev/verb-trainer-bot/internal/service"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	data := cb.Data

	switch {
	case strings.HasPrefix(data, cbAnswerPrefix):
		h.handleAnswerCallback(ctx, cb)

	case data == cbNext:
		h.handleNextCallback(ctx, cb)

	case data == cbQuizStart:
		h.handleRestartCallback(ctx, cb, entities.GameQuiz)

	case data == cbEndlessStart:
		h.handleRestartCallback(ctx, cb, entities.GameEndless)

	case data == cbRecognitionNext:
		h.handleRecognitionNextCallback(ctx, cb)

	case strings.HasPrefix(data, cbRecognitionPrefix):
		h.handleRecognitionAnswerCallback(ctx, cb)

	case data == cbGroupNext:
		h.handleGroupNextCallback(ctx, cb)

	case strings.HasPrefix(data, cbGroupPrefix):
		h.handleGroupAnswerCallback(ctx, cb)

	case strings.HasPrefix(data, cbStudyPrefix):
		h.handleStudyCallback(ctx, cb)

	case strings.HasPrefix(data, cbVerbsPrefix):
		h.handleVerbsCallback(cb)

	case data == cbProfile:
		h.sendProfile(ctx, cb.Message.Chat.ID, cb.From.ID)
		h.ackCallback(cb, "")

	case strings.HasPrefix(data, cbSettingsDiffPrefix):
		h.handleSettingsDifficultyCallback(ctx, cb)

	case strings.HasPrefix(data, cbSettingsModePrefix):
		h.handleSettingsModeCallback(ctx, cb)

	case data == cbResetConfirm:
		h.handleResetCallback(ctx, cb, true)

	case data == cbResetCancel:
		h.handleResetCallback(ctx, cb, false)

	default:
		h.ackCallback(cb, "")
	}
}

func (h *Handler) handleAnswerCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	session := h.gameService.Session(cb.From.ID)
	if session == nil || session.Current == nil {
		h.ackCallback(cb, msgNoActiveGame)
		return
	}

	index, err := strconv.Atoi(strings.TrimPrefix(cb.Data, cbAnswerPrefix))
	if err != nil || index < 0 || index >= len(session.Current.Options) {
		h.logger.Warn("invalid answer callback", zap.String("data", cb.Data))
		h.ackCallback(cb, "")
		return
	}
	choice := session.Current.Options[index]

	outcome, result, err := h.gameService.SubmitAnswer(ctx, cb.From.ID, choice)
	if err != nil {
		h.reportCallbackError(cb, err)
		return
	}
	if outcome == nil {
		// Double-click on an already answered question.
		h.ackCallback(cb, "")
		return
	}

	h.ackCallback(cb, "")

	feedback := msgCorrect
	if !outcome.Correct {
		feedback = fmt.Sprintf(msgIncorrectFmt, outcome.CorrectAnswer)
	}

	if result != nil {
		// Last endless life spent: no next question is offered.
		text := feedback + "\n\n" + renderSessionResult(result)
		h.editMessage(cb, text, buildResultKeyboard(result.Kind))
		return
	}

	h.editMessage(cb, feedback, buildNextKeyboard())
}

func (h *Handler) handleNextCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	question, result, err := h.gameService.Advance(ctx, cb.From.ID)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveSession) {
			h.ackCallback(cb, msgNoActiveGame)
			return
		}
		h.reportCallbackError(cb, err)
		return
	}

	h.ackCallback(cb, "")

	if result != nil {
		h.editMessage(cb, renderSessionResult(result), buildResultKeyboard(result.Kind))
		return
	}

	session := h.gameService.Session(cb.From.ID)
	h.editMessage(cb, renderQuestion(session), buildAnswerKeyboard(question.Options))
}

func (h *Handler) handleRestartCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, kind entities.GameKind) {
	session, err := h.gameService.StartGame(ctx, cb.From.ID, kind)
	if err != nil {
		h.reportCallbackError(cb, err)
		return
	}

	h.ackCallback(cb, "")
	h.editMessage(cb, renderQuestion(session), buildAnswerKeyboard(session.Current.Options))
}

func (h *Handler) handleRecognitionAnswerCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	chosen := entities.FormKey(strings.TrimPrefix(cb.Data, cbRecognitionPrefix))

	result, round, err := h.gameService.AnswerRecognition(ctx, cb.From.ID, chosen)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveSession) {
			h.ackCallback(cb, msgNoActiveRound)
			return
		}
		h.reportCallbackError(cb, err)
		return
	}

	h.ackCallback(cb, "")

	text := renderRecognitionRound(round) + "\n\n" +
		renderRoundFeedback(result, entities.FormLabels[round.FormKey])
	h.editMessage(cb, text, buildRecognitionNextKeyboard())
}

func (h *Handler) handleRecognitionNextCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	round, err := h.gameService.StartRecognitionRound(ctx, cb.From.ID)
	if err != nil {
		h.reportCallbackError(cb, err)
		return
	}

	h.ackCallback(cb, "")
	h.editMessage(cb, renderRecognitionRound(round), buildRecognitionKeyboard(round.OptionKeys))
}

func (h *Handler) handleGroupAnswerCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	chosen, err := strconv.Atoi(strings.TrimPrefix(cb.Data, cbGroupPrefix))
	if err != nil {
		h.logger.Warn("invalid group callback", zap.String("data", cb.Data))
		h.ackCallback(cb, "")
		return
	}

	result, round, err := h.gameService.AnswerGroup(ctx, cb.From.ID, chosen)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveSession) {
			h.ackCallback(cb, msgNoActiveRound)
			return
		}
		h.reportCallbackError(cb, err)
		return
	}

	h.ackCallback(cb, "")

	correctLabel := fmt.Sprintf("Group %d", round.Verb.Group)
	text := renderGroupRound(round) + "\n\n" + renderRoundFeedback(result, correctLabel)
	h.editMessage(cb, text, buildGroupNextKeyboard())
}

func (h *Handler) handleGroupNextCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	round, err := h.gameService.StartGroupRound(ctx, cb.From.ID)
	if err != nil {
		h.reportCallbackError(cb, err)
		return
	}

	h.ackCallback(cb, "")
	h.editMessage(cb, renderGroupRound(round), buildGroupKeyboard())
}

func (h *Handler) handleStudyCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	parts := strings.Split(strings.TrimPrefix(cb.Data, cbStudyPrefix), ":")
	if len(parts) != 3 {
		h.logger.Warn("invalid study callback", zap.String("data", cb.Data))
		h.ackCallback(cb, "")
		return
	}

	if parts[2] == "next" {
		verb, err := h.verbService.RandomFromPool(ctx, cb.From.ID)
		if err != nil {
			h.reportCallbackError(cb, err)
			return
		}
		h.ackCallback(cb, "")
		index := h.verbIndex(verb)
		h.editMessage(cb, renderStudyCard(verb, 0), buildStudyKeyboard(index, 0))
		return
	}

	index, err1 := strconv.Atoi(parts[0])
	mask, err2 := strconv.Atoi(parts[1])
	verbs := h.verbService.GetAll()
	if err1 != nil || err2 != nil || index < 0 || index >= len(verbs) || mask < 0 || mask > 15 {
		h.logger.Warn("invalid study callback values", zap.String("data", cb.Data))
		h.ackCallback(cb, "")
		return
	}

	h.ackCallback(cb, "")
	verb := verbs[index]
	h.editMessage(cb, renderStudyCard(verb, mask), buildStudyKeyboard(index, mask))
}

func (h *Handler) handleVerbsCallback(cb *tgbotapi.CallbackQuery) {
	page, err := strconv.Atoi(strings.TrimPrefix(cb.Data, cbVerbsPrefix))
	if err != nil || page < 0 {
		h.logger.Warn("invalid verbs page callback", zap.String("data", cb.Data))
		h.ackCallback(cb, "")
		return
	}

	verbs := h.verbService.GetAll()
	text, totalPages := buildVerbsPage(verbs, page)
	if totalPages == 0 || page >= totalPages {
		h.ackCallback(cb, "")
		return
	}

	h.ackCallback(cb, "")

	var kb tgbotapi.InlineKeyboardMarkup
	if built := buildVerbsKeyboard(page, totalPages); built != nil {
		kb = *built
	}
	h.editMessage(cb, text, kb)
}

func (h *Handler) handleSettingsDifficultyCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	tier := entities.Difficulty(strings.TrimPrefix(cb.Data, cbSettingsDiffPrefix))
	if tier != entities.DifficultyN5 && tier != entities.DifficultyN4 {
		h.ackCallback(cb, "")
		return
	}

	if err := h.profileService.UpdateDifficulty(ctx, cb.From.ID, tier); err != nil {
		h.reportCallbackError(cb, err)
		return
	}

	h.refreshSettingsMessage(ctx, cb)
}

func (h *Handler) handleSettingsModeCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	mode := entities.QuizMode(strings.TrimPrefix(cb.Data, cbSettingsModePrefix))
	switch mode {
	case entities.ModeSameVerb, entities.ModeSameForm, entities.ModeMixed:
	default:
		h.ackCallback(cb, "")
		return
	}

	if err := h.profileService.UpdateQuizMode(ctx, cb.From.ID, mode); err != nil {
		h.reportCallbackError(cb, err)
		return
	}

	h.refreshSettingsMessage(ctx, cb)
}

func (h *Handler) refreshSettingsMessage(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	settings, err := h.profileService.Settings(ctx, cb.From.ID)
	if err != nil {
		h.reportCallbackError(cb, err)
		return
	}

	h.ackCallback(cb, msgSettingsSaved)
	h.editMessage(cb, "⚙️ Settings", buildSettingsKeyboard(settings))
}

func (h *Handler) handleResetCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, confirmed bool) {
	if !confirmed {
		h.ackCallback(cb, "")
		h.editMessageText(cb, msgResetCancelled)
		return
	}

	if err := h.profileService.ResetProgress(ctx, cb.From.ID); err != nil {
		h.reportCallbackError(cb, err)
		return
	}

	h.ackCallback(cb, "")
	h.editMessageText(cb, msgResetDone)
}

// editMessage replaces the callback's message text and keyboard in place.
func (h *Handler) editMessage(cb *tgbotapi.CallbackQuery, text string, kb tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageText(cb.Message.Chat.ID, cb.Message.MessageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	edit.ReplyMarkup = &kb
	h.send(edit)
}

// editMessageText replaces the callback's message text and drops its keyboard.
func (h *Handler) editMessageText(cb *tgbotapi.CallbackQuery, text string) {
	edit := tgbotapi.NewEditMessageText(cb.Message.Chat.ID, cb.Message.MessageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	h.send(edit)
}

// ackCallback removes the client-side "clock" on the pressed button,
// optionally with a short toast.
func (h *Handler) ackCallback(cb *tgbotapi.CallbackQuery, text string) {
	answer := tgbotapi.NewCallback(cb.ID, text)
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Error("callback answer error", zap.Error(err))
	}
}

func (h *Handler) reportCallbackError(cb *tgbotapi.CallbackQuery, err error) {
	h.logger.Error("callback handling failed",
		zap.Int64("user_id", cb.From.ID),
		zap.String("data", cb.Data),
		zap.Error(err),
	)
	h.ackCallback(cb, msgInternalError)
}
