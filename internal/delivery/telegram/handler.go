package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/kotobadev/verb-trainer-bot/internal/domain/entities"
	"github.com/kotobadev/verb-trainer-bot/internal/service"
)

type GameService interface {
	StartGame(ctx context.Context, userID int64, kind entities.GameKind) (*entities.GameSession, error)
	Session(userID int64) *entities.GameSession
	SubmitAnswer(ctx context.Context, userID int64, choice string) (*entities.AnswerOutcome, *service.SessionResult, error)
	Advance(ctx context.Context, userID int64) (*entities.Question, *service.SessionResult, error)
	StartRecognitionRound(ctx context.Context, userID int64) (*entities.RecognitionRound, error)
	AnswerRecognition(ctx context.Context, userID int64, chosen entities.FormKey) (*service.RoundResult, *entities.RecognitionRound, error)
	StartGroupRound(ctx context.Context, userID int64) (*entities.GroupRound, error)
	AnswerGroup(ctx context.Context, userID int64, chosen int) (*service.RoundResult, *entities.GroupRound, error)
}

type VerbService interface {
	GetAll() []*entities.Verb
	RandomFromPool(ctx context.Context, userID int64) (*entities.Verb, error)
}

type ProfileService interface {
	Settings(ctx context.Context, userID int64) (*entities.Settings, error)
	Stats(ctx context.Context, userID int64) (*entities.Stats, error)
	HighScore(ctx context.Context, userID int64) (int, error)
	UpdateDifficulty(ctx context.Context, userID int64, difficulty entities.Difficulty) error
	UpdateQuizMode(ctx context.Context, userID int64, mode entities.QuizMode) error
	ResetProgress(ctx context.Context, userID int64) error
}

type Handler struct {
	bot            *tgbotapi.BotAPI
	logger         *zap.Logger
	gameService    GameService
	verbService    VerbService
	profileService ProfileService
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	gameService GameService,
	verbService VerbService,
	profileService ProfileService,
) *Handler {
	return &Handler{
		bot:            bot,
		logger:         logger,
		gameService:    gameService,
		verbService:    verbService,
		profileService: profileService,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID

	if !update.Message.IsCommand() {
		h.send(newHTMLMessage(chatID, msgUnknownCommand))
		return
	}

	switch update.Message.Command() {
	case "start", "help":
		h.send(newHTMLMessage(chatID, msgWelcome))

	case "quiz":
		h.startGame(ctx, chatID, userID, entities.GameQuiz)

	case "endless":
		h.startGame(ctx, chatID, userID, entities.GameEndless)

	case "forms":
		h.startRecognition(ctx, chatID, userID)

	case "groups":
		h.startGroup(ctx, chatID, userID)

	case "study":
		h.sendStudyCard(ctx, chatID, userID)

	case "random":
		h.sendRandomVerb(ctx, chatID, userID)

	case "verbs":
		h.sendVerbsPage(chatID, 0)

	case "profile":
		h.sendProfile(ctx, chatID, userID)

	case "settings":
		h.sendSettings(ctx, chatID, userID)

	case "reset":
		msg := newHTMLMessage(chatID, msgResetConfirm)
		msg.ReplyMarkup = buildResetKeyboard()
		h.send(msg)

	default:
		h.send(newHTMLMessage(chatID, msgUnknownCommand))
	}
}

func (h *Handler) startGame(ctx context.Context, chatID, userID int64, kind entities.GameKind) {
	session, err := h.gameService.StartGame(ctx, userID, kind)
	if err != nil {
		h.logger.Error("failed to start game",
			zap.Int64("user_id", userID),
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
		h.send(newHTMLMessage(chatID, msgNoVocabulary))
		return
	}

	msg := newHTMLMessage(chatID, renderQuestion(session))
	msg.ReplyMarkup = buildAnswerKeyboard(session.Current.Options)
	h.send(msg)
}

func (h *Handler) startRecognition(ctx context.Context, chatID, userID int64) {
	round, err := h.gameService.StartRecognitionRound(ctx, userID)
	if err != nil {
		h.logger.Error("failed to start recognition round",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		h.send(newHTMLMessage(chatID, msgNoVocabulary))
		return
	}

	msg := newHTMLMessage(chatID, renderRecognitionRound(round))
	msg.ReplyMarkup = buildRecognitionKeyboard(round.OptionKeys)
	h.send(msg)
}

func (h *Handler) startGroup(ctx context.Context, chatID, userID int64) {
	round, err := h.gameService.StartGroupRound(ctx, userID)
	if err != nil {
		h.logger.Error("failed to start group round",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		h.send(newHTMLMessage(chatID, msgNoVocabulary))
		return
	}

	msg := newHTMLMessage(chatID, renderGroupRound(round))
	msg.ReplyMarkup = buildGroupKeyboard()
	h.send(msg)
}

func (h *Handler) sendStudyCard(ctx context.Context, chatID, userID int64) {
	verb, err := h.verbService.RandomFromPool(ctx, userID)
	if err != nil {
		h.logger.Error("failed to pick study verb", zap.Int64("user_id", userID), zap.Error(err))
		h.send(newHTMLMessage(chatID, msgNoVocabulary))
		return
	}

	index := h.verbIndex(verb)
	msg := newHTMLMessage(chatID, renderStudyCard(verb, 0))
	msg.ReplyMarkup = buildStudyKeyboard(index, 0)
	h.send(msg)
}

func (h *Handler) sendRandomVerb(ctx context.Context, chatID, userID int64) {
	verb, err := h.verbService.RandomFromPool(ctx, userID)
	if err != nil {
		h.logger.Error("failed to pick random verb", zap.Int64("user_id", userID), zap.Error(err))
		h.send(newHTMLMessage(chatID, msgNoVocabulary))
		return
	}

	h.send(newHTMLMessage(chatID, renderVerbCard(verb)))
}

func (h *Handler) sendVerbsPage(chatID int64, page int) {
	verbs := h.verbService.GetAll()
	if len(verbs) == 0 {
		h.send(newHTMLMessage(chatID, msgNoVocabulary))
		return
	}

	text, totalPages := buildVerbsPage(verbs, page)
	if totalPages == 0 {
		h.send(newHTMLMessage(chatID, msgNoVocabulary))
		return
	}

	msg := newHTMLMessage(chatID, text)
	if kb := buildVerbsKeyboard(page, totalPages); kb != nil {
		msg.ReplyMarkup = *kb
	}
	h.send(msg)
}

func (h *Handler) sendProfile(ctx context.Context, chatID, userID int64) {
	settings, err := h.profileService.Settings(ctx, userID)
	if err != nil {
		h.logger.Error("failed to load settings", zap.Int64("user_id", userID), zap.Error(err))
		h.send(newHTMLMessage(chatID, msgInternalError))
		return
	}

	stats, err := h.profileService.Stats(ctx, userID)
	if err != nil {
		h.logger.Error("failed to load stats", zap.Int64("user_id", userID), zap.Error(err))
		h.send(newHTMLMessage(chatID, msgInternalError))
		return
	}

	highScore, err := h.profileService.HighScore(ctx, userID)
	if err != nil {
		h.logger.Error("failed to load high score", zap.Int64("user_id", userID), zap.Error(err))
		h.send(newHTMLMessage(chatID, msgInternalError))
		return
	}

	h.send(newHTMLMessage(chatID, renderProfile(settings, stats, highScore)))
}

func (h *Handler) sendSettings(ctx context.Context, chatID, userID int64) {
	settings, err := h.profileService.Settings(ctx, userID)
	if err != nil {
		h.logger.Error("failed to load settings", zap.Int64("user_id", userID), zap.Error(err))
		h.send(newHTMLMessage(chatID, msgInternalError))
		return
	}

	msg := newHTMLMessage(chatID, "⚙️ Settings")
	msg.ReplyMarkup = buildSettingsKeyboard(settings)
	h.send(msg)
}

// verbIndex finds a verb's position in the full dataset, used to encode
// study reveal callbacks statelessly.
func (h *Handler) verbIndex(verb *entities.Verb) int {
	for i, v := range h.verbService.GetAll() {
		if v == verb {
			return i
		}
	}
	return 0
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
