package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kotobadev/verb-trainer-bot/internal/config"
	"github.com/kotobadev/verb-trainer-bot/internal/delivery/telegram"
	"github.com/kotobadev/verb-trainer-bot/internal/infra/postgres"
	pgrepo "github.com/kotobadev/verb-trainer-bot/internal/infra/postgres/repository"
	"github.com/kotobadev/verb-trainer-bot/internal/logger"
	"github.com/kotobadev/verb-trainer-bot/internal/repository"
	"github.com/kotobadev/verb-trainer-bot/internal/service"
	"github.com/kotobadev/verb-trainer-bot/internal/storage"
)

func main() {
	// .env is optional, environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zlog.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zlog.Fatal("failed to create bot api", zap.Error(err))
	}
	zlog.Info("authorized", zap.String("account", bot.Self.UserName))

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{Command: "quiz", Description: "10-question conjugation quiz"},
		{Command: "endless", Description: "Survival mode with 3 lives"},
		{Command: "forms", Description: "Guess which form you see"},
		{Command: "groups", Description: "Guess the verb group"},
		{Command: "study", Description: "Flip through conjugations"},
		{Command: "random", Description: "Show a random verb"},
		{Command: "verbs", Description: "Browse the dictionary"},
		{Command: "profile", Description: "Level, XP and stats"},
		{Command: "settings", Description: "Difficulty and quiz mode"},
		{Command: "reset", Description: "Reset all progress"},
		{Command: "help", Description: "Help"},
	}
	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zlog.Warn("failed to set bot commands", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dsn, err := cfg.DB.DSN()
	if err != nil {
		zlog.Fatal("database is not configured", zap.Error(err))
	}
	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	verbRepo, err := repository.NewVerbRepository(cfg.VerbsJSONPath)
	if err != nil {
		zlog.Fatal("failed to load verb dataset", zap.Error(err))
	}
	recordRepo := pgrepo.NewRecordRepository(pool)

	profileService := service.NewProfileService(recordRepo, zlog)
	verbService := service.NewVerbService(verbRepo, profileService)
	gameService := service.NewGameService(
		verbRepo,
		service.NewGenerator(),
		profileService,
		storage.NewGameStorage(),
		storage.NewRoundStorage(),
	)

	handler := telegram.NewHandler(bot, zlog, gameService, verbService, profileService)
	if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
		zlog.Fatal("handler stopped", zap.Error(err))
	}

	zlog.Info("shutdown complete")
}
