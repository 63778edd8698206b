package main

import (
	"log"

	"github.com/darkphonix1200/QZArena/internal/bot"
	"github.com/darkphonix1200/QZArena/internal/config"
	"github.com/darkphonix1200/QZArena/internal/repository"
	"github.com/darkphonix1200/QZArena/internal/service"
	"github.com/darkphonix1200/QZArena/internal/storage/bank"
	"github.com/darkphonix1200/QZArena/internal/storage/cache"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)

	questions, err := bank.Load(cfg.Quiz.QuestionsFile)
	if err != nil {
		logger.Fatal("failed to load question bank", zap.Error(err))
	}

	sessions := cache.NewCache()
	ledger := repository.NewLedger()
	services := service.InitServices(questions, sessions, ledger, logger)

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, services, cfg.Quiz.LeaderboardSize)
	if err != nil {
		logger.Fatal(err.Error())
		return
	}

	logger.Info("bot started", zap.Int("question_count", questions.Length()))
	handler.Start(cfg.App.UpdateTimeout)
}
