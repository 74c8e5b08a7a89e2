package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"lid-bot/config"
	telegram "lid-bot/internal/api"
	"lid-bot/internal/container"
	"lid-bot/internal/logging"
	"lid-bot/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	if cfg.TelegramToken == "" {
		logger.Fatal("TELEGRAM_TOKEN is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Открываем хранилище документов
	store, err := container.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open store", zap.String("backend", cfg.StoreBackend), zap.Error(err))
	}
	defer store.Close()

	// Собираем сервисы приложения
	appContainer, err := container.FromStore(store, cfg.QuestionCount, logger)
	if err != nil {
		logger.Fatal("failed to build container", zap.Error(err))
	}

	observability.ServeMetrics(ctx, cfg.MetricsAddr, logger)

	// Создаём бота
	bot, err := telegram.NewBot(cfg.TelegramToken, cfg.Debug, appContainer, logger)
	if err != nil {
		logger.Fatal("failed to create bot", zap.Error(err))
	}

	logger.Info("bot is running", zap.String("store", cfg.StoreBackend))
	if err := bot.Run(ctx); err != nil {
		logger.Fatal("bot error", zap.Error(err))
	}
	logger.Info("bot stopped")
}
