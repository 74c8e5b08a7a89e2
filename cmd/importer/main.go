// Команда importer загружает каталог вопросов из JSON-файла в хранилище.
//
//	go run ./cmd/importer [path/to/questions.json]
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"lid-bot/config"
	"lid-bot/internal/container"
	"lid-bot/internal/importer"
	"lid-bot/internal/logging"
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

	path := cfg.QuestionsFile
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := container.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open store", zap.String("backend", cfg.StoreBackend), zap.Error(err))
	}
	defer store.Close()

	c, err := container.FromStore(store, cfg.QuestionCount, logger)
	if err != nil {
		logger.Fatal("failed to build container", zap.Error(err))
	}

	res, err := importer.New(c.Questions, c.Translations, logger).ImportFile(ctx, path)
	if err != nil {
		logger.Fatal("import failed", zap.String("path", path), zap.Error(err))
	}

	logger.Info("questions imported",
		zap.String("path", path),
		zap.Int("imported", res.Imported),
		zap.Int("failed", res.Failed),
	)
}
