package container

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"lid-bot/config"
	app "lid-bot/internal/application"
	"lid-bot/internal/domain/port"
	"lid-bot/internal/infrastructure/docstore"
	"lid-bot/internal/infrastructure/storage"
)

type Container struct {
	UserService *app.UserService
	QuizService *app.QuizService

	Questions    port.QuestionRepository
	Translations port.TranslationRepositoryFactory
}

func New(users port.UserRepository, questions port.QuestionRepository, translations port.TranslationRepositoryFactory, questionCount int) *Container {
	userService := app.NewUserService(users)
	quizService := app.NewQuizService(users, questions, translations, questionCount)

	return &Container{
		UserService:  userService,
		QuizService:  quizService,
		Questions:    questions,
		Translations: translations,
	}
}

// FromStore собирает репозитории поверх одного хранилища документов
func FromStore(store docstore.Store, questionCount int, logger *zap.Logger) (*Container, error) {
	opts := []storage.Option{storage.WithLogger(logger)}

	users, err := storage.NewUserRepository(store, opts...)
	if err != nil {
		return nil, fmt.Errorf("user repository: %w", err)
	}

	questions, err := storage.NewQuestionRepository(store, opts...)
	if err != nil {
		return nil, fmt.Errorf("question repository: %w", err)
	}

	return New(users, questions, storage.TranslationFactory(store, opts...), questionCount), nil
}

// OpenStore открывает хранилище, выбранное в STORE_BACKEND
func OpenStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (docstore.Store, error) {
	switch cfg.StoreBackend {
	case config.StoreFirestore:
		client := docstore.NewFirestoreClient(logger)
		if err := client.Connect(ctx, []byte(cfg.FirebaseCredentials)); err != nil {
			return nil, err
		}
		return client, nil

	case config.StoreSQLite:
		store, err := docstore.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		logger.Info("sqlite store opened", zap.String("path", cfg.SQLitePath))
		return store, nil

	case config.StoreMemory:
		logger.Warn("using in-memory store, data is lost on restart")
		return docstore.NewMemoryStore(), nil
	}

	return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}
