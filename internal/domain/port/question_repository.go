package port

import (
	"context"

	"lid-bot/internal/domain/entity"
)

// QuestionRepository интерфейс хранилища вопросов
type QuestionRepository interface {
	// Create перезаписывает вопрос с ключом num
	Create(ctx context.Context, num string, solution entity.Solution, category string, image *string) (*entity.Question, error)

	// Get возвращает вопрос или entity.ErrQuestionNotFound
	Get(ctx context.Context, num string) (*entity.Question, error)
}

// TranslationRepository переводы одного вопроса
type TranslationRepository interface {
	Create(ctx context.Context, t entity.Translation) (*entity.Translation, error)

	// Get возвращает перевод или entity.ErrTranslationNotFound
	Get(ctx context.Context, lang entity.LanguageCode) (*entity.Translation, error)
}

// TranslationRepositoryFactory открывает репозиторий переводов вопроса num
type TranslationRepositoryFactory func(num string) (TranslationRepository, error)
