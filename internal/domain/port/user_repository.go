package port

import (
	"context"

	"lid-bot/internal/domain/entity"
)

// UserRepository интерфейс хранилища пользователей
type UserRepository interface {
	// Ensure создаёт пользователя или обновляет поля профиля: одно чтение и одна запись.
	// bumpActivity дополнительно обновляет updated_at у существующего пользователя.
	Ensure(ctx context.Context, profile entity.Profile, bumpActivity bool) (*entity.User, error)

	// Get возвращает пользователя или entity.ErrUserNotFound
	Get(ctx context.Context, userID int64) (*entity.User, error)

	// TouchActivity обновляет только updated_at
	TouchActivity(ctx context.Context, userID int64) error

	// SetFederalState сохраняет выбранную землю
	SetFederalState(ctx context.Context, userID int64, code entity.FederalStateCode) error

	// RecordAnswer увеличивает счётчик отвеченных вопросов
	RecordAnswer(ctx context.Context, userID int64) error
}
