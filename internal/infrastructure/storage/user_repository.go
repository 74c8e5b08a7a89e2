package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"lid-bot/internal/domain/entity"
	"lid-bot/internal/domain/port"
	"lid-bot/internal/infrastructure/docstore"
)

const usersCollection = "users"

// UserRepository хранит пользователей в коллекции users/{user_id}
type UserRepository struct {
	store docstore.Store
	opts  options
}

// NewUserRepository создаёт репозиторий пользователей поверх подключённого хранилища
func NewUserRepository(store docstore.Store, opts ...Option) (*UserRepository, error) {
	if store == nil || !store.IsInitialized() {
		return nil, docstore.ErrNotInitialized
	}
	return &UserRepository{store: store, opts: buildOptions(opts)}, nil
}

func userRef(userID int64) docstore.Ref {
	return docstore.Doc(usersCollection, strconv.FormatInt(userID, 10))
}

// Ensure читает документ пользователя и либо создаёт его, либо обновляет поля профиля.
// Чтение и запись не атомарны: при гонке двух вызовов побеждает последняя запись.
func (r *UserRepository) Ensure(ctx context.Context, profile entity.Profile, bumpActivity bool) (*entity.User, error) {
	log := r.opts.logger.With(zap.Int64("user_id", profile.UserID))
	ref := userRef(profile.UserID)
	now := r.opts.now()

	var existing entity.User
	found, err := r.store.Get(ctx, ref, &existing)
	if err != nil {
		log.Error("failed to ensure user", zap.Error(err))
		return nil, fmt.Errorf("ensure user %d: %w", profile.UserID, err)
	}

	if !found {
		user := entity.NewUser(profile, now)
		if err := r.store.Set(ctx, ref, user); err != nil {
			log.Error("failed to create user", zap.Error(err))
			return nil, fmt.Errorf("create user %d: %w", profile.UserID, err)
		}
		log.Info("user created")
		return user, nil
	}

	fields := profile.ProfileFields()
	if bumpActivity {
		fields["updated_at"] = now
	}
	if err := r.store.Update(ctx, ref, fields); err != nil {
		log.Error("failed to update user", zap.Error(err))
		return nil, fmt.Errorf("update user %d: %w", profile.UserID, err)
	}

	existing.ApplyProfile(profile)
	if existing.UpdatedAt.IsZero() {
		existing.UpdatedAt = existing.CreatedAt
	}
	if bumpActivity {
		existing.UpdatedAt = now
	}

	log.Debug("user updated", zap.Bool("bump_activity", bumpActivity))
	return &existing, nil
}

// Get возвращает пользователя по ID
func (r *UserRepository) Get(ctx context.Context, userID int64) (*entity.User, error) {
	var user entity.User
	found, err := r.store.Get(ctx, userRef(userID), &user)
	if err != nil {
		r.opts.logger.Error("failed to get user", zap.Int64("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("get user %d: %w", userID, err)
	}
	if !found {
		return nil, entity.ErrUserNotFound
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = user.CreatedAt
	}
	return &user, nil
}

// TouchActivity обновляет updated_at
func (r *UserRepository) TouchActivity(ctx context.Context, userID int64) error {
	return r.update(ctx, userID, "touch activity", map[string]any{
		"updated_at": r.opts.now(),
	})
}

// SetFederalState сохраняет выбранную пользователем землю
func (r *UserRepository) SetFederalState(ctx context.Context, userID int64, code entity.FederalStateCode) error {
	if !code.Valid() {
		return fmt.Errorf("%w: %q", entity.ErrInvalidFederalState, code)
	}
	return r.update(ctx, userID, "set federal state", map[string]any{
		"federal_state": code,
		"updated_at":    r.opts.now(),
	})
}

// RecordAnswer увеличивает total_questions_answered на единицу
func (r *UserRepository) RecordAnswer(ctx context.Context, userID int64) error {
	return r.update(ctx, userID, "record answer", map[string]any{
		"total_questions_answered": docstore.Inc(1),
		"updated_at":               r.opts.now(),
	})
}

func (r *UserRepository) update(ctx context.Context, userID int64, op string, fields map[string]any) error {
	err := r.store.Update(ctx, userRef(userID), fields)
	if errors.Is(err, docstore.ErrNotFound) {
		return entity.ErrUserNotFound
	}
	if err != nil {
		r.opts.logger.Error("failed to "+op, zap.Int64("user_id", userID), zap.Error(err))
		return fmt.Errorf("%s for user %d: %w", op, userID, err)
	}
	r.opts.logger.Debug(op, zap.Int64("user_id", userID))
	return nil
}

// Проверка реализации интерфейса
var _ port.UserRepository = (*UserRepository)(nil)
