package app

import (
	"context"

	"lid-bot/internal/domain/entity"
	"lid-bot/internal/domain/port"
)

type UserService struct {
	repo port.UserRepository
}

func NewUserService(repo port.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Ensure синхронизирует профиль из Telegram с хранилищем
func (s *UserService) Ensure(ctx context.Context, profile entity.Profile, bumpActivity bool) (*entity.User, error) {
	return s.repo.Ensure(ctx, profile, bumpActivity)
}

func (s *UserService) Get(ctx context.Context, userID int64) (*entity.User, error) {
	return s.repo.Get(ctx, userID)
}

// SetFederalState сохраняет землю и возвращает её справочную запись
func (s *UserService) SetFederalState(ctx context.Context, userID int64, code entity.FederalStateCode) (entity.FederalState, error) {
	state, ok := entity.LookupFederalState(code)
	if !ok {
		return entity.FederalState{}, entity.ErrInvalidFederalState
	}
	if err := s.repo.SetFederalState(ctx, userID, code); err != nil {
		return entity.FederalState{}, err
	}
	return state, nil
}
