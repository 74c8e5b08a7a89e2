package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"lid-bot/internal/domain/entity"
	"lid-bot/internal/observability"
)

// EventState состояние входящего события в конвейере
type EventState string

const (
	StateReceived        EventState = "received"
	StateIdentityChecked EventState = "identity_checked"
	StateDropped         EventState = "dropped"
	StateSynced          EventState = "synced"
	StateHandlerInvoked  EventState = "handler_invoked"
	StateSyncFailed      EventState = "sync_failed"
	StateUserNotified    EventState = "user_notified"
)

// Terminal сообщает, завершает ли состояние обработку события
func (s EventState) Terminal() bool {
	switch s {
	case StateDropped, StateHandlerInvoked, StateUserNotified:
		return true
	}
	return false
}

var (
	// ErrDropped событие отброшено без ответа пользователю
	ErrDropped = errors.New("event dropped")
	// ErrSyncFailed не удалось синхронизировать пользователя с хранилищем
	ErrSyncFailed = errors.New("store sync failed")
)

// Request контекст события, который стадии заполняют по очереди
type Request struct {
	Update  tgbotapi.Update
	EventID string
	ChatID  int64

	// Identity проверенный отправитель (после IdentityGuard)
	Identity *tgbotapi.User
	// User запись из хранилища (после StoreSync)
	User *entity.User

	State  EventState
	Logger *zap.Logger
}

// Stage одна стадия конвейера. Ошибка прерывает конвейер; стадия сама выставляет State.
type Stage func(ctx context.Context, req *Request) (*Request, error)

// Handler бизнес-логика, вызываемая после всех стадий
type Handler func(ctx context.Context, req *Request)

// UserEnsurer синхронизирует профиль с хранилищем
type UserEnsurer interface {
	Ensure(ctx context.Context, profile entity.Profile, bumpActivity bool) (*entity.User, error)
}

// Pipeline упорядоченный список стадий
type Pipeline struct {
	stages []Stage
	logger *zap.Logger
}

func NewPipeline(logger *zap.Logger, stages ...Stage) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{stages: stages, logger: logger}
}

// RequireUser только проверка отправителя
func RequireUser(logger *zap.Logger) *Pipeline {
	return NewPipeline(logger, IdentityGuard())
}

// RequireUserWithDB проверка отправителя и синхронизация без обновления updated_at
func RequireUserWithDB(logger *zap.Logger, users UserEnsurer, sender Sender) *Pipeline {
	return NewPipeline(logger, IdentityGuard(), StoreSync(users, sender, false))
}

// RequireUserWithActivity проверка отправителя и синхронизация с обновлением updated_at
func RequireUserWithActivity(logger *zap.Logger, users UserEnsurer, sender Sender) *Pipeline {
	return NewPipeline(logger, IdentityGuard(), StoreSync(users, sender, true))
}

// Run проводит событие через стадии и вызывает h, если ни одна стадия не прервала обработку.
// Возвращает конечное состояние события.
func (p *Pipeline) Run(ctx context.Context, update tgbotapi.Update, h Handler) EventState {
	req := &Request{
		Update:  update,
		EventID: uuid.NewString(),
		ChatID:  effectiveChatID(update),
		State:   StateReceived,
	}
	req.Logger = p.logger.With(zap.String("event_id", req.EventID))

	for _, stage := range p.stages {
		next, err := stage(ctx, req)
		if err != nil {
			if !req.State.Terminal() {
				req.State = StateDropped
			}
			req.Logger.Debug("pipeline stopped", zap.String("state", string(req.State)), zap.Error(err))
			observability.PipelineEvents.WithLabelValues(string(req.State)).Inc()
			return req.State
		}
		req = next
	}

	req.State = StateHandlerInvoked
	observability.PipelineEvents.WithLabelValues(string(req.State)).Inc()
	h(ctx, req)
	return req.State
}

// IdentityGuard пропускает только события от живого пользователя
func IdentityGuard() Stage {
	return func(ctx context.Context, req *Request) (*Request, error) {
		user := effectiveUser(req.Update)
		if user == nil {
			req.Logger.Warn("received update with no effective user")
			req.State = StateDropped
			return nil, ErrDropped
		}

		if user.IsBot {
			req.Logger.Info("bot ignored", zap.Int64("user_id", user.ID), zap.String("first_name", user.FirstName))
			req.State = StateDropped
			return nil, ErrDropped
		}

		req.Identity = user
		req.Logger = req.Logger.With(zap.Int64("user_id", user.ID))
		req.State = StateIdentityChecked
		return req, nil
	}
}

// StoreSync гарантирует наличие записи пользователя в хранилище перед обработчиком.
// При ошибке хранилища пользователь получает общее сообщение об ошибке, обработчик не вызывается.
func StoreSync(users UserEnsurer, sender Sender, bumpActivity bool) Stage {
	return func(ctx context.Context, req *Request) (*Request, error) {
		if req.Identity == nil || req.State != StateIdentityChecked {
			req.Logger.Error("store sync requires a validated identity")
			req.State = StateDropped
			return nil, ErrDropped
		}

		user, err := users.Ensure(ctx, profileOf(req.Identity), bumpActivity)
		if err != nil {
			req.State = StateSyncFailed
			req.Logger.Error("failed to sync user with store", zap.Error(err))
			notifyFailure(sender, req)
			req.State = StateUserNotified
			return nil, fmt.Errorf("%w: %v", ErrSyncFailed, err)
		}

		req.User = user
		req.State = StateSynced
		return req, nil
	}
}

func notifyFailure(sender Sender, req *Request) {
	if req.ChatID == 0 {
		req.Logger.Warn("no chat to notify about failure")
		return
	}
	msg := tgbotapi.NewMessage(req.ChatID, failureMessage(req.Identity.LanguageCode))
	if _, err := sender.Send(msg); err != nil {
		req.Logger.Error("failed to send failure notice", zap.Error(err))
	}
}

func profileOf(u *tgbotapi.User) entity.Profile {
	return entity.Profile{
		UserID:       u.ID,
		FirstName:    u.FirstName,
		Username:     optional(u.UserName),
		LastName:     optional(u.LastName),
		LanguageCode: optional(u.LanguageCode),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// effectiveUser отправитель события
func effectiveUser(u tgbotapi.Update) *tgbotapi.User {
	switch {
	case u.Message != nil:
		return u.Message.From
	case u.EditedMessage != nil:
		return u.EditedMessage.From
	case u.CallbackQuery != nil:
		return u.CallbackQuery.From
	case u.InlineQuery != nil:
		return u.InlineQuery.From
	}
	return nil
}

// effectiveChatID чат, в который отвечать; 0 если его нет
func effectiveChatID(u tgbotapi.Update) int64 {
	switch {
	case u.Message != nil && u.Message.Chat != nil:
		return u.Message.Chat.ID
	case u.EditedMessage != nil && u.EditedMessage.Chat != nil:
		return u.EditedMessage.Chat.ID
	case u.CallbackQuery != nil:
		if m := u.CallbackQuery.Message; m != nil && m.Chat != nil {
			return m.Chat.ID
		}
		// в личном чате ID чата совпадает с ID пользователя
		if u.CallbackQuery.From != nil {
			return u.CallbackQuery.From.ID
		}
	}
	return 0
}
