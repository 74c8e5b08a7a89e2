package telegram

import (
	"context"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	app "lid-bot/internal/application"
	"lid-bot/internal/container"
)

// Sender отправка сообщений и запросов в Telegram
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// API часть tgbotapi.BotAPI, которой пользуется бот
type API interface {
	Sender
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Bot представляет Telegram-бота
type Bot struct {
	api    API
	users  *app.UserService
	quiz   *app.QuizService
	logger *zap.Logger

	requireUser  *Pipeline
	withDB       *Pipeline
	withActivity *Pipeline
}

// NewBot создаёт нового бота
func NewBot(token string, debug bool, c *container.Container, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	api.Debug = debug

	logger.Info("authorized on account", zap.String("username", api.Self.UserName))

	return newBot(api, c, logger), nil
}

func newBot(api API, c *container.Container, logger *zap.Logger) *Bot {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bot{
		api:          api,
		users:        c.UserService,
		quiz:         c.QuizService,
		logger:       logger,
		requireUser:  RequireUser(logger),
		withDB:       RequireUserWithDB(logger, c.UserService, api),
		withActivity: RequireUserWithActivity(logger, c.UserService, api),
	}
}

// Run запускает основной цикл обработки обновлений до отмены ctx.
// Каждое обновление обрабатывается в своей горутине.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	var wg sync.WaitGroup
	defer wg.Wait()

	// обработчики, уже получившие событие, доводят его до конца
	handlerCtx := context.WithoutCancel(ctx)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("stopped receiving updates")
			return nil

		case update, ok := <-updates:
			if !ok {
				return nil
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer func() {
					if r := recover(); r != nil {
						b.logger.Error("recovered from panic in update handler",
							zap.Int("update_id", update.UpdateID), zap.Any("panic", r))
					}
				}()
				b.handleUpdate(handlerCtx, update)
			}()
		}
	}
}

// handleUpdate выбирает конвейер и обработчик для обновления
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) EventState {
	switch {
	case update.CallbackQuery != nil:
		return b.handleCallback(ctx, update)
	case update.Message != nil && update.Message.IsCommand():
		return b.handleCommand(ctx, update)
	case update.Message != nil:
		return b.requireUser.Run(ctx, update, b.handleText)
	}
	return StateDropped
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, update tgbotapi.Update) EventState {
	switch update.Message.Command() {
	case "start":
		return b.withActivity.Run(ctx, update, b.handleStart)
	case "help":
		return b.requireUser.Run(ctx, update, b.handleHelp)
	case "federal":
		return b.withDB.Run(ctx, update, b.handleFederal)
	case "question", "next":
		return b.withActivity.Run(ctx, update, b.handleQuestion)
	case "stats", "stat":
		return b.withDB.Run(ctx, update, b.handleStats)
	default:
		return b.requireUser.Run(ctx, update, b.handleUnknown)
	}
}

// handleCallback обрабатывает нажатия на inline-кнопки
func (b *Bot) handleCallback(ctx context.Context, update tgbotapi.Update) EventState {
	data := update.CallbackQuery.Data
	switch {
	case strings.HasPrefix(data, federalPrefix):
		return b.withDB.Run(ctx, update, b.handleFederalCallback)
	case strings.HasPrefix(data, answerPrefix):
		return b.withActivity.Run(ctx, update, b.handleAnswerCallback)
	default:
		b.logger.Warn("unknown callback data", zap.String("data", data))
		b.answerCallback(b.logger, update.CallbackQuery.ID, "")
		return StateDropped
	}
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(log *zap.Logger, chatID int64, text string) {
	b.send(log, tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) send(log *zap.Logger, c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		log.Error("error sending message", zap.Error(err))
	}
}

// answerCallback подтверждает нажатие кнопки, иначе клиент показывает часики
func (b *Bot) answerCallback(log *zap.Logger, callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		log.Error("error answering callback", zap.Error(err))
	}
}

// fail логирует ошибку и отправляет пользователю общее сообщение об ошибке
func (b *Bot) fail(req *Request, msg string, err error) {
	req.Logger.Error(msg, zap.Error(err))
	b.sendMessage(req.Logger, req.ChatID, failureMessage(req.Identity.LanguageCode))
}
