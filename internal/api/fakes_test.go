package telegram

import (
	"context"
	"errors"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"lid-bot/internal/domain/entity"
)

// fakeAPI записывает всё, что бот отправляет в Telegram
type fakeAPI struct {
	mu       sync.Mutex
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
	sendErr  error
	updates  chan tgbotapi.Update
	stopped  bool
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{updates: make(chan tgbotapi.Update, 10)}
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, f.sendErr
}

func (f *fakeAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeAPI) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return f.updates
}

func (f *fakeAPI) StopReceivingUpdates() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

func (f *fakeAPI) messages() []tgbotapi.MessageConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []tgbotapi.MessageConfig
	for _, c := range f.sent {
		if m, ok := c.(tgbotapi.MessageConfig); ok {
			out = append(out, m)
		}
	}
	return out
}

func (f *fakeAPI) lastText() string {
	msgs := f.messages()
	if len(msgs) == 0 {
		return ""
	}
	return msgs[len(msgs)-1].Text
}

func (f *fakeAPI) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = nil
	f.requests = nil
}

// fakeEnsurer считает вызовы Ensure
type fakeEnsurer struct {
	mu    sync.Mutex
	calls int
	bumps []bool
	err   error
}

func (f *fakeEnsurer) Ensure(ctx context.Context, p entity.Profile, bump bool) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.bumps = append(f.bumps, bump)
	if f.err != nil {
		return nil, f.err
	}
	return &entity.User{UserID: p.UserID, FirstName: p.FirstName, Username: p.Username, LanguageCode: p.LanguageCode}, nil
}

var errStoreDown = errors.New("store down")

func humanUser() *tgbotapi.User {
	return &tgbotapi.User{ID: 42, FirstName: "Anna", UserName: "anna", LanguageCode: "de"}
}

func commandUpdate(from *tgbotapi.User, text string) tgbotapi.Update {
	cmdLen := len(text)
	for i, r := range text {
		if r == ' ' {
			cmdLen = i
			break
		}
	}
	return tgbotapi.Update{
		UpdateID: 1,
		Message: &tgbotapi.Message{
			MessageID: 1,
			From:      from,
			Chat:      &tgbotapi.Chat{ID: from.ID, Type: "private"},
			Text:      text,
			Entities:  []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: cmdLen}},
		},
	}
}

func textUpdate(from *tgbotapi.User, text string) tgbotapi.Update {
	return tgbotapi.Update{
		UpdateID: 2,
		Message: &tgbotapi.Message{
			MessageID: 2,
			From:      from,
			Chat:      &tgbotapi.Chat{ID: from.ID, Type: "private"},
			Text:      text,
		},
	}
}

func callbackUpdate(from *tgbotapi.User, data string) tgbotapi.Update {
	return tgbotapi.Update{
		UpdateID: 3,
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "cb-1",
			From: from,
			Message: &tgbotapi.Message{
				MessageID: 3,
				Chat:      &tgbotapi.Chat{ID: from.ID, Type: "private"},
			},
			Data: data,
		},
	}
}
