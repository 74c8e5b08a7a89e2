package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	app "lid-bot/internal/application"
	"lid-bot/internal/domain/entity"
)

func (b *Bot) handleStart(ctx context.Context, req *Request) {
	req.Logger.Info("start command", zap.String("first_name", req.Identity.FirstName))
	b.sendMessage(req.Logger, req.ChatID, fmt.Sprintf(msgStart, req.Identity.FirstName))
}

func (b *Bot) handleHelp(ctx context.Context, req *Request) {
	b.sendMessage(req.Logger, req.ChatID, msgHelp)
}

func (b *Bot) handleUnknown(ctx context.Context, req *Request) {
	b.sendMessage(req.Logger, req.ChatID, msgUnknownCommand)
}

func (b *Bot) handleText(ctx context.Context, req *Request) {
	b.sendMessage(req.Logger, req.ChatID, msgSendCommand)
}

func (b *Bot) handleFederal(ctx context.Context, req *Request) {
	msg := tgbotapi.NewMessage(req.ChatID, msgFederalPrompt)
	msg.ReplyMarkup = federalKeyboard(req.User)
	b.send(req.Logger, msg)
}

func (b *Bot) handleStats(ctx context.Context, req *Request) {
	state := msgNoFederalState
	if req.User.FederalState != nil {
		if s, ok := entity.LookupFederalState(*req.User.FederalState); ok {
			state = s.Emoji + " " + s.NameDE
		}
	}
	b.sendMessage(req.Logger, req.ChatID, fmt.Sprintf(msgStats, req.User.TotalQuestionsAnswered, state))
}

func (b *Bot) handleQuestion(ctx context.Context, req *Request) {
	lang := entity.ParseLanguage(req.User.Language())
	num := strings.TrimSpace(req.Update.Message.CommandArguments())

	var (
		qq  *app.QuizQuestion
		err error
	)
	if num == "" {
		qq, err = b.quiz.RandomQuestion(ctx, lang)
	} else {
		qq, err = b.quiz.Question(ctx, num, lang)
	}

	if errors.Is(err, entity.ErrQuestionNotFound) || errors.Is(err, entity.ErrTranslationNotFound) {
		b.sendMessage(req.Logger, req.ChatID, msgQuestionNotFound)
		return
	}
	if err != nil {
		b.fail(req, "failed to load question", err)
		return
	}

	msg := tgbotapi.NewMessage(req.ChatID, formatQuestion(qq))
	msg.ReplyMarkup = answerKeyboard(qq.Question.Num, qq.Translation)
	b.send(req.Logger, msg)
}

func formatQuestion(qq *app.QuizQuestion) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, msgQuestionHeader, qq.Question.Num, qq.Question.Category)
	if qq.Question.HasImage() {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, msgQuestionImage, *qq.Question.Image)
	}
	sb.WriteString("\n\n")
	sb.WriteString(qq.Translation.Question)
	return sb.String()
}

func (b *Bot) handleFederalCallback(ctx context.Context, req *Request) {
	cb := req.Update.CallbackQuery
	b.answerCallback(req.Logger, cb.ID, "")

	code, cancel, ok := parseFederalCallback(cb.Data)
	switch {
	case cancel:
		b.sendMessage(req.Logger, req.ChatID, msgFederalCancelled)
		return
	case !ok:
		req.Logger.Warn("invalid federal callback", zap.String("data", cb.Data))
		return
	}

	state, err := b.users.SetFederalState(ctx, req.Identity.ID, code)
	if err != nil {
		b.fail(req, "failed to set federal state", err)
		return
	}

	req.Logger.Info("federal state set", zap.String("federal_state", string(code)))
	b.sendMessage(req.Logger, req.ChatID, fmt.Sprintf(msgFederalSaved, state.Emoji, state.NameDE))
}

func (b *Bot) handleAnswerCallback(ctx context.Context, req *Request) {
	cb := req.Update.CallbackQuery
	b.answerCallback(req.Logger, cb.ID, "")

	num, chosen, ok := parseAnswerCallback(cb.Data)
	if !ok {
		req.Logger.Warn("invalid answer callback", zap.String("data", cb.Data))
		return
	}

	lang := entity.ParseLanguage(req.User.Language())
	res, err := b.quiz.Answer(ctx, req.Identity.ID, num, chosen, lang)
	if errors.Is(err, entity.ErrQuestionNotFound) || errors.Is(err, entity.ErrTranslationNotFound) {
		b.sendMessage(req.Logger, req.ChatID, msgQuestionNotFound)
		return
	}
	if err != nil {
		b.fail(req, "failed to record answer", err)
		return
	}

	req.Logger.Info("answer recorded", zap.String("num", num), zap.Bool("correct", res.Correct))
	b.sendMessage(req.Logger, req.ChatID, formatAnswer(res))
}

func formatAnswer(res *app.AnswerResult) string {
	var sb strings.Builder
	if res.Correct {
		sb.WriteString(msgCorrect)
	} else {
		solution := res.Question.Solution
		fmt.Fprintf(&sb, msgIncorrect, strings.ToUpper(string(solution)), res.Translation.Option(solution))
	}
	if res.Translation.Context != "" {
		sb.WriteString("\n\n")
		fmt.Fprintf(&sb, msgContext, res.Translation.Context)
	}
	sb.WriteString("\n\n")
	sb.WriteString(msgNextQuestion)
	return sb.String()
}
