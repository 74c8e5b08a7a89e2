package app

import (
	"context"
	"errors"
	"math/rand"
	"strconv"

	"lid-bot/internal/domain/entity"
	"lid-bot/internal/domain/port"
)

// QuizQuestion вопрос вместе с переводом на язык пользователя
type QuizQuestion struct {
	Question    *entity.Question
	Translation *entity.Translation
}

// AnswerResult итог ответа на вопрос
type AnswerResult struct {
	Correct bool
	Chosen  entity.Solution
	QuizQuestion
}

type QuizService struct {
	users         port.UserRepository
	questions     port.QuestionRepository
	translations  port.TranslationRepositoryFactory
	questionCount int
}

// NewQuizService создаёт сервис викторины; вопросы нумеруются от 1 до questionCount
func NewQuizService(users port.UserRepository, questions port.QuestionRepository, translations port.TranslationRepositoryFactory, questionCount int) *QuizService {
	return &QuizService{
		users:         users,
		questions:     questions,
		translations:  translations,
		questionCount: questionCount,
	}
}

// Question загружает вопрос и перевод; если перевода на lang нет, берётся немецкий оригинал
func (s *QuizService) Question(ctx context.Context, num string, lang entity.LanguageCode) (*QuizQuestion, error) {
	q, err := s.questions.Get(ctx, num)
	if err != nil {
		return nil, err
	}

	tr, err := s.translations(num)
	if err != nil {
		return nil, err
	}

	t, err := tr.Get(ctx, lang)
	if errors.Is(err, entity.ErrTranslationNotFound) && lang != entity.DefaultLanguage {
		t, err = tr.Get(ctx, entity.DefaultLanguage)
	}
	if err != nil {
		return nil, err
	}

	return &QuizQuestion{Question: q, Translation: t}, nil
}

// RandomQuestion выбирает случайный номер вопроса
func (s *QuizService) RandomQuestion(ctx context.Context, lang entity.LanguageCode) (*QuizQuestion, error) {
	if s.questionCount <= 0 {
		return nil, entity.ErrQuestionNotFound
	}
	num := strconv.Itoa(rand.Intn(s.questionCount) + 1)
	return s.Question(ctx, num, lang)
}

// Answer проверяет ответ и увеличивает счётчик отвеченных вопросов пользователя
func (s *QuizService) Answer(ctx context.Context, userID int64, num string, chosen entity.Solution, lang entity.LanguageCode) (*AnswerResult, error) {
	if !chosen.Valid() {
		return nil, entity.ErrInvalidSolution
	}

	qq, err := s.Question(ctx, num, lang)
	if err != nil {
		return nil, err
	}

	if err := s.users.RecordAnswer(ctx, userID); err != nil {
		return nil, err
	}

	return &AnswerResult{
		Correct:      qq.Question.Solution == chosen,
		Chosen:       chosen,
		QuizQuestion: *qq,
	}, nil
}
