package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"lid-bot/internal/domain/entity"
	"lid-bot/internal/infrastructure/docstore"
	"lid-bot/internal/infrastructure/storage"
)

type quizFixture struct {
	svc   *QuizService
	users *storage.UserRepository
}

func newQuizFixture(t *testing.T, questionCount int) quizFixture {
	t.Helper()
	ctx := context.Background()
	store := docstore.NewMemoryStore()

	users, err := storage.NewUserRepository(store)
	require.NoError(t, err)
	questions, err := storage.NewQuestionRepository(store)
	require.NoError(t, err)
	translations := storage.TranslationFactory(store)

	_, err = questions.Create(ctx, "1", entity.SolutionB, "Politik", nil)
	require.NoError(t, err)
	tr, err := translations("1")
	require.NoError(t, err)
	_, err = tr.Create(ctx, entity.Translation{
		LanguageCode: entity.LanguageGerman, Question: "Frage", Context: "Kontext",
		OptionA: "A", OptionB: "B", OptionC: "C", OptionD: "D",
	})
	require.NoError(t, err)
	_, err = tr.Create(ctx, entity.Translation{
		LanguageCode: entity.LanguageEnglish, Question: "Question", Context: "Context",
		OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d",
	})
	require.NoError(t, err)

	return quizFixture{
		svc:   NewQuizService(users, questions, translations, questionCount),
		users: users,
	}
}

func TestQuizService_QuestionInUserLanguage(t *testing.T) {
	f := newQuizFixture(t, 1)

	qq, err := f.svc.Question(context.Background(), "1", entity.LanguageEnglish)
	require.NoError(t, err)
	require.Equal(t, "Question", qq.Translation.Question)
	require.Equal(t, entity.SolutionB, qq.Question.Solution)
}

func TestQuizService_QuestionFallsBackToGerman(t *testing.T) {
	f := newQuizFixture(t, 1)

	qq, err := f.svc.Question(context.Background(), "1", entity.LanguageHindi)
	require.NoError(t, err)
	require.Equal(t, entity.LanguageGerman, qq.Translation.LanguageCode)
}

func TestQuizService_QuestionMissing(t *testing.T) {
	f := newQuizFixture(t, 1)

	_, err := f.svc.Question(context.Background(), "2", entity.LanguageGerman)
	require.ErrorIs(t, err, entity.ErrQuestionNotFound)
}

func TestQuizService_RandomQuestion(t *testing.T) {
	f := newQuizFixture(t, 1)

	qq, err := f.svc.RandomQuestion(context.Background(), entity.LanguageGerman)
	require.NoError(t, err)
	require.Equal(t, "1", qq.Question.Num)
}

func TestQuizService_Answer(t *testing.T) {
	f := newQuizFixture(t, 1)
	ctx := context.Background()

	_, err := f.users.Ensure(ctx, entity.Profile{UserID: 42, FirstName: "Anna"}, false)
	require.NoError(t, err)

	res, err := f.svc.Answer(ctx, 42, "1", entity.SolutionB, entity.LanguageGerman)
	require.NoError(t, err)
	require.True(t, res.Correct)

	res, err = f.svc.Answer(ctx, 42, "1", entity.SolutionA, entity.LanguageGerman)
	require.NoError(t, err)
	require.False(t, res.Correct)
	require.Equal(t, "B", res.Translation.Option(res.Question.Solution))

	user, err := f.users.Get(ctx, 42)
	require.NoError(t, err)
	require.Equal(t, int64(2), user.TotalQuestionsAnswered)
}

func TestQuizService_AnswerInvalidOption(t *testing.T) {
	f := newQuizFixture(t, 1)

	_, err := f.svc.Answer(context.Background(), 42, "1", "z", entity.LanguageGerman)
	require.ErrorIs(t, err, entity.ErrInvalidSolution)
}
