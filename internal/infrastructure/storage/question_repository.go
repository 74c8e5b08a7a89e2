package storage

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"lid-bot/internal/domain/entity"
	"lid-bot/internal/domain/port"
	"lid-bot/internal/infrastructure/docstore"
)

const (
	questionsCollection    = "questions"
	translationsCollection = "translations"
)

// validQuestionNum номер должен быть одним сегментом пути: без "/" и не "." или ".."
func validQuestionNum(num string) bool {
	return num != "" && num != "." && num != ".." && !strings.Contains(num, "/")
}

func questionRef(num string) docstore.Ref {
	return docstore.Doc(questionsCollection, num)
}

// QuestionRepository хранит вопросы в questions/{num}
type QuestionRepository struct {
	store docstore.Store
	opts  options
}

func NewQuestionRepository(store docstore.Store, opts ...Option) (*QuestionRepository, error) {
	if store == nil || !store.IsInitialized() {
		return nil, docstore.ErrNotInitialized
	}
	return &QuestionRepository{store: store, opts: buildOptions(opts)}, nil
}

// Create перезаписывает вопрос; created_at и updated_at ставятся заново при каждом вызове
func (r *QuestionRepository) Create(ctx context.Context, num string, solution entity.Solution, category string, image *string) (*entity.Question, error) {
	if !validQuestionNum(num) {
		return nil, fmt.Errorf("%w: %q", entity.ErrInvalidQuestionNum, num)
	}
	if !solution.Valid() {
		return nil, fmt.Errorf("question %s: %w: %q", num, entity.ErrInvalidSolution, solution)
	}

	now := r.opts.now()
	q := &entity.Question{
		Num:       num,
		Solution:  solution,
		Category:  category,
		Image:     image,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := r.store.Set(ctx, questionRef(num), q); err != nil {
		r.opts.logger.Error("failed to create question", zap.String("num", num), zap.Error(err))
		return nil, fmt.Errorf("create question %s: %w", num, err)
	}

	r.opts.logger.Info("question created", zap.String("num", num))
	return q, nil
}

func (r *QuestionRepository) Get(ctx context.Context, num string) (*entity.Question, error) {
	if !validQuestionNum(num) {
		return nil, entity.ErrQuestionNotFound
	}

	var q entity.Question
	found, err := r.store.Get(ctx, questionRef(num), &q)
	if err != nil {
		r.opts.logger.Error("failed to get question", zap.String("num", num), zap.Error(err))
		return nil, fmt.Errorf("get question %s: %w", num, err)
	}
	if !found {
		return nil, entity.ErrQuestionNotFound
	}
	return &q, nil
}

var _ port.QuestionRepository = (*QuestionRepository)(nil)
