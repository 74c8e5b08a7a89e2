package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"lid-bot/internal/domain/entity"
	"lid-bot/internal/domain/port"
	"lid-bot/internal/infrastructure/docstore"
)

// TranslationRepository хранит переводы вопроса в questions/{num}/translations/{language_code}.
// Существование родительского вопроса не проверяется.
type TranslationRepository struct {
	store  docstore.Store
	parent docstore.Ref
	num    string
	opts   options
}

func NewTranslationRepository(store docstore.Store, num string, opts ...Option) (*TranslationRepository, error) {
	if store == nil || !store.IsInitialized() {
		return nil, docstore.ErrNotInitialized
	}
	if !validQuestionNum(num) {
		return nil, fmt.Errorf("%w: %q", entity.ErrInvalidQuestionNum, num)
	}
	return &TranslationRepository{
		store:  store,
		parent: questionRef(num),
		num:    num,
		opts:   buildOptions(opts),
	}, nil
}

// TranslationFactory возвращает фабрику репозиториев переводов для общего хранилища
func TranslationFactory(store docstore.Store, opts ...Option) port.TranslationRepositoryFactory {
	return func(num string) (port.TranslationRepository, error) {
		return NewTranslationRepository(store, num, opts...)
	}
}

func (r *TranslationRepository) ref(lang entity.LanguageCode) docstore.Ref {
	return r.parent.Child(translationsCollection, string(lang))
}

func (r *TranslationRepository) Create(ctx context.Context, t entity.Translation) (*entity.Translation, error) {
	if !t.LanguageCode.Valid() {
		return nil, fmt.Errorf("translation %s: %w: %q", r.num, entity.ErrInvalidLanguage, t.LanguageCode)
	}

	if err := r.store.Set(ctx, r.ref(t.LanguageCode), &t); err != nil {
		r.opts.logger.Error("failed to create translation",
			zap.String("num", r.num), zap.String("language_code", string(t.LanguageCode)), zap.Error(err))
		return nil, fmt.Errorf("create translation %s/%s: %w", r.num, t.LanguageCode, err)
	}

	r.opts.logger.Info("translation created",
		zap.String("num", r.num), zap.String("language_code", string(t.LanguageCode)))
	return &t, nil
}

func (r *TranslationRepository) Get(ctx context.Context, lang entity.LanguageCode) (*entity.Translation, error) {
	var t entity.Translation
	found, err := r.store.Get(ctx, r.ref(lang), &t)
	if err != nil {
		r.opts.logger.Error("failed to get translation",
			zap.String("num", r.num), zap.String("language_code", string(lang)), zap.Error(err))
		return nil, fmt.Errorf("get translation %s/%s: %w", r.num, lang, err)
	}
	if !found {
		return nil, entity.ErrTranslationNotFound
	}
	return &t, nil
}

var _ port.TranslationRepository = (*TranslationRepository)(nil)
