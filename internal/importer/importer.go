// Package importer загружает каталог вопросов из questions.json в хранилище.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"go.uber.org/zap"

	"lid-bot/internal/domain/entity"
	"lid-bot/internal/domain/port"
	"lid-bot/internal/observability"
)

// noImage значение поля image, означающее отсутствие картинки
const noImage = "-"

// Body текст вопроса и вариантов на одном языке
type Body struct {
	Question string `json:"question"`
	Context  string `json:"context"`
	A        string `json:"a"`
	B        string `json:"b"`
	C        string `json:"c"`
	D        string `json:"d"`
}

// Num номер вопроса: в файле встречается и числом, и строкой
type Num string

func (n *Num) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = Num(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*n = Num(num.String())
	return nil
}

// Record одна запись questions.json; поля Body содержат немецкий оригинал
type Record struct {
	Num      Num         `json:"num"`
	Solution string      `json:"solution"`
	Category string      `json:"category"`
	Image    string      `json:"image"`
	Body
	Translation map[string]Body `json:"translation"`
}

// Result итог импорта
type Result struct {
	Imported int
	Failed   int
}

type Importer struct {
	questions    port.QuestionRepository
	translations port.TranslationRepositoryFactory
	logger       *zap.Logger
}

func New(questions port.QuestionRepository, translations port.TranslationRepositoryFactory, logger *zap.Logger) *Importer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Importer{questions: questions, translations: translations, logger: logger}
}

// ImportFile читает файл и импортирует все записи
func (im *Importer) ImportFile(ctx context.Context, path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open questions file: %w", err)
	}
	defer f.Close()

	return im.Import(ctx, f)
}

// Import импортирует записи по порядку: сначала вопрос, затем его переводы.
// Ошибочная запись пропускается, импорт продолжается.
func (im *Importer) Import(ctx context.Context, r io.Reader) (Result, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return Result{}, fmt.Errorf("decode questions: %w", err)
	}

	var res Result
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		if err := im.importRecord(ctx, rec); err != nil {
			im.logger.Error("failed to import question", zap.String("num", string(rec.Num)), zap.Error(err))
			observability.ImportedQuestions.WithLabelValues("failed").Inc()
			res.Failed++
			continue
		}
		observability.ImportedQuestions.WithLabelValues("imported").Inc()
		res.Imported++
	}

	im.logger.Info("import finished", zap.Int("imported", res.Imported), zap.Int("failed", res.Failed))
	return res, nil
}

func (im *Importer) importRecord(ctx context.Context, rec Record) error {
	num := string(rec.Num)
	if num == "" {
		return fmt.Errorf("record without num")
	}

	var image *string
	if rec.Image != "" && rec.Image != noImage {
		image = &rec.Image
	}

	if _, err := im.questions.Create(ctx, num, entity.Solution(rec.Solution), rec.Category, image); err != nil {
		return err
	}

	tr, err := im.translations(num)
	if err != nil {
		return err
	}

	if _, err := tr.Create(ctx, toTranslation(entity.DefaultLanguage, rec.Body)); err != nil {
		return err
	}

	langs := make([]string, 0, len(rec.Translation))
	for lang := range rec.Translation {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	for _, lang := range langs {
		if _, err := tr.Create(ctx, toTranslation(entity.LanguageCode(lang), rec.Translation[lang])); err != nil {
			return err
		}
	}
	return nil
}

func toTranslation(lang entity.LanguageCode, b Body) entity.Translation {
	return entity.Translation{
		LanguageCode: lang,
		Question:     b.Question,
		Context:      b.Context,
		OptionA:      b.A,
		OptionB:      b.B,
		OptionC:      b.C,
		OptionD:      b.D,
	}
}
