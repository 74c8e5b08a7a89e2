package entity

import "strings"

// LanguageCode язык перевода вопроса
type LanguageCode string

const (
	LanguageGerman    LanguageCode = "de"
	LanguageEnglish   LanguageCode = "en"
	LanguageTurkish   LanguageCode = "tr"
	LanguageRussian   LanguageCode = "ru"
	LanguageFrench    LanguageCode = "fr"
	LanguageArabic    LanguageCode = "ar"
	LanguageUkrainian LanguageCode = "uk"
	LanguageHindi     LanguageCode = "hi"
)

// DefaultLanguage язык оригинала вопросов
const DefaultLanguage = LanguageGerman

// Languages все поддерживаемые языки
var Languages = []LanguageCode{
	LanguageGerman, LanguageEnglish, LanguageTurkish, LanguageRussian,
	LanguageFrench, LanguageArabic, LanguageUkrainian, LanguageHindi,
}

// Valid проверяет, что язык поддерживается
func (c LanguageCode) Valid() bool {
	for _, l := range Languages {
		if l == c {
			return true
		}
	}
	return false
}

// ParseLanguage приводит language_code из Telegram ("de-AT", "EN") к поддерживаемому языку.
// Если язык не поддерживается, возвращает DefaultLanguage.
func ParseLanguage(raw string) LanguageCode {
	if len(raw) >= 2 {
		code := LanguageCode(strings.ToLower(raw[:2]))
		if code.Valid() {
			return code
		}
	}
	return DefaultLanguage
}

// Translation текст вопроса на одном языке, хранится под родительским вопросом
type Translation struct {
	LanguageCode LanguageCode `firestore:"language_code" json:"language_code"`
	Question     string       `firestore:"question" json:"question"`
	Context      string       `firestore:"context" json:"context"`
	OptionA      string       `firestore:"option_a" json:"option_a"`
	OptionB      string       `firestore:"option_b" json:"option_b"`
	OptionC      string       `firestore:"option_c" json:"option_c"`
	OptionD      string       `firestore:"option_d" json:"option_d"`
}

// Option возвращает текст варианта по коду
func (t *Translation) Option(s Solution) string {
	switch s {
	case SolutionA:
		return t.OptionA
	case SolutionB:
		return t.OptionB
	case SolutionC:
		return t.OptionC
	case SolutionD:
		return t.OptionD
	}
	return ""
}
