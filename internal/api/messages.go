package telegram

import "lid-bot/internal/domain/entity"

const (
	msgStart = `Hallo %s! Willkommen beim Leben in Deutschland Test Bot! 🇩🇪

Ich kann dir dabei helfen, dich auf den Test vorzubereiten.

📋 Befehle:
/question — zufällige Frage
/question 21 — Frage Nummer 21
/federal — Bundesland wählen
/stats — deine Statistik
/help — Hilfe`

	msgHelp = `ℹ️ So funktioniert der Bot:

1️⃣ Wähle mit /federal dein Bundesland
2️⃣ Hol dir mit /question eine Frage
3️⃣ Tippe auf die richtige Antwort

📋 Befehle:
/question — zufällige Frage
/federal — Bundesland wählen
/stats — deine Statistik`

	msgFederalPrompt    = "🗺️ Wähle dein Bundesland:"
	msgFederalSaved     = "✅ Bundesland gespeichert: %s %s"
	msgFederalCancelled = "❌ Abgebrochen."
	msgFederalCancel    = "❌ Abbrechen"
	msgUnknownCommand   = "❓ Unbekannter Befehl. Benutze /help für Hilfe."
	msgSendCommand      = "📋 Benutze /question für eine neue Frage oder /help für Hilfe."
	msgQuestionNotFound = "🔍 Diese Frage gibt es nicht."
	msgQuestionHeader   = "❓ Frage %s · %s"
	msgQuestionImage    = "🖼️ Bild: %s"
	msgCorrect          = "✅ Richtig!"
	msgIncorrect        = "❌ Leider falsch. Richtig ist %s) %s"
	msgContext          = "💡 %s"
	msgNextQuestion     = "Weiter mit /question"
	msgStats            = "📊 Deine Statistik:\n\nBeantwortete Fragen: %d\nBundesland: %s"
	msgNoFederalState   = "nicht gewählt (/federal)"
)

// msgFailure общее сообщение об ошибке на всех поддерживаемых языках
var msgFailure = map[entity.LanguageCode]string{
	entity.LanguageGerman:    "⚠️ Es ist ein Fehler aufgetreten. Bitte versuche es später noch einmal.",
	entity.LanguageEnglish:   "⚠️ Something went wrong. Please try again later.",
	entity.LanguageTurkish:   "⚠️ Bir hata oluştu. Lütfen daha sonra tekrar deneyin.",
	entity.LanguageRussian:   "⚠️ Произошла ошибка. Пожалуйста, попробуйте позже.",
	entity.LanguageFrench:    "⚠️ Une erreur s'est produite. Veuillez réessayer plus tard.",
	entity.LanguageArabic:    "⚠️ حدث خطأ. يرجى المحاولة مرة أخرى لاحقًا.",
	entity.LanguageUkrainian: "⚠️ Сталася помилка. Будь ласка, спробуйте пізніше.",
	entity.LanguageHindi:     "⚠️ कुछ गलत हो गया। कृपया बाद में पुनः प्रयास करें।",
}

// failureMessage выбирает язык по language_code из Telegram, по умолчанию немецкий
func failureMessage(languageCode string) string {
	return msgFailure[entity.ParseLanguage(languageCode)]
}
