package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"lid-bot/internal/domain/entity"
)

const (
	federalPrefix = "federal_"
	federalCancel = federalPrefix + "cancel"
	answerPrefix  = "answer_"
)

// federalKeyboard земли по две в ряд; текущая отмечена галочкой
func federalKeyboard(user *entity.User) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	states := entity.FederalStates

	for i := 0; i < len(states); i += 2 {
		var row []tgbotapi.InlineKeyboardButton
		for j := i; j < i+2 && j < len(states); j++ {
			s := states[j]
			text := fmt.Sprintf("%s %s", s.Emoji, s.NameDE)
			if user != nil && user.FederalState != nil && *user.FederalState == s.Code {
				text = "✅ " + text
			}
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(text, federalPrefix+string(s.Code)))
		}
		rows = append(rows, row)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(msgFederalCancel, federalCancel),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// answerKeyboard по одному варианту ответа в ряд
func answerKeyboard(num string, t *entity.Translation) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, s := range entity.Solutions {
		text := fmt.Sprintf("%s) %s", strings.ToUpper(string(s)), t.Option(s))
		data := fmt.Sprintf("%s%s_%s", answerPrefix, num, s)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(text, data)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// parseFederalCallback разбирает federal_<code> и federal_cancel
func parseFederalCallback(data string) (code entity.FederalStateCode, cancel bool, ok bool) {
	if data == federalCancel {
		return "", true, true
	}
	rest, found := strings.CutPrefix(data, federalPrefix)
	if !found {
		return "", false, false
	}
	code = entity.FederalStateCode(rest)
	return code, false, code.Valid()
}

// parseAnswerCallback разбирает answer_<num>_<option>
func parseAnswerCallback(data string) (num string, chosen entity.Solution, ok bool) {
	rest, found := strings.CutPrefix(data, answerPrefix)
	if !found {
		return "", "", false
	}
	i := strings.LastIndex(rest, "_")
	if i <= 0 {
		return "", "", false
	}
	num, chosen = rest[:i], entity.Solution(rest[i+1:])
	return num, chosen, chosen.Valid()
}
