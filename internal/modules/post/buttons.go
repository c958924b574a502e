package post

import (
	"strings"
	"unicode/utf8"

	"github.com/go-telegram/bot/models"
)

// PopupPrefix marks callback data of display-only popup buttons.
const PopupPrefix = "popup:"

// callbackDataLimit is the Bot API cap on callback data, in bytes.
const callbackDataLimit = 64

// BuildKeyboard parses the auto-button mini-grammar into an inline
// keyboard. Each config line is a row, `&&` separates buttons within a
// row, and each button is `label - target`. A target of `popup: text`
// makes a display-only button that answers with an alert; any other
// target is a URL, prefixed with http:// when it has no scheme.
// Malformed segments are dropped; nil is returned when nothing parses.
func BuildKeyboard(config string) *models.InlineKeyboardMarkup {
	var rows [][]models.InlineKeyboardButton

	for _, line := range strings.Split(config, "\n") {
		var row []models.InlineKeyboardButton
		for _, part := range strings.Split(line, "&&") {
			part = strings.TrimSpace(part)

			if label, popup, ok := strings.Cut(part, " - popup:"); ok {
				label = strings.TrimSpace(label)
				popup = strings.TrimSpace(popup)
				if label == "" || popup == "" {
					continue
				}
				row = append(row, models.InlineKeyboardButton{
					Text:         label,
					CallbackData: popupCallbackData(popup),
				})
				continue
			}

			label, target, ok := strings.Cut(part, " - ")
			if !ok {
				continue
			}
			label = strings.TrimSpace(label)
			target = strings.TrimSpace(target)
			if label == "" || target == "" {
				continue
			}
			if !strings.HasPrefix(target, "http") && !strings.HasPrefix(target, "t.me") {
				target = "http://" + target
			}
			row = append(row, models.InlineKeyboardButton{Text: label, URL: target})
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}

	if len(rows) == 0 {
		return nil
	}
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// popupCallbackData embeds the popup text in the callback payload,
// truncated on a rune boundary to fit the Bot API limit.
func popupCallbackData(text string) string {
	budget := callbackDataLimit - len(PopupPrefix)
	for len(text) > budget {
		_, size := utf8.DecodeLastRuneInString(text)
		text = text[:len(text)-size]
	}
	return PopupPrefix + text
}
