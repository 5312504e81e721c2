package telegram

import "github.com/go-telegram/bot/models"

// KeyboardRow creates a row of reply keyboard buttons from labels.
func KeyboardRow(labels ...string) []models.KeyboardButton {
	row := make([]models.KeyboardButton, len(labels))
	for i, label := range labels {
		row[i] = models.KeyboardButton{Text: label}
	}
	return row
}

// ReplyKeyboard creates a resized reply keyboard from rows of buttons.
func ReplyKeyboard(rows ...[]models.KeyboardButton) *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		Keyboard:       rows,
		ResizeKeyboard: true,
	}
}
