package telegram

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Sender is the outbound messaging capability. Handlers and the message
// router depend on this interface rather than on the bot client directly, so
// tests and the simulation endpoint can substitute a recording sender.
type Sender interface {
	SendMessage(ctx context.Context, chatID any, text string, markup models.ReplyMarkup) error
	AnswerCallbackQuery(ctx context.Context, callbackQueryID, text string) error
}

// BotSender sends through the Telegram Bot API.
type BotSender struct {
	bot *bot.Bot
}

func NewBotSender(b *bot.Bot) *BotSender {
	return &BotSender{bot: b}
}

func (s *BotSender) SendMessage(ctx context.Context, chatID any, text string, markup models.ReplyMarkup) error {
	params := &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	}
	if markup != nil {
		params.ReplyMarkup = markup
	}
	if _, err := s.bot.SendMessage(ctx, params); err != nil {
		return fmt.Errorf("send message to chat %v: %w", chatID, err)
	}
	return nil
}

// AnswerCallbackQuery clears the client-side loading indicator for a pressed
// inline button.
func (s *BotSender) AnswerCallbackQuery(ctx context.Context, callbackQueryID, text string) error {
	params := &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackQueryID,
	}
	if text != "" {
		params.Text = text
	}
	if _, err := s.bot.AnswerCallbackQuery(ctx, params); err != nil {
		return fmt.Errorf("answer callback query %s: %w", callbackQueryID, err)
	}
	return nil
}
