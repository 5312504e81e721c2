package handler

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/go-telegram/bot/models"
	"github.com/osei-labs/paygate-bot/internal/config"
	"github.com/osei-labs/paygate-bot/internal/telegram"
)

// Router categorizes inbound Telegram updates and dispatches canned replies.
// All outbound sending goes through the injected Sender, so the simulation
// endpoint and tests can substitute a recording sender.
type Router struct {
	sender telegram.Sender
	cfg    *config.Config
}

func NewRouter(sender telegram.Sender, cfg *config.Config) *Router {
	return &Router{sender: sender, cfg: cfg}
}

// ExtractCommand splits message text into a command and its arguments. The
// leading slash and an optional @botname suffix are stripped and the command
// is lowercased. An empty command means the text is not a command.
func ExtractCommand(text string) (string, string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ""
	}

	head, args, _ := strings.Cut(trimmed, " ")
	head, _, _ = strings.Cut(head, "@")
	head = strings.ToLower(head)
	if !strings.HasPrefix(head, "/") || len(head) < 2 {
		return "", ""
	}
	return head[1:], args
}

func (rt *Router) ProcessUpdate(ctx context.Context, update *models.Update) {
	switch {
	case update.Message != nil:
		rt.processMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		rt.processCallbackQuery(ctx, update.CallbackQuery)
	default:
		slog.Info("unhandled update type", "update_id", update.ID)
	}
}

func (rt *Router) processMessage(ctx context.Context, msg *models.Message) {
	chatID := msg.Chat.ID
	var userID int64
	if msg.From != nil {
		userID = msg.From.ID
	}

	if msg.Text != "" {
		if command, args := ExtractCommand(msg.Text); command != "" {
			rt.handleCommand(ctx, command, args, chatID, userID, msg)
			return
		}
		rt.handleRegularMessage(ctx, msg.Text, chatID, userID)
		return
	}

	if kind := mediaKind(msg); kind != "" {
		rt.handleMediaMessage(ctx, kind, chatID, userID)
	}
}

func (rt *Router) handleCommand(ctx context.Context, command, args string, chatID, userID int64, msg *models.Message) {
	if _, ok := config.AdminCommands[command]; ok {
		if !rt.cfg.IsAdmin(userID) {
			rt.send(ctx, chatID, "Sorry, this command is only available to administrators.", nil)
			return
		}
		rt.send(ctx, chatID, fmt.Sprintf("The command /%s is recognized but not yet implemented.", command), nil)
		return
	}

	if _, ok := config.Commands[command]; !ok {
		rt.send(ctx, chatID, fmt.Sprintf("Sorry, I don't recognize the command /%s. Type /help to see available commands.", command), nil)
		return
	}

	slog.Info("received command", "command", command, "user_id", userID)

	switch command {
	case "start":
		rt.cmdStart(ctx, chatID, msg)
	case "help":
		rt.cmdHelp(ctx, chatID)
	case "status":
		rt.cmdStatus(ctx, chatID)
	case "info":
		rt.cmdInfo(ctx, chatID)
	default:
		rt.send(ctx, chatID, fmt.Sprintf("The command /%s is recognized but not yet implemented.", command), nil)
	}
}

func (rt *Router) handleRegularMessage(ctx context.Context, text string, chatID, userID int64) {
	slog.Info("received text message", "user_id", userID, "length", len(text))
	rt.send(ctx, chatID, "I received your message. Use /help to see what I can do.", nil)
}

func (rt *Router) handleMediaMessage(ctx context.Context, kind string, chatID, userID int64) {
	slog.Info("received media message", "kind", kind, "user_id", userID)
	rt.send(ctx, chatID, fmt.Sprintf("I received your %s, but I'm not designed to process media files yet.", kind), nil)
}

// processCallbackQuery answers the callback before replying so the
// client-side loading indicator clears even if the follow-up send fails.
func (rt *Router) processCallbackQuery(ctx context.Context, cq *models.CallbackQuery) {
	var chatID int64
	if cq.Message.Message != nil {
		chatID = cq.Message.Message.Chat.ID
	}
	if cq.Data == "" || chatID == 0 {
		slog.Error("missing data or chat id in callback query")
		return
	}

	slog.Info("received callback query", "data", cq.Data, "user_id", cq.From.ID)

	if err := rt.sender.AnswerCallbackQuery(ctx, cq.ID, ""); err != nil {
		slog.Error("answer callback query", "error", err)
	}
	rt.send(ctx, chatID, fmt.Sprintf("You selected: %s", cq.Data), nil)
}

func mediaKind(msg *models.Message) string {
	switch {
	case len(msg.Photo) > 0:
		return "photo"
	case msg.Document != nil:
		return "document"
	case msg.Audio != nil:
		return "audio"
	case msg.Video != nil:
		return "video"
	case msg.Voice != nil:
		return "voice message"
	case msg.Sticker != nil:
		return "sticker"
	}
	return ""
}

func (rt *Router) send(ctx context.Context, chatID int64, text string, markup models.ReplyMarkup) {
	if err := rt.sender.SendMessage(ctx, chatID, text, markup); err != nil {
		slog.Error("send message", "chat_id", chatID, "error", err)
	}
}

// Command replies

func (rt *Router) cmdStart(ctx context.Context, chatID int64, msg *models.Message) {
	userName := "there"
	if msg.From != nil && msg.From.FirstName != "" {
		userName = msg.From.FirstName
	}

	text := fmt.Sprintf(
		"Hello, %s! 👋\n\nWelcome to the payment gate bot. I'm here to assist you.\n\nUse /help to see available commands.",
		userName,
	)

	keyboard := telegram.ReplyKeyboard(
		telegram.KeyboardRow("/help", "/status"),
		telegram.KeyboardRow("/info"),
	)
	rt.send(ctx, chatID, text, keyboard)
}

func (rt *Router) cmdHelp(ctx context.Context, chatID int64) {
	names := make([]string, 0, len(config.Commands))
	for name := range config.Commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("Here are the commands you can use:\n\n")
	for _, name := range names {
		fmt.Fprintf(&sb, "/%s - %s\n", name, config.Commands[name])
	}
	rt.send(ctx, chatID, sb.String(), nil)
}

func (rt *Router) cmdStatus(ctx context.Context, chatID int64) {
	rt.send(ctx, chatID, "✅ Bot Status: Operational\n\nThe bot is running normally and ready to process your commands.", nil)
}

func (rt *Router) cmdInfo(ctx context.Context, chatID int64) {
	text := "📱 Payment Gate Bot\n\n" +
		"This bot links Paystack payments to a private Telegram group.\n\n" +
		"Features:\n" +
		"• Processes incoming messages\n" +
		"• Handles commands\n" +
		"• Sends group invites after payment\n\n" +
		"Use /help to see available commands."
	rt.send(ctx, chatID, text, nil)
}
