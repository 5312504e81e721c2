package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// handleBotWebhook receives Telegram updates and routes them. Receipt is
// acknowledged structurally; individual update handling never fails the
// request.
func (h *Handler) handleBotWebhook(w http.ResponseWriter, r *http.Request) {
	var update models.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		slog.Error("decode bot update", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.router.ProcessUpdate(r.Context(), &update)
	writeJSON(w, http.StatusOK, statusResponse{Status: "success"})
}

func (h *Handler) handleSetWebhook(w http.ResponseWriter, r *http.Request) {
	webhookURL := "https://" + r.Host + h.cfg.WebhookPath()

	ok, err := h.webhooks.SetWebhook(r.Context(), &bot.SetWebhookParams{URL: webhookURL})
	if err != nil || !ok {
		slog.Error("set webhook", "error", err)
		message := "Failed to set webhook"
		if err != nil {
			message += ": " + err.Error()
		}
		writeError(w, http.StatusBadRequest, message)
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{
		Status:  "success",
		Message: "Webhook set to: " + webhookURL,
	})
}

func (h *Handler) handleWebhookInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.webhooks.GetWebhookInfo(r.Context())
	if err != nil {
		slog.Error("get webhook info", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to get webhook info")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":       "success",
		"webhook_info": info,
	})
}

func (h *Handler) handleDeleteWebhook(w http.ResponseWriter, r *http.Request) {
	ok, err := h.webhooks.DeleteWebhook(r.Context(), &bot.DeleteWebhookParams{})
	if err != nil || !ok {
		slog.Error("delete webhook", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete webhook")
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{
		Status:  "success",
		Message: "Webhook deleted successfully",
	})
}

type testBotRequest struct {
	ChatID  string `json:"chat_id"`
	Message string `json:"message"`
}

// handleTestBot runs a simulated message through the router with a recording
// sender, without touching the Telegram API.
func (h *Handler) handleTestBot(w http.ResponseWriter, r *http.Request) {
	var req testBotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "No data provided")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "No message provided")
		return
	}
	if req.ChatID == "" {
		req.ChatID = "123456789"
	}
	chatID, err := strconv.ParseInt(req.ChatID, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid chat_id")
		return
	}

	update := &models.Update{
		Message: &models.Message{
			ID:   1,
			From: &models.User{ID: chatID, FirstName: "Test", LastName: "User", Username: "testuser"},
			Chat: models.Chat{ID: chatID, Type: "private", Username: "testuser"},
			Date: int(time.Now().Unix()),
			Text: req.Message,
		},
	}

	recorder := &RecordingSender{}
	NewRouter(recorder, h.cfg).ProcessUpdate(r.Context(), update)

	sent := recorder.Messages()
	if len(sent) == 0 {
		writeJSON(w, http.StatusOK, statusResponse{
			Status:  "warning",
			Message: "Message processed but no response was generated",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Message processed successfully",
		"response": map[string]any{
			"text":             sent[0].Text,
			"has_reply_markup": sent[0].Markup != nil,
		},
	})
}

// SentMessage is one message captured by a RecordingSender.
type SentMessage struct {
	ChatID any
	Text   string
	Markup models.ReplyMarkup
}

// RecordingSender captures outbound messages instead of delivering them.
type RecordingSender struct {
	mu        sync.Mutex
	messages  []SentMessage
	callbacks []string
}

func (s *RecordingSender) SendMessage(_ context.Context, chatID any, text string, markup models.ReplyMarkup) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, SentMessage{ChatID: chatID, Text: text, Markup: markup})
	return nil
}

func (s *RecordingSender) AnswerCallbackQuery(_ context.Context, callbackQueryID, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callbacks = append(s.callbacks, callbackQueryID)
	return nil
}

func (s *RecordingSender) Messages() []SentMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]SentMessage(nil), s.messages...)
}

func (s *RecordingSender) Callbacks() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.callbacks...)
}
