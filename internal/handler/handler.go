package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/osei-labs/paygate-bot/internal/config"
	"github.com/osei-labs/paygate-bot/internal/domain"
	"github.com/osei-labs/paygate-bot/internal/telegram"
)

// PaymentStore persists processed payments.
type PaymentStore interface {
	Insert(ctx context.Context, p domain.Payment) (bool, error)
	Exists(ctx context.Context, reference string) (bool, error)
	List(ctx context.Context, limit, offset int) ([]domain.Payment, error)
}

// InviteIssuer mints a single-use join link for the configured group.
type InviteIssuer interface {
	CreateInviteLink(ctx context.Context) (string, error)
}

// WebhookManager covers the Telegram webhook administration calls.
// *bot.Bot satisfies it.
type WebhookManager interface {
	SetWebhook(ctx context.Context, params *bot.SetWebhookParams) (bool, error)
	DeleteWebhook(ctx context.Context, params *bot.DeleteWebhookParams) (bool, error)
	GetWebhookInfo(ctx context.Context) (*models.WebhookInfo, error)
}

// Handler holds all dependencies needed by the HTTP endpoints.
type Handler struct {
	cfg      *config.Config
	store    PaymentStore
	sender   telegram.Sender
	invites  InviteIssuer
	webhooks WebhookManager
	router   *Router
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Cfg      *config.Config
	Store    PaymentStore
	Sender   telegram.Sender
	Invites  InviteIssuer
	Webhooks WebhookManager
	Router   *Router
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		cfg:      deps.Cfg,
		store:    deps.Store,
		sender:   deps.Sender,
		invites:  deps.Invites,
		webhooks: deps.Webhooks,
		router:   deps.Router,
	}
}

// Routes registers all endpoints on a new mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /payment_webhook", h.handlePaymentWebhook)
	mux.HandleFunc("GET /all_payments", h.handleAllPayments)

	mux.HandleFunc("POST "+h.cfg.WebhookPath(), h.handleBotWebhook)
	mux.HandleFunc("GET /set_webhook", h.handleSetWebhook)
	mux.HandleFunc("GET /webhook_info", h.handleWebhookInfo)
	mux.HandleFunc("GET /delete_webhook", h.handleDeleteWebhook)
	mux.HandleFunc("POST /test_bot", h.handleTestBot)

	mux.HandleFunc("GET /{$}", h.handleDashboard)
	mux.HandleFunc("GET /dashboard_payments", h.handleDashboardPayments)
	mux.HandleFunc("GET /pay", h.handlePaymentForm)

	return mux
}

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, statusResponse{Status: "error", Message: message})
}
