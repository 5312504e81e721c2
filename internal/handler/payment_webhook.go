package handler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/osei-labs/paygate-bot/internal/config"
	"github.com/osei-labs/paygate-bot/internal/domain"
	"github.com/osei-labs/paygate-bot/internal/paystack"
	"github.com/shopspring/decimal"
)

const (
	msgDuplicateReminder = "✅ We already received your payment. If you need your invite link again, please contact support."
	msgInviteFailed      = "✅ Payment received! But we couldn't generate your invite link. Please contact support."
)

// handlePaymentWebhook processes a payment provider event. Signature
// verification runs on the raw body before anything is parsed. Dedup by
// reference happens before invite issuance so a provider retry never mints a
// second link; the unique constraint on the insert covers the race between
// concurrent deliveries that both pass the read check.
func (h *Handler) handlePaymentWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	signature := r.Header.Get(config.SignatureHeader)
	if signature == "" {
		writeError(w, http.StatusBadRequest, domain.ErrMissingSignature.Error())
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if !paystack.ValidSignature(body, h.cfg.PaystackSecretKey, signature) {
		slog.Warn("invalid paystack webhook signature")
		writeError(w, http.StatusBadRequest, domain.ErrInvalidSignature.Error())
		return
	}

	event, err := paystack.ParseEvent(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if event.Event != config.EventChargeSuccess {
		writeJSON(w, http.StatusOK, statusResponse{Status: "success"})
		return
	}

	data := event.Data
	if data.Reference == "" {
		slog.Warn("no reference found in payment data")
		writeError(w, http.StatusBadRequest, "No reference found")
		return
	}

	fields := data.Metadata.FieldSet()
	chatID := fields[config.FieldChatID]

	exists, err := h.store.Exists(ctx, data.Reference)
	if err != nil {
		slog.Error("dedup check failed", "reference", data.Reference, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if exists {
		slog.Info("duplicate webhook ignored", "reference", data.Reference)
		if chatID != "" {
			// Best effort; delivery failure must not fail the request.
			if err := h.sender.SendMessage(ctx, chatID, msgDuplicateReminder, nil); err != nil {
				slog.Error("send duplicate reminder", "chat_id", chatID, "error", err)
			}
		}
		writeJSON(w, http.StatusOK, statusResponse{Status: "ignored", Message: "Duplicate reference"})
		return
	}

	var inviteLink *string
	if chatID != "" {
		link, err := h.invites.CreateInviteLink(ctx)
		var message string
		if err != nil {
			slog.Error("failed to generate invite link", "reference", data.Reference, "error", err)
			message = msgInviteFailed
		} else {
			inviteLink = &link
			cedis := decimal.NewFromInt(data.Amount).Shift(-2).StringFixed(2)
			message = fmt.Sprintf(
				"🎉 Thank you for your payment of ₵%s!\nHere is your invite link (valid for 5 minutes, single use):\n%s",
				cedis, link,
			)
		}

		if err := h.sender.SendMessage(ctx, chatID, message, nil); err != nil {
			slog.Error("send invite message", "chat_id", chatID, "error", err)
		} else {
			slog.Info("sent invite message", "chat_id", chatID)
		}
	} else {
		slog.Warn("no chat_id found in payment metadata", "reference", data.Reference)
	}

	payment := domain.Payment{
		Reference:  data.Reference,
		Status:     data.Status,
		Amount:     data.Amount,
		Email:      data.Customer.Email,
		FullName:   optional(fields[config.FieldFullName]),
		PaidAt:     data.PaidAt,
		ChatID:     optional(chatID),
		InviteLink: inviteLink,
	}

	inserted, err := h.store.Insert(ctx, payment)
	if err != nil {
		slog.Error("save payment", "reference", data.Reference, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !inserted {
		// Lost the race with a concurrent delivery of the same reference.
		// The event was handled either way.
		slog.Warn("payment already saved", "reference", data.Reference)
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: "success"})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
