package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/osei-labs/paygate-bot/internal/config"
	"github.com/osei-labs/paygate-bot/internal/domain"
)

// handleAllPayments returns persisted payments newest-first. Without a limit
// the full table is returned.
func (h *Handler) handleAllPayments(w http.ResponseWriter, r *http.Request) {
	limit := -1
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	offset := 0
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			offset = n
		}
	}

	payments, err := h.store.List(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if payments == nil {
		payments = []domain.Payment{}
	}

	// Reformat provider timestamps for display; unparseable values are
	// passed through untouched.
	for i := range payments {
		if t, err := time.Parse(config.PaidAtLayout, payments[i].PaidAt); err == nil {
			payments[i].PaidAt = t.Format(config.PaidAtDisplayLayout)
		}
	}

	writeJSON(w, http.StatusOK, map[string][]domain.Payment{"payments": payments})
}
