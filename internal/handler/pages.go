package handler

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

func (h *Handler) renderPage(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("render page", "template", name, "error", err)
	}
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, "dashboard.html", nil)
}

func (h *Handler) handleDashboardPayments(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, "dashboard_payments.html", nil)
}

func (h *Handler) handlePaymentForm(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, "payment_form.html", map[string]string{
		"InviteLink": h.cfg.InviteLink,
	})
}
