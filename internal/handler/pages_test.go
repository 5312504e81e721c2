package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func getPage(t *testing.T, env *testEnv, url string) *goquery.Document {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	env.mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for %s, got %d", url, rec.Code)
	}

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	if err != nil {
		t.Fatalf("parse page: %v", err)
	}
	return doc
}

func TestDashboardPage(t *testing.T) {
	env := newTestEnv(t)
	doc := getPage(t, env, "/")

	if title := doc.Find("#title").Text(); title != "Payment Gate Bot" {
		t.Fatalf("unexpected title %q", title)
	}
	if links := doc.Find("#nav a").Length(); links != 3 {
		t.Fatalf("expected 3 nav links, got %d", links)
	}
}

func TestDashboardPaymentsPage(t *testing.T) {
	env := newTestEnv(t)
	doc := getPage(t, env, "/dashboard_payments")

	if doc.Find("table#payments").Length() != 1 {
		t.Fatal("expected payments table")
	}
	if headers := doc.Find("table#payments th").Length(); headers != 7 {
		t.Fatalf("expected 7 column headers, got %d", headers)
	}
}

func TestPaymentFormPage(t *testing.T) {
	env := newTestEnv(t)
	doc := getPage(t, env, "/pay")

	href, ok := doc.Find("a#invite").Attr("href")
	if !ok || href != env.cfg.InviteLink {
		t.Fatalf("expected fallback invite link %q, got %q", env.cfg.InviteLink, href)
	}
}
