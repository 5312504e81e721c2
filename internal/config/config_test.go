package config

import (
	"os"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_BOT_TOKEN", "tok")
	t.Setenv("PAYSTACK_SECRET_KEY", "sk_test")
	t.Setenv("TELEGRAM_GROUP_ID", "-100123")
	t.Setenv("DATABASE_URL", "postgres://localhost/paygate")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ADMIN_USER_IDS", "1,2,3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Port != 5000 {
		t.Fatalf("expected default port 5000, got %d", cfg.Port)
	}
	if cfg.InviteLink == "" {
		t.Fatal("expected default invite link")
	}
	if len(cfg.AdminIDs) != 3 || cfg.AdminIDs[2] != 3 {
		t.Fatalf("unexpected admin ids %v", cfg.AdminIDs)
	}
	if got := cfg.WebhookPath(); got != "/webhook/tok" {
		t.Fatalf("unexpected webhook path %q", got)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	os.Unsetenv("PAYSTACK_SECRET_KEY")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing secret key")
	}
}

func TestIsAdmin(t *testing.T) {
	cfg := &Config{AdminIDs: []int64{10, 20}}

	if !cfg.IsAdmin(20) {
		t.Fatal("expected 20 to be admin")
	}
	if cfg.IsAdmin(30) {
		t.Fatal("expected 30 not to be admin")
	}
}
