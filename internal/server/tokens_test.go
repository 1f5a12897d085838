package server

import (
	"net/http"
	"testing"

	"github.com/tradiehq/tradiehq/internal/config"
)

func TestTokenUsageRequiresSession(t *testing.T) {
	env := newTestEnv(t, config.Config{Environment: "development"})

	resp := env.do(t, http.MethodGet, "/api/tokens", "", "")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestTokenUsageForProductionSession(t *testing.T) {
	env := newTestEnv(t, config.Config{Environment: "development", TokenLimitDefault: 2000})
	cookie := env.signup(t, "sam@example.com")

	resp := env.do(t, http.MethodGet, "/api/tokens", "", cookie)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := decodeBody(t, resp)
	if body["balance"] != float64(2000) || body["limit"] != float64(2000) {
		t.Fatalf("expected default balances, got %v", body)
	}
	if body["low"] != false {
		t.Fatalf("expected not low, got %v", body)
	}
}

func TestTokenUsageForDemoSession(t *testing.T) {
	env := newTestEnv(t, config.Config{Environment: "development"})

	resp := env.do(t, http.MethodPost, "/api/demo/verify", `{"code":"TRADIE2025"}`, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("verify: expected 200, got %d", resp.Code)
	}
	demoCookie := sessionCookie(t, resp)

	resp = env.do(t, http.MethodGet, "/api/tokens", "", demoCookie)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := decodeBody(t, resp)
	if body["balance"] != float64(500) {
		t.Fatalf("expected demo balance from session profile, got %v", body)
	}
}

func TestAdvisorChat(t *testing.T) {
	env := newTestEnv(t, config.Config{Environment: "development"})
	cookie := env.signup(t, "sam@example.com")

	resp := env.do(t, http.MethodPost, "/api/advisor/chat", `{"message":"How do I quote a bathroom reno?"}`, cookie)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	body := decodeBody(t, resp)
	if body["reply"] == "" {
		t.Fatalf("expected a reply, got %v", body)
	}

	resp = env.do(t, http.MethodPost, "/api/advisor/chat", `{}`, cookie)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing message, got %d", resp.Code)
	}

	resp = env.do(t, http.MethodPost, "/api/advisor/chat", `{"message":"hi"}`, "")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 anonymous, got %d", resp.Code)
	}
}
