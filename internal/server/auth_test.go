package server

import (
	"net/http"
	"testing"

	"github.com/tradiehq/tradiehq/internal/config"
)

func TestMeRequiresSession(t *testing.T) {
	env := newTestEnv(t, config.Config{Environment: "development"})

	resp := env.do(t, http.MethodGet, "/api/auth/user", "", "")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestSignupLoginFlow(t *testing.T) {
	env := newTestEnv(t, config.Config{Environment: "development"})

	cookie := env.signup(t, "sam@example.com")

	resp := env.do(t, http.MethodGet, "/api/auth/user", "", cookie)
	if resp.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", resp.Code)
	}
	body := decodeBody(t, resp)
	if body["email"] != "sam@example.com" {
		t.Fatalf("expected email in body, got %v", body)
	}
	if body["isOnboarded"] != false {
		t.Fatalf("fresh signup must not be onboarded, got %v", body)
	}

	// A fresh login session picks up the same pre-onboarding state.
	resp = env.do(t, http.MethodPost, "/api/auth/login", `{"email":"sam@example.com","password":"hunter2hunter2"}`, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	body = decodeBody(t, resp)
	if body["redirect"] != "/onboarding" {
		t.Fatalf("expected onboarding redirect, got %v", body)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t, config.Config{Environment: "development"})
	env.signup(t, "sam@example.com")

	resp := env.do(t, http.MethodPost, "/api/auth/login", `{"email":"sam@example.com","password":"wrongwrongwrong"}`, "")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestLoginAfterOnboardingSeedsOnboardedSession(t *testing.T) {
	env := newTestEnv(t, config.Config{Environment: "development"})

	cookie := env.signup(t, "sam@example.com")
	env.onboard(t, cookie)

	resp := env.do(t, http.MethodPost, "/api/auth/login", `{"email":"sam@example.com","password":"hunter2hunter2"}`, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", resp.Code)
	}
	body := decodeBody(t, resp)
	if body["isOnboarded"] != true {
		t.Fatalf("expected onboarded session from membership row, got %v", body)
	}
	if body["redirect"] != "/dashboard" {
		t.Fatalf("expected dashboard redirect, got %v", body)
	}
}

func TestLogoutDestroysSession(t *testing.T) {
	env := newTestEnv(t, config.Config{Environment: "development"})

	cookie := env.signup(t, "sam@example.com")

	resp := env.do(t, http.MethodPost, "/api/auth/logout", "", cookie)
	if resp.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", resp.Code)
	}
	if env.store.Len() != 0 {
		t.Fatalf("expected empty store after logout, got %d", env.store.Len())
	}

	resp = env.do(t, http.MethodGet, "/api/auth/user", "", cookie)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", resp.Code)
	}
}

func TestSignupDuplicateEmailConflict(t *testing.T) {
	env := newTestEnv(t, config.Config{Environment: "development"})
	env.signup(t, "sam@example.com")

	resp := env.do(t, http.MethodPost, "/api/auth/signup",
		`{"email":"sam@example.com","password":"hunter2hunter2"}`, "")
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.Code)
	}
}

func TestFirstRunIsOneShot(t *testing.T) {
	env := newTestEnv(t, config.Config{Environment: "development"})
	cookie := env.signup(t, "sam@example.com")

	resp := env.do(t, http.MethodGet, "/api/user/first-run", "", cookie)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body := decodeBody(t, resp); body["showWelcome"] != true {
		t.Fatalf("expected first read to show welcome, got %v", body)
	}

	resp = env.do(t, http.MethodGet, "/api/user/first-run", "", cookie)
	if body := decodeBody(t, resp); body["showWelcome"] != false {
		t.Fatalf("expected second read not to show welcome, got %v", body)
	}
}
