package server

import (
	"net/http"
	"testing"

	"github.com/tradiehq/tradiehq/internal/config"
	orgdomain "github.com/tradiehq/tradiehq/internal/organization/domain"
)

func TestOnboardingRequiresAuth(t *testing.T) {
	env := newTestEnv(t, config.Config{Environment: "development"})

	resp := env.do(t, http.MethodPost, "/api/user/onboarding",
		`{"businessName":"X","trade":"Plumber","country":"Australia"}`, "")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}

	var count int64
	env.gdb.Model(&orgdomain.OrganizationUser{}).Count(&count)
	if count != 0 {
		t.Fatalf("unauthenticated request must not write, got %d rows", count)
	}
}

func TestOnboardingCompletesAndMirrorsSession(t *testing.T) {
	env := newTestEnv(t, config.Config{Environment: "development"})
	cookie := env.signup(t, "sam@example.com")

	resp := env.do(t, http.MethodPost, "/api/user/onboarding",
		`{"businessName":"Test Trade Co","trade":"Electrician","serviceArea":"Perth","country":"AU","isGstRegistered":false}`, cookie)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	body := decodeBody(t, resp)
	if body["ok"] != true || body["organizationOnboarded"] != true {
		t.Fatalf("unexpected body %v", body)
	}
	if body["redirect"] != "/dashboard" {
		t.Fatalf("expected dashboard redirect, got %v", body)
	}

	// Session mirror is visible on the very next read.
	resp = env.do(t, http.MethodGet, "/api/auth/user", "", cookie)
	if b := decodeBody(t, resp); b["isOnboarded"] != true {
		t.Fatalf("expected onboarded session mirror, got %v", b)
	}
}

func TestOnboardingMarketLockRejection(t *testing.T) {
	env := newTestEnv(t, config.Config{Environment: "development", MarketLock: "NZ"})
	cookie := env.signup(t, "sam@example.com")

	resp := env.do(t, http.MethodPost, "/api/user/onboarding",
		`{"businessName":"Boulangerie","trade":"Baker","country":"France"}`, cookie)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}

	body := decodeBody(t, resp)
	errObj := body["error"].(map[string]any)
	fields := errObj["errors"].([]any)
	first := fields[0].(map[string]any)
	if first["field"] != "country" {
		t.Fatalf("expected country-tagged error, got %v", body)
	}

	// No membership was flipped.
	var member orgdomain.OrganizationUser
	if err := env.gdb.First(&member).Error; err != nil {
		t.Fatalf("membership row: %v", err)
	}
	if member.Onboarded {
		t.Fatal("rejected onboarding must not flip membership")
	}

	// And the session stays pre-onboarding.
	resp = env.do(t, http.MethodGet, "/api/auth/user", "", cookie)
	if b := decodeBody(t, resp); b["isOnboarded"] != false {
		t.Fatalf("expected pending session, got %v", b)
	}
}

func TestOnboardingIdempotentResubmission(t *testing.T) {
	env := newTestEnv(t, config.Config{Environment: "development"})
	cookie := env.signup(t, "sam@example.com")

	env.onboard(t, cookie)
	env.onboard(t, cookie)

	var orgCount, memberCount int64
	env.gdb.Model(&orgdomain.Organization{}).Count(&orgCount)
	env.gdb.Model(&orgdomain.OrganizationUser{}).Count(&memberCount)
	if orgCount != 1 || memberCount != 1 {
		t.Fatalf("expected single rows after resubmission, got orgs=%d members=%d", orgCount, memberCount)
	}

	var member orgdomain.OrganizationUser
	if err := env.gdb.First(&member).Error; err != nil {
		t.Fatalf("membership row: %v", err)
	}
	if !member.Onboarded {
		t.Fatal("expected membership to stay onboarded")
	}
}
