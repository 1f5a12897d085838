package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/tradiehq/tradiehq/internal/clock"
	"github.com/tradiehq/tradiehq/internal/config"
	customerdomain "github.com/tradiehq/tradiehq/internal/customer/domain"
	customerrepo "github.com/tradiehq/tradiehq/internal/customer/repository"
	customerservice "github.com/tradiehq/tradiehq/internal/customer/service"
	"github.com/tradiehq/tradiehq/internal/demo"
	identitydomain "github.com/tradiehq/tradiehq/internal/identity/domain"
	identityrepo "github.com/tradiehq/tradiehq/internal/identity/repository"
	identityservice "github.com/tradiehq/tradiehq/internal/identity/service"
	jobdomain "github.com/tradiehq/tradiehq/internal/job/domain"
	jobrepo "github.com/tradiehq/tradiehq/internal/job/repository"
	jobservice "github.com/tradiehq/tradiehq/internal/job/service"
	"github.com/tradiehq/tradiehq/internal/market"
	"github.com/tradiehq/tradiehq/internal/onboarding"
	orgdomain "github.com/tradiehq/tradiehq/internal/organization/domain"
	orgrepo "github.com/tradiehq/tradiehq/internal/organization/repository"
	"github.com/tradiehq/tradiehq/internal/session"
	"github.com/tradiehq/tradiehq/internal/signup"
	"github.com/tradiehq/tradiehq/internal/tokens"
	"github.com/tradiehq/tradiehq/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type testEnv struct {
	srv   *Server
	store *session.MemoryStore
	clk   *clock.FakeClock
	gdb   *gorm.DB
}

func newTestEnv(t *testing.T, cfg config.Config) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "test-secret"
	}
	if cfg.TokenLimitDefault == 0 {
		cfg.TokenLimitDefault = 1000
	}

	gdb, err := db.NewTest()
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := gdb.AutoMigrate(
		&identitydomain.User{},
		&orgdomain.Organization{},
		&orgdomain.OrganizationUser{},
		&customerdomain.Customer{},
		&jobdomain.Job{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	clk := clock.NewFakeClock(time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC))
	log := zap.NewNop()
	store := session.NewMemoryStore(clk, log)

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}

	users := identityrepo.New(gdb)
	orgs := orgrepo.New(gdb)
	customers := customerrepo.New(gdb)
	jobs := jobrepo.New(gdb)
	identitySvc := identityservice.New(log, cfg, users, node)

	engine := gin.New()
	engine.Use(ErrorHandlingMiddleware())

	srv := NewServer(ServerParams{
		Gin:           engine,
		Cfg:           cfg,
		Log:           log,
		Store:         store,
		Sessions:      session.NewManager(cfg),
		IdentitySvc:   identitySvc,
		Orgs:          orgs,
		OnboardingSvc: onboarding.New(log, market.ParseLock(cfg.MarketLock), users, orgs),
		DemoSvc:       demo.New(log, clk, users, orgs),
		SignupSvc:     signup.NewService(log, identitySvc, orgs, node),
		CustomerSvc:   customerservice.New(customers, node),
		JobSvc:        jobservice.New(jobs, customers, node),
		TokensSvc:     tokens.New(users),
	})

	return &testEnv{srv: srv, store: store, clk: clk, gdb: gdb}
}

func (e *testEnv) do(t *testing.T, method, path, body, cookie string) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, buf)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	resp := httptest.NewRecorder()
	e.srv.Engine().ServeHTTP(resp, req)
	return resp
}

func sessionCookie(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	for _, c := range resp.Result().Cookies() {
		if c.Name == session.DefaultCookieName {
			return c.Name + "=" + c.Value
		}
	}
	t.Fatal("expected session cookie in response")
	return ""
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", resp.Body.String(), err)
	}
	return out
}

// signupAndLogin walks the signup funnel and returns the session cookie.
func (e *testEnv) signup(t *testing.T, email string) string {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/api/auth/signup",
		`{"email":"`+email+`","password":"hunter2hunter2","businessName":"Test Trade Co"}`, "")
	if resp.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	return sessionCookie(t, resp)
}

func (e *testEnv) onboard(t *testing.T, cookie string) {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/api/user/onboarding",
		`{"businessName":"Test Trade Co","trade":"Plumber","serviceArea":"Brisbane","country":"Australia","isGstRegistered":true}`, cookie)
	if resp.Code != http.StatusOK {
		t.Fatalf("onboarding: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
}
