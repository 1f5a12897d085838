package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/tradiehq/tradiehq/internal/config"
	"github.com/tradiehq/tradiehq/internal/identity/domain"
	"github.com/tradiehq/tradiehq/internal/identity/repository"
	"github.com/tradiehq/tradiehq/pkg/db"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	gdb, err := db.NewTest()
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := gdb.AutoMigrate(&domain.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}

	cfg := config.Config{TokenLimitDefault: 1000}
	return New(zap.NewNop(), cfg, repository.New(gdb), node)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, domain.RegisterRequest{
		Email:        "Dave@Example.COM",
		Password:     "hunter2hunter2",
		BusinessName: "Dave's Plumbing",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email == nil || *user.Email != "dave@example.com" {
		t.Fatalf("expected lowercased email, got %v", user.Email)
	}
	if user.TokenBalance != 1000 || user.TokenLimit != 1000 {
		t.Fatalf("expected token defaults applied, got balance=%d limit=%d", user.TokenBalance, user.TokenLimit)
	}

	res, err := svc.Login(ctx, domain.LoginRequest{Email: "dave@example.com", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !res.FirstLogin {
		t.Fatal("expected first login to be flagged")
	}
	if res.User.LastLoginAt == nil {
		t.Fatal("expected last login timestamp to be recorded")
	}

	res, err = svc.Login(ctx, domain.LoginRequest{Email: "dave@example.com", Password: "hunter2hunter2"})
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if res.FirstLogin {
		t.Fatal("expected second login not to be flagged as first")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	req := domain.RegisterRequest{Email: "dup@example.com", Password: "hunter2hunter2"}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register(ctx, req); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestRegisterRejectsWeakInput(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, domain.RegisterRequest{Email: "not-an-email", Password: "hunter2hunter2"}); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for bad email, got %v", err)
	}
	if _, err := svc.Register(ctx, domain.RegisterRequest{Email: "ok@example.com", Password: "short"}); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for short password, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, domain.RegisterRequest{Email: "amy@example.com", Password: "hunter2hunter2"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Login(ctx, domain.LoginRequest{Email: "amy@example.com", Password: "wrongwrongwrong"}); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, domain.LoginRequest{Email: "nobody@example.com", Password: "hunter2hunter2"}); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}
