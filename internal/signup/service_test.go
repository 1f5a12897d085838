package signup

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/tradiehq/tradiehq/internal/config"
	identitydomain "github.com/tradiehq/tradiehq/internal/identity/domain"
	identityrepo "github.com/tradiehq/tradiehq/internal/identity/repository"
	identityservice "github.com/tradiehq/tradiehq/internal/identity/service"
	orgdomain "github.com/tradiehq/tradiehq/internal/organization/domain"
	orgrepo "github.com/tradiehq/tradiehq/internal/organization/repository"
	"github.com/tradiehq/tradiehq/internal/signup/domain"
	"github.com/tradiehq/tradiehq/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	gdb, err := db.NewTest()
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := gdb.AutoMigrate(&identitydomain.User{}, &orgdomain.Organization{}, &orgdomain.OrganizationUser{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}

	identitySvc := identityservice.New(zap.NewNop(), config.Config{TokenLimitDefault: 1000}, identityrepo.New(gdb), node)
	return NewService(zap.NewNop(), identitySvc, orgrepo.New(gdb), node), gdb
}

func TestSignup(t *testing.T) {
	svc, gdb := newTestService(t)

	res, err := svc.Signup(context.Background(), domain.Request{
		Email:        "kim@example.com",
		Password:     "hunter2hunter2",
		BusinessName: "Kim's Roofing",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if !res.FirstLogin {
		t.Fatal("expected first login")
	}

	var org orgdomain.Organization
	if err := gdb.First(&org, "id = ?", res.OrgID).Error; err != nil {
		t.Fatalf("org row: %v", err)
	}
	if org.Type != "trial" {
		t.Fatalf("expected trial org, got %q", org.Type)
	}
	if org.Slug == "" {
		t.Fatal("expected slug to be set")
	}

	var member orgdomain.OrganizationUser
	if err := gdb.First(&member, "user_id = ? AND org_id = ?", res.User.ID, res.OrgID).Error; err != nil {
		t.Fatalf("membership row: %v", err)
	}
	if member.Onboarded {
		t.Fatal("fresh signup membership must not be onboarded")
	}
	if member.Role != "owner" {
		t.Fatalf("expected owner role, got %q", member.Role)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)

	req := domain.Request{Email: "dup@example.com", Password: "hunter2hunter2"}
	if _, err := svc.Signup(context.Background(), req); err != nil {
		t.Fatalf("signup: %v", err)
	}
	if _, err := svc.Signup(context.Background(), req); err != identitydomain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}
