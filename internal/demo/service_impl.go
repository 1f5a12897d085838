package demo

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/oklog/ulid/v2"
	"github.com/tradiehq/tradiehq/internal/clock"
	"github.com/tradiehq/tradiehq/internal/demo/domain"
	identitydomain "github.com/tradiehq/tradiehq/internal/identity/domain"
	orgdomain "github.com/tradiehq/tradiehq/internal/organization/domain"
	"github.com/tradiehq/tradiehq/internal/session"
	"go.uber.org/zap"
)

const demoTokenBalance = 500

// demoProfile is the canned profile every fresh demo identity starts with.
var demoProfile = session.Profile{
	BusinessName: "Demo Trade Services",
	Trade:        "Plumber",
	Country:      "Australia",
	TokenBalance: demoTokenBalance,
}

type service struct {
	log   *zap.Logger
	clk   clock.Clock
	codes codeValidator
	users identitydomain.Repository
	orgs  orgdomain.Repository
}

func New(log *zap.Logger, clk clock.Clock, users identitydomain.Repository, orgs orgdomain.Repository) domain.Service {
	return &service{
		log:   log.Named("demo.service"),
		clk:   clk,
		codes: codeValidator{clk: clk},
		users: users,
		orgs:  orgs,
	}
}

func (s *service) Redeem(ctx context.Context, code string) (*domain.Identity, error) {
	if !s.codes.valid(code) {
		return nil, domain.ErrInvalidCode
	}

	now := s.clk.Now().UTC()
	entropy := ulid.Monotonic(rand.New(rand.NewSource(now.UnixNano())), 0)
	userID := fmt.Sprintf("demo-user-%d-%s", now.Unix(), ulid.MustNew(ulid.Timestamp(now), entropy))

	if err := s.users.Create(ctx, &identitydomain.User{
		ID:           userID,
		BusinessName: demoProfile.BusinessName,
		Trade:        demoProfile.Trade,
		Country:      demoProfile.Country,
		TokenBalance: demoProfile.TokenBalance,
		TokenLimit:   demoProfile.TokenBalance,
		IsDemo:       true,
	}); err != nil {
		return nil, err
	}

	if err := s.orgs.Upsert(ctx, &orgdomain.Organization{
		ID:     domain.DemoOrgID,
		Name:   "Demo Organization",
		Slug:   domain.DemoOrgID,
		Type:   "demo",
		IsDemo: true,
	}); err != nil {
		return nil, err
	}

	// Membership starts not onboarded so every redemption walks through
	// the onboarding flow, even when the org row already existed.
	if err := s.orgs.UpsertMember(ctx, &orgdomain.OrganizationUser{
		UserID: userID,
		OrgID:  domain.DemoOrgID,
		Role:   "owner",
	}); err != nil {
		return nil, err
	}

	s.log.Info("demo code redeemed", zap.String("user_id", userID))

	profile := demoProfile
	return &domain.Identity{
		UserID:  userID,
		OrgID:   domain.DemoOrgID,
		Profile: profile,
	}, nil
}
