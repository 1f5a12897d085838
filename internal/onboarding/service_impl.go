package onboarding

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"
	identitydomain "github.com/tradiehq/tradiehq/internal/identity/domain"
	"github.com/tradiehq/tradiehq/internal/market"
	"github.com/tradiehq/tradiehq/internal/onboarding/domain"
	orgdomain "github.com/tradiehq/tradiehq/internal/organization/domain"
	"go.uber.org/zap"
)

type service struct {
	log   *zap.Logger
	lock  market.Lock
	users identitydomain.Repository
	orgs  orgdomain.Repository
}

func New(log *zap.Logger, lock market.Lock, users identitydomain.Repository, orgs orgdomain.Repository) domain.Service {
	return &service{
		log:   log.Named("onboarding.service"),
		lock:  lock,
		users: users,
		orgs:  orgs,
	}
}

// Complete runs the one-time onboarding transition for (userID, orgID).
// The market gate runs before any write; every database step after it is
// idempotent, so a duplicate submission is safe.
func (s *service) Complete(ctx context.Context, userID, orgID string, req domain.Request) (*domain.Result, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(orgID) == "" {
		return nil, domain.ErrMissingIdentity
	}

	country := market.Normalize(req.Country)
	if !s.lock.Allowed(country) {
		return nil, domain.ErrCountryNotAllowed
	}

	businessName := strings.TrimSpace(req.BusinessName)

	// The org usually exists already (signup or demo provisioning made
	// it); the upsert covers sessions whose org row never landed.
	if err := s.orgs.Upsert(ctx, &orgdomain.Organization{
		ID:   orgID,
		Name: businessName,
		Slug: fmt.Sprintf("%s-%s", slug.Make(businessName), orgID),
	}); err != nil {
		return nil, err
	}

	if err := s.orgs.UpsertMember(ctx, &orgdomain.OrganizationUser{
		UserID: userID,
		OrgID:  orgID,
		Role:   "owner",
	}); err != nil {
		return nil, err
	}
	if err := s.orgs.MarkMemberOnboarded(ctx, userID, orgID); err != nil {
		return nil, err
	}

	// Profile fields are written unconditionally; a repeat submission
	// simply overwrites them with the latest values.
	if err := s.users.UpdateFields(ctx, userID, map[string]any{
		"business_name":  businessName,
		"trade":          strings.TrimSpace(req.Trade),
		"service_area":   strings.TrimSpace(req.ServiceArea),
		"country":        country,
		"gst_registered": req.GSTRegistered,
		"onboarded":      true,
		"updated_at":     time.Now().UTC(),
	}); err != nil {
		return nil, err
	}

	s.log.Info("onboarding completed",
		zap.String("user_id", userID),
		zap.String("org_id", orgID),
		zap.String("country", country),
	)

	return &domain.Result{
		UserID:   userID,
		OrgID:    orgID,
		Redirect: "/dashboard",
	}, nil
}
