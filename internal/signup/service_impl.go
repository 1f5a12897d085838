package signup

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	identitydomain "github.com/tradiehq/tradiehq/internal/identity/domain"
	orgdomain "github.com/tradiehq/tradiehq/internal/organization/domain"
	"github.com/tradiehq/tradiehq/internal/signup/domain"
	"go.uber.org/zap"
)

type service struct {
	log      *zap.Logger
	identity identitydomain.Service
	orgs     orgdomain.Repository
	genID    *snowflake.Node
}

func NewService(log *zap.Logger, identity identitydomain.Service, orgs orgdomain.Repository, genID *snowflake.Node) domain.Service {
	return &service{
		log:      log.Named("signup.service"),
		identity: identity,
		orgs:     orgs,
		genID:    genID,
	}
}

func (s *service) Signup(ctx context.Context, req domain.Request) (*domain.Result, error) {
	user, err := s.identity.Register(ctx, identitydomain.RegisterRequest{
		Email:        req.Email,
		Password:     req.Password,
		BusinessName: req.BusinessName,
	})
	if err != nil {
		return nil, err
	}

	orgName := strings.TrimSpace(req.BusinessName)
	if orgName == "" {
		orgName = "My Business"
	}

	orgID := s.genID.Generate().String()
	if err := s.orgs.Upsert(ctx, &orgdomain.Organization{
		ID:   orgID,
		Name: orgName,
		Slug: fmt.Sprintf("%s-%s", slug.Make(orgName), orgID),
	}); err != nil {
		return nil, err
	}

	// The owner membership starts not onboarded; the onboarding flow
	// flips it once the profile form is submitted.
	if err := s.orgs.UpsertMember(ctx, &orgdomain.OrganizationUser{
		UserID: user.ID,
		OrgID:  orgID,
		Role:   "owner",
	}); err != nil {
		return nil, err
	}

	res, err := s.identity.Login(ctx, identitydomain.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("signup completed", zap.String("user_id", user.ID), zap.String("org_id", orgID))

	return &domain.Result{
		User:       res.User,
		OrgID:      orgID,
		FirstLogin: res.FirstLogin,
	}, nil
}
