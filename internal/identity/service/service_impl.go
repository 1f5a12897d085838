package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/tradiehq/tradiehq/internal/config"
	"github.com/tradiehq/tradiehq/internal/identity/domain"
	"go.uber.org/zap"
)

const minPasswordLength = 8

type Service struct {
	log   *zap.Logger
	repo  domain.Repository
	genID *snowflake.Node

	tokenLimitDefault int64
}

func New(log *zap.Logger, cfg config.Config, repo domain.Repository, genID *snowflake.Node) domain.Service {
	return &Service{
		log:               log.Named("identity.service"),
		repo:              repo,
		genID:             genID,
		tokenLimitDefault: cfg.TokenLimitDefault,
	}
}

func (s *Service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if len(strings.TrimSpace(req.Password)) < minPasswordLength {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           s.genID.Generate().String(),
		Email:        &email,
		PasswordHash: &hashed,
		BusinessName: strings.TrimSpace(req.BusinessName),
		TokenBalance: s.tokenLimitDefault,
		TokenLimit:   s.tokenLimitDefault,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if strings.TrimSpace(req.Password) == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.PasswordHash == nil || !verifyPassword(req.Password, *user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	firstLogin := user.LastLoginAt == nil
	now := time.Now().UTC()
	if err := s.repo.UpdateFields(ctx, user.ID, map[string]any{
		"last_login_at": &now,
		"updated_at":    now,
	}); err != nil {
		// Login still succeeds; the first-run flag just fires again.
		s.log.Warn("failed to record login time", zap.String("user_id", user.ID), zap.Error(err))
	}
	user.LastLoginAt = &now

	return &domain.LoginResult{
		User:       user,
		FirstLogin: firstLogin,
	}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, strings.TrimSpace(id))
}

func normalizeEmail(raw string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(addr.Address)), nil
}
