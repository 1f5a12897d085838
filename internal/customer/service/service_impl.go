package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/tradiehq/tradiehq/internal/customer/domain"
)

type service struct {
	repo  domain.Repository
	genID *snowflake.Node
}

func New(repo domain.Repository, genID *snowflake.Node) domain.Service {
	return &service{repo: repo, genID: genID}
}

func (s *service) Create(ctx context.Context, orgID string, req domain.CreateRequest) (*domain.Customer, error) {
	customer := &domain.Customer{
		ID:      s.genID.Generate().String(),
		OrgID:   orgID,
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Address: strings.TrimSpace(req.Address),
		Notes:   req.Notes,
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *service) Get(ctx context.Context, orgID, id string) (*domain.Customer, error) {
	return s.repo.FindByID(ctx, orgID, id)
}

func (s *service) List(ctx context.Context, orgID string) ([]domain.Customer, error) {
	return s.repo.List(ctx, orgID)
}

func (s *service) Update(ctx context.Context, orgID, id string, req domain.UpdateRequest) (*domain.Customer, error) {
	customer := &domain.Customer{
		ID:      id,
		OrgID:   orgID,
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Address: strings.TrimSpace(req.Address),
		Notes:   req.Notes,
	}
	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, orgID, id)
}

func (s *service) Delete(ctx context.Context, orgID, id string) error {
	return s.repo.Delete(ctx, orgID, id)
}
