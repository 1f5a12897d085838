package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	customerdomain "github.com/tradiehq/tradiehq/internal/customer/domain"
	"github.com/tradiehq/tradiehq/internal/job/domain"
)

type service struct {
	repo      domain.Repository
	customers customerdomain.Repository
	genID     *snowflake.Node
}

func New(repo domain.Repository, customers customerdomain.Repository, genID *snowflake.Node) domain.Service {
	return &service{repo: repo, customers: customers, genID: genID}
}

func (s *service) Create(ctx context.Context, orgID string, req domain.CreateRequest) (*domain.Job, error) {
	// The customer must belong to the same org.
	if _, err := s.customers.FindByID(ctx, orgID, req.CustomerID); err != nil {
		return nil, err
	}

	job := &domain.Job{
		ID:         s.genID.Generate().String(),
		OrgID:      orgID,
		CustomerID: req.CustomerID,
		Title:      strings.TrimSpace(req.Title),
		Status:     domain.StatusQuoted,
		Notes:      req.Notes,
	}
	if err := s.repo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *service) Get(ctx context.Context, orgID, id string) (*domain.Job, error) {
	return s.repo.FindByID(ctx, orgID, id)
}

func (s *service) List(ctx context.Context, orgID string) ([]domain.Job, error) {
	return s.repo.List(ctx, orgID)
}

func (s *service) Update(ctx context.Context, orgID, id string, req domain.UpdateRequest) (*domain.Job, error) {
	if !domain.ValidStatus(req.Status) {
		return nil, domain.ErrInvalidStatus
	}

	job := &domain.Job{
		ID:     id,
		OrgID:  orgID,
		Title:  strings.TrimSpace(req.Title),
		Status: req.Status,
		Notes:  req.Notes,
	}
	if err := s.repo.Update(ctx, job); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, orgID, id)
}

func (s *service) Delete(ctx context.Context, orgID, id string) error {
	return s.repo.Delete(ctx, orgID, id)
}
