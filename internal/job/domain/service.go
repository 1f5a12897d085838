package domain

import "context"

type Service interface {
	Create(ctx context.Context, orgID string, req CreateRequest) (*Job, error)
	Get(ctx context.Context, orgID, id string) (*Job, error)
	List(ctx context.Context, orgID string) ([]Job, error)
	Update(ctx context.Context, orgID, id string, req UpdateRequest) (*Job, error)
	Delete(ctx context.Context, orgID, id string) error
}

type CreateRequest struct {
	CustomerID string `json:"customerId" binding:"required"`
	Title      string `json:"title" binding:"required"`
	Notes      string `json:"notes"`
}

type UpdateRequest struct {
	Title  string `json:"title" binding:"required"`
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}
