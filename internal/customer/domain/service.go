package domain

import "context"

type Service interface {
	Create(ctx context.Context, orgID string, req CreateRequest) (*Customer, error)
	Get(ctx context.Context, orgID, id string) (*Customer, error)
	List(ctx context.Context, orgID string) ([]Customer, error)
	Update(ctx context.Context, orgID, id string, req UpdateRequest) (*Customer, error)
	Delete(ctx context.Context, orgID, id string) error
}

type CreateRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

type UpdateRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}
