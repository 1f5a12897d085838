package domain

import "context"

type Repository interface {
	Create(ctx context.Context, customer *Customer) error
	FindByID(ctx context.Context, orgID, id string) (*Customer, error)
	List(ctx context.Context, orgID string) ([]Customer, error)
	Update(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, orgID, id string) error
}
