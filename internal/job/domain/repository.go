package domain

import "context"

type Repository interface {
	Create(ctx context.Context, job *Job) error
	FindByID(ctx context.Context, orgID, id string) (*Job, error)
	List(ctx context.Context, orgID string) ([]Job, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, orgID, id string) error
}
