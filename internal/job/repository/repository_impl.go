package repository

import (
	"context"
	"errors"

	"github.com/tradiehq/tradiehq/internal/job/domain"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.Repository {
	return &repo{db: db}
}

func (r *repo) Create(ctx context.Context, job *domain.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *repo) FindByID(ctx context.Context, orgID, id string) (*domain.Job, error) {
	var job domain.Job
	err := r.db.WithContext(ctx).
		Where("org_id = ? AND id = ?", orgID, id).
		First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *repo) List(ctx context.Context, orgID string) ([]domain.Job, error) {
	var jobs []domain.Job
	err := r.db.WithContext(ctx).
		Where("org_id = ?", orgID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *repo) Update(ctx context.Context, job *domain.Job) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Job{}).
		Where("org_id = ? AND id = ?", job.OrgID, job.ID).
		Updates(map[string]any{
			"title":  job.Title,
			"status": job.Status,
			"notes":  job.Notes,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, orgID, id string) error {
	tx := r.db.WithContext(ctx).
		Where("org_id = ? AND id = ?", orgID, id).
		Delete(&domain.Job{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}
