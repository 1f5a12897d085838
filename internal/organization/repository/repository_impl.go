package repository

import (
	"context"
	"errors"
	"time"

	"github.com/tradiehq/tradiehq/internal/organization/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct {
	db *gorm.DB
}

func New(db *gorm.DB) domain.Repository {
	return &repo{db: db}
}

func (r *repo) Upsert(ctx context.Context, org *domain.Organization) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(org).Error
}

func (r *repo) FindByID(ctx context.Context, id string) (*domain.Organization, error) {
	var org domain.Organization
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&org).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrOrgNotFound
	}
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *repo) UpsertMember(ctx context.Context, member *domain.OrganizationUser) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "org_id"}},
			DoNothing: true,
		}).
		Create(member).Error
}

func (r *repo) FindMember(ctx context.Context, userID, orgID string) (*domain.OrganizationUser, error) {
	var member domain.OrganizationUser
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND org_id = ?", userID, orgID).
		First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrMembershipNotFound
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *repo) ListMemberships(ctx context.Context, userID string) ([]domain.OrganizationUser, error) {
	var members []domain.OrganizationUser
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&members).Error
	return members, err
}

// MarkMemberOnboarded flips the membership to onboarded exactly once.
// Already-onboarded rows are left untouched so onboarded_at is stable.
func (r *repo) MarkMemberOnboarded(ctx context.Context, userID, orgID string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&domain.OrganizationUser{}).
		Where("user_id = ? AND org_id = ? AND onboarded = ?", userID, orgID, false).
		Updates(map[string]any{
			"onboarded":    true,
			"onboarded_at": &now,
			"updated_at":   now,
		}).Error
}
