package domain

import "context"

type Repository interface {
	// Upsert inserts the organization if absent and is a no-op when a row
	// with the same ID already exists.
	Upsert(ctx context.Context, org *Organization) error
	FindByID(ctx context.Context, id string) (*Organization, error)

	// UpsertMember inserts the membership if absent and is a no-op when the
	// (user, org) pair already exists.
	UpsertMember(ctx context.Context, member *OrganizationUser) error
	FindMember(ctx context.Context, userID, orgID string) (*OrganizationUser, error)
	// ListMemberships returns the user's memberships, oldest first.
	ListMemberships(ctx context.Context, userID string) ([]OrganizationUser, error)
	MarkMemberOnboarded(ctx context.Context, userID, orgID string) error
}
