package domain

import "time"

type Organization struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Slug      string    `gorm:"uniqueIndex" json:"slug"`
	Type      string    `gorm:"default:trial" json:"type"`
	IsDemo    bool      `json:"is_demo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Organization) TableName() string { return "organizations" }

// OrganizationUser links a user to an organization. Onboarded here is the
// authoritative flag; users.onboarded is a denormalized mirror.
type OrganizationUser struct {
	UserID      string     `gorm:"primaryKey" json:"user_id"`
	OrgID       string     `gorm:"primaryKey" json:"org_id"`
	Role        string     `gorm:"default:owner" json:"role"`
	Onboarded   bool       `json:"onboarded"`
	OnboardedAt *time.Time `json:"onboarded_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (OrganizationUser) TableName() string { return "organization_users" }
