package domain

import "time"

const (
	StatusQuoted     = "quoted"
	StatusScheduled  = "scheduled"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
	StatusInvoiced   = "invoiced"
)

type Job struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	OrgID      string    `gorm:"index" json:"org_id"`
	CustomerID string    `gorm:"index" json:"customer_id"`
	Title      string    `json:"title"`
	Status     string    `gorm:"default:quoted" json:"status"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Job) TableName() string { return "jobs" }

func ValidStatus(s string) bool {
	switch s {
	case StatusQuoted, StatusScheduled, StatusInProgress, StatusDone, StatusInvoiced:
		return true
	}
	return false
}
