package domain

import "context"

type Service interface {
	Complete(ctx context.Context, userID, orgID string, req Request) (*Result, error)
}

type Request struct {
	BusinessName  string `json:"businessName" binding:"required"`
	Trade         string `json:"trade" binding:"required"`
	ServiceArea   string `json:"serviceArea"`
	Country       string `json:"country" binding:"required"`
	GSTRegistered bool   `json:"isGstRegistered"`
}

type Result struct {
	UserID   string
	OrgID    string
	Redirect string
}
