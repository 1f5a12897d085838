package domain

import (
	"context"

	identitydomain "github.com/tradiehq/tradiehq/internal/identity/domain"
)

type Service interface {
	// Signup registers a new account, provisions its trial organization
	// and logs the fresh user in.
	Signup(ctx context.Context, req Request) (*Result, error)
}

type Request struct {
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
	BusinessName string `json:"businessName"`
}

type Result struct {
	User       *identitydomain.User
	OrgID      string
	FirstLogin bool
}
