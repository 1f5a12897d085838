package domain

import "context"

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

type RegisterRequest struct {
	Email        string
	Password     string
	BusinessName string
}

type LoginRequest struct {
	Email    string
	Password string
}

// LoginResult carries the authenticated user plus whether this is the
// first credentialed login ever seen for the account.
type LoginResult struct {
	User       *User
	FirstLogin bool
}
