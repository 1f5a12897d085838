package domain

import (
	"context"
	"errors"

	"github.com/tradiehq/tradiehq/internal/session"
)

// DemoOrgID is the fixed sentinel organization every demo identity lands in.
const DemoOrgID = "demo-org-default"

var ErrInvalidCode = errors.New("invalid demo code")

type Service interface {
	// Redeem validates a demo code and, on success, provisions a fresh
	// ephemeral identity bound to the shared demo organization.
	Redeem(ctx context.Context, code string) (*Identity, error)
}

type Identity struct {
	UserID  string
	OrgID   string
	Profile session.Profile
}
