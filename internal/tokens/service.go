package tokens

import (
	"context"

	identitydomain "github.com/tradiehq/tradiehq/internal/identity/domain"
)

type Usage struct {
	Balance int64 `json:"balance"`
	Limit   int64 `json:"limit"`
	Low     bool  `json:"low"`
}

type Service interface {
	Usage(ctx context.Context, userID string) (*Usage, error)
}

type service struct {
	users identitydomain.Repository
}

func New(users identitydomain.Repository) Service {
	return &service{users: users}
}

func (s *service) Usage(ctx context.Context, userID string) (*Usage, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Usage{
		Balance: user.TokenBalance,
		Limit:   user.TokenLimit,
		Low:     IsLow(user.TokenBalance, user.TokenLimit),
	}, nil
}

// IsLow reports whether balance has dropped under 10% of the limit.
func IsLow(balance, limit int64) bool {
	if limit <= 0 {
		return false
	}
	return balance*10 < limit
}
