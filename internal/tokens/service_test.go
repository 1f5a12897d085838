package tokens

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	identitydomain "github.com/tradiehq/tradiehq/internal/identity/domain"
	identityrepo "github.com/tradiehq/tradiehq/internal/identity/repository"
	"github.com/tradiehq/tradiehq/pkg/db"
)

func TestIsLow(t *testing.T) {
	tests := []struct {
		balance, limit int64
		want           bool
	}{
		{balance: 100, limit: 1000, want: false},
		{balance: 99, limit: 1000, want: true},
		{balance: 0, limit: 1000, want: true},
		{balance: 0, limit: 0, want: false},
		{balance: 500, limit: 1000, want: false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsLow(tt.balance, tt.limit), "IsLow(%d, %d)", tt.balance, tt.limit)
	}
}

func TestUsage(t *testing.T) {
	gdb, err := db.NewTest()
	assert.NoError(t, err)
	assert.NoError(t, gdb.AutoMigrate(&identitydomain.User{}))
	assert.NoError(t, gdb.Create(&identitydomain.User{ID: "u1", TokenBalance: 50, TokenLimit: 1000}).Error)

	svc := New(identityrepo.New(gdb))
	usage, err := svc.Usage(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Equal(t, int64(50), usage.Balance)
	assert.Equal(t, int64(1000), usage.Limit)
	assert.True(t, usage.Low)

	_, err = svc.Usage(context.Background(), "missing")
	assert.ErrorIs(t, err, identitydomain.ErrUserNotFound)
}
