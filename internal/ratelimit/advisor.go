package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	redis "github.com/redis/go-redis/v9"
	"github.com/tradiehq/tradiehq/internal/config"
)

const keyAdvisorUser = "advisor:chat:user:%s"

// AdvisorLimiter throttles advisor chat calls per user. A nil limiter
// (rate limiting disabled) allows everything.
type AdvisorLimiter struct {
	enabled bool

	bucket *TokenBucket

	rate  float64
	burst int
}

func NewAdvisorLimiter(cfg config.Config) (*AdvisorLimiter, error) {
	limitCfg := cfg.RateLimit
	if !limitCfg.Enabled {
		return nil, nil
	}

	addr := strings.TrimSpace(limitCfg.RedisAddr)
	if addr == "" {
		return nil, errors.New("rate limit redis addr is required")
	}
	if limitCfg.AdvisorRate <= 0 || limitCfg.AdvisorBurst <= 0 {
		return nil, errors.New("advisor rate limit must be positive")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: strings.TrimSpace(limitCfg.RedisPassword),
		DB:       limitCfg.RedisDB,
	})

	return &AdvisorLimiter{
		enabled: true,
		bucket:  NewTokenBucket(client),
		rate:    limitCfg.AdvisorRate,
		burst:   limitCfg.AdvisorBurst,
	}, nil
}

func (l *AdvisorLimiter) Enabled() bool {
	return l != nil && l.enabled
}

func (l *AdvisorLimiter) Allow(ctx context.Context, userID string) (*Result, error) {
	if !l.Enabled() {
		return &Result{Allowed: true}, nil
	}
	return l.bucket.Allow(ctx, fmt.Sprintf(keyAdvisorUser, strings.TrimSpace(userID)), l.rate, l.burst)
}
