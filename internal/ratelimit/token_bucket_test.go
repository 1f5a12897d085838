package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/tradiehq/tradiehq/internal/config"
)

func TestBucketTTL(t *testing.T) {
	tests := []struct {
		rate  float64
		burst int
		want  time.Duration
	}{
		{rate: 1, burst: 5, want: 10 * time.Second},
		{rate: 10, burst: 5, want: 1 * time.Second},
		{rate: 0.5, burst: 3, want: 12 * time.Second},
		{rate: 0, burst: 5, want: time.Second},
	}
	for _, tt := range tests {
		if got := bucketTTL(tt.rate, tt.burst); got != tt.want {
			t.Errorf("bucketTTL(%v, %d) = %v, want %v", tt.rate, tt.burst, got, tt.want)
		}
	}
}

func TestDisabledAdvisorLimiterAllows(t *testing.T) {
	limiter, err := NewAdvisorLimiter(config.Config{})
	if err != nil {
		t.Fatalf("new limiter: %v", err)
	}
	if limiter.Enabled() {
		t.Fatal("expected disabled limiter")
	}
	res, err := limiter.Allow(context.Background(), "u1")
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if !res.Allowed {
		t.Fatal("disabled limiter must allow")
	}
}

func TestNilTokenBucketRejects(t *testing.T) {
	var bucket *TokenBucket
	if _, err := bucket.Allow(context.Background(), "k", 1, 1); err == nil {
		t.Fatal("expected error from unconfigured bucket")
	}
}
