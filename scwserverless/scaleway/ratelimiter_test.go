package scaleway

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestObserveAdjustsLimiter(t *testing.T) {
	r := newRateLimiter(600)
	assert.Equal(t, rate.Limit(10), r.limiter.Limit())
	assert.Equal(t, 60, r.limiter.Burst())

	header := http.Header{}
	header.Set("X-RateLimit-Limit", "120")
	header.Set("X-RateLimit-Remaining", "80")
	r.Observe(context.Background(), header)

	assert.Equal(t, rate.Limit(2), r.limiter.Limit())
	assert.Equal(t, 12, r.limiter.Burst())
}

func TestObserveIgnoresMissingOrBadHeaders(t *testing.T) {
	r := newRateLimiter(300)
	want := r.limiter.Limit()

	r.Observe(context.Background(), http.Header{})

	header := http.Header{}
	header.Set("X-RateLimit-Limit", "not-a-number")
	r.Observe(context.Background(), header)

	assert.Equal(t, want, r.limiter.Limit())
}

func TestObserveDepletedQuotaHonorsContext(t *testing.T) {
	r := newRateLimiter(300)
	header := http.Header{}
	header.Set("X-RateLimit-Limit", "60")
	header.Set("X-RateLimit-Remaining", "0")
	header.Set("X-RateLimit-Reset", "3600")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// must return immediately instead of sleeping out the reset window
	r.Observe(ctx, header)
}
