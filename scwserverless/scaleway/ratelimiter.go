package scaleway

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/hashicorp/terraform-plugin-log/tflog"
	"golang.org/x/time/rate"
)

const (
	limitPeriod = 60.0
	burstPeriod = 10.0
)

type rateLimiter struct {
	limiter *rate.Limiter
}

func newRateLimiter(limit int) *rateLimiter {
	return &rateLimiter{
		limiter: rate.NewLimiter(rate.Limit(limit/limitPeriod), limit/burstPeriod),
	}
}

// Wait blocks until the limiter allows the next request.
func (r *rateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}

// Observe adjusts the limiter from the X-RateLimit headers the API attaches
// to every response. A depleted quota blocks until the reported reset.
func (r *rateLimiter) Observe(ctx context.Context, header http.Header) {
	limitHeader := header.Get("X-RateLimit-Limit")
	if limitHeader == "" {
		return
	}

	limit, err := strconv.Atoi(limitHeader)
	if err != nil || limit <= 0 {
		tflog.Debug(ctx, "ignoring unparsable rate limit header", map[string]any{
			"X-RateLimit-Limit": limitHeader,
		})
		return
	}
	remaining, _ := strconv.Atoi(header.Get("X-RateLimit-Remaining"))
	resetSeconds, _ := strconv.Atoi(header.Get("X-RateLimit-Reset"))
	reset := time.Duration(resetSeconds) * time.Second

	r.limiter.SetLimit(rate.Limit(limit / limitPeriod))
	r.limiter.SetBurst(limit / burstPeriod)
	if remaining == 0 && reset > 0 {
		tflog.Warn(ctx, "rate limit exceeded", map[string]any{
			"limit":     limit,
			"remaining": remaining,
			"reset":     reset,
		})
		select {
		case <-ctx.Done():
			return
		case <-time.After(reset + 1*time.Second):
		}
	}
	tflog.Debug(ctx, "rate limit updated", map[string]any{
		"limit":     limit,
		"remaining": remaining,
		"reset":     reset,
	})
}
