package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"gantt-planner/pkg/log"
)

const (
	// maxTrackedClients caps the limiter cache; idle clients expire
	// after limiterTTL and give their slot back.
	maxTrackedClients = 1000
	limiterTTL        = 5 * time.Minute
)

type Middleware struct {
	l        log.Logger
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// New creates the middleware set. requestsPerMin is the per-client
// rate budget enforced by RateLimit.
func New(l log.Logger, requestsPerMin int) Middleware {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return Middleware{
		l:        l,
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}
