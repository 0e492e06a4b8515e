package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/ndewijer/VibeInvestor-Backend/internal/api/response"
	"github.com/ndewijer/VibeInvestor-Backend/internal/metrics"
)

// limiterIdleTTL is how long an unused limiter is kept. A limiter idle for a
// full refill period is indistinguishable from a new one.
const limiterIdleTTL = 2 * time.Minute

type trackedLimiter struct {
	*rate.Limiter
	lastSeen time.Time
}

// RateLimiter allows perMinute requests per minute with a burst of the same
// size, both per user and per client address. A request must pass both, so
// switching X-User-ID does not reset the budget of a client. Must run after
// Identity and RealIP.
type RateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*trackedLimiter
	lastSweep time.Time
	limit     rate.Limit
	burst     int
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewRateLimiter creates a per-user and per-address limiter. perMinute <= 0 disables limiting.
func NewRateLimiter(perMinute int, m *metrics.Metrics) *RateLimiter {
	rl := &RateLimiter{
		limiters: make(map[string]*trackedLimiter),
		metrics:  m,
		now:      time.Now,
	}
	if perMinute > 0 {
		rl.limit = rate.Every(time.Minute / time.Duration(perMinute))
		rl.burst = perMinute
	}
	return rl
}

// allow takes one token from every key's limiter. Tokens are reserved
// together so a rejected request costs nothing.
func (rl *RateLimiter) allow(keys ...string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	reservations := make([]*rate.Reservation, 0, len(keys))
	for _, key := range keys {
		l, ok := rl.limiters[key]
		if !ok {
			l = &trackedLimiter{Limiter: rate.NewLimiter(rl.limit, rl.burst)}
			rl.limiters[key] = l
		}
		l.lastSeen = now

		res := l.ReserveN(now, 1)
		if !res.OK() || res.DelayFrom(now) > 0 {
			res.CancelAt(now)
			for _, taken := range reservations {
				taken.CancelAt(now)
			}
			return false
		}
		reservations = append(reservations, res)
	}
	return true
}

// sweep drops limiters unused for limiterIdleTTL. Runs at most once per TTL.
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < limiterIdleTTL {
		return
	}
	rl.lastSweep = now
	for key, l := range rl.limiters {
		if now.Sub(l.lastSeen) >= limiterIdleTTL {
			delete(rl.limiters, key)
		}
	}
}

func clientAddr(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// Handler rejects requests over the limit with 429.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.burst == 0 {
			next.ServeHTTP(w, r)
			return
		}

		userID, _ := UserIDFromContext(r.Context())
		if !rl.allow("user:"+strconv.FormatInt(userID, 10), "addr:"+clientAddr(r)) {
			rl.metrics.ObserveRateLimited()
			w.Header().Set("Retry-After", "60")
			response.RespondError(w, http.StatusTooManyRequests, "too many requests", "")
			return
		}

		next.ServeHTTP(w, r)
	})
}
