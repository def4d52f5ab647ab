package server

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/osse101/Greenhouse_Go/internal/auth"
	"github.com/osse101/Greenhouse_Go/internal/domain"
	"github.com/osse101/Greenhouse_Go/internal/logger"
)

type accountLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// AccountRateLimiter is a per-account token bucket for mutating routes.
// It sits in front of the per-plant cooldown and only absorbs bursts.
type AccountRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*accountLimiter
	limit    rate.Limit
	burst    int
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

// NewAccountRateLimiter allows rps requests per second with the given burst per account
func NewAccountRateLimiter(rps float64, burst int) *AccountRateLimiter {
	return &AccountRateLimiter{
		limiters: make(map[string]*accountLimiter),
		limit:    rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
}

// Start evicts idle buckets until Stop is called
func (l *AccountRateLimiter) Start() {
	go func() {
		ticker := time.NewTicker(limiterCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				l.evictIdle(l.now().Add(-limiterIdleTTL))
			case <-l.stop:
				return
			}
		}
	}()
}

// Stop ends the cleanup loop
func (l *AccountRateLimiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

func (l *AccountRateLimiter) evictIdle(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for id, al := range l.limiters {
		if al.lastSeen.Before(cutoff) {
			delete(l.limiters, id)
		}
	}
}

// reserve reports whether the account may proceed, and otherwise how long to wait
func (l *AccountRateLimiter) reserve(accountID string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	al, ok := l.limiters[accountID]
	if !ok {
		al = &accountLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[accountID] = al
	}
	al.lastSeen = now

	res := al.limiter.ReserveN(now, 1)
	if !res.OK() {
		return false, time.Second
	}
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// Middleware throttles authenticated requests; anonymous requests pass through
// to be rejected by the handler.
func (l *AccountRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := auth.AccountIDFromContext(r.Context())
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		if allowed, wait := l.reserve(accountID); !allowed {
			logger.FromContext(r.Context()).Info(LogMsgAccountThrottled, "account_id", accountID, "path", r.URL.Path)
			w.Header().Set(HeaderRetryAfter, strconv.Itoa(int(math.Ceil(wait.Seconds()))))
			writeError(w, http.StatusTooManyRequests, domain.KindRateLimited, ErrMsgSlowDown)
			return
		}
		next.ServeHTTP(w, r)
	})
}
