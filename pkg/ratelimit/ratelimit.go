package ratelimit

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/VictorSmolin/rafflehub/pkg/auth"
	"github.com/VictorSmolin/rafflehub/pkg/utils"
)

const maxTrackedKeys = 8192

// Limiter counts requests per caller in a bounded TTL cache, so a
// long-running process never accumulates an unbounded per-user map. Guests
// are keyed by remote address.
type Limiter struct {
	mu     sync.Mutex
	counts *expirable.LRU[string, int]
	limit  int
}

func New(limit int, window time.Duration) *Limiter {
	return &Limiter{
		counts: expirable.NewLRU[string, int](maxTrackedKeys, nil, window),
		limit:  limit,
	}
}

// Allow records one request for key and reports whether it is within the
// limit for the current window.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	count, _ := l.counts.Get(key)
	if count >= l.limit {
		return false
	}
	l.counts.Add(key, count+1)
	return true
}

// Middleware rejects callers above the limit with 429.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.RemoteAddr
		if userID := auth.UserID(r.Context()); userID != 0 {
			key = "user:" + strconv.Itoa(userID)
		}
		if !l.Allow(key) {
			utils.RespondWithError(w, http.StatusTooManyRequests, "Too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}
