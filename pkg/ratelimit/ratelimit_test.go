package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/VictorSmolin/rafflehub/pkg/auth"
)

func TestAllow(t *testing.T) {
	t.Run("Counts requests per key within the window", func(t *testing.T) {
		limiter := New(3, time.Minute)

		assert.True(t, limiter.Allow("user:1"))
		assert.True(t, limiter.Allow("user:1"))
		assert.True(t, limiter.Allow("user:1"))
		assert.False(t, limiter.Allow("user:1"))
	})

	t.Run("Keys are independent", func(t *testing.T) {
		limiter := New(1, time.Minute)

		assert.True(t, limiter.Allow("user:1"))
		assert.False(t, limiter.Allow("user:1"))
		assert.True(t, limiter.Allow("user:2"))
	})

	t.Run("Window expiry resets the count", func(t *testing.T) {
		limiter := New(1, 50*time.Millisecond)

		assert.True(t, limiter.Allow("user:1"))
		assert.False(t, limiter.Allow("user:1"))

		time.Sleep(120 * time.Millisecond)
		assert.True(t, limiter.Allow("user:1"))
	})
}

func TestMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Authenticated callers are keyed by user id", func(t *testing.T) {
		limiter := New(1, time.Minute)
		handler := limiter.Middleware(next)

		addrs := []string{"10.0.0.1:1234", "10.0.0.2:1234"}
		for i, expected := range []int{http.StatusOK, http.StatusTooManyRequests} {
			req := httptest.NewRequest("POST", "/api/raffles/1A2B3C4D/purchase", nil)
			req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, 1))
			req.RemoteAddr = addrs[i]
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)
			assert.Equal(t, expected, rr.Code)
		}
	})

	t.Run("Guests are keyed by remote address", func(t *testing.T) {
		limiter := New(1, time.Minute)
		handler := limiter.Middleware(next)

		first := httptest.NewRequest("POST", "/api/raffles/1A2B3C4D/numbers/3/reserve", nil)
		first.RemoteAddr = "10.0.0.1:1234"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, first)
		assert.Equal(t, http.StatusOK, rr.Code)

		second := httptest.NewRequest("POST", "/api/raffles/1A2B3C4D/numbers/3/reserve", nil)
		second.RemoteAddr = "10.0.0.1:1234"
		rr = httptest.NewRecorder()
		handler.ServeHTTP(rr, second)
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)

		other := httptest.NewRequest("POST", "/api/raffles/1A2B3C4D/numbers/3/reserve", nil)
		other.RemoteAddr = "10.0.0.2:1234"
		rr = httptest.NewRecorder()
		handler.ServeHTTP(rr, other)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
