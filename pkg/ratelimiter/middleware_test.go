package ratelimiter_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/profiler/pkg/clientip"
	"github.com/dmitrymomot/profiler/pkg/ratelimiter"
)

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (*ratelimiter.Result, error) {
	return nil, ratelimiter.ErrStoreUnavailable
}

func requestFrom(ip string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/api/generate", nil)
	return r.WithContext(clientip.WithContext(r.Context(), ip))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	b, _ := newBucket(t, newFakeClock())
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	limited := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":"too_many_requests"}}`))
	})
	h := ratelimiter.Middleware(b, ratelimiter.ByClientIP("generate"), ratelimiter.WithLimitedHandler(limited))(ok)

	for i := range 3 {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, requestFrom("192.0.2.1"))
		require.Equal(t, http.StatusOK, w.Code, "request %d", i)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, requestFrom("192.0.2.1"))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "too_many_requests")

	w = httptest.NewRecorder()
	h.ServeHTTP(w, requestFrom("192.0.2.2"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMiddlewareDefaults(t *testing.T) {
	t.Parallel()

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })

	t.Run("store failure lets request through", func(t *testing.T) {
		t.Parallel()
		h := ratelimiter.Middleware(failingLimiter{}, ratelimiter.ByClientIP("x"))(ok)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, requestFrom("192.0.2.1"))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("empty key skips limiting", func(t *testing.T) {
		t.Parallel()
		h := ratelimiter.Middleware(failingLimiter{}, ratelimiter.ByClientIP("x"))(ok)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	})

	t.Run("default limited response", func(t *testing.T) {
		t.Parallel()
		store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
		defer store.Close()
		b, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: 1 << 40})
		require.NoError(t, err)

		h := ratelimiter.Middleware(b, ratelimiter.ByClientIP("x"))(ok)
		h.ServeHTTP(httptest.NewRecorder(), requestFrom("192.0.2.1"))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, requestFrom("192.0.2.1"))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})
}

func TestByClientIPLongKeys(t *testing.T) {
	t.Parallel()

	key := ratelimiter.ByClientIP(strings.Repeat("scope", 20))(requestFrom("2001:db8::1"))
	assert.LessOrEqual(t, len(key), 64)
	assert.NotEmpty(t, key)
}
