// Package ratelimiter implements a token bucket limiter with pluggable
// storage and an HTTP middleware.
//
// A bucket holds up to Capacity tokens and gains RefillRate tokens every
// RefillInterval. Each allowed request takes one token; a denied request
// takes none and reports when the next refill happens.
//
//	limiter, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), ratelimiter.Config{
//		Capacity:       10,
//		RefillRate:     1,
//		RefillInterval: 6 * time.Second,
//	})
//	r.With(ratelimiter.Middleware(limiter, ratelimiter.ByClientIP("generate"))).Post("/api/generate", h)
//
// MemoryStore keeps buckets in process. RedisStore keeps them in Redis via
// an atomic Lua script so several instances share one budget.
package ratelimiter
