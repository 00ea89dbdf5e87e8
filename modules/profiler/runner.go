package profiler

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"

	"github.com/dmitrymomot/profiler/pkg/cache"
	"github.com/dmitrymomot/profiler/pkg/logger"
	"github.com/dmitrymomot/profiler/pkg/wordlist"
)

// GenerateFunc produces a wordlist. It cannot be interrupted.
type GenerateFunc func(wordlist.Request) *wordlist.Result

// Runner bounds concurrent generations and caches their results.
//
// Concurrent identical requests share one generation. A generation runs on
// its own goroutine and holds a worker slot until it completes, even when
// every caller has already given up on it.
type Runner struct {
	sem           *semaphore.Weighted
	flight        singleflight.Group
	timeout       time.Duration
	cache         *cache.LRU[string, *wordlist.Result]
	cacheMaxWords int
	generate      GenerateFunc
	now           func() time.Time
	log           *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithGenerator replaces the wordlist generator.
func WithGenerator(fn GenerateFunc) RunnerOption {
	return func(r *Runner) {
		if fn != nil {
			r.generate = fn
		}
	}
}

// WithClock sets the clock the generator derives its year ranges from.
func WithClock(now func() time.Time) RunnerOption {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}

// WithRunnerLogger sets the logger.
func WithRunnerLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRunner creates a Runner with cfg.Workers slots, cfg.Timeout per run
// and an LRU of cfg.CacheSize results of at most cfg.CacheMaxWords words.
func NewRunner(cfg Config, opts ...RunnerOption) *Runner {
	r := &Runner{
		sem:           semaphore.NewWeighted(int64(max(cfg.Workers, 1))),
		timeout:       cfg.Timeout,
		cache:         cache.NewLRU[string, *wordlist.Result](max(cfg.CacheSize, 1)),
		cacheMaxWords: cfg.CacheMaxWords,
		now:           time.Now,
		log:           logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.generate == nil {
		r.generate = wordlist.New(wordlist.WithClock(r.now)).Generate
	}
	return r
}

// Run generates the wordlist for req. It returns ErrTimeout once the
// configured timeout elapses and ErrCanceled when ctx is canceled, joined
// with the context error in both cases.
func (r *Runner) Run(ctx context.Context, req wordlist.Request) (*wordlist.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, contextError(err)
	}
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	key := r.cacheKey(req)
	if res, ok := r.cache.Get(key); ok {
		r.log.DebugContext(ctx, "wordlist served from cache",
			logger.Component("runner"),
			logger.Cached(true),
			logger.WordCount(res.Len()),
		)
		return res, nil
	}

	for {
		ch := r.flight.DoChan(key, func() (any, error) {
			return r.generateShared(ctx, key, req)
		})

		select {
		case out := <-ch:
			if out.Err == nil {
				return out.Val.(*wordlist.Result), nil
			}
			if ctx.Err() != nil {
				return nil, contextError(ctx.Err())
			}
			// The caller that started this flight gave up before a slot
			// was free; start a new flight of our own.
		case <-ctx.Done():
			r.log.WarnContext(ctx, "wordlist generation abandoned",
				logger.Component("runner"),
				logger.Error(ctx.Err()),
			)
			return nil, contextError(ctx.Err())
		}
	}
}

// generateShared runs once per in-flight key. Only the wait for a worker
// slot observes ctx; once started, a generation always completes.
func (r *Runner) generateShared(ctx context.Context, key string, req wordlist.Request) (*wordlist.Result, error) {
	if res, ok := r.cache.Get(key); ok {
		return res, nil
	}
	if err := r.sem.Acquire(ctx, 1); err != nil {
		return nil, contextError(err)
	}
	defer r.sem.Release(1)

	res := r.generate(req)
	if res.Len() <= r.cacheMaxWords || r.cacheMaxWords <= 0 {
		r.cache.Put(key, res)
	} else {
		r.log.Debug("wordlist too large to cache",
			logger.Component("runner"),
			logger.WordCount(res.Len()),
		)
	}
	return res, nil
}

// cacheKey identifies a request together with the year it is generated
// in, since year ranges move with the clock.
func (r *Runner) cacheKey(req wordlist.Request) string {
	h := sha256.New()
	// Request holds only strings, bools and ints.
	_ = json.NewEncoder(h).Encode(req)
	h.Write([]byte(strconv.Itoa(r.now().Year())))
	return hex.EncodeToString(h.Sum(nil))
}

func contextError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Join(ErrTimeout, err)
	}
	return errors.Join(ErrCanceled, err)
}
