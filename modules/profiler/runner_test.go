package profiler_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/profiler/modules/profiler"
	"github.com/dmitrymomot/profiler/pkg/wordlist"
)

func fixedClock(year int) func() time.Time {
	return func() time.Time { return time.Date(year, 6, 1, 0, 0, 0, 0, time.UTC) }
}

func testConfig() profiler.Config {
	cfg := profiler.DefaultConfig()
	cfg.Timeout = time.Second
	return cfg
}

func TestRunnerRun(t *testing.T) {
	t.Parallel()

	r := profiler.NewRunner(testConfig(), profiler.WithClock(fixedClock(2024)))

	res, err := r.Run(context.Background(), wordlist.Request{FirstName: "John", MinLen: 4, MaxLen: 8})
	require.NoError(t, err)
	require.Positive(t, res.Len())
	assert.Equal(t, []string{"John", "john", "JOHN"}, res.Words()[:3])
}

func TestRunnerCache(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	year := atomic.Int32{}
	year.Store(2024)
	clock := func() time.Time { return time.Date(int(year.Load()), 1, 1, 0, 0, 0, 0, time.UTC) }

	r := profiler.NewRunner(testConfig(),
		profiler.WithClock(clock),
		profiler.WithGenerator(func(wordlist.Request) *wordlist.Result {
			calls.Add(1)
			return &wordlist.Result{}
		}),
	)
	ctx := context.Background()
	req := wordlist.Request{FirstName: "John", MinLen: 4, MaxLen: 8}

	first, err := r.Run(ctx, req)
	require.NoError(t, err)
	second, err := r.Run(ctx, req)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, int32(1), calls.Load())

	req.UseLeet = true
	_, err = r.Run(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load(), "different request")

	year.Store(2025)
	_, err = r.Run(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load(), "new year moves the year ranges")
}

func TestRunnerTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	cfg := testConfig()
	cfg.Timeout = 20 * time.Millisecond
	r := profiler.NewRunner(cfg, profiler.WithGenerator(func(wordlist.Request) *wordlist.Result {
		<-release
		return &wordlist.Result{}
	}))

	_, err := r.Run(context.Background(), wordlist.Request{FirstName: "John"})
	assert.ErrorIs(t, err, profiler.ErrTimeout)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunnerCanceled(t *testing.T) {
	t.Parallel()

	r := profiler.NewRunner(testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, wordlist.Request{FirstName: "John"})
	assert.ErrorIs(t, err, profiler.ErrCanceled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunnerBoundsWorkers(t *testing.T) {
	t.Parallel()

	started := make(chan struct{}, 2)
	release := make(chan struct{})
	var calls atomic.Int32

	cfg := testConfig()
	cfg.Workers = 1
	cfg.Timeout = 50 * time.Millisecond
	r := profiler.NewRunner(cfg, profiler.WithGenerator(func(wordlist.Request) *wordlist.Result {
		calls.Add(1)
		started <- struct{}{}
		<-release
		return &wordlist.Result{}
	}))

	firstDone := make(chan error, 1)
	go func() {
		_, err := r.Run(context.Background(), wordlist.Request{FirstName: "first"})
		firstDone <- err
	}()
	<-started

	_, err := r.Run(context.Background(), wordlist.Request{FirstName: "second"})
	require.ErrorIs(t, err, profiler.ErrTimeout, "second run waits for the only slot")
	assert.Equal(t, int32(1), calls.Load())

	assert.ErrorIs(t, <-firstDone, profiler.ErrTimeout)

	// The abandoned generation still owns the slot until it finishes.
	close(release)
	require.Eventually(t, func() bool {
		_, err := r.Run(context.Background(), wordlist.Request{FirstName: "third"})
		return err == nil
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, int32(2), calls.Load())
}

func TestRunnerSharesConcurrentIdenticalRuns(t *testing.T) {
	t.Parallel()

	started := make(chan struct{}, 4)
	release := make(chan struct{})
	var calls atomic.Int32

	cfg := testConfig()
	cfg.Workers = 4
	r := profiler.NewRunner(cfg, profiler.WithGenerator(func(wordlist.Request) *wordlist.Result {
		calls.Add(1)
		started <- struct{}{}
		<-release
		return &wordlist.Result{}
	}))

	req := wordlist.Request{FirstName: "John", MinLen: 4, MaxLen: 8}
	results := make(chan *wordlist.Result, 3)
	run := func() {
		res, err := r.Run(context.Background(), req)
		assert.NoError(t, err)
		results <- res
	}

	go run()
	<-started
	go run()
	go run()
	time.Sleep(20 * time.Millisecond)
	close(release)

	first, second, third := <-results, <-results, <-results
	assert.Same(t, first, second)
	assert.Same(t, first, third)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRunnerRetriesAfterLeaderGivesUp(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	var calls atomic.Int32

	cfg := testConfig()
	cfg.Workers = 1
	r := profiler.NewRunner(cfg, profiler.WithGenerator(func(req wordlist.Request) *wordlist.Result {
		calls.Add(1)
		if req.FirstName == "busy" {
			<-release
		}
		return &wordlist.Result{}
	}))

	go func() { _, _ = r.Run(context.Background(), wordlist.Request{FirstName: "busy"}) }()
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)

	req := wordlist.Request{FirstName: "John", MinLen: 4, MaxLen: 8}
	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	leaderDone := make(chan error, 1)
	go func() {
		_, err := r.Run(leaderCtx, req)
		leaderDone <- err
	}()
	time.Sleep(10 * time.Millisecond)

	followerDone := make(chan error, 1)
	go func() {
		_, err := r.Run(context.Background(), req)
		followerDone <- err
	}()
	time.Sleep(10 * time.Millisecond)

	cancelLeader()
	assert.ErrorIs(t, <-leaderDone, profiler.ErrCanceled)

	close(release)
	assert.NoError(t, <-followerDone)
	assert.Equal(t, int32(2), calls.Load())
}

func TestRunnerSkipsCachingLargeResults(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	gen := wordlist.New(wordlist.WithClock(fixedClock(2024)))

	cfg := testConfig()
	cfg.CacheMaxWords = 10
	r := profiler.NewRunner(cfg, profiler.WithGenerator(func(req wordlist.Request) *wordlist.Result {
		calls.Add(1)
		return gen.Generate(req)
	}))
	ctx := context.Background()

	large := wordlist.Request{FirstName: "John", MinLen: 4, MaxLen: 8}
	res, err := r.Run(ctx, large)
	require.NoError(t, err)
	require.Greater(t, res.Len(), cfg.CacheMaxWords)
	_, err = r.Run(ctx, large)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load(), "large result regenerated")

	small := wordlist.Request{FirstName: "John", MinLen: 4, MaxLen: 4}
	res, err = r.Run(ctx, small)
	require.NoError(t, err)
	require.LessOrEqual(t, res.Len(), cfg.CacheMaxWords)
	_, err = r.Run(ctx, small)
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load(), "small result served from cache")
}
