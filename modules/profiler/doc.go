// Package profiler exposes the wordlist generator over HTTP.
//
// It owns everything around a generation: request validation, a bounded
// Runner with a timeout and a result cache, the history of past requests,
// and the JSON and HTML surfaces that tie them together.
//
//	runner := profiler.NewRunner(cfg, profiler.WithRunnerLogger(log))
//	svc := profiler.NewService(cfg, runner, profiler.NewMemoryStorage(),
//		profiler.WithLogger(log),
//	)
//	r.Mount("/", svc.Handle())
//
// History is kept in PostgreSQL when a pool is available
// (NewPostgresStorage) and in process memory otherwise.
package profiler
