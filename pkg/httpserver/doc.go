// Package httpserver runs an http.Handler with configured timeouts and a
// graceful shutdown tied to context cancellation.
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := srv.Run(ctx, router); err != nil { ... }
//
// Liveness and Readiness build the handlers for /health/live and
// /health/ready; readiness runs every named check with a bounded timeout.
package httpserver
