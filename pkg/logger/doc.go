// Package logger builds slog loggers with environment presets and
// request-scoped attributes pulled from context.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "profiler"),
//		logger.WithLevelName(cfg.LogLevel),
//		logger.WithContextValue("request_id", requestid.ContextKey()),
//	)
//	log.InfoContext(ctx, "wordlist generated",
//		logger.TargetName(req.TargetName()),
//		logger.WordCount(res.Len()),
//	)
//
// Development uses text output at debug level; staging and production use
// JSON at info level. Attribute helpers return an empty slog.Attr for nil
// input, which slog drops.
package logger
