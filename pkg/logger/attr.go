package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". Nil errors produce an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func ClientIP(ip string) slog.Attr {
	if ip == "" {
		return slog.Attr{}
	}
	return slog.String("client_ip", ip)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// TargetName records the display name of a profiling target.
func TargetName(name string) slog.Attr {
	return slog.String("target_name", name)
}

func SeedCount(n int) slog.Attr {
	return slog.Int("seed_count", n)
}

func WordCount(n int) slog.Attr {
	return slog.Int("word_count", n)
}

func Cached(hit bool) slog.Attr {
	return slog.Bool("cached", hit)
}
