// Package clientip resolves the client address of a request.
//
// Proxy headers are client-controlled unless a proxy in front overwrites
// them, so they are only consulted when explicitly trusted.
package clientip

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// proxyHeaders are consulted in order when headers are trusted.
var proxyHeaders = []string{"CF-Connecting-IP", "X-Real-IP"}

// GetIP returns the normalized client IP, or "" if none can be parsed.
// With trustHeaders, CF-Connecting-IP, X-Real-IP and the first valid entry of
// X-Forwarded-For win over RemoteAddr.
func GetIP(r *http.Request, trustHeaders bool) string {
	if trustHeaders {
		for _, h := range proxyHeaders {
			if ip := parseIP(r.Header.Get(h)); ip != "" {
				return ip
			}
		}
		for entry := range strings.SplitSeq(r.Header.Get("X-Forwarded-For"), ",") {
			if ip := parseIP(entry); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}

type contextKey struct{}

func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// Middleware stores the resolved client IP in the request context.
func Middleware(trustHeaders bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithContext(r.Context(), GetIP(r, trustHeaders))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
