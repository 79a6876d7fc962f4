package server

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"slices"
	"strings"
)

type clientIPKey struct{}

// clientIP resolves the caller's address. X-Forwarded-For is honoured only
// when the direct peer is a trusted proxy, and then only its last hop, which
// is the address that proxy actually saw.
func clientIP(r *http.Request, trustedProxies []string) string {
	peer := r.RemoteAddr
	if host, _, err := net.SplitHostPort(peer); err == nil {
		peer = host
	}
	if !slices.Contains(trustedProxies, peer) {
		return peer
	}

	hops := strings.Split(r.Header.Get(HeaderForwardedFor), ",")
	if addr, err := netip.ParseAddr(strings.TrimSpace(hops[len(hops)-1])); err == nil {
		return addr.String()
	}
	return peer
}

func withClientIP(r *http.Request, ip string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), clientIPKey{}, ip))
}

// requestIP returns the address stored by RateLimitMiddleware, or the raw
// peer when the request never passed through it.
func requestIP(r *http.Request) string {
	if ip, ok := r.Context().Value(clientIPKey{}).(string); ok {
		return ip
	}
	return clientIP(r, nil)
}
