// Package security implements the response-hardening pipeline: per-request
// CSP nonces, the Content-Security-Policy builder, and the fixed set of
// security headers applied to every outbound response.
package security

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"strings"
)

// Origins whitelisted in the CSP only when the matching token is configured.
const (
	turnstileOrigin       = "https://challenges.cloudflare.com"
	insightsScriptOrigin  = "https://static.cloudflareinsights.com"
	insightsConnectOrigin = "https://cloudflareinsights.com"
)

// NewNonce returns a fresh CSP nonce: 16 random bytes, base64-encoded.
// Nonces must be unguessable and distinct per response; a collision is a
// correctness bug, not a handled condition.
func NewNonce() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// BuildCSP constructs the Content-Security-Policy for the landing page.
// script-src and style-src are restricted to 'self' plus the exact nonce;
// the Turnstile and analytics origins are whitelisted only when their
// tokens are configured. Framing and plugins are always forbidden.
func BuildCSP(nonce string, analytics, turnstile bool) string {
	script := "script-src 'self' 'nonce-" + nonce + "'"
	connect := "connect-src 'self'"
	if turnstile {
		script += " " + turnstileOrigin
	}
	if analytics {
		script += " " + insightsScriptOrigin
		connect += " " + insightsConnectOrigin
	}

	parts := []string{
		"default-src 'self'",
		script,
		"style-src 'self' 'nonce-" + nonce + "'",
		"img-src 'self' data: blob:",
		connect,
		"object-src 'none'",
		"base-uri 'none'",
		"frame-ancestors 'none'",
	}
	if turnstile {
		parts = append(parts, "frame-src "+turnstileOrigin)
	}
	parts = append(parts, "upgrade-insecure-requests")
	return strings.Join(parts, "; ")
}

// Apply sets the common hardening headers. Calling it twice is a no-op.
func Apply(h http.Header) {
	h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("X-Frame-Options", "DENY")
	h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
	h.Set("Cross-Origin-Opener-Policy", "same-origin")
}

// Middleware hardens every response on its way out. Headers are pre-set so
// handlers may still override the cache policy (static/SEO assets declare a
// public max-age); everything else defaults to Cache-Control: no-store.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Apply(w.Header())
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}
