package auth

import (
	"crypto/subtle"
	"net/http"

	"go.uber.org/zap"
)

// APIKeyHeader carries the shared secret on every guarded request
const APIKeyHeader = "X-API-Key"

// Authorize checks the presented key against the configured one.
// An unconfigured key means the gate is wide open, thats the explicitly
// insecure local development mode. The comparison is constant time even
// though the keys are not secret enough to strictly warrant it.
func Authorize(presentedKey string, configuredKey string) bool {
	if configuredKey == "" {
		return true
	}
	if presentedKey == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(presentedKey), []byte(configuredKey)) == 1
}

// APIKeyAuthenticator guards a router with the shared secret gate,
// rejected requests get a fixed 401 body with no further detail
func APIKeyAuthenticator(logger *zap.Logger, configuredKey string) func(http.Handler) http.Handler {
	if configuredKey == "" {
		logger.Warn("no api key configured, running in open mode - do not use this in production")
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !Authorize(r.Header.Get(APIKeyHeader), configuredKey) {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
