// Package auth provides API-token authentication for the console HTTP API.
//
// Tokens are provisioned through environment variables (config.APITokens)
// and verified by digest so the authenticator never holds plaintext tokens
// after construction. With no tokens configured the middleware is a no-op:
// local single-analyst use needs no credential, shared deployments set one.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Authenticator verifies bearer tokens against configured token digests.
type Authenticator struct {
	digests [][]byte
}

// NewAuthenticator creates an authenticator from plaintext tokens. An empty
// token list yields an open authenticator.
func NewAuthenticator(tokens []string) *Authenticator {
	digests := make([][]byte, 0, len(tokens))
	for _, token := range tokens {
		d := sha256.Sum256([]byte(token))
		digests = append(digests, d[:])
	}
	return &Authenticator{digests: digests}
}

// Enabled reports whether any token is configured.
func (a *Authenticator) Enabled() bool { return len(a.digests) > 0 }

// Authenticate verifies a presented token. Comparison is constant-time per
// configured digest to prevent timing probes.
func (a *Authenticator) Authenticate(token string) error {
	if token == "" {
		return ErrMissingToken
	}
	presented := sha256.Sum256([]byte(token))
	for _, digest := range a.digests {
		if hmac.Equal(digest, presented[:]) {
			return nil
		}
	}
	return ErrInvalidToken
}

// Middleware returns a gin handler enforcing token auth on the routes it
// wraps. Tokens arrive as "Authorization: Bearer <token>" or, for clients
// that cannot set Authorization, an X-API-Key header.
func (a *Authenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.Enabled() {
			c.Next()
			return
		}

		token, err := extractToken(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		if err := a.Authenticate(token); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.Next()
	}
}

func extractToken(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return "", ErrMalformedHeader
		}
		return strings.TrimSpace(token), nil
	}
	if key := r.Header.Get("X-API-Key"); key != "" {
		return key, nil
	}
	return "", ErrMissingToken
}
