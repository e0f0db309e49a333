/*
auth.go - Bearer-token authentication middleware

PURPOSE:
  Turns a bearer credential into a verified owner identifier before any
  handler runs. Ownership checks against that identifier happen in the
  handlers; the calculation core never sees credentials.

  TokenVerifier is the identity-provider seam: production deployments
  plug in a real verifier, development and tests use the static map.
*/
package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// ErrInvalidToken is returned by verifiers for unknown or expired tokens.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenVerifier resolves a bearer token to an owner identifier.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (ownerID string, err error)
}

// StaticTokenVerifier is a fixed token-to-owner map, for development and
// tests.
type StaticTokenVerifier struct {
	owners map[string]string
}

func NewStaticTokenVerifier(tokens map[string]string) *StaticTokenVerifier {
	owners := make(map[string]string, len(tokens))
	for token, owner := range tokens {
		owners[token] = owner
	}
	return &StaticTokenVerifier{owners: owners}
}

func (v *StaticTokenVerifier) Verify(_ context.Context, token string) (string, error) {
	owner, ok := v.owners[token]
	if !ok {
		return "", ErrInvalidToken
	}
	return owner, nil
}

// ParseTokenConfig parses the "token:owner,token:owner" form used by the
// LEASE_API_TOKENS environment variable.
func ParseTokenConfig(s string) map[string]string {
	tokens := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		token, owner, ok := strings.Cut(pair, ":")
		if !ok || token == "" || owner == "" {
			continue
		}
		tokens[token] = owner
	}
	return tokens
}

// =============================================================================
// MIDDLEWARE
// =============================================================================

type contextKey string

const contextKeyOwner contextKey = "owner"

// RequireAuth validates the Authorization header and stores the verified
// owner identifier in the request context.
func RequireAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeError(w, http.StatusUnauthorized, "Missing Authorization header", nil)
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				writeError(w, http.StatusUnauthorized, "Invalid Authorization header format", nil)
				return
			}

			owner, err := verifier.Verify(r.Context(), parts[1])
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Invalid or expired token", nil)
				return
			}

			ctx := context.WithValue(r.Context(), contextKeyOwner, owner)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ownerFrom returns the verified owner identifier set by RequireAuth.
func ownerFrom(ctx context.Context) string {
	owner, _ := ctx.Value(contextKeyOwner).(string)
	return owner
}
