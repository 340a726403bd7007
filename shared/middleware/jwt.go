package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog/hlog"

	"github.com/vasapolrittideah/streamhub-api/shared/auth"
)

type contextKey struct{}

var userClaimsKey = contextKey{}

// NewJWTMiddleware attaches session claims to the request context when a
// valid bearer token is present. Requests without a token, or with an
// invalid one, pass through unauthenticated.
func NewJWTMiddleware(jwtAuth auth.JWTAuthenticator, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := jwtAuth.ValidateSessionToken(tokenString, secret)
			if err != nil {
				hlog.FromRequest(r).Debug().Err(err).Msg("ignoring invalid session token")
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// WithClaims returns a copy of ctx carrying claims.
func WithClaims(ctx context.Context, claims *auth.SessionClaims) context.Context {
	return context.WithValue(ctx, userClaimsKey, claims)
}

// ClaimsFromContext returns the session claims attached by NewJWTMiddleware.
func ClaimsFromContext(ctx context.Context) (*auth.SessionClaims, bool) {
	claims, ok := ctx.Value(userClaimsKey).(*auth.SessionClaims)
	return claims, ok && claims != nil
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}
