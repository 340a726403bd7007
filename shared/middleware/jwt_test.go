package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasapolrittideah/streamhub-api/shared/auth"
	"github.com/vasapolrittideah/streamhub-api/shared/middleware"
)

func TestJWTMiddleware(t *testing.T) {
	jwtAuth := auth.NewJWTAuthenticator("streamhub", "streamhub")
	token, err := jwtAuth.GenerateToken(jwtAuth.NewSessionClaims("user-1", "a@b.com", time.Hour), "secret")
	require.NoError(t, err)

	tests := []struct {
		name      string
		header    string
		wantEmail string
	}{
		{name: "valid bearer token", header: "Bearer " + token, wantEmail: "a@b.com"},
		{name: "lowercase scheme", header: "bearer " + token, wantEmail: "a@b.com"},
		{name: "no header"},
		{name: "garbage token", header: "Bearer not-a-jwt"},
		{name: "wrong scheme", header: "Basic " + token},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotEmail string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
					gotEmail = claims.Email
				}
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/api?type=me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			middleware.NewJWTMiddleware(jwtAuth, "secret")(next).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusNoContent, rr.Code)
			assert.Equal(t, tt.wantEmail, gotEmail)
		})
	}
}
