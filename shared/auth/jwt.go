package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the claims embedded in a session token.
type SessionClaims struct {
	Email  string `json:"email"`
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// JWTAuthenticator represents a JWT based authenticator.
type JWTAuthenticator struct {
	audience string
	issuer   string
}

// NewJWTAuthenticator creates a new JWTAuthenticator instance.
func NewJWTAuthenticator(audience, issuer string) JWTAuthenticator {
	return JWTAuthenticator{
		audience: audience,
		issuer:   issuer,
	}
}

// NewSessionClaims builds session claims for a user valid for expiresIn.
func (a *JWTAuthenticator) NewSessionClaims(userID, email string, expiresIn time.Duration) SessionClaims {
	now := time.Now()

	return SessionClaims{
		Email:  email,
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    a.issuer,
			Audience:  jwt.ClaimStrings{a.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
	}
}

// GenerateToken generates a JWT token with the given claims and secret.
// This is generic and accepts any type that implements jwt.Claims.
func (a *JWTAuthenticator) GenerateToken(claims jwt.Claims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenStr, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenStr, nil
}

// ValidateTokenWithClaims validates a JWT token and parses it into the provided claims type.
// The claims parameter should be a pointer to a struct that implements jwt.Claims.
func (a *JWTAuthenticator) ValidateTokenWithClaims(tokenString, secret string, claims jwt.Claims) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return []byte(secret), nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithAudience(a.audience),
		jwt.WithIssuer(a.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return token, nil
}

// ValidateSessionToken parses a session token and returns its claims.
func (a *JWTAuthenticator) ValidateSessionToken(tokenString, secret string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	if _, err := a.ValidateTokenWithClaims(tokenString, secret, claims); err != nil {
		return nil, err
	}

	return claims, nil
}
