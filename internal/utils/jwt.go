package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionIssuer is the iss claim of every session envelope.
const SessionIssuer = "qodefly-gateway"

var (
	// ErrInvalidSessionParams is returned by SealToken for an empty token,
	// secret or a non-positive ttl.
	ErrInvalidSessionParams = errors.New("invalid params for sealing session token")
	// ErrInvalidSession is returned by OpenToken when the envelope is
	// malformed, has a bad signature or has expired.
	ErrInvalidSession = errors.New("invalid or expired session envelope")
)

// sessionClaims carries the upstream bearer token inside a signed envelope.
type sessionClaims struct {
	jwt.RegisteredClaims
	AccessToken string `json:"tok"`
}

// SealToken wraps the upstream access token into an HS256-signed JWT valid for
// ttl. The result is what the gateway stores in the session cookie.
//
//	sealed, err := utils.SealToken("tok1", "0123456789abcdef", 720*time.Hour)
func SealToken(token, secret string, ttl time.Duration) (string, error) {
	if token == "" || secret == "" || ttl <= 0 {
		return "", ErrInvalidSessionParams
	}

	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    SessionIssuer,
			ID:        NewUUIDGenerator().Generate(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		AccessToken: token,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing session envelope: %w", err)
	}

	return signed, nil
}

// OpenToken verifies an envelope produced by SealToken and returns the access
// token inside it. Any verification failure wraps [ErrInvalidSession].
func OpenToken(sealed, secret string) (string, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(sealed, claims, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	},
		jwt.WithIssuer(SessionIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	if claims.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrInvalidSession)
	}

	return claims.AccessToken, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
