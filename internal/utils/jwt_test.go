package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSessionSecret = "0123456789abcdef"

func TestSealToken_RoundTrip(t *testing.T) {
	sealed, err := SealToken("tok1", testSessionSecret, time.Hour)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if sealed == "" || sealed == "tok1" {
		t.Fatalf("expected a signed envelope, got %q", sealed)
	}

	token, err := OpenToken(sealed, testSessionSecret)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token != "tok1" {
		t.Errorf("expected tok1, got %s", token)
	}
}

func TestSealToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		secret string
		ttl    time.Duration
	}{
		{"empty token", "", testSessionSecret, time.Hour},
		{"empty secret", "tok1", "", time.Hour},
		{"zero ttl", "tok1", testSessionSecret, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SealToken(tt.token, tt.secret, tt.ttl)
			if !errors.Is(err, ErrInvalidSessionParams) {
				t.Errorf("expected ErrInvalidSessionParams, got %v", err)
			}
		})
	}
}

func TestOpenToken_WrongSecret(t *testing.T) {
	sealed, _ := SealToken("tok1", testSessionSecret, time.Hour)

	_, err := OpenToken(sealed, "another-secret-value")
	if !errors.Is(err, ErrInvalidSession) {
		t.Errorf("expected ErrInvalidSession, got %v", err)
	}
}

func TestOpenToken_Expired(t *testing.T) {
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    SessionIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
		AccessToken: "tok1",
	}
	sealed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSessionSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = OpenToken(sealed, testSessionSecret)
	if !errors.Is(err, ErrInvalidSession) {
		t.Errorf("expected ErrInvalidSession, got %v", err)
	}
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected wrapped jwt.ErrTokenExpired, got %v", err)
	}
}

func TestOpenToken_WrongIssuer(t *testing.T) {
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		AccessToken: "tok1",
	}
	sealed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSessionSecret))

	if _, err := OpenToken(sealed, testSessionSecret); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("expected ErrInvalidSession, got %v", err)
	}
}

func TestOpenToken_EmptyAccessToken(t *testing.T) {
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    SessionIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	sealed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSessionSecret))

	if _, err := OpenToken(sealed, testSessionSecret); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("expected ErrInvalidSession, got %v", err)
	}
}

func TestOpenToken_Malformed(t *testing.T) {
	if _, err := OpenToken("not.a.jwt", testSessionSecret); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("expected ErrInvalidSession, got %v", err)
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer tok1", want: "tok1"},
		{header: "  bearer   tok1 ", want: "tok1"},
		{header: "", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "Basic dXNlcjpwdw==", wantErr: true},
		{header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.header)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
