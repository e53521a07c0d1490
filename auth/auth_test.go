package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTVerifier_Verify(t *testing.T) {
	v := NewJWTVerifier("s3cret", "cash-track")
	want := Identity{UserID: "user-1", Email: "user@example.com"}

	token, err := IssueToken("s3cret", "cash-track", want, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken() error = %v", err)
	}
	got, err := v.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if got != want {
		t.Errorf("Verify() = %+v, want %+v", got, want)
	}
}

func TestJWTVerifier_SubjectFallback(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "sub-only",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}
	got, err := NewJWTVerifier("k", "").Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if got.UserID != "sub-only" {
		t.Errorf("UserID = %q, want sub-only", got.UserID)
	}
}

func TestJWTVerifier_Rejects(t *testing.T) {
	good := Identity{UserID: "u1"}
	expired, _ := IssueToken("k", "", good, -time.Hour)
	wrongKey, _ := IssueToken("other", "", good, time.Hour)
	wrongIssuer, _ := IssueToken("k", "someone-else", good, time.Hour)
	noSubject, _ := IssueToken("k", "", Identity{}, time.Hour)
	noExpiry, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UID: "u1"}).SignedString([]byte("k"))
	hs512, _ := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		UID:              "u1",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("k"))

	testCases := []struct {
		name   string
		issuer string
		token  string
		want   error
	}{
		{"empty", "", "", ErrMissingToken},
		{"garbage", "", "not-a-jwt", ErrInvalidToken},
		{"expired", "", expired, ErrInvalidToken},
		{"wrong key", "", wrongKey, ErrInvalidToken},
		{"wrong issuer", "cash-track", wrongIssuer, ErrInvalidToken},
		{"no subject", "", noSubject, ErrInvalidToken},
		{"no expiry", "", noExpiry, ErrInvalidToken},
		{"unexpected algorithm", "", hs512, ErrInvalidToken},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewJWTVerifier("k", tc.issuer).Verify(context.Background(), tc.token)
			if !errors.Is(err, tc.want) {
				t.Errorf("Verify() error = %v, want %v", err, tc.want)
			}
		})
	}
}
