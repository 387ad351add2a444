package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestTokenExpiryReadsExpClaim(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	token := signed(t, jwt.MapClaims{"exp": float64(exp.Unix()), "sub": "admin"})

	got, ok := TokenExpiry(token)
	if !ok {
		t.Fatal("expected an expiry")
	}
	if !got.Equal(exp) {
		t.Errorf("expiry = %v, want %v", got, exp)
	}
}

func TestTokenExpiryWithoutExp(t *testing.T) {
	token := signed(t, jwt.MapClaims{"sub": "admin"})
	if _, ok := TokenExpiry(token); ok {
		t.Error("token without exp reported an expiry")
	}
}

func TestTokenExpiryOpaqueToken(t *testing.T) {
	if _, ok := TokenExpiry("not-a-jwt"); ok {
		t.Error("opaque token reported an expiry")
	}
}
