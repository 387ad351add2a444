package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
)

// TokenExpiry extracts the "exp" claim from a bearer token without verifying
// the signature. The core API signs and validates its own tokens; the console
// only needs the expiry to size the session TTL. Returns false for opaque
// tokens or tokens without a usable expiry.
func TokenExpiry(tokenString string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, false
	}

	exp, ok := claims["exp"].(float64)
	if !ok || exp <= 0 {
		return time.Time{}, false
	}
	return time.Unix(int64(exp), 0), true
}
