package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// parser skips claim validation; expiry is checked explicitly so callers can
// apply their own leeway policy.
var parser = jwt.NewParser(jwt.WithoutClaimsValidation())

// ExpiresAt reads the exp claim of a bearer credential without verifying the
// signature. The client never holds the signing key, so the claim is treated
// as advisory: it can only be used to skip requests that are guaranteed to be
// rejected, never to accept a credential.
func ExpiresAt(credential string) (time.Time, error) {
	if credential == "" {
		return time.Time{}, ErrEmptyCredential
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(credential, &claims); err != nil {
		return time.Time{}, errors.Join(ErrMalformedCredential, err)
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, ErrNoExpiry
	}

	return claims.ExpiresAt.Time, nil
}

// Expired reports whether the credential's exp claim has passed. Opaque or
// claim-less credentials report false: only the server can judge those, and
// treating them as expired would log users out on a guess.
func Expired(credential string, leeway time.Duration) bool {
	expiresAt, err := ExpiresAt(credential)
	if err != nil {
		return false
	}
	return time.Now().Add(leeway).After(expiresAt)
}
