// Package abtest assigns and persists the anonymous A/B variant carried in
// the "ab" cookie. The variant is fixed once assigned until cookie expiry;
// no server-side session state is kept.
package abtest

import (
	"math/rand/v2"
	"net/http"
)

// Variant is one of the two hero-copy variants.
type Variant string

const (
	VariantA Variant = "A"
	VariantB Variant = "B"
)

// CookieName is the cookie carrying the assignment.
const CookieName = "ab"

// cookieMaxAge is 30 days in seconds.
const cookieMaxAge = 30 * 24 * 60 * 60

// Assign returns the variant for a client. A cookie value of exactly "A" or
// "B" is kept as-is; anything else (including absence) gets a fresh uniform
// assignment and isNew=true, telling the caller to set the cookie.
func Assign(existing string) (v Variant, isNew bool) {
	switch Variant(existing) {
	case VariantA, VariantB:
		return Variant(existing), false
	}
	if rand.IntN(2) == 0 {
		return VariantA, true
	}
	return VariantB, true
}

// NewCookie builds the Set-Cookie for a newly assigned variant.
func NewCookie(v Variant) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    string(v),
		Path:     "/",
		MaxAge:   cookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	}
}
