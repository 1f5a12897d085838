// Package market answers whether a country may complete signup or
// onboarding under the current regional rollout lock.
package market

import "strings"

// Lock restricts onboarding to a single country during staged rollout.
type Lock string

const (
	LockNone Lock = ""
	LockAU   Lock = "AU"
	LockNZ   Lock = "NZ"
)

const (
	CountryAustralia  = "Australia"
	CountryNewZealand = "New Zealand"
)

// ParseLock maps the APP_MARKET_LOCK value to a Lock. Unknown values
// behave as no lock rather than locking everyone out.
func ParseLock(raw string) Lock {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "AU":
		return LockAU
	case "NZ":
		return LockNZ
	default:
		return LockNone
	}
}

// Normalize resolves country aliases ("au", "AUS", "new zealand") to the
// canonical display name. Unrecognized countries pass through trimmed.
func Normalize(country string) string {
	switch strings.ToUpper(strings.TrimSpace(country)) {
	case "AU", "AUS", "AUSTRALIA":
		return CountryAustralia
	case "NZ", "NZL", "NEW ZEALAND":
		return CountryNewZealand
	default:
		return strings.TrimSpace(country)
	}
}

// Allowed reports whether the given country may onboard under the lock.
// No lock means every country is allowed.
func (l Lock) Allowed(country string) bool {
	normalized := Normalize(country)
	switch l {
	case LockAU:
		return normalized == CountryAustralia
	case LockNZ:
		return normalized == CountryNewZealand
	default:
		return true
	}
}
