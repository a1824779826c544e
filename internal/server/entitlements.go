package server

import "net/http"

// Entitlements decides whether a caller may use premium colours.
type Entitlements interface {
	AllowPremium(r *http.Request) bool
}

// StaticEntitlements answers the same for every request.
type StaticEntitlements bool

// AllowPremium implements Entitlements.
func (s StaticEntitlements) AllowPremium(*http.Request) bool { return bool(s) }
