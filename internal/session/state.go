// Package session holds the per-browser session state and the cookie
// plumbing that binds it to a signed identifier.
package session

import "time"

// Kind is the single tag describing what a session may do. Guards
// dispatch on Kind instead of re-checking individual boolean flags.
type Kind string

const (
	KindAnonymous                   Kind = "anonymous"
	KindDemoPendingOnboarding       Kind = "demo_pending_onboarding"
	KindDemoOnboarded               Kind = "demo_onboarded"
	KindProductionPendingOnboarding Kind = "production_pending_onboarding"
	KindProductionOnboarded         Kind = "production_onboarded"
)

// Profile is the denormalized demo user materialized at provisioning
// time so the demo dashboard renders without a DB round trip.
type Profile struct {
	BusinessName string `json:"business_name"`
	Trade        string `json:"trade"`
	Country      string `json:"country"`
	TokenBalance int64  `json:"token_balance"`
}

// State is the server-side session blob. The database remains the
// source of truth for onboarding; State mirrors it for the active org.
type State struct {
	Kind        Kind
	UserID      string
	Email       string
	OrgID       string
	FirstLogin  bool
	DemoProfile *Profile

	ExpiresAt time.Time
}

// PasswordAuthenticated reports whether this session came from a
// credentialed login rather than a demo code.
func (s State) PasswordAuthenticated() bool {
	return s.Kind == KindProductionPendingOnboarding || s.Kind == KindProductionOnboarded
}

// IsDemo reports whether this is a demo-code session.
func (s State) IsDemo() bool {
	return s.Kind == KindDemoPendingOnboarding || s.Kind == KindDemoOnboarded
}

// IsOnboarded reports the session-local mirror of the durable
// OrganizationUser flag for the active org.
func (s State) IsOnboarded() bool {
	return s.Kind == KindDemoOnboarded || s.Kind == KindProductionOnboarded
}

// Onboard transitions a pending kind to its onboarded counterpart.
// Already-onboarded and anonymous kinds are unchanged.
func (s *State) Onboard() {
	switch s.Kind {
	case KindDemoPendingOnboarding:
		s.Kind = KindDemoOnboarded
	case KindProductionPendingOnboarding:
		s.Kind = KindProductionOnboarded
	}
}
