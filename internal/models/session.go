// Package models defines domain types for tradekit
package models

// SessionStatus describes the lifecycle state of an authenticated session.
type SessionStatus int

const (
	// StatusLoading is the transient state before persisted credentials
	// have been examined. No session ends an Init call in this state.
	StatusLoading SessionStatus = iota
	// StatusAnonymous means no valid token is held.
	StatusAnonymous
	// StatusAuthenticated means a bearer token is held and its identity
	// claims were decodable.
	StatusAuthenticated
)

func (s SessionStatus) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusAnonymous:
		return "anonymous"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Identity holds the claims decoded from the bearer token payload.
// The decode is unverified and is a display convenience, not a trust
// boundary; authorization decisions belong to the backend.
type Identity struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// Session is the client-side view of the authenticated session.
type Session struct {
	Token    string        `json:"-"`
	Identity *Identity     `json:"identity,omitempty"`
	Status   SessionStatus `json:"status"`
}
