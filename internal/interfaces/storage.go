package interfaces

// TokenStore persists the bearer token under a single fixed key.
// An absent token is a valid, non-error state (anonymous session).
type TokenStore interface {
	// ReadToken returns the persisted token, or "" when none is stored.
	ReadToken() (string, error)

	// WriteToken persists the token, replacing any previous value.
	WriteToken(token string) error

	// ClearToken removes the persisted token. Clearing an absent token
	// is not an error.
	ClearToken() error
}
