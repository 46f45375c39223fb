// Package auth owns the bearer token and the identity derived from it.
package auth

import (
	"context"
	"fmt"
	"sync"

	"github.com/tradekit/tradekit/internal/common"
	"github.com/tradekit/tradekit/internal/interfaces"
	"github.com/tradekit/tradekit/internal/models"
)

// Manager implements SessionManager. It is the single owner of session
// state; everything else sees read-only projections.
type Manager struct {
	client interfaces.BrokerageClient
	store  interfaces.TokenStore
	logger *common.Logger

	mu      sync.RWMutex
	session models.Session
}

// NewManager creates a session manager in the Loading state. Call Init
// to resolve it to Authenticated or Anonymous.
func NewManager(client interfaces.BrokerageClient, store interfaces.TokenStore, logger *common.Logger) *Manager {
	return &Manager{
		client:  client,
		store:   store,
		logger:  logger,
		session: models.Session{Status: models.StatusLoading},
	}
}

// Init loads the persisted token and decodes its identity claims. A
// malformed token is treated as no session: the persisted token is
// cleared and the session becomes Anonymous. Init always terminates in
// Authenticated or Anonymous.
func (m *Manager) Init() {
	token, err := m.store.ReadToken()
	if err != nil {
		m.logger.Warn().Err(err).Msg("Token store unreadable, starting anonymous")
		m.setAnonymous()
		return
	}
	if token == "" {
		m.setAnonymous()
		return
	}

	identity, err := decodeIdentity(token)
	if err != nil {
		m.logger.Warn().Err(err).Msg("Persisted token undecodable, clearing")
		if clearErr := m.store.ClearToken(); clearErr != nil {
			m.logger.Warn().Err(clearErr).Msg("Token clear failed")
		}
		m.setAnonymous()
		return
	}

	m.mu.Lock()
	m.session = models.Session{
		Token:    token,
		Identity: identity,
		Status:   models.StatusAuthenticated,
	}
	m.mu.Unlock()

	m.logger.Debug().Str("user", identity.ID).Msg("Session restored")
}

// Login persists an already-issued token and decodes its claims. It
// does not call the backend.
func (m *Manager) Login(token string) error {
	identity, err := decodeIdentity(token)
	if err != nil {
		return fmt.Errorf("failed to decode token: %w", err)
	}

	if err := m.store.WriteToken(token); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}

	m.mu.Lock()
	m.session = models.Session{
		Token:    token,
		Identity: identity,
		Status:   models.StatusAuthenticated,
	}
	m.mu.Unlock()

	m.logger.Info().Str("user", identity.ID).Msg("Logged in")
	return nil
}

// LoginWithCredentials exchanges credentials for a token, then logs in.
func (m *Manager) LoginWithCredentials(ctx context.Context, email, password string) error {
	token, err := m.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return m.Login(token)
}

// Register creates a backend account and returns the backend message.
// It does not log in; the backend issues tokens only through login.
func (m *Manager) Register(ctx context.Context, name, email, password string) (string, error) {
	return m.client.Register(ctx, name, email, password)
}

// Logout best-effort notifies the backend, ignoring its response, then
// unconditionally clears the persisted token and local identity. Local
// teardown must succeed regardless of network state, so the backend
// call's failure is swallowed and logged, never returned.
func (m *Manager) Logout(ctx context.Context) {
	if m.Status() == models.StatusAuthenticated {
		if err := m.client.Logout(ctx); err != nil {
			m.logger.Warn().Err(err).Msg("Logout notification failed, clearing session anyway")
		}
	}

	if err := m.store.ClearToken(); err != nil {
		m.logger.Warn().Err(err).Msg("Token clear failed")
	}

	m.setAnonymous()
	m.logger.Info().Msg("Logged out")
}

// Status returns the current session status.
func (m *Manager) Status() models.SessionStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.Status
}

// Identity returns the decoded identity, or nil when anonymous.
func (m *Manager) Identity() *models.Identity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session.Identity == nil {
		return nil
	}
	identity := *m.session.Identity
	return &identity
}

// Token returns the in-memory token, or "" when anonymous.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.Token
}

func (m *Manager) setAnonymous() {
	m.mu.Lock()
	m.session = models.Session{Status: models.StatusAnonymous}
	m.mu.Unlock()
}

// Ensure Manager implements SessionManager
var _ interfaces.SessionManager = (*Manager)(nil)
