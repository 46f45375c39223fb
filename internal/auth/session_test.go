package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradekit/tradekit/internal/common"
	"github.com/tradekit/tradekit/internal/interfaces"
	"github.com/tradekit/tradekit/internal/models"
)

// memTokenStore is an in-memory TokenStore for tests.
type memTokenStore struct {
	token   string
	readErr error
}

func (s *memTokenStore) ReadToken() (string, error) {
	return s.token, s.readErr
}

func (s *memTokenStore) WriteToken(token string) error {
	s.token = token
	return nil
}

func (s *memTokenStore) ClearToken() error {
	s.token = ""
	return nil
}

// stubClient overrides only the auth calls; everything else panics if
// reached, which is what these tests want.
type stubClient struct {
	interfaces.BrokerageClient
	loginToken string
	loginErr   error
	logoutErr  error
}

func (c *stubClient) Login(ctx context.Context, email, password string) (string, error) {
	return c.loginToken, c.loginErr
}

func (c *stubClient) Logout(ctx context.Context) error {
	return c.logoutErr
}

// signedToken builds a decodable token carrying the backend's claims.
func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func newTestManager(client interfaces.BrokerageClient, store interfaces.TokenStore) *Manager {
	return NewManager(client, store, common.NewSilentLogger())
}

func TestInitRestoresPersistedSession(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"userId": "u1", "name": "Ada"})
	store := &memTokenStore{token: token}
	m := newTestManager(&stubClient{}, store)

	assert.Equal(t, models.StatusLoading, m.Status())
	m.Init()

	assert.Equal(t, models.StatusAuthenticated, m.Status())
	require.NotNil(t, m.Identity())
	assert.Equal(t, "u1", m.Identity().ID)
	assert.Equal(t, "Ada", m.Identity().DisplayName)
	assert.Equal(t, token, m.Token())
}

func TestInitWithoutTokenIsAnonymous(t *testing.T) {
	m := newTestManager(&stubClient{}, &memTokenStore{})
	m.Init()

	assert.Equal(t, models.StatusAnonymous, m.Status())
	assert.Nil(t, m.Identity())
	assert.Empty(t, m.Token())
}

func TestInitClearsUndecodableToken(t *testing.T) {
	store := &memTokenStore{token: "not-a-jwt"}
	m := newTestManager(&stubClient{}, store)
	m.Init()

	assert.Equal(t, models.StatusAnonymous, m.Status())
	assert.Empty(t, store.token, "garbage token must be cleared from the store")
}

func TestInitWithUnreadableStoreIsAnonymous(t *testing.T) {
	store := &memTokenStore{readErr: errors.New("permission denied")}
	m := newTestManager(&stubClient{}, store)
	m.Init()

	assert.Equal(t, models.StatusAnonymous, m.Status())
}

func TestLoginPersistsAndDecodes(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"userId": "u2", "email": "b@c.com"})
	store := &memTokenStore{}
	m := newTestManager(&stubClient{}, store)
	m.Init()

	require.NoError(t, m.Login(token))
	assert.Equal(t, models.StatusAuthenticated, m.Status())
	assert.Equal(t, token, store.token, "token must be persisted")
	// Without a name claim the email is the display name.
	assert.Equal(t, "b@c.com", m.Identity().DisplayName)
}

func TestLoginRejectsUndecodableToken(t *testing.T) {
	store := &memTokenStore{}
	m := newTestManager(&stubClient{}, store)
	m.Init()

	err := m.Login("garbage")
	require.Error(t, err)
	assert.Equal(t, models.StatusAnonymous, m.Status(), "failed login must not change state")
	assert.Empty(t, store.token, "failed login must not persist anything")
}

func TestLoginRejectsTokenWithoutSubject(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"name": "No Subject"})
	m := newTestManager(&stubClient{}, &memTokenStore{})
	m.Init()

	require.Error(t, m.Login(token))
}

func TestLoginWithCredentials(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"userId": "u3", "name": "Cam"})
	client := &stubClient{loginToken: token}
	store := &memTokenStore{}
	m := newTestManager(client, store)
	m.Init()

	require.NoError(t, m.LoginWithCredentials(context.Background(), "c@d.com", "pw"))
	assert.Equal(t, models.StatusAuthenticated, m.Status())
	assert.Equal(t, "u3", m.Identity().ID)
}

func TestLogoutClearsStateWhenBackendUnreachable(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"userId": "u1"})
	store := &memTokenStore{token: token}
	client := &stubClient{logoutErr: errors.New("connection refused")}
	m := newTestManager(client, store)
	m.Init()
	require.Equal(t, models.StatusAuthenticated, m.Status())

	m.Logout(context.Background())

	assert.Equal(t, models.StatusAnonymous, m.Status())
	assert.Nil(t, m.Identity())
	assert.Empty(t, store.token, "local teardown must succeed despite the network failure")
}

func TestIdentityReturnsCopy(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"userId": "u1", "name": "Ada"})
	m := newTestManager(&stubClient{}, &memTokenStore{token: token})
	m.Init()

	first := m.Identity()
	first.DisplayName = "mutated"
	assert.Equal(t, "Ada", m.Identity().DisplayName)
}
