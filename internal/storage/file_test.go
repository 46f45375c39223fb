package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradekit/tradekit/internal/common"
)

func newTestStore(t *testing.T) *FileTokenStore {
	t.Helper()
	store, err := NewFileTokenStore(common.NewSilentLogger(), filepath.Join(t.TempDir(), "session"))
	require.NoError(t, err)
	return store
}

func TestTokenRoundTrip(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.WriteToken("jwt-abc"))

	token, err := store.ReadToken()
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", token)
}

func TestReadTokenMissingIsEmpty(t *testing.T) {
	store := newTestStore(t)

	token, err := store.ReadToken()
	require.NoError(t, err)
	assert.Empty(t, token, "a missing token reads as empty, not as an error")
}

func TestWriteTokenReplacesExisting(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.WriteToken("old"))
	require.NoError(t, store.WriteToken("new"))

	token, err := store.ReadToken()
	require.NoError(t, err)
	assert.Equal(t, "new", token)
}

func TestWriteTokenLeavesNoTempFiles(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.WriteToken("jwt-abc"))

	entries, err := os.ReadDir(store.basePath)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, tokenFile, entries[0].Name())
}

func TestClearToken(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.WriteToken("jwt-abc"))

	require.NoError(t, store.ClearToken())

	token, err := store.ReadToken()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestClearTokenWhenMissing(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.ClearToken(), "clearing an absent token is not an error")
}

func TestNewStoreCreatesDirectory(t *testing.T) {
	base := filepath.Join(t.TempDir(), "a", "b", "session")
	_, err := NewFileTokenStore(common.NewSilentLogger(), base)
	require.NoError(t, err)

	info, err := os.Stat(base)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
