package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)

	token, err := store.Token()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.SetToken("Bearer abc123"))
	require.NoError(t, store.SetAddress("Rua Augusta, 1200 - Consolação, São Paulo - SP", "3"))

	// Outra instância lê o que a primeira gravou.
	reopened := NewFileStore(path)
	token, err = reopened.Token()
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", token)

	label, id, err := reopened.Address()
	require.NoError(t, err)
	assert.Equal(t, "Rua Augusta, 1200 - Consolação, São Paulo - SP", label)
	assert.Equal(t, "3", id)
}

func TestFileStore_ClearKeepsOtherKeys(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, store.SetToken("Bearer abc"))
	require.NoError(t, store.SetAddress("Casa", "1"))

	require.NoError(t, store.ClearToken())

	token, err := store.Token()
	require.NoError(t, err)
	assert.Empty(t, token)

	label, id, err := store.Address()
	require.NoError(t, err)
	assert.Equal(t, "Casa", label)
	assert.Equal(t, "1", id)
}

func TestFileStore_CorruptedFileIsEmptySession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{lixo"), 0o600))

	store := NewFileStore(path)
	token, err := store.Token()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestBearer(t *testing.T) {
	assert.Equal(t, "Bearer abc", Bearer("abc"))
	assert.Equal(t, "Bearer abc", Bearer("Bearer abc"))
	assert.Empty(t, Bearer(""))
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("segredo"))
	require.NoError(t, err)
	return token
}

func TestNeedsLogin(t *testing.T) {
	now := time.Now()

	valid := signedToken(t, jwt.MapClaims{"sub": 1, "exp": now.Add(time.Hour).Unix()})
	expired := signedToken(t, jwt.MapClaims{"sub": 1, "exp": now.Add(-time.Hour).Unix()})
	noExp := signedToken(t, jwt.MapClaims{"sub": 1})

	assert.False(t, NeedsLogin(Bearer(valid), now))
	assert.True(t, NeedsLogin(Bearer(expired), now))
	assert.False(t, NeedsLogin(Bearer(noExp), now))

	assert.True(t, NeedsLogin("", now))
	assert.True(t, NeedsLogin("Bearer não-é-jwt", now))
}
