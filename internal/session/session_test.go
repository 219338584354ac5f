package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farhanadbm1/traintrack-client/internal/domain"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expiresAt)}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewStore(path)
	require.NoError(t, store.Load())
	assert.Empty(t, store.Token())
	assert.Nil(t, store.User())

	user := &domain.User{ID: 7, Name: "Ada Admin", Email: "ada@traintrack.local", Role: domain.RoleAdmin}
	token := signedToken(t, time.Now().Add(time.Hour))
	require.NoError(t, store.Set(token, user))

	// A fresh store reading the same file sees the session.
	restored := NewStore(path)
	require.NoError(t, restored.Load())
	assert.Equal(t, token, restored.Token())
	require.NotNil(t, restored.User())
	assert.Equal(t, 7, restored.User().ID)
	assert.Equal(t, domain.RoleAdmin, restored.User().Role)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStoreSetUserKeepsToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)
	token := signedToken(t, time.Now().Add(time.Hour))
	require.NoError(t, store.Set(token, &domain.User{ID: 1, Name: "Before"}))

	require.NoError(t, store.SetUser(&domain.User{ID: 1, Name: "After"}))

	restored := NewStore(path)
	require.NoError(t, restored.Load())
	assert.Equal(t, token, restored.Token())
	assert.Equal(t, "After", restored.User().Name)
}

func TestStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)
	require.NoError(t, store.Set(signedToken(t, time.Now().Add(time.Hour)), &domain.User{ID: 1}))

	require.NoError(t, store.Clear())
	assert.Empty(t, store.Token())
	assert.Nil(t, store.User())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Clearing an already-clear session is fine.
	require.NoError(t, store.Clear())
}

func TestStoreLoadExpiredTokenDropped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(path)
	require.NoError(t, store.Set(signedToken(t, time.Now().Add(-time.Hour)), &domain.User{ID: 1}))

	restored := NewStore(path)
	require.NoError(t, restored.Load())
	assert.Empty(t, restored.Token())
	assert.Nil(t, restored.User())
}

func TestStoreLoadOpaqueTokenKept(t *testing.T) {
	// Tokens that are not JWTs are kept; the backend decides their fate.
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, NewStore(path).Set("opaque-token", &domain.User{ID: 1}))

	restored := NewStore(path)
	require.NoError(t, restored.Load())
	assert.Equal(t, "opaque-token", restored.Token())
}

func TestStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := NewStore(path)
	require.NoError(t, store.Load())
	assert.Empty(t, store.Token())
	assert.Nil(t, store.User())
}
