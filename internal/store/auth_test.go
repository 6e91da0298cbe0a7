package store

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvhao2002/smart-health-sub000/internal/model"
)

func newTestAuth(t *testing.T) (*AuthStore, Storage) {
	t.Helper()
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return NewAuthStore(storage, testLogger()), storage
}

func TestLoginStoresTokenAndUser(t *testing.T) {
	auth, _ := newTestAuth(t)
	assert.False(t, auth.IsLoggedIn())

	auth.Login(model.User{ID: 7, Name: "An", Email: "an@example.com", Token: "tok-123"})

	assert.True(t, auth.IsLoggedIn())
	assert.Equal(t, "tok-123", auth.Token())
	require.NotNil(t, auth.User())
	assert.Equal(t, int64(7), auth.User().ID)
}

func TestLogoutClearsSession(t *testing.T) {
	auth, _ := newTestAuth(t)
	auth.Login(model.User{ID: 7, Token: "tok-123"})

	auth.Logout()

	assert.False(t, auth.IsLoggedIn())
	assert.Empty(t, auth.Token())
	assert.Nil(t, auth.User())
}

func TestAuthSurvivesRestart(t *testing.T) {
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	auth := NewAuthStore(storage, testLogger())
	auth.Login(model.User{ID: 7, Email: "an@example.com", Token: "tok-123"})

	reopened := NewAuthStore(storage, testLogger())
	assert.True(t, reopened.IsLoggedIn())
	assert.Equal(t, "tok-123", reopened.Token())
}

func TestExpiresAtReadsExpClaim(t *testing.T) {
	auth, _ := newTestAuth(t)

	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, err := token.SignedString([]byte("any-key"))
	require.NoError(t, err)

	auth.Login(model.User{ID: 1, Token: signed})

	got, ok := auth.ExpiresAt()
	require.True(t, ok)
	assert.True(t, got.Equal(exp))
}

func TestExpiresAtOpaqueToken(t *testing.T) {
	auth, _ := newTestAuth(t)
	auth.Login(model.User{ID: 1, Token: "not-a-jwt"})

	_, ok := auth.ExpiresAt()
	assert.False(t, ok)
}
