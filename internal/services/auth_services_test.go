package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvhao2002/smart-health-sub000/internal/model"
	"github.com/pvhao2002/smart-health-sub000/internal/store"
)

func newAuthFixture(t *testing.T, srv *httptest.Server) (*AuthService, *store.AuthStore) {
	t.Helper()
	storage, err := store.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	auth := store.NewAuthStore(storage, testLogger())
	return NewAuthService(testClient(srv), auth), auth
}

func TestLoginStoresSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		w.Write([]byte(`{"id":7,"name":"An","email":"an@example.com","token":"tok-123"}`))
	}))
	defer srv.Close()

	svc, auth := newAuthFixture(t, srv)
	user, err := svc.Login(context.Background(), "an@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.True(t, auth.IsLoggedIn())
	assert.Equal(t, "tok-123", auth.Token())
}

func TestLoginValidatesBeforeNetwork(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	svc, _ := newAuthFixture(t, srv)

	_, err := svc.Login(context.Background(), "not-an-email", "secret")
	assert.ErrorContains(t, err, "invalid email")

	_, err = svc.Login(context.Background(), "an@example.com", "")
	assert.ErrorContains(t, err, "password is required")

	assert.Equal(t, 0, hits)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	svc, _ := newAuthFixture(t, srv)
	_, err := svc.Register(context.Background(), "An", "an@example.com", "short")
	assert.ErrorContains(t, err, "password too short")
	assert.Equal(t, 0, hits)
}

func TestUpdateProfilePutsEditableFields(t *testing.T) {
	var method, path, body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		method, path, body = r.Method, r.URL.Path, string(raw)
		w.Write([]byte(`{"data":{"id":7,"name":"An Updated","email":"an@example.com"}}`))
	}))
	defer srv.Close()

	svc, _ := newAuthFixture(t, srv)
	height := 170.0
	user, err := svc.UpdateProfile(context.Background(), model.UpdateProfileRequest{
		Name:     "An Updated",
		Phone:    "0901234567",
		HeightCm: &height,
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/users/profile", path)
	assert.Contains(t, body, `"heightCm":170`)
	assert.Contains(t, body, `"phone":"0901234567"`)
	assert.Equal(t, "An Updated", user.Name)
}

func TestUpdateProfileRequiresName(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	svc, _ := newAuthFixture(t, srv)
	_, err := svc.UpdateProfile(context.Background(), model.UpdateProfileRequest{Phone: "0901234567"})
	assert.ErrorContains(t, err, "name is required")
	assert.Equal(t, 0, hits)
}

func TestLoginMissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":7,"email":"an@example.com"}`))
	}))
	defer srv.Close()

	svc, auth := newAuthFixture(t, srv)
	_, err := svc.Login(context.Background(), "an@example.com", "secret")
	assert.ErrorContains(t, err, "missing token")
	assert.False(t, auth.IsLoggedIn())
}
