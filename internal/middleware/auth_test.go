package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/publishine/publishine-backend/internal/auth"
	"github.com/publishine/publishine-backend/internal/middleware"
	"github.com/publishine/publishine-backend/internal/models"
	repo "github.com/publishine/publishine-backend/internal/repository"
)

type stubUsers struct {
	user models.User
}

func (s *stubUsers) Create(ctx context.Context, u models.User) (models.User, error) {
	return models.User{}, repo.ErrNotFound
}

func (s *stubUsers) GetByID(ctx context.Context, id string) (models.User, error) {
	if id != s.user.ID {
		return models.User{}, repo.ErrNotFound
	}
	return s.user, nil
}

func (s *stubUsers) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return models.User{}, repo.ErrNotFound
}

func (s *stubUsers) UpdateProfile(ctx context.Context, id string, p models.ProfilePatch) (models.User, error) {
	return models.User{}, repo.ErrNotFound
}

func (s *stubUsers) SetOTP(ctx context.Context, id, code string, expires time.Time) error {
	return repo.ErrNotFound
}

func newGuard(t *testing.T) (*middleware.AuthMiddleware, *auth.TokenManager) {
	t.Helper()
	tm := auth.NewTokenManager("test-secret", time.Hour)
	users := &stubUsers{user: models.User{ID: "u1", Email: "a@x.com", Name: "Ahsen"}}
	return middleware.NewAuthMiddleware(tm, users), tm
}

func echoUser(t *testing.T, called *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		u, ok := middleware.UserFrom(r.Context())
		require.True(t, ok)
		assert.Equal(t, "u1", u.ID)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMissingHeader(t *testing.T) {
	guard, _ := newGuard(t)
	called := false

	req := httptest.NewRequest(http.MethodPost, "/api/users/become-developer", nil)
	res := httptest.NewRecorder()
	guard.Auth(echoUser(t, &called)).ServeHTTP(res, req)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.False(t, called)
	assert.Contains(t, res.Body.String(), `"success":false`)
}

func TestAuthBadToken(t *testing.T) {
	guard, _ := newGuard(t)
	called := false

	req := httptest.NewRequest(http.MethodPost, "/api/users/become-developer", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	res := httptest.NewRecorder()
	guard.Auth(echoUser(t, &called)).ServeHTTP(res, req)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.False(t, called)
}

func TestAuthExpiredToken(t *testing.T) {
	guard, _ := newGuard(t)
	expired := auth.NewTokenManager("test-secret", -time.Minute)
	token, err := expired.Issue("u1")
	require.NoError(t, err)
	called := false

	req := httptest.NewRequest(http.MethodPost, "/api/users/become-developer", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res := httptest.NewRecorder()
	guard.Auth(echoUser(t, &called)).ServeHTTP(res, req)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.False(t, called)
}

func TestAuthUnresolvedUser(t *testing.T) {
	guard, tm := newGuard(t)
	token, err := tm.Issue("deleted-user")
	require.NoError(t, err)
	called := false

	req := httptest.NewRequest(http.MethodPost, "/api/users/become-developer", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res := httptest.NewRecorder()
	guard.Auth(echoUser(t, &called)).ServeHTTP(res, req)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.False(t, called)
}

func TestAuthValidToken(t *testing.T) {
	guard, tm := newGuard(t)
	token, err := tm.Issue("u1")
	require.NoError(t, err)
	called := false

	req := httptest.NewRequest(http.MethodPost, "/api/users/become-developer", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res := httptest.NewRecorder()
	guard.Auth(echoUser(t, &called)).ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.True(t, called)
}
