package middleware

import (
	"net/http"
	"strings"

	"github.com/publishine/publishine-backend/internal/api/httpx"
	"github.com/publishine/publishine-backend/internal/auth"
	repo "github.com/publishine/publishine-backend/internal/repository"
)

// AuthMiddleware guards routes behind a bearer token. The token resolves to
// a full user record so handlers never trust the claims alone.
type AuthMiddleware struct {
	TM    *auth.TokenManager
	Users repo.Users
}

func NewAuthMiddleware(tm *auth.TokenManager, users repo.Users) *AuthMiddleware {
	return &AuthMiddleware{TM: tm, Users: users}
}

func (m *AuthMiddleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ah := r.Header.Get("Authorization")
		if ah == "" || !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
			httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		token := strings.TrimSpace(ah[len("Bearer "):])

		userID, err := m.TM.Verify(token)
		if err != nil {
			httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		u, err := m.Users.GetByID(r.Context(), userID)
		if err != nil {
			httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
	})
}
