package middleware

import (
	"context"
	"net/http"
	"strings"

	"caters-backend/internal/auth"
	"caters-backend/internal/cache"
	"caters-backend/internal/repositories"
	"caters-backend/pkg/utils"
)

type contextKey string

const UserIDKey contextKey = "user_id"
const UsernameKey contextKey = "username"
const TokenKey contextKey = "token"

type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	userStore  repositories.UserStore
}

func NewAuthMiddleware(jwtManager *auth.JWTManager, userStore repositories.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		userStore:  userStore,
	}
}

// Authenticate is a middleware that validates bearer tokens. All failures
// surface uniformly as 401 Unauthorized.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utils.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := parts[1]
		claims, err := m.jwtManager.ValidateToken(token)
		if err != nil {
			utils.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if cache.IsTokenRevoked(r.Context(), token) {
			utils.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		// Verify the user still exists; a deleted account invalidates
		// any outstanding token immediately
		user, err := m.userStore.Get(r.Context(), claims.UserID)
		if err != nil {
			utils.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, user.ID)
		ctx = context.WithValue(ctx, UsernameKey, user.Username)
		ctx = context.WithValue(ctx, TokenKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext extracts user ID from request context
func GetUserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(UserIDKey).(int)
	return userID, ok
}

// GetUsernameFromContext extracts username from request context
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}

// GetTokenFromContext extracts the raw bearer token from request context
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok
}
