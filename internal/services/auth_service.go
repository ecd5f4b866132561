package services

import (
	"context"
	"errors"
	"log"
	"time"

	"caters-backend/internal/auth"
	"caters-backend/internal/cache"
	"caters-backend/internal/models"
	"caters-backend/internal/repositories"
	"caters-backend/internal/timeutil"
)

// ErrInvalidCredentials is returned on login with a bad username or password
var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService struct {
	Users repositories.UserStore
	Logs  repositories.ActivityLogStore
	JWT   *auth.JWTManager
}

func NewAuthService(users repositories.UserStore, logs repositories.ActivityLogStore, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{Users: users, Logs: logs, JWT: jwtManager}
}

func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, ValidationError("username and password are required")
	}
	if len(req.Password) < 6 {
		return nil, ValidationError("password must be at least 6 characters")
	}

	if _, err := s.Users.GetByUsername(ctx, req.Username); err == nil {
		return nil, ValidationError("username already taken")
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{Username: req.Username, PasswordHash: hash}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logActivity(ctx, user.ID, "register", user.Username)
	return s.issueToken(user)
}

func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, ValidationError("username and password are required")
	}

	user, err := s.Users.GetByUsername(ctx, req.Username)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	s.logActivity(ctx, user.ID, "login", user.Username)
	return s.issueToken(user)
}

// Logout revokes the bearer token for its remaining lifetime. Without Redis
// the denylist is unavailable and the token simply ages out at its expiry.
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.JWT.ValidateToken(tokenString)
	if err != nil {
		return err
	}

	ttl := time.Hour
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	if ttl <= 0 {
		return nil
	}
	if err := cache.RevokeToken(ctx, tokenString, ttl); err != nil {
		log.Printf("[Auth] Token revocation unavailable: %v", err)
	}
	return nil
}

// RecentActivity returns the newest auth events, most recent first
func (s *AuthService) RecentActivity(ctx context.Context, limit int) ([]*models.ActivityLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	return s.Logs.List(ctx, limit)
}

func (s *AuthService) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, err := s.JWT.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

func (s *AuthService) logActivity(ctx context.Context, userID int, action, detail string) {
	entry := &models.ActivityLog{UserID: userID, Action: action, Detail: detail}
	entry.CreatedAt = timeutil.Now()
	if err := s.Logs.Create(ctx, entry); err != nil {
		// Activity logging never blocks auth
		log.Printf("[Auth] Failed to record %s activity: %v", action, err)
	}
}
