package services

import (
	"context"
	"testing"

	"caters-backend/internal/auth"
	"caters-backend/internal/config"
	"caters-backend/internal/models"
	"caters-backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	users  map[int]*models.User
	nextID int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int]*models.User)}
}

func (f *fakeUserStore) Create(ctx context.Context, u *models.User) error {
	f.nextID++
	u.ID = f.nextID
	copied := *u
	f.users[u.ID] = &copied
	return nil
}

func (f *fakeUserStore) Get(ctx context.Context, id int) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

type fakeActivityLogStore struct {
	entries []*models.ActivityLog
}

func (f *fakeActivityLogStore) Create(ctx context.Context, l *models.ActivityLog) error {
	f.entries = append(f.entries, l)
	return nil
}

func (f *fakeActivityLogStore) List(ctx context.Context, limit int) ([]*models.ActivityLog, error) {
	if limit > len(f.entries) {
		limit = len(f.entries)
	}
	return f.entries[:limit], nil
}

func newAuthServiceForTest() (*AuthService, *fakeUserStore, *fakeActivityLogStore) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "caters-backend"

	users := newFakeUserStore()
	logs := &fakeActivityLogStore{}
	return NewAuthService(users, logs, auth.NewJWTManager(cfg)), users, logs
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, logs := newAuthServiceForTest()

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "admin",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin", resp.User.Username)
	assert.NotEqual(t, "s3cret-pass", resp.User.PasswordHash, "password must be hashed")

	resp, err = svc.Login(context.Background(), &models.LoginRequest{
		Username: "admin",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	require.Len(t, logs.entries, 2)
	assert.Equal(t, "register", logs.entries[0].Action)
	assert.Equal(t, "login", logs.entries[1].Action)
	// The service stamps the entry; the repository persists that timestamp
	assert.False(t, logs.entries[0].CreatedAt.IsZero())
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()
	var vErr ValidationError

	_, err := svc.Register(context.Background(), &models.RegisterRequest{Username: "admin"})
	require.ErrorAs(t, err, &vErr)

	_, err = svc.Register(context.Background(), &models.RegisterRequest{
		Username: "admin", Password: "short",
	})
	require.ErrorAs(t, err, &vErr)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "admin", Password: "s3cret-pass",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &models.RegisterRequest{
		Username: "admin", Password: "another-pass",
	})
	var vErr ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "admin", Password: "s3cret-pass",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Username: "admin", Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Username: "nobody", Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRecentActivityDefaultLimit(t *testing.T) {
	svc, _, logs := newAuthServiceForTest()
	logs.entries = append(logs.entries, &models.ActivityLog{Action: "login"})

	entries, err := svc.RecentActivity(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
