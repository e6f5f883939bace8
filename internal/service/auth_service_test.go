package service

import (
	"testing"
	"time"

	"dsa_tracker_backend/internal/config"
	"dsa_tracker_backend/internal/model"
	"dsa_tracker_backend/internal/repository"
	"dsa_tracker_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	db := newTestDB(t)
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-0123456789abcdef0123"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(repository.NewUserRepository(db), repository.NewPreferencesRepository(db), cfg)
}

func TestRegisterHashesPasswordAndCreatesPrefs(t *testing.T) {
	svc := newAuthService(t)

	user := &model.User{Name: "Alice", Email: "alice@example.com", Password: "secret123"}
	require.NoError(t, svc.Register(user))
	assert.NotEqual(t, "secret123", user.Password)

	prefs, err := svc.PrefsRepo.FindOrCreateByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, prefs.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	require.NoError(t, svc.Register(&model.User{Name: "Alice", Email: "alice@example.com", Password: "secret123"}))

	err := svc.Register(&model.User{Name: "Other", Email: "alice@example.com", Password: "secret456"})
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestLoginIssuesToken(t *testing.T) {
	svc := newAuthService(t)

	require.NoError(t, svc.Register(&model.User{Name: "Alice", Email: "alice@example.com", Password: "secret123"}))

	token, err := svc.Login("alice@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := util.ParseJWT(token, svc.Cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)

	require.NoError(t, svc.Register(&model.User{Name: "Alice", Email: "alice@example.com", Password: "secret123"}))

	_, err := svc.Login("alice@example.com", "wrong")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, err = svc.Login("unknown@example.com", "secret123")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}
