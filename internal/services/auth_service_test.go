// internal/services/auth_service_test.go
package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regzone/compliance-backend/internal/apperrors"
	"github.com/regzone/compliance-backend/internal/config"
	"github.com/regzone/compliance-backend/internal/models"
	"github.com/regzone/compliance-backend/internal/utils"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:      "test-secret",
			AccessTokenTTL: 1,
		},
	}
}

func TestSignupStoresHashedPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testAuthConfig())

	user, err := svc.Signup(&SignupRequest{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleUser, user.Role)

	var stored models.User
	require.NoError(t, db.First(&stored, "username = ?", "alice").Error)
	assert.NotEqual(t, "supersecret", stored.PasswordHash)
	assert.True(t, strings.HasPrefix(stored.PasswordHash, "$2"))
	assert.NoError(t, stored.CheckPassword("supersecret"))
	assert.Error(t, stored.CheckPassword("wrongpassword"))
}

func TestSignupDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testAuthConfig())

	_, err := svc.Signup(&SignupRequest{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)

	_, err = svc.Signup(&SignupRequest{Username: "alice", Password: "othersecret"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestSignupValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testAuthConfig())

	_, err := svc.Signup(&SignupRequest{Username: "alice", Password: "short"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	cfg := testAuthConfig()
	utils.SetJWTSecret(cfg.JWT.SecretKey)
	svc := NewAuthService(db, cfg)

	_, err := svc.Signup(&SignupRequest{Username: "alice", Password: "supersecret", Role: models.UserRoleAdmin})
	require.NoError(t, err)

	resp, err := svc.Login(&LoginRequest{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	require.NotEmpty(t, resp.AccessToken)

	claims, err := utils.ValidateJWT(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID.String(), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, string(models.UserRoleAdmin), claims.Role)
}

func TestLoginInvalidCredentials(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testAuthConfig())

	_, err := svc.Signup(&SignupRequest{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)

	// Wrong password and unknown username fail identically.
	_, err = svc.Login(&LoginRequest{Username: "alice", Password: "wrongpassword"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&LoginRequest{Username: "mallory", Password: "supersecret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
