package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kasku/internal/config"
	"github.com/kasku/internal/models"
	"github.com/kasku/internal/repository"
)

func setupAuthTest(t *testing.T) *AuthService {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}))

	userRepo := repository.NewUserRepository(db)
	// Revocation paths need Redis and are not exercised here
	return NewAuthService(userRepo, nil, config.JWTConfig{Secret: "test-secret", ExpireHours: 24})
}

func TestRegisterAndLogin(t *testing.T) {
	svc := setupAuthTest(t)

	user, err := svc.Register(&RegisterRequest{
		Email:    "budi@example.com",
		Password: "rahasia1",
		FullName: "Budi",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "rahasia1", user.PasswordHash)

	token, err := svc.Login(&LoginRequest{Email: "budi@example.com", Password: "rahasia1"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, 24*3600, token.ExpiresIn)
	assert.Equal(t, "budi@example.com", token.User.Email)
	assert.Equal(t, "Budi", token.User.Name)

	claims, err := svc.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.NotEmpty(t, claims.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := setupAuthTest(t)

	_, err := svc.Register(&RegisterRequest{Email: "budi@example.com", Password: "rahasia1", FullName: "Budi"})
	require.NoError(t, err)

	_, err = svc.Register(&RegisterRequest{Email: "budi@example.com", Password: "lainlagi", FullName: "Budi Kedua"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := setupAuthTest(t)

	_, err := svc.Register(&RegisterRequest{Email: "budi@example.com", Password: "rahasia1", FullName: "Budi"})
	require.NoError(t, err)

	_, err = svc.Login(&LoginRequest{Email: "budi@example.com", Password: "salah"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := setupAuthTest(t)

	_, err := svc.Login(&LoginRequest{Email: "siapa@example.com", Password: "apa"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := setupAuthTest(t)

	_, err := svc.Register(&RegisterRequest{Email: "budi@example.com", Password: "rahasia1", FullName: "Budi"})
	require.NoError(t, err)
	token, err := svc.Login(&LoginRequest{Email: "budi@example.com", Password: "rahasia1"})
	require.NoError(t, err)

	other := setupAuthTest(t)
	other.jwtConfig.Secret = "different-secret"

	_, err = other.ValidateToken(token.AccessToken)
	assert.Error(t, err)
}
