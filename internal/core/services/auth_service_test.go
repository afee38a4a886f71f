package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/repositories"
	"github.com/sreejapuram0307/sherising/internal/config"
	"github.com/sreejapuram0307/sherising/internal/core/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  60,
			RefreshTokenDays: 7,
		},
	}
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(
		repositories.NewUserRepository(db),
		repositories.NewRefreshTokenRepository(db),
		testConfig(),
	)

	req := RegisterRequest{
		Name:     "Asha Verma",
		Email:    "Asha@Example.com",
		Password: "supersecret",
		Role:     "Entrepreneur",
		Location: "Mumbai",
	}

	result, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", result.User.Email)
	assert.Equal(t, "Newcomer", result.User.BadgeTitle)
	assert.NotEmpty(t, result.Tokens.AccessToken)
	assert.NotEmpty(t, result.Tokens.RefreshToken)

	login, err := svc.Login(context.Background(), LoginRequest{
		Email:    "asha@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, login.User.ID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(
		repositories.NewUserRepository(db),
		repositories.NewRefreshTokenRepository(db),
		testConfig(),
	)

	req := RegisterRequest{
		Name:     "First User",
		Email:    "dup@example.com",
		Password: "supersecret",
		Role:     "Investor",
		Location: "Delhi",
	}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	req.Name = "Second User"
	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrDuplicateEntry)
}

func TestRegisterValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(
		repositories.NewUserRepository(db),
		repositories.NewRefreshTokenRepository(db),
		testConfig(),
	)

	cases := []struct {
		name string
		req  RegisterRequest
	}{
		{"unknown role", RegisterRequest{Name: "A", Email: "a@b.c", Password: "supersecret", Role: "Admin", Location: "X"}},
		{"short password", RegisterRequest{Name: "A", Email: "a@b.c", Password: "short", Role: "Investor", Location: "X"}},
		{"missing name", RegisterRequest{Email: "a@b.c", Password: "supersecret", Role: "Investor", Location: "X"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(
		repositories.NewUserRepository(db),
		repositories.NewRefreshTokenRepository(db),
		testConfig(),
	)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Login User",
		Email:    "login@example.com",
		Password: "supersecret",
		Role:     "Mentor",
		Location: "Kochi",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "login@example.com", Password: "wrongpass"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "supersecret"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(
		repositories.NewUserRepository(db),
		repositories.NewRefreshTokenRepository(db),
		testConfig(),
	)

	result, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Rotate User",
		Email:    "rotate@example.com",
		Password: "supersecret",
		Role:     "Investor",
		Location: "Goa",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshTokens(context.Background(), result.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, result.Tokens.RefreshToken, refreshed.Tokens.RefreshToken)

	// The presented token was revoked by the rotation
	_, err = svc.RefreshTokens(context.Background(), result.Tokens.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogoutAllRevokesEverything(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(
		repositories.NewUserRepository(db),
		repositories.NewRefreshTokenRepository(db),
		testConfig(),
	)

	result, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "LogoutAll User",
		Email:    "logoutall@example.com",
		Password: "supersecret",
		Role:     "Investor",
		Location: "Surat",
	})
	require.NoError(t, err)

	login, err := svc.Login(context.Background(), LoginRequest{
		Email:    "logoutall@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	require.NoError(t, svc.LogoutAll(context.Background(), result.User.ID))

	_, err = svc.RefreshTokens(context.Background(), result.Tokens.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = svc.RefreshTokens(context.Background(), login.Tokens.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
