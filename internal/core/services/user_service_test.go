package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/repositories"
	"github.com/sreejapuram0307/sherising/internal/core/domain"
	"github.com/sreejapuram0307/sherising/internal/pkg/password"
)

func TestUpdateProfilePartialFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))

	user := createTestUser(t, db, "Profile User", domain.RoleEntrepreneur)

	updated, err := svc.UpdateProfile(context.Background(), user.ID, UpdateProfileRequest{
		Name: "Renamed User",
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed User", updated.Name)
	// Untouched fields keep their values
	assert.Equal(t, user.Email, updated.Email)
	assert.Equal(t, user.Location, updated.Location)
	assert.Equal(t, user.Role, updated.Role)
}

func TestUpdateProfileRejectsTakenEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))

	first := createTestUser(t, db, "Email Holder", domain.RoleEntrepreneur)
	second := createTestUser(t, db, "Email Wanter", domain.RoleInvestor)

	_, err := svc.UpdateProfile(context.Background(), second.ID, UpdateProfileRequest{
		Email: first.Email,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateEntry)
}

func TestUpdateProfileRehashesPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))

	user := createTestUser(t, db, "Password User", domain.RoleMentor)

	_, err := svc.UpdateProfile(context.Background(), user.ID, UpdateProfileRequest{
		Password: "brand-new-secret",
	})
	require.NoError(t, err)

	var storedHash string
	require.NoError(t, db.Table("users").Select("password").Where("id = ?", user.ID).Scan(&storedHash).Error)
	assert.True(t, password.Verify("brand-new-secret", storedHash))

	_, err = svc.UpdateProfile(context.Background(), user.ID, UpdateProfileRequest{Password: "short"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetProfileUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(repositories.NewUserRepository(db))

	_, err := svc.GetProfile(context.Background(), 424242)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
