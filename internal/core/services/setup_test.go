package services

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sreejapuram0307/sherising/internal/adapters/persistence/models"
	"github.com/sreejapuram0307/sherising/internal/core/domain"
)

// setupTestDB opens a fresh in-memory SQLite database and migrates the full
// schema. A shared cache keyed by the test name keeps all pooled connections
// on the same database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test DB: %v", err)
	}

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test DB: %v", err)
	}

	return db
}

// createTestUser inserts a user with the given role and returns it
func createTestUser(t *testing.T, db *gorm.DB, name string, role domain.Role) *models.User {
	t.Helper()

	user := &models.User{
		Name:       name,
		Email:      strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@test.local",
		Password:   "hashed-password",
		Role:       string(role),
		Location:   "Hyderabad",
		BadgeTitle: "Newcomer",
		BadgeLevel: "Bronze",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user %s: %v", name, err)
	}
	return user
}

// createTestIdea inserts an idea owned by the given entrepreneur
func createTestIdea(t *testing.T, db *gorm.DB, owner *models.User, goal, raised float64) *models.Idea {
	t.Helper()

	idea := &models.Idea{
		Title:             "Test Idea",
		Category:          "Technology",
		Description:       "A test idea",
		FundingGoal:       goal,
		AmountRaised:      raised,
		Location:          owner.Location,
		EntrepreneurID:    owner.ID,
		EntrepreneurName:  owner.Name,
		EntrepreneurEmail: owner.Email,
	}
	if err := db.Create(idea).Error; err != nil {
		t.Fatalf("Failed to create test idea: %v", err)
	}
	return idea
}
