package services

import (
	"fmt"
	"testing"
	"time"

	"idolyst/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database, one per test, with the full
// schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.XPTransaction{},
		&models.Challenge{},
		&models.UserChallenge{},
		&models.LeaderboardEntry{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// newDryRunPostgres opens a statement-only session on the postgres dialect,
// for inspecting the SQL the production database would receive. No server is
// contacted.
func newDryRunPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=idolyst dbname=idolyst",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open dry-run session: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:  username,
		Password:  "hashed",
		Level:     1,
		CreatedAt: time.Now(),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user %s: %v", username, err)
	}
	return user
}

func createTestChallenge(t *testing.T, db *gorm.DB, title string, requirements models.MetricMap, reward int) *models.Challenge {
	t.Helper()

	challenge := &models.Challenge{
		Title:        title,
		Category:     models.CategoryParticipation,
		Difficulty:   models.DifficultyBeginner,
		XPReward:     reward,
		Requirements: requirements,
		IsActive:     true,
	}
	if err := db.Create(challenge).Error; err != nil {
		t.Fatalf("Failed to create test challenge %s: %v", title, err)
	}
	return challenge
}
