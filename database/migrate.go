// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"idolyst/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.XPTransaction{},
		&models.Challenge{},
		&models.UserChallenge{},
		&models.LeaderboardEntry{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	log.Println("✅ Migrations completed")

	createIndexes()

	if err := SeedChallenges(db); err != nil {
		log.Fatalf("❌ Failed to seed challenges: %v", err)
	}

	log.Println("✅ All migrations completed successfully")
}

// createIndexes creates indexes the auto-migration does not cover
func createIndexes() {
	db := GetDB()
	log.Println("Creating indexes...")

	// User indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_xp ON users(xp DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_level ON users(level DESC)")

	// Ledger indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_xp_transactions_user ON xp_transactions(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_xp_transactions_created ON xp_transactions(created_at DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_xp_transactions_type ON xp_transactions(transaction_type)")

	// Challenge indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_challenges_active ON challenges(is_active)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_challenges_category ON challenges(category)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_user_challenges_user ON user_challenges(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_user_challenges_status ON user_challenges(status)")

	// Leaderboard indexes
	db.Exec(`CREATE INDEX IF NOT EXISTS idx_leaderboard_window_rank ON leaderboard_entries("window", rank)`)

	log.Println("✅ Indexes created successfully")
}
