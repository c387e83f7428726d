// database/seed.go - Default Challenge Seeding
package database

import (
	"log"

	"idolyst/models"

	"gorm.io/gorm"
)

// SeedChallenges inserts the default challenge catalog on first boot.
// Existing rows are never touched, so operator edits survive restarts.
func SeedChallenges(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Challenge{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []models.Challenge{
		{
			Title:        "Getting Started",
			Description:  "Complete your profile and introduce yourself to the community.",
			Category:     models.CategoryOnboarding,
			Difficulty:   models.DifficultyBeginner,
			XPReward:     50,
			Requirements: models.MetricMap{"profile_completion": 80, "posts": 1},
			BadgeName:    "Newcomer",
			IsActive:     true,
			IsFeatured:   true,
		},
		{
			Title:        "First Pitch",
			Description:  "Publish your first idea on the pitch board.",
			Category:     models.CategoryCreativity,
			Difficulty:   models.DifficultyBeginner,
			XPReward:     75,
			Requirements: models.MetricMap{"pitches": 1},
			BadgeName:    "Founder",
			IsActive:     true,
		},
		{
			Title:        "Community Voice",
			Description:  "Share three posts and leave five comments.",
			Category:     models.CategoryParticipation,
			Difficulty:   models.DifficultyIntermediate,
			XPReward:     100,
			Requirements: models.MetricMap{"posts": 3, "comments": 5},
			IsActive:     true,
		},
		{
			Title:        "Mentor Connection",
			Description:  "Book and complete a session with a mentor.",
			Category:     models.CategoryMentorship,
			Difficulty:   models.DifficultyIntermediate,
			XPReward:     150,
			Requirements: models.MetricMap{"mentor_sessions": 1},
			BadgeName:    "Mentee",
			IsActive:     true,
		},
		{
			Title:        "Week One Streak",
			Description:  "Sign in seven days in a row.",
			Category:     models.CategoryEngagement,
			Difficulty:   models.DifficultyAdvanced,
			XPReward:     200,
			Requirements: models.MetricMap{"login_streak": 7},
			BadgeName:    "Regular",
			IsActive:     true,
		},
	}

	if err := db.Create(&defaults).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded %d default challenges", len(defaults))
	return nil
}
