// models/challenge.go - Challenge System Data Models
package models

import (
	"time"
)

// Challenge category and difficulty vocabularies
const (
	CategoryOnboarding    = "onboarding"
	CategoryParticipation = "participation"
	CategoryCommunity     = "community"
	CategoryNetworking    = "networking"
	CategoryMentorship    = "mentorship"
	CategoryEngagement    = "engagement"
	CategoryAchievement   = "achievement"
	CategoryGrowth        = "growth"
	CategoryCreativity    = "creativity"
	CategoryRecognition   = "recognition"
)

const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
	DifficultyExpert       = "expert"
)

// UserChallenge status. not_started is the implicit absence of a record;
// completed and failed are terminal.
type ChallengeStatus string

const (
	ChallengeStatusInProgress ChallengeStatus = "in_progress"
	ChallengeStatusCompleted  ChallengeStatus = "completed"
	ChallengeStatusFailed     ChallengeStatus = "failed"
)

// Challenge is an authored task definition. Requirements maps a metric name
// to the threshold a user's progress must meet or exceed.
type Challenge struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Title        string     `gorm:"not null;size:150" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	Category     string     `gorm:"not null;size:30;index" json:"category"`
	Difficulty   string     `gorm:"not null;size:20;default:'beginner'" json:"difficulty"`
	XPReward     int        `gorm:"not null" json:"xp_reward"`
	Requirements MetricMap  `gorm:"type:jsonb;not null" json:"requirements"`
	BadgeName    string     `gorm:"size:100" json:"badge_name,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	IsActive     bool       `gorm:"default:true;index" json:"is_active"`
	IsFeatured   bool       `gorm:"default:false" json:"is_featured"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// UserChallenge is one user's attempt at a Challenge.
type UserChallenge struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"not null;index;uniqueIndex:idx_user_challenge" json:"user_id"`
	User        *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ChallengeID uint            `gorm:"not null;index;uniqueIndex:idx_user_challenge" json:"challenge_id"`
	Challenge   *Challenge      `gorm:"foreignKey:ChallengeID" json:"challenge,omitempty"`
	Status      ChallengeStatus `gorm:"not null;default:'in_progress';index" json:"status"`
	Progress    MetricMap       `gorm:"type:jsonb;not null" json:"progress"`
	XPEarned    int             `gorm:"default:0" json:"xp_earned"`
	StartedAt   time.Time       `json:"started_at"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
}

// Terminal reports whether the attempt can no longer be mutated.
func (uc *UserChallenge) Terminal() bool {
	return uc.Status == ChallengeStatusCompleted || uc.Status == ChallengeStatusFailed
}

func (Challenge) TableName() string {
	return "challenges"
}

func (UserChallenge) TableName() string {
	return "user_challenges"
}
