// models/user.go
package models

import (
	"time"
)

type User struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Username    string  `gorm:"uniqueIndex;not null" json:"username"`
	Email       *string `gorm:"uniqueIndex" json:"email,omitempty"`
	Password    string  `gorm:"not null" json:"-"`
	DisplayName string  `json:"display_name"`
	Avatar      string  `json:"avatar"`
	Bio         string  `json:"bio"`
	Location    string  `json:"location"`
	Website     string  `json:"website"`
	IsGuest     bool    `gorm:"default:false" json:"is_guest"`
	IsAdmin     bool    `gorm:"default:false" json:"is_admin"`
	IsBanned    bool    `gorm:"default:false" json:"is_banned"`

	// Progression summary. XP is the running total of the user's ledger;
	// Level is recomputed from XP inside every award transaction.
	Level         int `gorm:"default:1" json:"level"`
	XP            int `gorm:"default:0" json:"xp"`
	TotalXPEarned int `gorm:"default:0" json:"total_xp_earned"`

	// Stats
	ChallengesStarted   int `gorm:"default:0" json:"challenges_started"`
	ChallengesCompleted int `gorm:"default:0" json:"challenges_completed"`
	BadgesEarned        int `gorm:"default:0" json:"badges_earned"`

	ProfileCompletion int `gorm:"default:0" json:"profile_completion"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	LastLogin time.Time `json:"last_login"`

	// Relationships
	Transactions []XPTransaction `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
	Challenges   []UserChallenge `gorm:"foreignKey:UserID" json:"challenges,omitempty"`
}

func (User) TableName() string {
	return "users"
}
