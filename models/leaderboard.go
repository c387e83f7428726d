// models/leaderboard.go - Leaderboard Data Models
package models

import (
	"time"
)

// Leaderboard window selectors
type LeaderboardWindow string

const (
	WindowWeekly  LeaderboardWindow = "weekly"
	WindowMonthly LeaderboardWindow = "monthly"
)

// LeaderboardEntry is one user's rank within a time window. Rows are
// rewritten wholesale by the refresh service; readers never mutate them.
type LeaderboardEntry struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	UserID      uint              `gorm:"not null;index;uniqueIndex:idx_window_user" json:"user_id"`
	User        *User             `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Window      LeaderboardWindow `gorm:"not null;size:10;index;uniqueIndex:idx_window_user" json:"window"`
	WindowXP    int               `gorm:"not null" json:"window_xp"`
	TotalXP     int               `gorm:"not null" json:"total_xp"`
	Rank        int               `gorm:"not null;index" json:"rank"`
	Level       int               `gorm:"not null" json:"level"`
	Username    string            `gorm:"size:100" json:"username"`
	DisplayName string            `gorm:"size:100" json:"display_name"`
	Avatar      string            `json:"avatar"`
	RefreshedAt time.Time         `json:"refreshed_at"`
}

func (LeaderboardEntry) TableName() string {
	return "leaderboard_entries"
}
