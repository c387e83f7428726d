// models/xp_transaction.go - XP Ledger Data Model
package models

import (
	"time"

	"gorm.io/datatypes"
)

// Transaction type vocabulary. Unrecognized values are accepted and
// rendered with a generic fallback label downstream.
type TransactionType string

const (
	TxChallengeCompleted TransactionType = "challenge_completed"
	TxBadgeEarned        TransactionType = "badge_earned"
	TxProfileUpdate      TransactionType = "profile_update"
	TxLoginStreak        TransactionType = "login_streak"
	TxPitchCreated       TransactionType = "pitch_created"
	TxPitchFeedback      TransactionType = "pitch_feedback"
	TxMentorSession      TransactionType = "mentor_session"
	TxPostLike           TransactionType = "post_like"
	TxVerification       TransactionType = "verification"
)

// XPTransaction is one grant of experience points. Rows are append-only:
// never updated, never deleted (audit trail).
type XPTransaction struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	UserID          uint            `gorm:"not null;index" json:"user_id"`
	User            *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Amount          int             `gorm:"not null" json:"amount"`
	TransactionType TransactionType `gorm:"not null;size:50;index" json:"transaction_type"`
	ReferenceID     *uint           `json:"reference_id,omitempty"`
	ReferenceType   string          `gorm:"size:50" json:"reference_type,omitempty"`
	Metadata        datatypes.JSON  `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt       time.Time       `gorm:"index" json:"created_at"`
}

func (XPTransaction) TableName() string {
	return "xp_transactions"
}
