// services/activity.go - Activity Feed Projector
package services

import (
	"idolyst/models"
	"time"
)

// ActivityItem is the user-facing rendering of one ledger entry.
type ActivityItem struct {
	ID          uint      `json:"id"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Amount      int       `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}

// Describe maps a transaction type to a human-readable label and icon tag.
// Unknown types fall back to a generic description so every ledger entry
// stays renderable.
func Describe(tx models.XPTransaction) ActivityItem {
	item := ActivityItem{
		ID:        tx.ID,
		Amount:    tx.Amount,
		CreatedAt: tx.CreatedAt,
	}

	switch tx.TransactionType {
	case models.TxChallengeCompleted:
		item.Description = "Completed a challenge"
		item.Icon = "trophy"
	case models.TxBadgeEarned:
		item.Description = "Earned a badge"
		item.Icon = "badge"
	case models.TxProfileUpdate:
		item.Description = "Updated their profile"
		item.Icon = "user"
	case models.TxLoginStreak:
		item.Description = "Kept up a login streak"
		item.Icon = "flame"
	case models.TxPitchCreated:
		item.Description = "Published a new pitch"
		item.Icon = "lightbulb"
	case models.TxPitchFeedback:
		item.Description = "Received mentor feedback on a pitch"
		item.Icon = "message"
	case models.TxMentorSession:
		item.Description = "Completed a mentorship session"
		item.Icon = "calendar"
	case models.TxPostLike:
		item.Description = "Got a like on a post"
		item.Icon = "heart"
	case models.TxVerification:
		item.Description = "Verified their account"
		item.Icon = "check"
	default:
		item.Description = "Earned XP"
		item.Icon = "star"
	}

	return item
}
