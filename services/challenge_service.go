// services/challenge_service.go - Challenge Engine Business Logic
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"idolyst/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChallengeService struct {
	db  *gorm.DB
	hub *ActivityHub
}

func NewChallengeService(db *gorm.DB) *ChallengeService {
	return &ChallengeService{db: db}
}

// SetHub attaches the realtime activity hub for completion broadcasts.
func (s *ChallengeService) SetHub(hub *ActivityHub) {
	s.hub = hub
}

// RequirementsMet reports whether every required metric has accumulated at
// least its threshold. An empty requirements map is vacuously satisfied.
func RequirementsMet(requirements, progress models.MetricMap) bool {
	for metric, threshold := range requirements {
		value, ok := progress[metric]
		if !ok || value < threshold {
			return false
		}
	}
	return true
}

// ValidateRequirements rejects malformed requirement maps at authoring time,
// so evaluation never has to deal with them.
func ValidateRequirements(requirements models.MetricMap) error {
	for metric, threshold := range requirements {
		if strings.TrimSpace(metric) == "" {
			return errors.New("requirement metric name must not be empty")
		}
		if threshold < 0 {
			return fmt.Errorf("requirement %q has a negative threshold", metric)
		}
	}
	return nil
}

// ListChallenges returns the challenge catalog. With activeOnly set, only
// challenges that are active and inside their date window are returned.
func (s *ChallengeService) ListChallenges(activeOnly bool) ([]models.Challenge, error) {
	q := s.db.Order("is_featured DESC, created_at ASC")
	if activeOnly {
		now := time.Now()
		q = q.Where("is_active = ?", true).
			Where("(start_date IS NULL OR start_date <= ?)", now).
			Where("(end_date IS NULL OR end_date >= ?)", now)
	}

	var challenges []models.Challenge
	if err := q.Find(&challenges).Error; err != nil {
		return nil, err
	}
	return challenges, nil
}

// ListUserChallenges returns all of a user's attempts, newest first.
func (s *ChallengeService) ListUserChallenges(userID uint) ([]models.UserChallenge, error) {
	var attempts []models.UserChallenge
	err := s.db.Preload("Challenge").
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}

// OwnsAttempt reports whether an attempt belongs to the user.
func (s *ChallengeService) OwnsAttempt(userID, attemptID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.UserChallenge{}).
		Where("id = ? AND user_id = ?", attemptID, userID).
		Count(&count).Error
	return count > 0, err
}

// Start creates a new in-progress attempt with an empty progress map.
func (s *ChallengeService) Start(userID, challengeID uint) (*models.UserChallenge, error) {
	var attempt *models.UserChallenge
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var challenge models.Challenge
		if err := tx.First(&challenge, challengeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if !challengeAvailable(&challenge) {
			return ErrChallengeUnavailable
		}

		var existing int64
		if err := tx.Model(&models.UserChallenge{}).
			Where("user_id = ? AND challenge_id = ?", userID, challengeID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyStarted
		}

		attempt = &models.UserChallenge{
			UserID:      userID,
			ChallengeID: challengeID,
			Status:      models.ChallengeStatusInProgress,
			Progress:    models.MetricMap{},
			StartedAt:   time.Now(),
		}
		if err := tx.Create(attempt).Error; err != nil {
			return err
		}

		return tx.Model(&models.User{}).Where("id = ?", userID).
			UpdateColumn("challenges_started", gorm.Expr("challenges_started + 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return attempt, nil
}

// UpdateProgress merges a delta into an attempt's progress map and completes
// the attempt when every requirement is met. Keys in the delta overwrite
// prior values for the same key. The merge, the completion flag, and the XP
// award commit in one transaction; a concurrent close of the attempt makes
// the guarded update match zero rows and the call is rejected instead of
// resurrecting a terminal record.
func (s *ChallengeService) UpdateProgress(userChallengeID uint, delta models.MetricMap) (*models.UserChallenge, bool, error) {
	var (
		attempt      models.UserChallenge
		completedNow bool
		completedTx  *models.XPTransaction
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		q := tx.Preload("Challenge")
		if tx.Dialector.Name() == "postgres" {
			// SQLite serializes writers; Postgres needs the row lock.
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.First(&attempt, userChallengeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		switch attempt.Status {
		case models.ChallengeStatusCompleted:
			// Re-completion guard: no second award, no mutation.
			return nil
		case models.ChallengeStatusFailed:
			return ErrChallengeClosed
		}

		merged := attempt.Progress.Clone()
		for metric, value := range delta {
			merged[metric] = value
		}

		updates := map[string]interface{}{"progress": merged}
		met := RequirementsMet(attempt.Challenge.Requirements, merged)
		if met {
			now := time.Now()
			updates["status"] = models.ChallengeStatusCompleted
			updates["completed_at"] = &now
			updates["xp_earned"] = attempt.Challenge.XPReward
		}

		res := tx.Model(&models.UserChallenge{}).
			Where("id = ? AND status = ?", userChallengeID, models.ChallengeStatusInProgress).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrChallengeClosed
		}

		attempt.Progress = merged
		if met {
			attempt.Status = models.ChallengeStatusCompleted
			attempt.XPEarned = attempt.Challenge.XPReward

			record, err := awardXP(tx, attempt.UserID, attempt.Challenge.XPReward,
				models.TxChallengeCompleted, &attempt.ChallengeID, "challenge", nil)
			if err != nil {
				return err
			}
			completedTx = record

			if err := tx.Model(&models.User{}).Where("id = ?", attempt.UserID).
				UpdateColumn("challenges_completed", gorm.Expr("challenges_completed + 1")).Error; err != nil {
				return err
			}
			completedNow = true
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if completedNow && s.hub != nil && completedTx != nil {
		s.hub.Publish(*completedTx)
	}
	return &attempt, completedNow, nil
}

// Abandon marks an in-progress attempt as failed. Failed is terminal;
// abandoning twice is a no-op, abandoning a completed attempt is rejected.
func (s *ChallengeService) Abandon(userChallengeID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var attempt models.UserChallenge
		if err := tx.First(&attempt, userChallengeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		switch attempt.Status {
		case models.ChallengeStatusFailed:
			return nil
		case models.ChallengeStatusCompleted:
			return ErrChallengeClosed
		}

		res := tx.Model(&models.UserChallenge{}).
			Where("id = ? AND status = ?", userChallengeID, models.ChallengeStatusInProgress).
			Update("status", models.ChallengeStatusFailed)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrChallengeClosed
		}
		return nil
	})
}

func challengeAvailable(c *models.Challenge) bool {
	if !c.IsActive {
		return false
	}
	now := time.Now()
	if c.StartDate != nil && now.Before(*c.StartDate) {
		return false
	}
	if c.EndDate != nil && now.After(*c.EndDate) {
		return false
	}
	return true
}
