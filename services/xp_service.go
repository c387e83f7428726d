// services/xp_service.go - XP Ledger Business Logic
package services

import (
	"idolyst/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// eventTariff maps an application event type to the XP it is worth when
// reported through the event intake. challenge_completed is deliberately
// absent: only the challenge engine may grant it.
var eventTariff = map[models.TransactionType]int{
	models.TxBadgeEarned:   25,
	models.TxProfileUpdate: 15,
	models.TxLoginStreak:   10,
	models.TxPitchCreated:  25,
	models.TxPitchFeedback: 20,
	models.TxMentorSession: 50,
	models.TxPostLike:      5,
	models.TxVerification:  30,
}

// EventTariff returns the XP value of an intake event type.
func EventTariff(t models.TransactionType) (int, bool) {
	amount, ok := eventTariff[t]
	return amount, ok
}

type XPService struct {
	db  *gorm.DB
	hub *ActivityHub
}

func NewXPService(db *gorm.DB) *XPService {
	return &XPService{db: db}
}

// SetHub attaches the realtime activity hub. Optional; when unset, awards
// are recorded without broadcasting.
func (s *XPService) SetHub(hub *ActivityHub) {
	s.hub = hub
}

// Award appends one ledger row and folds the amount into the user's
// progression summary, all-or-nothing.
func (s *XPService) Award(userID uint, amount int, txType models.TransactionType, referenceID *uint, referenceType string, metadata datatypes.JSON) (*models.XPTransaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var created *models.XPTransaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		created, err = awardXP(tx, userID, amount, txType, referenceID, referenceType, metadata)
		return err
	})
	if err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Publish(*created)
	}
	return created, nil
}

// RecordEvent awards XP for an application event using the fixed tariff.
func (s *XPService) RecordEvent(userID uint, txType models.TransactionType, referenceID *uint, referenceType string, metadata datatypes.JSON) (*models.XPTransaction, error) {
	amount, ok := EventTariff(txType)
	if !ok {
		return nil, ErrUnknownEventType
	}
	return s.Award(userID, amount, txType, referenceID, referenceType, metadata)
}

// ListRecent returns the newest transactions for a user, newest first.
func (s *XPService) ListRecent(userID uint, limit int) ([]models.XPTransaction, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	var txs []models.XPTransaction
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&txs).Error
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// awardXP is the shared award routine. It must run inside a transaction so
// the ledger row and the summary update commit together.
func awardXP(tx *gorm.DB, userID uint, amount int, txType models.TransactionType, referenceID *uint, referenceType string, metadata datatypes.JSON) (*models.XPTransaction, error) {
	var exists int64
	if err := tx.Model(&models.User{}).Where("id = ?", userID).Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, ErrNotFound
	}

	record := models.XPTransaction{
		UserID:          userID,
		Amount:          amount,
		TransactionType: txType,
		ReferenceID:     referenceID,
		ReferenceType:   referenceType,
		Metadata:        metadata,
	}
	if err := tx.Create(&record).Error; err != nil {
		return nil, err
	}

	if err := tx.Model(&models.User{}).Where("id = ?", userID).
		Updates(summaryIncrements(amount, txType)).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

// summaryIncrements folds one grant into the user summary as in-database
// increments, so concurrent awards compose instead of overwriting each
// other. The level expression mirrors DeriveLevel against the
// post-increment total.
func summaryIncrements(amount int, txType models.TransactionType) map[string]interface{} {
	updates := map[string]interface{}{
		"xp":              gorm.Expr("xp + ?", amount),
		"total_xp_earned": gorm.Expr("total_xp_earned + ?", amount),
		"level":           gorm.Expr("(xp + ?) / ? + 1", amount, XPPerLevel),
	}
	if txType == models.TxBadgeEarned {
		updates["badges_earned"] = gorm.Expr("badges_earned + 1")
	}
	return updates
}
