// services/leaderboard_service.go - Leaderboard Read Path + Aggregation
package services

import (
	"time"

	"idolyst/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// refreshLimit caps how many ranked entries a window keeps.
const refreshLimit = 100

type LeaderboardService struct {
	db *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{db: db}
}

// GetLeaderboard returns up to limit pre-ranked entries for a window,
// rank 1 first. An empty window is a valid empty result.
func (s *LeaderboardService) GetLeaderboard(window models.LeaderboardWindow, limit int) ([]models.LeaderboardEntry, error) {
	if window != models.WindowWeekly && window != models.WindowMonthly {
		return nil, ErrInvalidWindow
	}
	if limit <= 0 {
		limit = 25
	}
	if limit > refreshLimit {
		limit = refreshLimit
	}

	var entries []models.LeaderboardEntry
	err := s.db.Scopes(windowScope(window)).
		Order("rank ASC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Refresh recomputes one window from the XP ledger and rewrites its entries.
// Ranking is by XP earned inside the window, descending; ties are broken by
// earlier account creation.
func (s *LeaderboardService) Refresh(window models.LeaderboardWindow) error {
	since, err := windowStart(window, time.Now())
	if err != nil {
		return err
	}

	type aggregate struct {
		UserID      uint
		WindowXP    int
		TotalXP     int
		Level       int
		Username    string
		DisplayName string
		Avatar      string
	}

	var rows []aggregate
	err = s.db.Raw(`
		SELECT
			u.id AS user_id,
			SUM(t.amount) AS window_xp,
			u.xp AS total_xp,
			u.level,
			u.username,
			u.display_name,
			u.avatar
		FROM xp_transactions t
		JOIN users u ON u.id = t.user_id
		WHERE t.created_at >= ? AND u.is_guest = ? AND u.is_banned = ?
		GROUP BY u.id, u.xp, u.level, u.username, u.display_name, u.avatar, u.created_at
		ORDER BY window_xp DESC, u.created_at ASC
		LIMIT ?
	`, since, false, false, refreshLimit).Scan(&rows).Error
	if err != nil {
		return err
	}

	now := time.Now()
	entries := make([]models.LeaderboardEntry, len(rows))
	for i, row := range rows {
		entries[i] = models.LeaderboardEntry{
			UserID:      row.UserID,
			Window:      window,
			WindowXP:    row.WindowXP,
			TotalXP:     row.TotalXP,
			Rank:        i + 1,
			Level:       row.Level,
			Username:    row.Username,
			DisplayName: row.DisplayName,
			Avatar:      row.Avatar,
			RefreshedAt: now,
		}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Scopes(windowScope(window)).
			Delete(&models.LeaderboardEntry{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
}

// RefreshAll recomputes every window.
func (s *LeaderboardService) RefreshAll() error {
	for _, window := range []models.LeaderboardWindow{models.WindowWeekly, models.WindowMonthly} {
		if err := s.Refresh(window); err != nil {
			return err
		}
	}
	return nil
}

// windowScope filters on the window column. WINDOW is a reserved word on
// PostgreSQL, so the column has to be quoted rather than written inline.
func windowScope(window models.LeaderboardWindow) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(clause.Eq{Column: clause.Column{Name: "window"}, Value: window})
	}
}

func windowStart(window models.LeaderboardWindow, now time.Time) (time.Time, error) {
	switch window {
	case models.WindowWeekly:
		return now.AddDate(0, 0, -7), nil
	case models.WindowMonthly:
		return now.AddDate(0, -1, 0), nil
	default:
		return time.Time{}, ErrInvalidWindow
	}
}
