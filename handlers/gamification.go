// handlers/gamification.go
package handlers

import (
	"errors"

	"idolyst/database"
	"idolyst/middleware"
	"idolyst/models"
	"idolyst/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

type RecordEventRequest struct {
	EventType     string         `json:"event_type"`
	ReferenceID   *uint          `json:"reference_id,omitempty"`
	ReferenceType string         `json:"reference_type,omitempty"`
	Metadata      datatypes.JSON `json:"metadata,omitempty"`
}

// GetProgression returns the user's progression summary with leveling info
// GET /api/gamification/progress
func GetProgression(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	info := services.ComputeLevelInfo(user.Level, user.XP)

	return c.JSON(fiber.Map{
		"success":              true,
		"level":                info.Level,
		"xp":                   user.XP,
		"total_xp_earned":      user.TotalXPEarned,
		"xp_for_next_level":    info.XPForNextLevel,
		"xp_needed":            info.XPNeededForLevelUp,
		"progress_percentage":  info.ProgressPercentage,
		"challenges_started":   user.ChallengesStarted,
		"challenges_completed": user.ChallengesCompleted,
		"badges_earned":        user.BadgesEarned,
		"profile_completion":   user.ProfileCompletion,
	})
}

// RecordEvent accepts a qualifying application event and grants tariffed XP
// POST /api/gamification/events
func RecordEvent(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req RecordEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.EventType == "" {
		return c.Status(400).JSON(fiber.Map{"error": "event_type is required"})
	}

	record, err := xpService.RecordEvent(userID, models.TransactionType(req.EventType),
		req.ReferenceID, req.ReferenceType, req.Metadata)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownEventType):
			return c.Status(400).JSON(fiber.Map{"error": "Unknown event type"})
		case errors.Is(err, services.ErrNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "User not found"})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to record event"})
		}
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"transaction": record,
		"xp_awarded":  record.Amount,
	})
}

// GetActivity returns the user's recent XP activity, newest first
// GET /api/gamification/activity?limit=20
func GetActivity(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	limit := c.QueryInt("limit", 20)

	txs, err := xpService.ListRecent(userID, limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch activity"})
	}

	items := make([]services.ActivityItem, 0, len(txs))
	for _, tx := range txs {
		items = append(items, services.Describe(tx))
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"activity": items,
		"count":    len(items),
	})
}
