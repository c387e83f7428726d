// handlers/leaderboard.go
package handlers

import (
	"errors"

	"idolyst/models"
	"idolyst/services"

	"github.com/gofiber/fiber/v2"
)

// GetLeaderboard returns pre-ranked entries for a window
// GET /api/leaderboard?window=weekly&limit=25
func GetLeaderboard(c *fiber.Ctx) error {
	window := c.Query("window", string(models.WindowWeekly))
	limit := c.QueryInt("limit", 25)

	entries, err := leaderboardService.GetLeaderboard(models.LeaderboardWindow(window), limit)
	if err != nil {
		if errors.Is(err, services.ErrInvalidWindow) {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid leaderboard window"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch leaderboard"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"window":  window,
		"entries": entries,
		"count":   len(entries),
	})
}
