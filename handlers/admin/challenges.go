package admin

import (
	"idolyst/database"
	"idolyst/models"
	"idolyst/services"

	"github.com/gofiber/fiber/v2"
)

// GetChallenges returns the full challenge catalog, inactive included
// GET /api/admin/challenges
func GetChallenges(c *fiber.Ctx) error {
	db := database.GetDB()

	var challenges []models.Challenge
	if err := db.Order("created_at ASC").Find(&challenges).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch challenges"})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"challenges": challenges,
	})
}

// CreateChallenge authors a new challenge. Requirement maps are validated
// here so evaluation never sees a malformed shape.
// POST /api/admin/challenges
func CreateChallenge(c *fiber.Ctx) error {
	var challenge models.Challenge
	if err := c.BodyParser(&challenge); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if challenge.Title == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Title is required"})
	}
	if challenge.XPReward <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "XP reward must be positive"})
	}
	if err := services.ValidateRequirements(challenge.Requirements); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if challenge.Requirements == nil {
		challenge.Requirements = models.MetricMap{}
	}

	db := database.GetDB()
	if err := db.Create(&challenge).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create challenge"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success":   true,
		"challenge": challenge,
	})
}

// UpdateChallenge edits an existing challenge definition
// PUT /api/admin/challenges/:id
func UpdateChallenge(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid challenge id"})
	}

	db := database.GetDB()
	var challenge models.Challenge
	if err := db.First(&challenge, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Challenge not found"})
	}

	if err := c.BodyParser(&challenge); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	challenge.ID = uint(id)

	if challenge.XPReward <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "XP reward must be positive"})
	}
	if err := services.ValidateRequirements(challenge.Requirements); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := db.Save(&challenge).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update challenge"})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"challenge": challenge,
	})
}

// DeleteChallenge retires a challenge by deactivating it. Attempts and
// ledger rows referencing it stay untouched.
// DELETE /api/admin/challenges/:id
func DeleteChallenge(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid challenge id"})
	}

	db := database.GetDB()
	var challenge models.Challenge
	if err := db.First(&challenge, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Challenge not found"})
	}

	if err := db.Model(&challenge).Update("is_active", false).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to deactivate challenge"})
	}

	return c.JSON(fiber.Map{"success": true})
}

// RefreshLeaderboard triggers an on-demand window recompute
// POST /api/admin/leaderboard/refresh
func RefreshLeaderboard(c *fiber.Ctx) error {
	svc := services.NewLeaderboardService(database.GetDB())
	if err := svc.RefreshAll(); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to refresh leaderboard"})
	}
	return c.JSON(fiber.Map{"success": true})
}
