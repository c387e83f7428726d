// handlers/challenges.go
package handlers

import (
	"errors"

	"idolyst/middleware"
	"idolyst/models"
	"idolyst/services"

	"github.com/gofiber/fiber/v2"
)

type UpdateProgressRequest struct {
	Progress models.MetricMap `json:"progress"`
}

// GetChallenges lists the active challenge catalog
// GET /api/challenges
func GetChallenges(c *fiber.Ctx) error {
	challenges, err := challengeService.ListChallenges(true)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch challenges"})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"challenges": challenges,
		"count":      len(challenges),
	})
}

// GetMyChallenges lists the user's attempts
// GET /api/challenges/mine
func GetMyChallenges(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	attempts, err := challengeService.ListUserChallenges(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch challenges"})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"challenges": attempts,
		"count":      len(attempts),
	})
}

// StartChallenge begins a new attempt
// POST /api/challenges/:id/start
func StartChallenge(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	challengeID, err := c.ParamsInt("id")
	if err != nil || challengeID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid challenge id"})
	}

	attempt, err := challengeService.Start(userID, uint(challengeID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Challenge not found"})
		case errors.Is(err, services.ErrChallengeUnavailable):
			return c.Status(400).JSON(fiber.Map{"error": "Challenge is not available"})
		case errors.Is(err, services.ErrAlreadyStarted):
			return c.Status(409).JSON(fiber.Map{"error": "Challenge already started"})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to start challenge"})
		}
	}

	return c.Status(201).JSON(fiber.Map{
		"success":   true,
		"challenge": attempt,
	})
}

// UpdateChallengeProgress merges new metric values into an attempt
// POST /api/user-challenges/:id/progress
func UpdateChallengeProgress(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	attemptID, err := c.ParamsInt("id")
	if err != nil || attemptID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid attempt id"})
	}

	var req UpdateProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	// Foreign attempts read as not-found
	if owned, err := challengeService.OwnsAttempt(userID, uint(attemptID)); err != nil || !owned {
		return c.Status(404).JSON(fiber.Map{"error": "Challenge attempt not found"})
	}

	attempt, completed, err := challengeService.UpdateProgress(uint(attemptID), req.Progress)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Challenge attempt not found"})
		case errors.Is(err, services.ErrChallengeClosed):
			return c.Status(409).JSON(fiber.Map{"error": "Challenge attempt is closed"})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to update progress"})
		}
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"challenge":     attempt,
		"completed_now": completed,
	})
}

// AbandonChallenge marks an attempt as failed
// POST /api/user-challenges/:id/abandon
func AbandonChallenge(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	attemptID, err := c.ParamsInt("id")
	if err != nil || attemptID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid attempt id"})
	}

	if owned, err := challengeService.OwnsAttempt(userID, uint(attemptID)); err != nil || !owned {
		return c.Status(404).JSON(fiber.Map{"error": "Challenge attempt not found"})
	}

	if err := challengeService.Abandon(uint(attemptID)); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Challenge attempt not found"})
		case errors.Is(err, services.ErrChallengeClosed):
			return c.Status(409).JSON(fiber.Map{"error": "Challenge attempt is closed"})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to abandon challenge"})
		}
	}

	return c.JSON(fiber.Map{"success": true})
}
