// handlers/users.go
package handlers

import (
	"errors"
	"time"

	"idolyst/database"
	"idolyst/middleware"
	"idolyst/models"
	"idolyst/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name"`
	Avatar      *string `json:"avatar"`
	Bio         *string `json:"bio"`
	Location    *string `json:"location"`
	Website     *string `json:"website"`
}

// GetCurrentUser returns the authenticated user's full record
// GET /api/users/me
func GetCurrentUser(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// GetUserProfile returns another user's public profile
// GET /api/users/:id
func GetUserProfile(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user id"})
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	user.Email = nil
	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// UpdateCurrentUser applies partial profile edits, recomputes the profile
// completion percentage, and grants the one-time profile XP when the
// profile first reaches full completion.
// PUT /api/users/me
func UpdateCurrentUser(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Website != nil {
		user.Website = *req.Website
	}

	user.ProfileCompletion = services.ComputeProfileCompletion(&user)
	user.UpdatedAt = time.Now()

	if err := db.Save(&user).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	awarded := false
	if user.ProfileCompletion == 100 {
		var prior int64
		db.Model(&models.XPTransaction{}).
			Where("user_id = ? AND transaction_type = ?", userID, models.TxProfileUpdate).
			Count(&prior)
		if prior == 0 {
			if _, err := xpService.RecordEvent(userID, models.TxProfileUpdate, nil, "profile", nil); err != nil &&
				!errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(500).JSON(fiber.Map{"error": "Failed to award profile XP"})
			}
			awarded = true
			db.First(&user, userID)
		}
	}

	return c.JSON(fiber.Map{
		"success":            true,
		"user":               user,
		"profile_xp_awarded": awarded,
	})
}
