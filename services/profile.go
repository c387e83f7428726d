// services/profile.go - Profile Completion
package services

import (
	"math"

	"idolyst/models"
)

// ComputeProfileCompletion returns the percentage of profile fields a user
// has filled in. Always in [0, 100].
func ComputeProfileCompletion(u *models.User) int {
	filled := 0
	fields := []bool{
		u.DisplayName != "",
		u.Avatar != "",
		u.Bio != "",
		u.Location != "",
		u.Website != "",
		u.Email != nil && *u.Email != "",
	}
	for _, ok := range fields {
		if ok {
			filled++
		}
	}
	return int(math.Round(float64(filled) / float64(len(fields)) * 100))
}
