// handlers/handlers.go - Handler Service Wiring
package handlers

import (
	"idolyst/database"
	"idolyst/services"
)

var (
	xpService          *services.XPService
	challengeService   *services.ChallengeService
	leaderboardService *services.LeaderboardService
)

// InitHandlers wires the gamification services. The database must be
// initialized first.
func InitHandlers(hub *services.ActivityHub) {
	db := database.GetDB()
	if db == nil {
		panic("Database not initialized before InitHandlers")
	}

	xpService = services.NewXPService(db)
	challengeService = services.NewChallengeService(db)
	leaderboardService = services.NewLeaderboardService(db)

	if hub != nil {
		xpService.SetHub(hub)
		challengeService.SetHub(hub)
	}
}
