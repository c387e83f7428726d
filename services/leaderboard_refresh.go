// services/leaderboard_refresh.go - Background Leaderboard Aggregation
package services

import (
	"log"
	"os"
	"strconv"
	"time"
)

// LeaderboardRefreshService periodically rewrites the ranked windows from
// the XP ledger.
type LeaderboardRefreshService struct {
	leaderboards *LeaderboardService
	interval     time.Duration
	stop         chan struct{}
	done         chan struct{}
}

var refreshService *LeaderboardRefreshService

// InitLeaderboardRefreshService initializes the singleton refresh service.
// The interval comes from LEADERBOARD_REFRESH_MINUTES (default 15).
func InitLeaderboardRefreshService(leaderboards *LeaderboardService) *LeaderboardRefreshService {
	minutes := 15
	if raw := os.Getenv("LEADERBOARD_REFRESH_MINUTES"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			minutes = v
		}
	}

	refreshService = &LeaderboardRefreshService{
		leaderboards: leaderboards,
		interval:     time.Duration(minutes) * time.Minute,
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
	return refreshService
}

// GetLeaderboardRefreshService returns the initialized refresh service.
func GetLeaderboardRefreshService() *LeaderboardRefreshService {
	return refreshService
}

// Start runs an immediate refresh, then keeps refreshing on the interval
// until Stop is called.
func (s *LeaderboardRefreshService) Start() {
	go func() {
		defer close(s.done)

		if err := s.leaderboards.RefreshAll(); err != nil {
			log.Printf("leaderboard refresh failed: %v", err)
		}

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := s.leaderboards.RefreshAll(); err != nil {
					log.Printf("leaderboard refresh failed: %v", err)
				}
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop shuts the refresh loop down and waits for it to exit.
func (s *LeaderboardRefreshService) Stop() {
	close(s.stop)
	<-s.done
}
