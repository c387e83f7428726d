// services/activity_hub.go - Realtime Activity Broadcast
package services

import (
	"log"
	"sync"

	"idolyst/models"
)

// ActivityEvent is the wire payload pushed to connected clients whenever a
// new ledger row is recorded.
type ActivityEvent struct {
	UserID   uint         `json:"user_id"`
	Activity ActivityItem `json:"activity"`
}

// ActivityHub fans freshly recorded XP activity out to websocket
// subscribers. Subscribers that fall behind are dropped rather than
// blocking the award path.
type ActivityHub struct {
	mu      sync.RWMutex
	nextID  int
	clients map[int]chan ActivityEvent
}

var activityHub *ActivityHub

// InitActivityHub initializes the singleton hub.
func InitActivityHub() *ActivityHub {
	activityHub = &ActivityHub{clients: make(map[int]chan ActivityEvent)}
	return activityHub
}

// GetActivityHub returns the initialized hub, or nil before init.
func GetActivityHub() *ActivityHub {
	return activityHub
}

// Subscribe registers a new client and returns its channel plus an
// unsubscribe function.
func (h *ActivityHub) Subscribe() (<-chan ActivityEvent, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	ch := make(chan ActivityEvent, 16)
	h.clients[id] = ch

	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if c, ok := h.clients[id]; ok {
			delete(h.clients, id)
			close(c)
		}
	}
}

// Publish projects a ledger row and delivers it to every subscriber.
func (h *ActivityHub) Publish(tx models.XPTransaction) {
	event := ActivityEvent{UserID: tx.UserID, Activity: Describe(tx)}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, ch := range h.clients {
		select {
		case ch <- event:
		default:
			log.Printf("activity hub: dropping event for slow client %d", id)
		}
	}
}
