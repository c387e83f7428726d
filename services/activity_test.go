package services

import (
	"testing"
	"time"

	"idolyst/models"
)

func TestDescribeKnownTypes(t *testing.T) {
	cases := []struct {
		txType models.TransactionType
		label  string
		icon   string
	}{
		{models.TxChallengeCompleted, "Completed a challenge", "trophy"},
		{models.TxBadgeEarned, "Earned a badge", "badge"},
		{models.TxProfileUpdate, "Updated their profile", "user"},
		{models.TxLoginStreak, "Kept up a login streak", "flame"},
		{models.TxPitchCreated, "Published a new pitch", "lightbulb"},
		{models.TxPitchFeedback, "Received mentor feedback on a pitch", "message"},
		{models.TxMentorSession, "Completed a mentorship session", "calendar"},
		{models.TxPostLike, "Got a like on a post", "heart"},
		{models.TxVerification, "Verified their account", "check"},
	}

	for _, tc := range cases {
		item := Describe(models.XPTransaction{ID: 7, Amount: 42, TransactionType: tc.txType})
		if item.Description != tc.label {
			t.Errorf("%s: expected %q, got %q", tc.txType, tc.label, item.Description)
		}
		if item.Icon != tc.icon {
			t.Errorf("%s: expected icon %q, got %q", tc.txType, tc.icon, item.Icon)
		}
		if item.ID != 7 || item.Amount != 42 {
			t.Errorf("%s: ledger fields not carried over: id=%d amount=%d", tc.txType, item.ID, item.Amount)
		}
	}
}

func TestDescribeUnknownTypeFallsBack(t *testing.T) {
	item := Describe(models.XPTransaction{TransactionType: "seasonal_bonus", Amount: 15})
	if item.Description != "Earned XP" {
		t.Errorf("Expected generic description, got %q", item.Description)
	}
	if item.Icon != "star" {
		t.Errorf("Expected star icon, got %q", item.Icon)
	}
}

func TestActivityHubDeliversToSubscribers(t *testing.T) {
	hub := InitActivityHub()

	ch, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	hub.Publish(models.XPTransaction{
		UserID:          3,
		Amount:          50,
		TransactionType: models.TxMentorSession,
	})

	select {
	case event := <-ch:
		if event.UserID != 3 {
			t.Errorf("Expected event for user 3, got %d", event.UserID)
		}
		if event.Activity.Icon != "calendar" {
			t.Errorf("Expected projected activity, got icon %q", event.Activity.Icon)
		}
	case <-time.After(time.Second):
		t.Fatal("Timed out waiting for published event")
	}
}

func TestActivityHubUnsubscribeClosesChannel(t *testing.T) {
	hub := InitActivityHub()

	ch, unsubscribe := hub.Subscribe()
	unsubscribe()

	if _, ok := <-ch; ok {
		t.Error("Expected channel closed after unsubscribe")
	}

	// Publishing after unsubscribe must not panic or block
	hub.Publish(models.XPTransaction{UserID: 1, Amount: 5, TransactionType: models.TxPostLike})

	// A double unsubscribe is a no-op
	unsubscribe()
}

func TestActivityHubDropsSlowClients(t *testing.T) {
	hub := InitActivityHub()

	ch, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	// Overfill the buffer; publishes beyond capacity are dropped, not blocked
	done := make(chan struct{})
	go func() {
		for i := 0; i < 32; i++ {
			hub.Publish(models.XPTransaction{UserID: 1, Amount: 1, TransactionType: models.TxPostLike})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}

	if len(ch) != cap(ch) {
		t.Errorf("Expected a full buffer of %d events, got %d", cap(ch), len(ch))
	}
}
