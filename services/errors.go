// services/errors.go
package services

import "errors"

var (
	// ErrNotFound signals that a referenced challenge, attempt, or user
	// does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyStarted signals a second attempt at a challenge the user
	// already has a non-terminal attempt for.
	ErrAlreadyStarted = errors.New("challenge already started")

	// ErrChallengeUnavailable signals a challenge that is inactive or
	// outside its active window.
	ErrChallengeUnavailable = errors.New("challenge is not available")

	// ErrChallengeClosed signals a progress update against a failed
	// (abandoned) attempt.
	ErrChallengeClosed = errors.New("challenge attempt is closed")

	// ErrInvalidAmount signals a non-positive XP grant.
	ErrInvalidAmount = errors.New("xp amount must be positive")

	// ErrUnknownEventType signals an event intake type with no tariff.
	ErrUnknownEventType = errors.New("unknown event type")

	// ErrInvalidWindow signals an unrecognized leaderboard window selector.
	ErrInvalidWindow = errors.New("invalid leaderboard window")
)
