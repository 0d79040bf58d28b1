package model

import "time"

type SessionStatus string

const (
	SessionWaiting  SessionStatus = "waiting"
	SessionActive   SessionStatus = "active"
	SessionPaused   SessionStatus = "paused"
	SessionFinished SessionStatus = "finished"
)

// DefaultTimerDuration is the countdown a fresh session starts with, in seconds.
const DefaultTimerDuration = 1800

// DefaultInitialBalance is the starting money for sessions created without an
// explicit balance.
const DefaultInitialBalance = 10000

// GameSession is one game round, identified by a 6-digit join code.
//
// TimerDuration holds the full countdown while the session is active and is
// repurposed to hold the *remaining* seconds when the session is paused; on
// resume StartedAt is re-anchored to now and the countdown restarts from the
// stored remainder.
type GameSession struct {
	ID             string        `json:"id" bson:"_id,omitempty"`
	Code           string        `json:"code" bson:"code"`
	Status         SessionStatus `json:"status" bson:"status"`
	TimerDuration  int           `json:"timerDuration" bson:"timer_duration"`
	StartedAt      *time.Time    `json:"startedAt" bson:"started_at,omitempty"`
	InitialBalance int           `json:"initialBalance" bson:"initial_balance"`
	TreasureItems  []string      `json:"treasureItems" bson:"treasure_items"`
	CreatedAt      time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt      time.Time     `json:"updatedAt" bson:"updated_at"`
}

// Remaining computes the seconds left on the countdown at the given instant.
// The countdown is derived from the wall-clock anchor rather than decremented,
// so missed ticks never skew it.
func (s *GameSession) Remaining(now time.Time) int {
	switch s.Status {
	case SessionPaused:
		return s.TimerDuration
	case SessionActive:
		if s.StartedAt == nil {
			return s.TimerDuration
		}
		elapsed := int(now.Sub(*s.StartedAt) / time.Second)
		remaining := s.TimerDuration - elapsed
		if remaining < 0 {
			return 0
		}
		return remaining
	default:
		return 0
	}
}

// IsTreasure reports whether itemID is one of this session's treasure items.
func (s *GameSession) IsTreasure(itemID string) bool {
	for _, id := range s.TreasureItems {
		if id == itemID {
			return true
		}
	}
	return false
}
