package types

import "time"

// AuthEventType identifies which endpoint produced an AuthEvent.
type AuthEventType string

const (
	AuthEventSignup AuthEventType = "signup"
	AuthEventLogin  AuthEventType = "login"
)

// AuthEvent records the outcome of a signup or login attempt.
// It never carries the password, its hash, or model output.
type AuthEvent struct {
	ID         string        `json:"id"`
	Type       AuthEventType `json:"type"`
	Username   string        `json:"username"`
	Accepted   bool          `json:"accepted"`
	OccurredAt time.Time     `json:"occurred_at"`
}
