// Package queue defines message payloads exchanged over the message broker
// and the background consumer that records them.
package queue

// Account event types carried in AccountEvent.Type.
const (
	EventSignup  = "account.signup"
	EventDeleted = "account.deleted"
)

// AccountEvent is published when an account is created or deleted. It
// carries enough for downstream consumers to log or notify without
// querying the primary database. No secrets or tokens are included.
type AccountEvent struct {
	Type       string `json:"type"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	OccurredAt string `json:"occurred_at"`
}
