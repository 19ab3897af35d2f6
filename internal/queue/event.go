// Package queue contains the login audit event definition and the
// background consumer that appends audit events to logs/auth.log.
package queue

import "time"

// AuditQueueName is the durable queue that carries login audit events.
const AuditQueueName = "auth.audit"

// Login outcomes carried in audit events.  They mirror the tri-state
// result of the authenticator.
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeLocked  = "locked"
)

// LoginEvent records one login decision.  Passwords never appear here.
type LoginEvent struct {
	Username string    `json:"username"`
	Outcome  string    `json:"outcome"`
	RemoteIP string    `json:"remote_ip"`
	At       time.Time `json:"at"`
}
