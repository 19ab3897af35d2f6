// Package auth implements credential verification, brute-force lockout
// bookkeeping and the in-process bearer token registry.  It talks to the
// persistent store only through the narrow Store interface so the storage
// engine (and the password comparison strategy) can be swapped without
// touching the login flow.
package auth

import "context"

// Store is the credential store adapter consumed by the authenticator.
// All user lookups key on the exact, case-sensitive username.
type Store interface {
	// GetAttempts returns the failed-login counter for a username.  A
	// negative value is the sentinel for an unknown user: not locked,
	// but guaranteed to fail verification.
	GetAttempts(ctx context.Context, username string) (int, error)

	// IncrementAttempts adds one failed attempt, persisting immediately.
	IncrementAttempts(ctx context.Context, username string) error

	// ResetAttempts sets the counter back to zero.  Idempotent.
	ResetAttempts(ctx context.Context, username string) error

	// CheckCredentials reports whether the submitted password matches the
	// stored one exactly.  No normalization is applied on either side.
	CheckCredentials(ctx context.Context, username, password string) (bool, error)

	// GetUserID resolves a username to its numeric id.
	GetUserID(ctx context.Context, username string) (int64, error)

	// GetName returns the display name stored for a username.  Accounts
	// without a recorded name, and unknown usernames, yield "".
	GetName(ctx context.Context, username string) (string, error)
}
