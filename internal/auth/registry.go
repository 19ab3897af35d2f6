package auth

import (
	"math/rand"
	"sync"
)

// TokenLength is the length of every issued bearer token.
const TokenLength = 64

// DefaultTokenCapacity bounds the number of concurrently active tokens
// when no explicit capacity is configured.
const DefaultTokenCapacity = 100

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type tokenEntry struct {
	token  string
	userID int64
}

// Registry maps issued bearer tokens to user identities.  It lives only in
// process memory: tokens are never persisted, never expire, and vanish on
// restart.  Entries are kept in a fixed-capacity ring; once the registry is
// full, issuing a new token evicts the oldest one.  A single mutex guards
// both issuance and lookup so the registry is safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	entries []tokenEntry
	next    int
	cap     int
}

// NewRegistry returns a registry bounded to the given capacity.  A
// non-positive capacity falls back to DefaultTokenCapacity.
func NewRegistry(capacity int) *Registry {
	if capacity <= 0 {
		capacity = DefaultTokenCapacity
	}
	return &Registry{
		entries: make([]tokenEntry, 0, capacity),
		cap:     capacity,
	}
}

// Issue generates a fresh token for the user and records it.  Token
// uniqueness is probabilistic: 62^64 possible values make a collision in a
// registry of this size a non-concern.
func (r *Registry) Issue(userID int64) string {
	token := randomToken()

	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) < r.cap {
		r.entries = append(r.entries, tokenEntry{token: token, userID: userID})
		return token
	}
	// Full: overwrite the oldest slot.
	r.entries[r.next] = tokenEntry{token: token, userID: userID}
	r.next = (r.next + 1) % r.cap
	return token
}

// Validate resolves a presented token to the user id it was issued for.
// The second return value is false for tokens that were never issued or
// have been evicted.
func (r *Registry) Validate(token string) (int64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].token == token {
			return r.entries[i].userID, true
		}
	}
	return 0, false
}

// Len reports the number of currently stored tokens.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// randomToken samples TokenLength characters from the alphanumeric
// alphabet.  The source is not cryptographic; the tokens are opaque
// session handles, not signed credentials.
func randomToken() string {
	buf := make([]byte, TokenLength)
	for i := range buf {
		buf[i] = tokenAlphabet[rand.Intn(len(tokenAlphabet))]
	}
	return string(buf)
}
