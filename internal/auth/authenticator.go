package auth

import "context"

// LockoutThreshold is the number of consecutive failed logins after which
// further attempts are rejected without re-checking the password.
const LockoutThreshold = 3

// Result is the tri-state outcome of a login attempt.
type Result int

const (
	// ResultInvalid means the username is unknown or the password is wrong.
	ResultInvalid Result = iota
	// ResultSuccess means the credentials matched; the attempt counter
	// has been reset.
	ResultSuccess
	// ResultLocked means the account has reached the lockout threshold;
	// the password was not checked.
	ResultLocked
)

func (r Result) String() string {
	switch r {
	case ResultSuccess:
		return "success"
	case ResultLocked:
		return "locked"
	default:
		return "invalid"
	}
}

// Authenticator orchestrates the lockout policy and the credential check
// into a single login operation.
type Authenticator struct {
	Store Store
}

func NewAuthenticator(store Store) *Authenticator {
	return &Authenticator{Store: store}
}

// Login runs one authentication round trip:
//
//  1. read the current attempt count;
//  2. at or above the threshold, return ResultLocked without touching the
//     counter or the password;
//  3. otherwise verify the credentials;
//  4. on a match, reset the counter and return ResultSuccess;
//  5. on a mismatch, increment the counter and return ResultInvalid.
//
// The read and the write are separate statements on purpose: the store is
// not asked for a transaction, so concurrent failed logins for the same
// username may lose an increment.  Any store error aborts the attempt and
// is returned to the caller unretried.
func (a *Authenticator) Login(ctx context.Context, username, password string) (Result, error) {
	attempts, err := a.Store.GetAttempts(ctx, username)
	if err != nil {
		return ResultInvalid, err
	}
	// Negative attempts is the unknown-user sentinel: never locked, and
	// the credential check below is guaranteed to fail.
	if attempts >= LockoutThreshold {
		return ResultLocked, nil
	}

	ok, err := a.Store.CheckCredentials(ctx, username, password)
	if err != nil {
		return ResultInvalid, err
	}
	if ok {
		if err := a.Store.ResetAttempts(ctx, username); err != nil {
			return ResultInvalid, err
		}
		return ResultSuccess, nil
	}
	if err := a.Store.IncrementAttempts(ctx, username); err != nil {
		return ResultInvalid, err
	}
	return ResultInvalid, nil
}
