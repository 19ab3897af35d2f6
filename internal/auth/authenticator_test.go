package auth

import (
	"context"
	"errors"
	"testing"
)

// fakeStore backs the authenticator with an in-memory account table.
type fakeStore struct {
	attempts map[string]int
	password map[string]string
	ids      map[string]int64
	failWith error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		attempts: map[string]int{"admin": 0},
		password: map[string]string{"admin": "admin123"},
		ids:      map[string]int64{"admin": 1},
	}
}

func (f *fakeStore) GetAttempts(ctx context.Context, username string) (int, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	n, ok := f.attempts[username]
	if !ok {
		return -1, nil
	}
	return n, nil
}

func (f *fakeStore) IncrementAttempts(ctx context.Context, username string) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.attempts[username]; ok {
		f.attempts[username]++
	}
	return nil
}

func (f *fakeStore) ResetAttempts(ctx context.Context, username string) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.attempts[username]; ok {
		f.attempts[username] = 0
	}
	return nil
}

func (f *fakeStore) CheckCredentials(ctx context.Context, username, password string) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	return f.password[username] == password && password != "", nil
}

func (f *fakeStore) GetUserID(ctx context.Context, username string) (int64, error) {
	id, ok := f.ids[username]
	if !ok {
		return 0, errors.New("no such user")
	}
	return id, nil
}

func (f *fakeStore) GetName(ctx context.Context, username string) (string, error) {
	return "", nil
}

func TestLoginSuccessResetsAttempts(t *testing.T) {
	s := newFakeStore()
	s.attempts["admin"] = 2
	a := NewAuthenticator(s)

	res, err := a.Login(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res != ResultSuccess {
		t.Fatalf("result = %v, want success", res)
	}
	if s.attempts["admin"] != 0 {
		t.Fatalf("attempts = %d, want 0 after success", s.attempts["admin"])
	}
}

func TestLoginWrongPasswordIncrements(t *testing.T) {
	s := newFakeStore()
	a := NewAuthenticator(s)

	for i := 1; i <= LockoutThreshold; i++ {
		res, err := a.Login(context.Background(), "admin", "nope")
		if err != nil {
			t.Fatalf("Login %d: %v", i, err)
		}
		if res != ResultInvalid {
			t.Fatalf("Login %d = %v, want invalid", i, res)
		}
		if s.attempts["admin"] != i {
			t.Fatalf("attempts after %d failures = %d", i, s.attempts["admin"])
		}
	}

	// Fourth try is rejected even with the right password, and the counter
	// stays where it is.
	res, err := a.Login(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res != ResultLocked {
		t.Fatalf("result = %v, want locked", res)
	}
	if s.attempts["admin"] != LockoutThreshold {
		t.Fatalf("attempts after lock = %d, want %d", s.attempts["admin"], LockoutThreshold)
	}
}

func TestLoginBelowThresholdRecovers(t *testing.T) {
	s := newFakeStore()
	a := NewAuthenticator(s)

	if res, _ := a.Login(context.Background(), "admin", "nope"); res != ResultInvalid {
		t.Fatalf("first attempt = %v, want invalid", res)
	}
	if res, _ := a.Login(context.Background(), "admin", "nope"); res != ResultInvalid {
		t.Fatalf("second attempt = %v, want invalid", res)
	}
	res, err := a.Login(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res != ResultSuccess {
		t.Fatalf("result = %v, want success on third attempt", res)
	}
	if s.attempts["admin"] != 0 {
		t.Fatalf("attempts = %d, want 0", s.attempts["admin"])
	}
}

func TestResetAttemptsIdempotent(t *testing.T) {
	s := newFakeStore()
	a := NewAuthenticator(s)

	if _, err := a.Login(context.Background(), "admin", "nope"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if s.attempts["admin"] != 1 {
		t.Fatalf("attempts = %d, want 1", s.attempts["admin"])
	}

	// Two successful logins in a row: the second reset must leave the
	// counter at zero, not underflow or error.
	for i := 1; i <= 2; i++ {
		res, err := a.Login(context.Background(), "admin", "admin123")
		if err != nil {
			t.Fatalf("Login %d: %v", i, err)
		}
		if res != ResultSuccess {
			t.Fatalf("Login %d = %v, want success", i, res)
		}
		if s.attempts["admin"] != 0 {
			t.Fatalf("attempts after reset %d = %d, want 0", i, s.attempts["admin"])
		}
	}

	// A direct back-to-back reset is equally a no-op at zero.
	if err := s.ResetAttempts(context.Background(), "admin"); err != nil {
		t.Fatalf("ResetAttempts: %v", err)
	}
	if s.attempts["admin"] != 0 {
		t.Fatalf("attempts = %d, want 0", s.attempts["admin"])
	}
}

func TestLoginUnknownUser(t *testing.T) {
	s := newFakeStore()
	a := NewAuthenticator(s)

	// Unknown users carry the negative sentinel: they are never locked, no
	// matter how many times they fail.
	for i := 0; i < LockoutThreshold+2; i++ {
		res, err := a.Login(context.Background(), "ghost", "whatever")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if res != ResultInvalid {
			t.Fatalf("result = %v, want invalid", res)
		}
	}
}

func TestLoginStoreErrorPropagates(t *testing.T) {
	s := newFakeStore()
	boom := errors.New("connection refused")
	s.failWith = boom
	a := NewAuthenticator(s)

	_, err := a.Login(context.Background(), "admin", "admin123")
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

func TestResultString(t *testing.T) {
	if got := ResultSuccess.String(); got != "success" {
		t.Fatalf("success = %q", got)
	}
	if got := ResultLocked.String(); got != "locked" {
		t.Fatalf("locked = %q", got)
	}
	if got := ResultInvalid.String(); got != "invalid" {
		t.Fatalf("invalid = %q", got)
	}
}
