package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// AttemptsUnknown is reported by GetAttempts when the username has no row.
// Callers must treat unknown users as not locked but as failing
// verification.
const AttemptsUnknown = -1

// Teacher mirrors a 'users' row with role='teacher' as exposed by the
// admin endpoints.
type Teacher struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	AccessCode string `json:"access_code"`
}

// UserRepo is the store adapter for the 'users' table.  The auth package
// consumes it through its narrow Store interface; every query here is
// parameterized.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// GetAttempts returns the failed-login counter for a username, or
// AttemptsUnknown when no such user exists.
func (r *UserRepo) GetAttempts(ctx context.Context, username string) (int, error) {
	var attempts int
	err := r.DB.QueryRowContext(ctx,
		"SELECT login_attempts FROM users WHERE username=? LIMIT 1",
		username).Scan(&attempts)
	if errors.Is(err, sql.ErrNoRows) {
		return AttemptsUnknown, nil
	}
	if err != nil {
		return 0, err
	}
	return attempts, nil
}

// IncrementAttempts adds one failed attempt.  A no-op for unknown users.
func (r *UserRepo) IncrementAttempts(ctx context.Context, username string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET login_attempts = login_attempts + 1 WHERE username=?",
		username)
	return err
}

// ResetAttempts sets the counter back to zero.  Idempotent.
func (r *UserRepo) ResetAttempts(ctx context.Context, username string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET login_attempts = 0 WHERE username=?",
		username)
	return err
}

// CheckCredentials compares the submitted username and password literally
// against the stored values.  The comparison happens in SQL so the stored
// representation stays an implementation detail of this adapter.
func (r *UserRepo) CheckCredentials(ctx context.Context, username, password string) (bool, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE username=? AND password=?",
		username, password).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// GetUserID resolves a username to its numeric id.
func (r *UserRepo) GetUserID(ctx context.Context, username string) (int64, error) {
	var id int64
	err := r.DB.QueryRowContext(ctx,
		"SELECT id FROM users WHERE username=? LIMIT 1",
		username).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrUserNotFound
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetName returns the display name stored for a username.  Accounts
// seeded without a name, and unknown usernames, yield the empty string.
func (r *UserRepo) GetName(ctx context.Context, username string) (string, error) {
	var name sql.NullString
	err := r.DB.QueryRowContext(ctx,
		"SELECT name FROM users WHERE username=? LIMIT 1",
		username).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return name.String, nil
}

// CreateTeacher inserts a teacher account and returns its id.
func (r *UserRepo) CreateTeacher(ctx context.Context, name, username, password, accessCode string) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (name, username, password, role, access_code) VALUES (?,?,?,'teacher',?)",
		name, username, password, accessCode)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrUsernameExists
		}
		return 0, err
	}
	return res.LastInsertId()
}

// DeleteTeacher removes a teacher account.  Admin accounts cannot be
// deleted through this path.
func (r *UserRepo) DeleteTeacher(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx,
		"DELETE FROM users WHERE id=? AND role='teacher'", id)
	return err
}

// ListTeachers returns every teacher account including its access code.
func (r *UserRepo) ListTeachers(ctx context.Context) ([]Teacher, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, COALESCE(name,''), username, password, COALESCE(access_code,'') FROM users WHERE role='teacher'")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Teacher, 0)
	for rows.Next() {
		var t Teacher
		if err := rows.Scan(&t.ID, &t.Name, &t.Username, &t.Password, &t.AccessCode); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}
