package repository

import (
	"context"
	"database/sql"
	"strings"
)

// Program represents a row in the 'programs' table.
type Program struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProgramRepo encapsulates all database queries for programs.
type ProgramRepo struct{ DB *sql.DB }

func NewProgramRepo(db *sql.DB) *ProgramRepo { return &ProgramRepo{DB: db} }

// Create inserts a program and returns its id.
func (r *ProgramRepo) Create(ctx context.Context, name string) (int64, error) {
	res, err := r.DB.ExecContext(ctx, "INSERT INTO programs (name) VALUES (?)", name)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrNameExists
		}
		return 0, err
	}
	return res.LastInsertId()
}

// Delete removes a program by id.
func (r *ProgramRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM programs WHERE id=?", id)
	return err
}

// List returns every program.
func (r *ProgramRepo) List(ctx context.Context) ([]Program, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id, name FROM programs")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Program, 0)
	for rows.Next() {
		var p Program
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}
