package repository

import (
	"context"
	"database/sql"
)

// Dashboard aggregates a teacher's material counts for the dashboard view.
type Dashboard struct {
	Total int            `json:"total"`
	Stats map[string]int `json:"stats"`
}

// Tracking aggregates system-wide counts for the admin tracking view.
type Tracking struct {
	Teachers  int `json:"teachers"`
	Subjects  int `json:"subjects"`
	Materials int `json:"materials"`
}

// ReportRepo runs the aggregate queries behind the dashboard and tracking
// endpoints.
type ReportRepo struct{ DB *sql.DB }

func NewReportRepo(db *sql.DB) *ReportRepo { return &ReportRepo{DB: db} }

// Dashboard returns total material count and a per-category breakdown for
// one teacher.
func (r *ReportRepo) Dashboard(ctx context.Context, teacherID int64) (*Dashboard, error) {
	d := &Dashboard{Stats: make(map[string]int)}

	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM materials m JOIN subjects s ON m.subject_id = s.id WHERE s.teacher_id = ?`,
		teacherID).Scan(&d.Total)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx,
		`SELECT m.category, COUNT(*) FROM materials m JOIN subjects s ON m.subject_id = s.id
		 WHERE s.teacher_id = ? GROUP BY m.category`, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var n int
		if err := rows.Scan(&category, &n); err != nil {
			return nil, err
		}
		d.Stats[category] = n
	}
	return d, rows.Err()
}

// Tracking returns the teacher, subject and material counts.
func (r *ReportRepo) Tracking(ctx context.Context) (*Tracking, error) {
	var t Tracking
	err := r.DB.QueryRowContext(ctx,
		`SELECT
			(SELECT COUNT(*) FROM users WHERE role='teacher'),
			(SELECT COUNT(*) FROM subjects),
			(SELECT COUNT(*) FROM materials)`).Scan(&t.Teachers, &t.Subjects, &t.Materials)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
