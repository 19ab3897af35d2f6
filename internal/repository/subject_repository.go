package repository

import (
	"context"
	"database/sql"
)

// Subject represents a row in the 'subjects' table.  TeacherID may be zero
// when a subject is unassigned (teacher deleted).
type Subject struct {
	ID         int64  `json:"id"`
	Program    string `json:"program"`
	GradeLevel string `json:"grade_level"`
	Semester   string `json:"semester"`
	Subject    string `json:"subject"`
	TeacherID  int64  `json:"teacher_id"`
}

// SubjectRepo encapsulates all database queries for subjects.
type SubjectRepo struct{ DB *sql.DB }

func NewSubjectRepo(db *sql.DB) *SubjectRepo { return &SubjectRepo{DB: db} }

// Create inserts a subject and returns its id.
func (r *SubjectRepo) Create(ctx context.Context, s *Subject) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO subjects (program, grade_level, semester, subject, teacher_id) VALUES (?,?,?,?,?)",
		s.Program, s.GradeLevel, s.Semester, s.Subject, s.TeacherID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

// Update rewrites every mutable column of a subject.
func (r *SubjectRepo) Update(ctx context.Context, s *Subject) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE subjects SET program=?, grade_level=?, semester=?, subject=?, teacher_id=? WHERE id=?",
		s.Program, s.GradeLevel, s.Semester, s.Subject, s.TeacherID, s.ID)
	return err
}

// Delete removes a subject; materials cascade in the schema.
func (r *SubjectRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM subjects WHERE id=?", id)
	return err
}

// ListByTeacher returns the subjects assigned to one teacher.
func (r *SubjectRepo) ListByTeacher(ctx context.Context, teacherID int64) ([]Subject, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, program, grade_level, semester, subject, COALESCE(teacher_id,0) FROM subjects WHERE teacher_id=?",
		teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSubjects(rows)
}

// ListAll returns every subject regardless of assignment.
func (r *SubjectRepo) ListAll(ctx context.Context) ([]Subject, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, program, grade_level, semester, subject, COALESCE(teacher_id,0) FROM subjects")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSubjects(rows)
}

// AssignTeacher reassigns an existing subject to a teacher.
func (r *SubjectRepo) AssignTeacher(ctx context.Context, subjectID, teacherID int64) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE subjects SET teacher_id=? WHERE id=?", teacherID, subjectID)
	return err
}

func scanSubjects(rows *sql.Rows) ([]Subject, error) {
	items := make([]Subject, 0)
	for rows.Next() {
		var s Subject
		if err := rows.Scan(&s.ID, &s.Program, &s.GradeLevel, &s.Semester, &s.Subject, &s.TeacherID); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}
