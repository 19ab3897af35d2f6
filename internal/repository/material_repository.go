package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Material represents a row in the 'materials' table.  FileData holds the
// base64-encoded file contents as uploaded.
type Material struct {
	ID               int64
	SubjectID        int64
	Category         string
	OriginalFilename string
	FileData         string
	UploadedAt       time.Time
}

// TeacherMaterial is the denormalized view returned by the material list
// endpoints: a material joined with its subject and program names.
type TeacherMaterial struct {
	ID          int64     `json:"id"`
	SubjectID   int64     `json:"subject_id"`
	Category    string    `json:"category"`
	FileName    string    `json:"file_name"`
	UploadedAt  time.Time `json:"uploaded_at"`
	ProgramName string    `json:"program_name"`
	SubjectName string    `json:"subject_name"`
}

// MaterialRepo encapsulates all database queries for materials.
type MaterialRepo struct{ DB *sql.DB }

func NewMaterialRepo(db *sql.DB) *MaterialRepo { return &MaterialRepo{DB: db} }

// Create inserts a material and returns its id.
func (r *MaterialRepo) Create(ctx context.Context, m *Material) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO materials (subject_id, category, original_filename, file_data) VALUES (?,?,?,?)",
		m.SubjectID, m.Category, m.OriginalFilename, m.FileData)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = id
	return nil
}

// GetByID fetches a material including its file contents.
func (r *MaterialRepo) GetByID(ctx context.Context, id int64) (*Material, error) {
	var m Material
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, subject_id, category, original_filename, file_data, uploaded_at FROM materials WHERE id=? LIMIT 1",
		id).Scan(&m.ID, &m.SubjectID, &m.Category, &m.OriginalFilename, &m.FileData, &m.UploadedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Delete removes a material.
func (r *MaterialRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM materials WHERE id=?", id)
	return err
}

// ListByTeacher returns all materials belonging to subjects assigned to
// the given teacher, without the file contents.
func (r *MaterialRepo) ListByTeacher(ctx context.Context, teacherID int64) ([]TeacherMaterial, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT m.id, m.subject_id, m.category, m.original_filename, m.uploaded_at, s.program, s.subject
		 FROM materials m JOIN subjects s ON m.subject_id = s.id
		 WHERE s.teacher_id = ?`, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]TeacherMaterial, 0)
	for rows.Next() {
		var m TeacherMaterial
		if err := rows.Scan(&m.ID, &m.SubjectID, &m.Category, &m.FileName, &m.UploadedAt, &m.ProgramName, &m.SubjectName); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}
