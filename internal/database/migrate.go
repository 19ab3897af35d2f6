package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema statements are idempotent so Migrate can run at every startup.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(100) NOT NULL UNIQUE,
		password VARCHAR(100) NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'teacher',
		access_code VARCHAR(100),
		login_attempts INT NOT NULL DEFAULT 0,
		name VARCHAR(100)
	)`,
	`CREATE TABLE IF NOT EXISTS programs (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS subjects (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		program VARCHAR(100) NOT NULL,
		grade_level VARCHAR(50) NOT NULL,
		semester VARCHAR(50) NOT NULL,
		subject VARCHAR(100) NOT NULL,
		teacher_id BIGINT,
		KEY idx_subjects_program (program),
		CONSTRAINT fk_subjects_teacher FOREIGN KEY (teacher_id)
			REFERENCES users(id) ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS materials (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		subject_id BIGINT NOT NULL,
		category VARCHAR(100) NOT NULL,
		original_filename VARCHAR(255) NOT NULL,
		file_data LONGTEXT NOT NULL,
		uploaded_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		KEY idx_materials_subject (subject_id),
		CONSTRAINT fk_materials_subject FOREIGN KEY (subject_id)
			REFERENCES subjects(id) ON DELETE CASCADE
	)`,
}

// Seed rows match the accounts and sample data the application ships with.
// Passwords are stored as-is; see the auth package for the comparison seam.
var seed = []string{
	`INSERT IGNORE INTO users (username, password, role)
		VALUES ('billyjohnlendio10@gmail.com', 'admin123', 'admin')`,
	`INSERT IGNORE INTO users (name, username, password, role, access_code)
		VALUES ('Benna Mae Oyangorin', 'bennamae', 'teacher123', 'teacher', 'benna123')`,
	`INSERT IGNORE INTO programs (name) VALUES ('Computer Science')`,
	`INSERT IGNORE INTO programs (name) VALUES ('Mathematics')`,
	`INSERT IGNORE INTO programs (name) VALUES ('Physics')`,
}

// Migrate creates the schema and inserts the default accounts and sample
// programs if they are missing.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate schema: %w", err)
		}
	}
	for _, stmt := range seed {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("seed data: %w", err)
		}
	}
	return nil
}
