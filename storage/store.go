package storage

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"civicreport-be/models"

	_ "modernc.org/sqlite"
)

const issuesSchema = `
CREATE TABLE IF NOT EXISTS issues (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	email TEXT NOT NULL,
	issue_type TEXT NOT NULL,
	description TEXT,
	image_path TEXT,
	location TEXT,
	latitude REAL,
	longitude REAL,
	status TEXT DEFAULT 'open',
	created_at TEXT
)`

// Store provides SQLite-backed persistence for reported issues.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the issues database and ensures the schema exists. Safe to
// call on every process start.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := sqlDB.Exec(issuesSchema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ensure issues schema: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Insert appends one issue row. The generated id is not reported back;
// nothing in the submission flow needs it.
func (s *Store) Insert(ctx context.Context, issue models.Issue) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO issues (email, issue_type, description, image_path, location, latitude, longitude, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		issue.Email,
		issue.IssueType,
		issue.Description,
		issue.ImagePath,
		issue.Location,
		issue.Latitude,
		issue.Longitude,
		issue.Status,
		issue.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert issue: %w", err)
	}
	return nil
}

// ListAll returns every issue, newest first.
func (s *Store) ListAll(ctx context.Context) ([]models.Issue, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, email, issue_type, description, image_path, location, latitude, longitude, status, created_at
		 FROM issues
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}
	defer rows.Close()

	var issues []models.Issue
	for rows.Next() {
		var issue models.Issue
		var description sql.NullString
		var imagePath sql.NullString
		var location sql.NullString
		var latitude sql.NullFloat64
		var longitude sql.NullFloat64
		var createdAt sql.NullString

		if err := rows.Scan(
			&issue.ID,
			&issue.Email,
			&issue.IssueType,
			&description,
			&imagePath,
			&location,
			&latitude,
			&longitude,
			&issue.Status,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan issue: %w", err)
		}

		issue.Description = description.String
		issue.Location = location.String
		issue.CreatedAt = createdAt.String
		if imagePath.Valid {
			issue.ImagePath = &imagePath.String
		}
		if latitude.Valid {
			issue.Latitude = &latitude.Float64
		}
		if longitude.Valid {
			issue.Longitude = &longitude.Float64
		}

		issues = append(issues, issue)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate issues: %w", err)
	}

	return issues, nil
}

// UpdateStatus sets the status of one issue. A missing id is not an
// error; the statement simply matches no rows.
func (s *Store) UpdateStatus(ctx context.Context, id int64, status string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	_, err := s.sqlDB.ExecContext(ctx, `UPDATE issues SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("update issue status: %w", err)
	}
	return nil
}
