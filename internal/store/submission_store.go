package store

import (
	"context"
	"database/sql"

	"github.com/kinematics-suite/backend/internal/domain/answer"
	"github.com/kinematics-suite/backend/internal/domain/submission"
)

const submissionSchema = `
CREATE TABLE IF NOT EXISTS answers (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    answer TEXT NOT NULL,
    is_active INTEGER NOT NULL DEFAULT 1,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS submissions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL,
    task_id INTEGER NOT NULL,
    answer TEXT NOT NULL,
    image_base64 TEXT,
    is_correct INTEGER NOT NULL DEFAULT 0,
    is_active INTEGER NOT NULL DEFAULT 1,
    created_at TEXT NOT NULL
);
`

// SubmissionStore backs the answer submission service.
type SubmissionStore struct {
	db *sql.DB
}

type SubmissionFilter struct {
	UserID *int64
	TaskID *int64
}

func NewSubmissionSQLite(dbPath string) (*SubmissionStore, error) {
	db, err := openSQLite(dbPath, submissionSchema)
	if err != nil {
		return nil, err
	}
	return &SubmissionStore{db: db}, nil
}

func (s *SubmissionStore) Close() error {
	return s.db.Close()
}

func (s *SubmissionStore) SaveAnswer(ctx context.Context, a *answer.Answer) error {
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO answers (answer, is_active, created_at, updated_at) VALUES (?, ?, ?, ?)",
		a.Text, a.IsActive, formatTime(a.CreatedAt), formatTime(a.UpdatedAt),
	)
	if err != nil {
		return err
	}
	a.ID, err = result.LastInsertId()
	return err
}

func (s *SubmissionStore) GetAnswer(ctx context.Context, id int64) (*answer.Answer, error) {
	var a answer.Answer
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx,
		"SELECT id, answer, is_active, created_at, updated_at FROM answers WHERE id = ? AND is_active = 1", id,
	).Scan(&a.ID, &a.Text, &a.IsActive, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if a.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if a.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *SubmissionStore) SaveSubmission(ctx context.Context, sub *submission.Submission) error {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO submissions (user_id, task_id, answer, image_base64, is_correct, is_active, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sub.UserID, sub.TaskID, sub.Answer, sub.ImageBase64, sub.IsCorrect, sub.IsActive, formatTime(sub.CreatedAt),
	)
	if err != nil {
		return err
	}
	sub.ID, err = result.LastInsertId()
	return err
}

func (s *SubmissionStore) ListSubmissions(ctx context.Context, f SubmissionFilter) ([]*submission.Submission, error) {
	query := `SELECT id, user_id, task_id, answer, image_base64, is_correct, is_active, created_at
		FROM submissions WHERE is_active = 1`
	var args []any
	if f.UserID != nil {
		query += " AND user_id = ?"
		args = append(args, *f.UserID)
	}
	if f.TaskID != nil {
		query += " AND task_id = ?"
		args = append(args, *f.TaskID)
	}

	rows, err := s.db.QueryContext(ctx, query+" ORDER BY id", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*submission.Submission
	for rows.Next() {
		var sub submission.Submission
		var image sql.NullString
		var createdAt string
		if err := rows.Scan(&sub.ID, &sub.UserID, &sub.TaskID, &sub.Answer, &image,
			&sub.IsCorrect, &sub.IsActive, &createdAt); err != nil {
			return nil, err
		}
		if image.Valid {
			sub.ImageBase64 = &image.String
		}
		if sub.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		subs = append(subs, &sub)
	}
	return subs, rows.Err()
}
