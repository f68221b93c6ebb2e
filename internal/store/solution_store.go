package store

import (
	"context"
	"database/sql"

	"github.com/kinematics-suite/backend/internal/domain/answer"
	"github.com/kinematics-suite/backend/internal/domain/attempt"
)

const solutionSchema = `
CREATE TABLE IF NOT EXISTS answers (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    text TEXT NOT NULL,
    user_id INTEGER NOT NULL,
    is_active INTEGER NOT NULL DEFAULT 1,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

-- task_id and student_id live in other services and are checked over HTTP.
CREATE TABLE IF NOT EXISTS attempts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    task_id INTEGER NOT NULL,
    student_id INTEGER NOT NULL,
    answer TEXT NOT NULL,
    status TEXT NOT NULL,
    system_grade INTEGER,
    teacher_grade INTEGER,
    image_path TEXT,
    is_active INTEGER NOT NULL DEFAULT 1,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_attempts_task ON attempts(task_id);
CREATE INDEX IF NOT EXISTS idx_attempts_student ON attempts(student_id);
`

// SolutionStore persists canonical answers and student attempts.
type SolutionStore struct {
	db *sql.DB
}

// AttemptFilter narrows ListAttempts and CountAttempts to active attempts
// matching every non-nil field. A non-nil empty TaskIDs matches nothing.
type AttemptFilter struct {
	StudentID *int64
	TaskIDs   []int64
	Status    *attempt.Status
}

func NewSolutionSQLite(dbPath string) (*SolutionStore, error) {
	db, err := openSQLite(dbPath, solutionSchema)
	if err != nil {
		return nil, err
	}
	return &SolutionStore{db: db}, nil
}

func (s *SolutionStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Answers
// ============================================================================

func (s *SolutionStore) SaveAnswer(ctx context.Context, a *answer.Answer) error {
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO answers (text, user_id, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		a.Text, a.UserID, a.IsActive, formatTime(a.CreatedAt), formatTime(a.UpdatedAt),
	)
	if err != nil {
		return err
	}
	a.ID, err = result.LastInsertId()
	return err
}

func (s *SolutionStore) GetAnswer(ctx context.Context, id int64) (*answer.Answer, error) {
	var a answer.Answer
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx,
		"SELECT id, text, user_id, is_active, created_at, updated_at FROM answers WHERE id = ? AND is_active = 1", id,
	).Scan(&a.ID, &a.Text, &a.UserID, &a.IsActive, &createdAt, &updatedAt)
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

// ============================================================================
// Attempts
// ============================================================================

const attemptColumns = "id, task_id, student_id, answer, status, system_grade, teacher_grade, image_path, is_active, created_at, updated_at"

func (s *SolutionStore) SaveAttempt(ctx context.Context, a *attempt.Attempt) error {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO attempts (task_id, student_id, answer, status, system_grade, teacher_grade, image_path, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.TaskID, a.StudentID, a.Answer, string(a.Status), a.SystemGrade, a.TeacherGrade, a.ImagePath,
		a.IsActive, formatTime(a.CreatedAt), formatTime(a.UpdatedAt),
	)
	if err != nil {
		return err
	}
	a.ID, err = result.LastInsertId()
	return err
}

func (s *SolutionStore) GetAttempt(ctx context.Context, id int64) (*attempt.Attempt, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+attemptColumns+" FROM attempts WHERE id = ? AND is_active = 1", id)
	return scanAttempt(row)
}

func (s *SolutionStore) UpdateAttempt(ctx context.Context, a *attempt.Attempt) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE attempts SET status = ?, system_grade = ?, teacher_grade = ?, image_path = ?, is_active = ?, updated_at = ?
		 WHERE id = ?`,
		string(a.Status), a.SystemGrade, a.TeacherGrade, a.ImagePath, a.IsActive, formatTime(a.UpdatedAt), a.ID,
	)
	if err != nil {
		return err
	}
	return affectedOrNotFound(result)
}

// DeleteAttempt removes the row for good. It backs out an attempt whose
// follow-up work failed.
func (s *SolutionStore) DeleteAttempt(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM attempts WHERE id = ?", id)
	if err != nil {
		return err
	}
	return affectedOrNotFound(result)
}

func (s *SolutionStore) ListAttempts(ctx context.Context, f AttemptFilter) ([]*attempt.Attempt, error) {
	if f.TaskIDs != nil && len(f.TaskIDs) == 0 {
		return nil, nil
	}
	where, args := f.where()
	rows, err := s.db.QueryContext(ctx, "SELECT "+attemptColumns+" FROM attempts WHERE "+where+" ORDER BY id", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []*attempt.Attempt
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

func (s *SolutionStore) CountAttempts(ctx context.Context, f AttemptFilter) (int, error) {
	if f.TaskIDs != nil && len(f.TaskIDs) == 0 {
		return 0, nil
	}
	where, args := f.where()
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM attempts WHERE "+where, args...).Scan(&n)
	return n, err
}

func (f AttemptFilter) where() (string, []any) {
	where := "is_active = 1"
	var args []any
	if f.StudentID != nil {
		where += " AND student_id = ?"
		args = append(args, *f.StudentID)
	}
	if len(f.TaskIDs) > 0 {
		clause, ids := inClause(f.TaskIDs)
		where += " AND task_id IN " + clause
		args = append(args, ids...)
	}
	if f.Status != nil {
		where += " AND status = ?"
		args = append(args, string(*f.Status))
	}
	return where, args
}

func scanAttempt(row rowScanner) (*attempt.Attempt, error) {
	var a attempt.Attempt
	var status, createdAt, updatedAt string
	var systemGrade, teacherGrade sql.NullInt64
	var imagePath sql.NullString

	err := row.Scan(&a.ID, &a.TaskID, &a.StudentID, &a.Answer, &status, &systemGrade, &teacherGrade,
		&imagePath, &a.IsActive, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	a.Status = attempt.Status(status)
	if systemGrade.Valid {
		g := int(systemGrade.Int64)
		a.SystemGrade = &g
	}
	if teacherGrade.Valid {
		g := int(teacherGrade.Int64)
		a.TeacherGrade = &g
	}
	if imagePath.Valid {
		a.ImagePath = &imagePath.String
	}
	if a.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if a.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
