package store

import (
	"context"
	"database/sql"

	"github.com/kinematics-suite/backend/internal/domain/task"
	"github.com/kinematics-suite/backend/internal/domain/theme"
)

const catalogSchema = `
CREATE TABLE IF NOT EXISTS themes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    description TEXT,
    is_active INTEGER NOT NULL DEFAULT 1,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    condition TEXT,
    type TEXT NOT NULL DEFAULT 'problem',
    theme_id INTEGER NOT NULL,
    answer_id INTEGER NOT NULL,
    user_id INTEGER NOT NULL,
    is_active INTEGER NOT NULL DEFAULT 1,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    FOREIGN KEY (theme_id) REFERENCES themes(id)
);

CREATE INDEX IF NOT EXISTS idx_tasks_theme ON tasks(theme_id);
CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id);
`

// CatalogStore persists themes and tasks. Soft-deleted rows stay in the
// tables with is_active = 0 and are invisible to every read.
type CatalogStore struct {
	db *sql.DB
}

// TaskFilter narrows ListTasks and CountTasks. Nil fields do not filter.
type TaskFilter struct {
	ThemeID  *int64
	AuthorID *int64
}

func NewCatalogSQLite(dbPath string) (*CatalogStore, error) {
	db, err := openSQLite(dbPath, catalogSchema)
	if err != nil {
		return nil, err
	}
	return &CatalogStore{db: db}, nil
}

func (s *CatalogStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Themes
// ============================================================================

func (s *CatalogStore) SaveTheme(ctx context.Context, t *theme.Theme) error {
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO themes (title, description, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		t.Title, t.Description, t.IsActive, formatTime(t.CreatedAt), formatTime(t.UpdatedAt),
	)
	if err != nil {
		return err
	}
	t.ID, err = result.LastInsertId()
	return err
}

func (s *CatalogStore) GetTheme(ctx context.Context, id int64) (*theme.Theme, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, title, description, is_active, created_at, updated_at FROM themes WHERE id = ? AND is_active = 1", id)
	return scanTheme(row)
}

func (s *CatalogStore) ListThemes(ctx context.Context) ([]*theme.Theme, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, description, is_active, created_at, updated_at FROM themes WHERE is_active = 1 ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var themes []*theme.Theme
	for rows.Next() {
		t, err := scanTheme(rows)
		if err != nil {
			return nil, err
		}
		themes = append(themes, t)
	}
	return themes, rows.Err()
}

func (s *CatalogStore) UpdateTheme(ctx context.Context, t *theme.Theme) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE themes SET title = ?, description = ?, is_active = ?, updated_at = ? WHERE id = ?",
		t.Title, t.Description, t.IsActive, formatTime(t.UpdatedAt), t.ID,
	)
	if err != nil {
		return err
	}
	return affectedOrNotFound(result)
}

func scanTheme(row rowScanner) (*theme.Theme, error) {
	var t theme.Theme
	var description sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(&t.ID, &t.Title, &description, &t.IsActive, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if description.Valid {
		t.Description = &description.String
	}
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if t.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// ============================================================================
// Tasks
// ============================================================================

const taskColumns = "id, title, condition, type, theme_id, answer_id, user_id, is_active, created_at, updated_at"

func (s *CatalogStore) SaveTask(ctx context.Context, t *task.Task) error {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (title, condition, type, theme_id, answer_id, user_id, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.Title, t.Condition, string(t.Type), t.ThemeID, t.AnswerID, t.UserID, t.IsActive,
		formatTime(t.CreatedAt), formatTime(t.UpdatedAt),
	)
	if err != nil {
		return err
	}
	t.ID, err = result.LastInsertId()
	return err
}

func (s *CatalogStore) GetTask(ctx context.Context, id int64) (*task.Task, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+taskColumns+" FROM tasks WHERE id = ? AND is_active = 1", id)
	return scanTask(row)
}

func (s *CatalogStore) ListTasks(ctx context.Context, f TaskFilter) ([]*task.Task, error) {
	where, args := f.where()
	rows, err := s.db.QueryContext(ctx, "SELECT "+taskColumns+" FROM tasks WHERE "+where+" ORDER BY id", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *CatalogStore) CountTasks(ctx context.Context, f TaskFilter) (int, error) {
	where, args := f.where()
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tasks WHERE "+where, args...).Scan(&n)
	return n, err
}

func (s *CatalogStore) UpdateTask(ctx context.Context, t *task.Task) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET title = ?, condition = ?, type = ?, theme_id = ?, answer_id = ?, is_active = ?, updated_at = ?
		 WHERE id = ?`,
		t.Title, t.Condition, string(t.Type), t.ThemeID, t.AnswerID, t.IsActive, formatTime(t.UpdatedAt), t.ID,
	)
	if err != nil {
		return err
	}
	return affectedOrNotFound(result)
}

func (f TaskFilter) where() (string, []any) {
	where := "is_active = 1"
	var args []any
	if f.ThemeID != nil {
		where += " AND theme_id = ?"
		args = append(args, *f.ThemeID)
	}
	if f.AuthorID != nil {
		where += " AND user_id = ?"
		args = append(args, *f.AuthorID)
	}
	return where, args
}

func scanTask(row rowScanner) (*task.Task, error) {
	var t task.Task
	var condition sql.NullString
	var taskType, createdAt, updatedAt string

	err := row.Scan(&t.ID, &t.Title, &condition, &taskType, &t.ThemeID, &t.AnswerID, &t.UserID,
		&t.IsActive, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	t.Type = task.Type(taskType)
	if condition.Valid {
		t.Condition = &condition.String
	}
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if t.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
