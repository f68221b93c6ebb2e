package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/kinematics-suite/backend/internal/domain/user"
)

const authSchema = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    first_name TEXT NOT NULL,
    second_name TEXT NOT NULL DEFAULT '',
    username TEXT NOT NULL UNIQUE,
    role TEXT NOT NULL DEFAULT 'student',
    password TEXT NOT NULL,
    image_path TEXT,
    is_active INTEGER NOT NULL DEFAULT 1,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS tokens (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    token TEXT NOT NULL UNIQUE,
    token_type TEXT NOT NULL,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_tokens_created_at ON tokens(created_at);
`

// AuthStore persists users and the tokens issued to them.
type AuthStore struct {
	db *sql.DB
}

func NewAuthSQLite(dbPath string) (*AuthStore, error) {
	db, err := openSQLite(dbPath, authSchema)
	if err != nil {
		return nil, err
	}
	return &AuthStore{db: db}, nil
}

func (s *AuthStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Users
// ============================================================================

const userColumns = "id, first_name, second_name, username, role, password, image_path, is_active, created_at, updated_at"

func (s *AuthStore) CreateUser(ctx context.Context, u *user.User) error {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO users (first_name, second_name, username, role, password, image_path, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.FirstName, u.SecondName, u.Username, string(u.Role), u.PasswordHash, u.ImagePath,
		u.IsActive, formatTime(u.CreatedAt), formatTime(u.UpdatedAt),
	)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	if err != nil {
		return err
	}
	u.ID, err = result.LastInsertId()
	return err
}

func (s *AuthStore) GetUser(ctx context.Context, id int64) (*user.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
	return scanUser(row)
}

func (s *AuthStore) GetUserByUsername(ctx context.Context, username string) (*user.User, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE username = ?", username)
	return scanUser(row)
}

func (s *AuthStore) ListUsers(ctx context.Context) ([]*user.User, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+userColumns+" FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *AuthStore) UpdateUser(ctx context.Context, u *user.User) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE users SET first_name = ?, second_name = ?, role = ?, password = ?, image_path = ?, is_active = ?, updated_at = ?
		 WHERE id = ?`,
		u.FirstName, u.SecondName, string(u.Role), u.PasswordHash, u.ImagePath, u.IsActive, formatTime(u.UpdatedAt), u.ID,
	)
	if err != nil {
		return err
	}
	return affectedOrNotFound(result)
}

func (s *AuthStore) DeleteUser(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return err
	}
	return affectedOrNotFound(result)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*user.User, error) {
	var u user.User
	var role, createdAt, updatedAt string
	var imagePath sql.NullString

	err := row.Scan(&u.ID, &u.FirstName, &u.SecondName, &u.Username, &role, &u.PasswordHash,
		&imagePath, &u.IsActive, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	u.Role = user.Role(role)
	if imagePath.Valid {
		u.ImagePath = &imagePath.String
	}
	if u.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if u.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// ============================================================================
// Tokens
// ============================================================================

func (s *AuthStore) SaveToken(ctx context.Context, token, tokenType string, createdAt time.Time) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO tokens (token, token_type, created_at) VALUES (?, ?, ?)",
		token, tokenType, formatTime(createdAt),
	)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

func (s *AuthStore) TokenExists(ctx context.Context, token string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tokens WHERE token = ?", token).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeleteTokensBefore removes tokens issued before the cutoff and reports how many went.
func (s *AuthStore) DeleteTokensBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM tokens WHERE created_at < ?", formatTime(cutoff))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
