package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/kinematics-suite/backend/internal/domain/task"
	"github.com/kinematics-suite/backend/internal/domain/theme"
	"github.com/kinematics-suite/backend/internal/domain/user"
	"github.com/kinematics-suite/backend/internal/store"
)

type CatalogStore interface {
	SaveTheme(ctx context.Context, t *theme.Theme) error
	GetTheme(ctx context.Context, id int64) (*theme.Theme, error)
	ListThemes(ctx context.Context) ([]*theme.Theme, error)
	UpdateTheme(ctx context.Context, t *theme.Theme) error
	SaveTask(ctx context.Context, t *task.Task) error
	GetTask(ctx context.Context, id int64) (*task.Task, error)
	ListTasks(ctx context.Context, f store.TaskFilter) ([]*task.Task, error)
	CountTasks(ctx context.Context, f store.TaskFilter) (int, error)
	UpdateTask(ctx context.Context, t *task.Task) error
}

var _ CatalogStore = (*store.CatalogStore)(nil)

// CatalogService manages themes and tasks. Canonical answers are registered
// in the solution service under the caller's token.
type CatalogService struct {
	store   CatalogStore
	auth    Authenticator
	answers AnswerRegistry
	logger  *slog.Logger
	now     func() time.Time
}

func NewCatalogService(s CatalogStore, a Authenticator, answers AnswerRegistry, logger *slog.Logger) *CatalogService {
	return &CatalogService{store: s, auth: a, answers: answers, logger: logger, now: time.Now}
}

// ============================================================================
// Themes
// ============================================================================

func (s *CatalogService) CreateTheme(ctx context.Context, token, title string, description *string) (*theme.Theme, error) {
	if _, err := caller(ctx, s.auth, token, user.RoleAdmin); err != nil {
		return nil, err
	}
	t, err := theme.New(title, description, s.now())
	if err != nil {
		return nil, badRequest("%s", err.Error())
	}
	if err := s.store.SaveTheme(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *CatalogService) ListThemes(ctx context.Context) ([]*theme.Theme, error) {
	return s.store.ListThemes(ctx)
}

func (s *CatalogService) GetTheme(ctx context.Context, id int64) (*theme.Theme, error) {
	t, err := s.store.GetTheme(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, notFound("Theme not found")
	}
	return t, err
}

func (s *CatalogService) UpdateTheme(ctx context.Context, token string, id int64, title string, description *string) (*theme.Theme, error) {
	if _, err := caller(ctx, s.auth, token, user.RoleAdmin); err != nil {
		return nil, err
	}
	t, err := s.GetTheme(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := t.Update(title, description, s.now()); err != nil {
		return nil, badRequest("%s", err.Error())
	}
	if err := s.store.UpdateTheme(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteTheme soft-deletes the theme. Its tasks stay visible.
func (s *CatalogService) DeleteTheme(ctx context.Context, token string, id int64) error {
	if _, err := caller(ctx, s.auth, token, user.RoleAdmin); err != nil {
		return err
	}
	t, err := s.GetTheme(ctx, id)
	if err != nil {
		return err
	}
	t.Deactivate(s.now())
	return s.store.UpdateTheme(ctx, t)
}

// ============================================================================
// Tasks
// ============================================================================

type TaskInput struct {
	Title     string
	Condition *string
	Answer    string
	ThemeID   int64
}

// validate runs every local check so that no answer gets registered for a
// request that would fail anyway.
func (s *CatalogService) validate(ctx context.Context, in TaskInput) error {
	if err := task.ValidateTitle(in.Title); err != nil {
		return badRequest("%s", err.Error())
	}
	if strings.TrimSpace(in.Answer) == "" {
		return badRequest("answer is required")
	}
	_, err := s.GetTheme(ctx, in.ThemeID)
	return err
}

func (s *CatalogService) CreateTask(ctx context.Context, token string, in TaskInput) (*task.Task, error) {
	author, err := caller(ctx, s.auth, token, user.RoleTeacher, user.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}

	answer, err := s.answers.CreateAnswer(ctx, token, in.Answer)
	if err != nil {
		return nil, err
	}

	t, err := task.New(in.Title, in.Condition, in.ThemeID, answer.ID, author.ID, s.now())
	if err != nil {
		return nil, badRequest("%s", err.Error())
	}
	if err := s.store.SaveTask(ctx, t); err != nil {
		return nil, err
	}
	s.logger.Info("task created", "task_id", t.ID, "author_id", author.ID, "answer_id", answer.ID)
	return t, nil
}

func (s *CatalogService) ListTasks(ctx context.Context, themeID *int64) ([]*task.Task, error) {
	return s.store.ListTasks(ctx, store.TaskFilter{ThemeID: themeID})
}

func (s *CatalogService) GetTask(ctx context.Context, id int64) (*task.Task, error) {
	t, err := s.store.GetTask(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, notFound("Task not found")
	}
	return t, err
}

// TeacherTasks lists the caller's own tasks.
func (s *CatalogService) TeacherTasks(ctx context.Context, token string) ([]*task.Task, error) {
	author, err := caller(ctx, s.auth, token, user.RoleTeacher, user.RoleAdmin)
	if err != nil {
		return nil, err
	}
	return s.store.ListTasks(ctx, store.TaskFilter{AuthorID: &author.ID})
}

// editable loads a task the caller may change: admins change any task,
// teachers only their own.
func (s *CatalogService) editable(ctx context.Context, token string, id int64) (*task.Task, error) {
	editor, err := caller(ctx, s.auth, token, user.RoleTeacher, user.RoleAdmin)
	if err != nil {
		return nil, err
	}
	t, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if editor.Role != user.RoleAdmin && !t.OwnedBy(editor.ID) {
		return nil, forbidden("You can only modify your own tasks")
	}
	return t, nil
}

// UpdateTask registers the new answer text and points the task at it.
func (s *CatalogService) UpdateTask(ctx context.Context, token string, id int64, in TaskInput) (*task.Task, error) {
	t, err := s.editable(ctx, token, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(ctx, in); err != nil {
		return nil, err
	}

	answer, err := s.answers.CreateAnswer(ctx, token, in.Answer)
	if err != nil {
		return nil, err
	}
	if err := t.Update(in.Title, in.Condition, in.ThemeID, answer.ID, s.now()); err != nil {
		return nil, badRequest("%s", err.Error())
	}
	if err := s.store.UpdateTask(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *CatalogService) DeleteTask(ctx context.Context, token string, id int64) error {
	t, err := s.editable(ctx, token, id)
	if err != nil {
		return err
	}
	t.Deactivate(s.now())
	return s.store.UpdateTask(ctx, t)
}

type TeacherStats struct {
	TaskCount    int
	AttemptCount int
	SolvedCount  int
}

// TeacherStats counts the caller's tasks and the attempts on them. Attempt
// numbers fall back to zero when the solution service cannot answer.
func (s *CatalogService) TeacherStats(ctx context.Context, token string) (*TeacherStats, error) {
	teacher, err := caller(ctx, s.auth, token, user.RoleTeacher)
	if err != nil {
		return nil, err
	}
	n, err := s.store.CountTasks(ctx, store.TaskFilter{AuthorID: &teacher.ID})
	if err != nil {
		return nil, err
	}

	stats := &TeacherStats{TaskCount: n}
	attempts, err := s.answers.TeacherStats(ctx, token)
	if err != nil {
		s.logger.Warn("attempt stats unavailable", "teacher_id", teacher.ID, "error", err)
		return stats, nil
	}
	stats.AttemptCount = attempts.Attempts
	stats.SolvedCount = attempts.Solved
	return stats, nil
}
