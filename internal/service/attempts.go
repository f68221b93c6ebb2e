package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/kinematics-suite/backend/internal/client"
	"github.com/kinematics-suite/backend/internal/domain/answer"
	"github.com/kinematics-suite/backend/internal/domain/attempt"
	"github.com/kinematics-suite/backend/internal/domain/user"
	"github.com/kinematics-suite/backend/internal/grader"
	"github.com/kinematics-suite/backend/internal/images"
	"github.com/kinematics-suite/backend/internal/notify"
	"github.com/kinematics-suite/backend/internal/store"
)

type AttemptStore interface {
	SaveAnswer(ctx context.Context, a *answer.Answer) error
	GetAnswer(ctx context.Context, id int64) (*answer.Answer, error)
	SaveAttempt(ctx context.Context, a *attempt.Attempt) error
	GetAttempt(ctx context.Context, id int64) (*attempt.Attempt, error)
	UpdateAttempt(ctx context.Context, a *attempt.Attempt) error
	DeleteAttempt(ctx context.Context, id int64) error
	ListAttempts(ctx context.Context, f store.AttemptFilter) ([]*attempt.Attempt, error)
	CountAttempts(ctx context.Context, f store.AttemptFilter) (int, error)
}

var _ AttemptStore = (*store.SolutionStore)(nil)

// AttemptService is the solution service: canonical answers, student
// attempts, grading and the pending-attempt feed for teachers.
type AttemptService struct {
	store   AttemptStore
	users   UserDirectory
	tasks   TaskDirectory
	grader  grader.Grader
	images  *images.Store
	hub     *notify.Hub
	workers int
	logger  *slog.Logger
	now     func() time.Time
}

// NewAttemptService enriches attempt lists on at most workers goroutines.
func NewAttemptService(s AttemptStore, users UserDirectory, tasks TaskDirectory, g grader.Grader,
	img *images.Store, hub *notify.Hub, workers int, logger *slog.Logger) *AttemptService {
	return &AttemptService{
		store:   s,
		users:   users,
		tasks:   tasks,
		grader:  g,
		images:  img,
		hub:     hub,
		workers: workers,
		logger:  logger,
		now:     time.Now,
	}
}

// CreateAnswer stores a canonical answer for the task service.
func (s *AttemptService) CreateAnswer(ctx context.Context, token, text string) (*answer.Answer, error) {
	author, err := caller(ctx, s.users, token, user.RoleTeacher, user.RoleAdmin)
	if err != nil {
		return nil, err
	}
	a, err := answer.New(text, author.ID, s.now())
	if err != nil {
		return nil, badRequest("%s", err.Error())
	}
	if err := s.store.SaveAnswer(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// lookupTask treats every error answer of the task service as a missing task.
func (s *AttemptService) lookupTask(ctx context.Context, token string, taskID int64) (*client.TaskInfo, error) {
	t, err := s.tasks.Task(ctx, token, taskID)
	var se *client.StatusError
	if errors.As(err, &se) {
		return nil, notFound("Task not found")
	}
	return t, err
}

type AttemptInput struct {
	TaskID int64
	Answer string
	Image  *ImageUpload
}

type Submitted struct {
	Attempt   *attempt.Attempt
	ImageData *string
}

// Submit grades a student's answer against the task's canonical answer and
// stores the attempt. A correct answer waits for the task author, who is
// notified.
func (s *AttemptService) Submit(ctx context.Context, token string, in AttemptInput) (*Submitted, error) {
	student, err := caller(ctx, s.users, token, user.RoleStudent)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Answer) == "" {
		return nil, badRequest("answer is required")
	}

	t, err := s.lookupTask(ctx, token, in.TaskID)
	if err != nil {
		return nil, err
	}
	canonical, err := s.store.GetAnswer(ctx, t.AnswerID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, notFound("Answer not found")
	}
	if err != nil {
		return nil, err
	}

	var image []byte
	if in.Image != nil {
		if image, err = decodeImage(s.images, in.Image); err != nil {
			return nil, err
		}
	}

	a, err := attempt.New(t.ID, student.ID, in.Answer, s.grader.Grade(canonical.Text, in.Answer), s.now())
	if err != nil {
		return nil, badRequest("%s", err.Error())
	}
	if err := s.store.SaveAttempt(ctx, a); err != nil {
		return nil, err
	}

	result := &Submitted{Attempt: a}
	if image != nil {
		path, err := s.images.Write("attempt", a.ID, in.Image.FileName, image)
		if err == nil {
			a.ImagePath = &path
			err = s.store.UpdateAttempt(ctx, a)
		}
		if err != nil {
			s.discard(a, path)
			return nil, err
		}
		result.ImageData = s.imageDataURL(a)
	}

	if a.IsPending() {
		s.hub.Publish(notify.Event{
			AttemptID:   a.ID,
			TaskID:      a.TaskID,
			StudentID:   a.StudentID,
			Answer:      a.Answer,
			SystemGrade: a.SystemGrade,
			AuthorID:    t.UserID,
		})
	}

	s.logger.Info("attempt submitted",
		"attempt_id", a.ID,
		"task_id", a.TaskID,
		"student_id", a.StudentID,
		"status", a.Status,
	)
	return result, nil
}

// discard backs out an attempt whose image could not be stored. It runs on a
// fresh context so a cancelled request still cleans up.
func (s *AttemptService) discard(a *attempt.Attempt, imagePath string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.store.DeleteAttempt(ctx, a.ID); err != nil {
		s.logger.Error("failed to delete attempt", "attempt_id", a.ID, "error", err)
	}
	if imagePath != "" {
		if err := s.images.Remove(imagePath); err != nil {
			s.logger.Error("failed to remove attempt image", "path", imagePath, "error", err)
		}
	}
}

// MaxImageSize is the largest attempt image accepted, in bytes.
func (s *AttemptService) MaxImageSize() int64 {
	return s.images.MaxSize()
}

func (s *AttemptService) imageDataURL(a *attempt.Attempt) *string {
	if a.ImagePath == nil {
		return nil
	}
	url, err := s.images.DataURL(*a.ImagePath)
	if err != nil {
		s.logger.Warn("failed to read attempt image", "attempt_id", a.ID, "error", err)
		return nil
	}
	return &url
}

// ============================================================================
// Listings
// ============================================================================

func (s *AttemptService) StudentAttempts(ctx context.Context, token string) ([]*EnrichedAttempt, error) {
	student, err := caller(ctx, s.users, token, user.RoleStudent)
	if err != nil {
		return nil, err
	}
	attempts, err := s.store.ListAttempts(ctx, store.AttemptFilter{StudentID: &student.ID})
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, token, attempts)
}

// TeacherAttempts lists attempts on the caller's tasks, optionally only the
// ones waiting for a grade.
func (s *AttemptService) TeacherAttempts(ctx context.Context, token string, pendingOnly bool) ([]*EnrichedAttempt, error) {
	if _, err := caller(ctx, s.users, token, user.RoleTeacher); err != nil {
		return nil, err
	}
	taskIDs, err := s.teacherTaskIDs(ctx, token)
	if err != nil {
		return nil, err
	}

	f := store.AttemptFilter{TaskIDs: taskIDs}
	if pendingOnly {
		pending := attempt.StatusPending
		f.Status = &pending
	}
	attempts, err := s.store.ListAttempts(ctx, f)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, token, attempts)
}

func (s *AttemptService) AllAttempts(ctx context.Context, token string) ([]*EnrichedAttempt, error) {
	if _, err := caller(ctx, s.users, token, user.RoleAdmin); err != nil {
		return nil, err
	}
	attempts, err := s.store.ListAttempts(ctx, store.AttemptFilter{})
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, token, attempts)
}

// teacherTaskIDs never returns nil, so an author without tasks matches no
// attempts.
func (s *AttemptService) teacherTaskIDs(ctx context.Context, token string) ([]int64, error) {
	tasks, err := s.tasks.TeacherTasks(ctx, token)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ids, nil
}
