package service

import (
	"context"
	"errors"

	"github.com/kinematics-suite/backend/internal/domain/attempt"
	"github.com/kinematics-suite/backend/internal/domain/user"
	"github.com/kinematics-suite/backend/internal/store"
)

// Grade records the task author's grade for an attempt.
func (s *AttemptService) Grade(ctx context.Context, token string, attemptID int64, teacherGrade int) (*attempt.Attempt, error) {
	teacher, err := caller(ctx, s.users, token, user.RoleTeacher)
	if err != nil {
		return nil, err
	}

	a, err := s.store.GetAttempt(ctx, attemptID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, notFound("Attempt not found")
	}
	if err != nil {
		return nil, err
	}

	t, err := s.lookupTask(ctx, token, a.TaskID)
	if err != nil {
		return nil, err
	}
	if t.UserID != teacher.ID {
		return nil, forbidden("You can only grade attempts on your own tasks")
	}

	if err := a.Grade(teacherGrade, s.now()); err != nil {
		return nil, badRequest("%s", err.Error())
	}
	if err := s.store.UpdateAttempt(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Info("attempt graded",
		"attempt_id", a.ID,
		"teacher_id", teacher.ID,
		"teacher_grade", teacherGrade,
		"status", a.Status,
	)
	return a, nil
}

type AttemptStats struct {
	Attempts int
	Solved   int
}

// TeacherStats counts attempts on the caller's tasks; solved ones are the
// confirmed correct attempts.
func (s *AttemptService) TeacherStats(ctx context.Context, token string) (*AttemptStats, error) {
	if _, err := caller(ctx, s.users, token, user.RoleTeacher); err != nil {
		return nil, err
	}
	taskIDs, err := s.teacherTaskIDs(ctx, token)
	if err != nil {
		return nil, err
	}

	total, err := s.store.CountAttempts(ctx, store.AttemptFilter{TaskIDs: taskIDs})
	if err != nil {
		return nil, err
	}
	correct := attempt.StatusCorrect
	solved, err := s.store.CountAttempts(ctx, store.AttemptFilter{TaskIDs: taskIDs, Status: &correct})
	if err != nil {
		return nil, err
	}
	return &AttemptStats{Attempts: total, Solved: solved}, nil
}
