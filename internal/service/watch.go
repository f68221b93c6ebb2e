package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/kinematics-suite/backend/internal/client"
	"github.com/kinematics-suite/backend/internal/domain/attempt"
	"github.com/kinematics-suite/backend/internal/domain/user"
	"github.com/kinematics-suite/backend/internal/notify"
	"github.com/kinematics-suite/backend/internal/store"
)

// VerifyTeacher checks that token belongs to the task author with the given
// id. Admins author tasks too and may watch their own feed.
func (s *AttemptService) VerifyTeacher(ctx context.Context, token string, teacherID int64) (*client.Identity, error) {
	teacher, err := caller(ctx, s.users, token, user.RoleTeacher, user.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if teacher.ID != teacherID {
		return nil, forbidden("Token does not belong to this teacher")
	}
	return teacher, nil
}

// PendingForTeacher lists the attempts on the teacher's tasks that wait for
// a grade.
func (s *AttemptService) PendingForTeacher(ctx context.Context, token string, teacherID int64) ([]notify.Event, error) {
	taskIDs, err := s.teacherTaskIDs(ctx, token)
	if err != nil {
		return nil, err
	}
	pending := attempt.StatusPending
	attempts, err := s.store.ListAttempts(ctx, store.AttemptFilter{TaskIDs: taskIDs, Status: &pending})
	if err != nil {
		return nil, err
	}

	events := make([]notify.Event, 0, len(attempts))
	for _, a := range attempts {
		events = append(events, notify.Event{
			AttemptID:   a.ID,
			TaskID:      a.TaskID,
			StudentID:   a.StudentID,
			Answer:      a.Answer,
			SystemGrade: a.SystemGrade,
			AuthorID:    teacherID,
		})
	}
	return events, nil
}

// WatchPending feeds emit with the teacher's pending attempts: a snapshot
// first, then attempts as they are submitted, with a full resync every
// interval. Each attempt is emitted once. WatchPending returns nil when ctx
// ends or the hub closes, and the error otherwise.
func (s *AttemptService) WatchPending(ctx context.Context, token string, teacherID int64, interval time.Duration, emit func(notify.Event) error) error {
	sub := s.hub.Subscribe(teacherID)
	defer sub.Close()

	sent := make(map[int64]struct{})
	send := func(e notify.Event) error {
		if _, ok := sent[e.AttemptID]; ok {
			return nil
		}
		sent[e.AttemptID] = struct{}{}
		return emit(e)
	}
	resync := func() error {
		events, err := s.PendingForTeacher(ctx, token, teacherID)
		if err != nil {
			return err
		}
		for _, e := range events {
			if err := send(e); err != nil {
				return err
			}
		}
		return nil
	}

	if err := resync(); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-sub.Events():
			if !ok {
				return nil
			}
			if err := send(e); err != nil {
				return err
			}
		case <-ticker.C:
			err := resync()
			switch {
			case err == nil:
			case ctx.Err() != nil:
				return nil
			case client.IsStatus(err, http.StatusUnauthorized), client.IsStatus(err, http.StatusForbidden):
				return err
			case errors.Is(err, client.ErrUnavailable), errors.As(err, new(*client.StatusError)):
				s.logger.Warn("pending resync failed", "teacher_id", teacherID, "error", err)
			default:
				return err
			}
		}
	}
}
