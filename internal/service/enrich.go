package service

import (
	"cmp"
	"context"
	"slices"
	"strconv"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/kinematics-suite/backend/internal/client"
	"github.com/kinematics-suite/backend/internal/domain/attempt"
	"github.com/kinematics-suite/backend/internal/worker"
)

const (
	unknownUsername = "Unknown"
	unknownTheme    = "-"
)

// EnrichedAttempt is an attempt joined with the names the other services
// know about. ThemeID is nil when the theme lookup failed.
type EnrichedAttempt struct {
	*attempt.Attempt

	TaskTitle       string
	ThemeID         *int64
	ThemeTitle      string
	StudentUsername string
	AuthorID        int64
	AuthorUsername  string
	SystemAnswer    *string
	ImageData       *string
}

// lookups shares in-flight peer calls between the attempts of one listing.
// Nothing is kept once a call returns.
type lookups struct {
	svc   *AttemptService
	token string
	calls singleflight.Group
}

func (l *lookups) task(ctx context.Context, id int64) (*client.TaskInfo, error) {
	v, err, _ := l.calls.Do("task:"+strconv.FormatInt(id, 10), func() (any, error) {
		return l.svc.tasks.Task(ctx, l.token, id)
	})
	if err != nil {
		return nil, err
	}
	return v.(*client.TaskInfo), nil
}

func (l *lookups) theme(ctx context.Context, id int64) (*client.ThemeInfo, error) {
	v, err, _ := l.calls.Do("theme:"+strconv.FormatInt(id, 10), func() (any, error) {
		return l.svc.tasks.Theme(ctx, l.token, id)
	})
	if err != nil {
		return nil, err
	}
	return v.(*client.ThemeInfo), nil
}

func (l *lookups) username(ctx context.Context, id int64) string {
	v, err, _ := l.calls.Do("user:"+strconv.FormatInt(id, 10), func() (any, error) {
		return l.svc.users.UserByID(ctx, l.token, id)
	})
	if err != nil {
		return unknownUsername
	}
	return v.(*client.Identity).Username
}

// enrich resolves attempts on the worker pool and returns them ordered by id.
// Attempts whose task cannot be resolved are left out.
func (s *AttemptService) enrich(ctx context.Context, token string, attempts []*attempt.Attempt) ([]*EnrichedAttempt, error) {
	out := make([]*EnrichedAttempt, 0, len(attempts))
	if len(attempts) == 0 {
		return out, nil
	}

	l := &lookups{svc: s, token: token}
	pool := worker.NewPool[*EnrichedAttempt](s.workers, len(attempts))
	for _, a := range attempts {
		pool.Submit(strconv.FormatInt(a.ID, 10), func() *EnrichedAttempt {
			return s.enrichOne(ctx, l, a)
		})
	}
	pool.Close()

	for r := range pool.Results() {
		if r.Output != nil {
			out = append(out, r.Output)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slices.SortFunc(out, func(a, b *EnrichedAttempt) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

// enrichOne needs the task first; the remaining lookups run concurrently and
// fall back to placeholders.
func (s *AttemptService) enrichOne(ctx context.Context, l *lookups, a *attempt.Attempt) *EnrichedAttempt {
	t, err := l.task(ctx, a.TaskID)
	if err != nil {
		s.logger.Warn("skipping attempt without task", "attempt_id", a.ID, "task_id", a.TaskID, "error", err)
		return nil
	}

	e := &EnrichedAttempt{
		Attempt:    a,
		TaskTitle:  t.Title,
		ThemeTitle: unknownTheme,
		AuthorID:   t.UserID,
	}

	var g errgroup.Group
	g.Go(func() error {
		if th, err := l.theme(ctx, t.ThemeID); err == nil {
			e.ThemeID = &th.ID
			e.ThemeTitle = th.Title
		}
		return nil
	})
	g.Go(func() error {
		e.StudentUsername = l.username(ctx, a.StudentID)
		return nil
	})
	g.Go(func() error {
		e.AuthorUsername = l.username(ctx, t.UserID)
		return nil
	})
	g.Go(func() error {
		if ans, err := s.store.GetAnswer(ctx, t.AnswerID); err == nil {
			e.SystemAnswer = &ans.Text
		}
		return nil
	})
	g.Go(func() error {
		e.ImageData = s.imageDataURL(a)
		return nil
	})
	_ = g.Wait()

	return e
}
