package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinematics-suite/backend/internal/domain/answer"
	"github.com/kinematics-suite/backend/internal/domain/attempt"
)

func newTestSolutionStore(t *testing.T) *SolutionStore {
	t.Helper()
	s, err := NewSolutionSQLite(filepath.Join(t.TempDir(), "solutions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSolutionStore_Answer(t *testing.T) {
	ctx := context.Background()
	s := newTestSolutionStore(t)

	a, err := answer.New("25 m", 3, time.Now())
	require.NoError(t, err)
	require.NoError(t, s.SaveAnswer(ctx, a))

	got, err := s.GetAnswer(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "25 m", got.Text)
	assert.Equal(t, int64(3), got.UserID)

	_, err = s.GetAnswer(ctx, a.ID+1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSolutionStore_AttemptLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestSolutionStore(t)

	a, err := attempt.New(7, 2, "25 m", 100, time.Now())
	require.NoError(t, err)
	require.NoError(t, s.SaveAttempt(ctx, a))

	got, err := s.GetAttempt(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, attempt.StatusPending, got.Status)
	require.NotNil(t, got.SystemGrade)
	assert.Equal(t, 100, *got.SystemGrade)
	assert.Nil(t, got.TeacherGrade)

	require.NoError(t, got.Grade(95, time.Now()))
	require.NoError(t, s.UpdateAttempt(ctx, got))

	graded, err := s.GetAttempt(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, attempt.StatusCorrect, graded.Status)
	assert.Equal(t, 95, *graded.TeacherGrade)

	require.NoError(t, s.DeleteAttempt(ctx, a.ID))
	_, err = s.GetAttempt(ctx, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSolutionStore_AttemptFilters(t *testing.T) {
	ctx := context.Background()
	s := newTestSolutionStore(t)
	now := time.Now()

	seed := []struct {
		task    int64
		student int64
		grade   int
	}{
		{1, 100, 100}, {1, 101, 0}, {2, 100, 100}, {3, 102, 0},
	}
	for _, sd := range seed {
		a, err := attempt.New(sd.task, sd.student, "x", sd.grade, now)
		require.NoError(t, err)
		require.NoError(t, s.SaveAttempt(ctx, a))
	}

	student := int64(100)
	mine, err := s.ListAttempts(ctx, AttemptFilter{StudentID: &student})
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	pending := attempt.StatusPending
	pendingOnTasks, err := s.ListAttempts(ctx, AttemptFilter{TaskIDs: []int64{1, 3}, Status: &pending})
	require.NoError(t, err)
	require.Len(t, pendingOnTasks, 1)
	assert.Equal(t, int64(1), pendingOnTasks[0].TaskID)

	count, err := s.CountAttempts(ctx, AttemptFilter{TaskIDs: []int64{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	none, err := s.ListAttempts(ctx, AttemptFilter{TaskIDs: []int64{}})
	require.NoError(t, err)
	assert.Empty(t, none)

	zero, err := s.CountAttempts(ctx, AttemptFilter{TaskIDs: []int64{}})
	require.NoError(t, err)
	assert.Zero(t, zero)
}
