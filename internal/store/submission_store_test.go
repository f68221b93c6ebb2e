package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinematics-suite/backend/internal/domain/answer"
	"github.com/kinematics-suite/backend/internal/domain/submission"
)

func TestSubmissionStore(t *testing.T) {
	ctx := context.Background()
	s, err := NewSubmissionSQLite(filepath.Join(t.TempDir(), "answers.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	a, err := answer.New("9.8", 0, time.Now())
	require.NoError(t, err)
	require.NoError(t, s.SaveAnswer(ctx, a))

	got, err := s.GetAnswer(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "9.8", got.Text)

	img := "aGVsbG8="
	for _, taskID := range []int64{1, 1, 2} {
		sub, err := submission.New(5, taskID, "9.8", &img, true, time.Now())
		require.NoError(t, err)
		require.NoError(t, s.SaveSubmission(ctx, sub))
	}

	taskID := int64(1)
	subs, err := s.ListSubmissions(ctx, SubmissionFilter{TaskID: &taskID})
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.True(t, subs[0].IsCorrect)
	require.NotNil(t, subs[0].ImageBase64)
	assert.Equal(t, img, *subs[0].ImageBase64)
}
