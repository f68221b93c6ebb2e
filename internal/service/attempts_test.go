package service

import (
	"context"
	"encoding/base64"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinematics-suite/backend/internal/client"
	"github.com/kinematics-suite/backend/internal/domain/attempt"
	"github.com/kinematics-suite/backend/internal/domain/user"
	"github.com/kinematics-suite/backend/internal/grader"
	"github.com/kinematics-suite/backend/internal/images"
	"github.com/kinematics-suite/backend/internal/notify"
	"github.com/kinematics-suite/backend/internal/store"
)

type attemptFixture struct {
	svc   *AttemptService
	store *store.SolutionStore
	auth  *fakeAuth
	tasks *fakeTasks
	hub   *notify.Hub
}

// newAttemptFixture seeds teacher 2 (token "teacher") owning task 10 in theme
// 1 with canonical answer "9.8 m/s". Teacher 3 ("other") owns nothing.
func newAttemptFixture(t *testing.T) *attemptFixture {
	t.Helper()
	dir := t.TempDir()
	s, err := store.NewSolutionSQLite(filepath.Join(dir, "solutions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	f := &attemptFixture{store: s, auth: newFakeAuth(), hub: notify.NewHub(16)}
	t.Cleanup(f.hub.Close)
	f.auth.add("admin", 1, "root", user.RoleAdmin)
	f.auth.add("teacher", 2, "newton", user.RoleTeacher)
	f.auth.add("other", 3, "galileo", user.RoleTeacher)
	f.auth.add("student", 4, "alice", user.RoleStudent)
	f.auth.add("student2", 5, "bob", user.RoleStudent)
	f.tasks = newFakeTasks(f.auth)

	f.svc = NewAttemptService(s, f.auth, f.tasks, grader.ExactMatch{},
		images.NewStore(filepath.Join(dir, "images"), 64), f.hub, 3, discardLogger())

	ans, err := f.svc.CreateAnswer(context.Background(), "teacher", "9.8 m/s")
	require.NoError(t, err)
	f.tasks.addTheme(client.ThemeInfo{ID: 1, Title: "Kinematics"})
	f.tasks.addTask(client.TaskInfo{ID: 10, Title: "Free fall", ThemeID: 1, AnswerID: ans.ID, UserID: 2})
	return f
}

func (f *attemptFixture) submit(t *testing.T, token, answer string) *attempt.Attempt {
	t.Helper()
	res, err := f.svc.Submit(context.Background(), token, AttemptInput{TaskID: 10, Answer: answer})
	require.NoError(t, err)
	return res.Attempt
}

func TestCreateAnswer_Roles(t *testing.T) {
	f := newAttemptFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateAnswer(ctx, "student", "42")
	requireStatus(t, err, http.StatusForbidden)

	_, err = f.svc.CreateAnswer(ctx, "nope", "42")
	var se *client.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.Status)

	a, err := f.svc.CreateAnswer(ctx, "admin", "42")
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.UserID)

	_, err = f.svc.CreateAnswer(ctx, "teacher", "")
	requireStatus(t, err, http.StatusBadRequest)
}

func TestSubmit_AutoGrading(t *testing.T) {
	f := newAttemptFixture(t)
	sub := f.hub.Subscribe(2)
	defer sub.Close()

	right := f.submit(t, "student", "  9.8 M/S ")
	assert.Equal(t, attempt.StatusPending, right.Status)
	assert.Equal(t, 100, *right.SystemGrade)
	assert.Nil(t, right.TeacherGrade)

	select {
	case e := <-sub.Events():
		assert.Equal(t, right.ID, e.AttemptID)
		assert.Equal(t, int64(4), e.StudentID)
	case <-time.After(time.Second):
		t.Fatal("no notification for a pending attempt")
	}

	wrong := f.submit(t, "student", "10 m/s")
	assert.Equal(t, attempt.StatusGraded, wrong.Status)
	assert.Equal(t, 0, *wrong.SystemGrade)
	assert.Equal(t, 0, *wrong.TeacherGrade)
	assert.Len(t, sub.Events(), 0, "graded attempts are not announced")
}

func TestSubmit_Rejections(t *testing.T) {
	f := newAttemptFixture(t)
	ctx := context.Background()

	_, err := f.svc.Submit(ctx, "teacher", AttemptInput{TaskID: 10, Answer: "x"})
	requireStatus(t, err, http.StatusForbidden)

	_, err = f.svc.Submit(ctx, "student", AttemptInput{TaskID: 99, Answer: "x"})
	requireStatus(t, err, http.StatusNotFound)

	f.tasks.addTask(client.TaskInfo{ID: 11, Title: "Orphan", ThemeID: 1, AnswerID: 404, UserID: 2})
	_, err = f.svc.Submit(ctx, "student", AttemptInput{TaskID: 11, Answer: "x"})
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "Answer not found", se.Detail)

	_, err = f.svc.Submit(ctx, "student", AttemptInput{TaskID: 10, Answer: " "})
	requireStatus(t, err, http.StatusBadRequest)
}

func TestSubmit_Image(t *testing.T) {
	f := newAttemptFixture(t)
	ctx := context.Background()

	res, err := f.svc.Submit(ctx, "student", AttemptInput{
		TaskID: 10,
		Answer: "9.8 m/s",
		Image:  &ImageUpload{Data: base64.StdEncoding.EncodeToString([]byte("sketch")), FileName: "work.png"},
	})
	require.NoError(t, err)
	require.NotNil(t, res.ImageData)
	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString([]byte("sketch")), *res.ImageData)
	assert.Equal(t, "attempt_1.png", filepath.Base(*res.Attempt.ImagePath))

	_, err = f.svc.Submit(ctx, "student", AttemptInput{
		TaskID: 10,
		Answer: "9.8 m/s",
		Image:  &ImageUpload{Data: base64.StdEncoding.EncodeToString(make([]byte, 100)), FileName: "huge.jpg"},
	})
	requireStatus(t, err, http.StatusBadRequest)

	n, err := f.store.CountAttempts(ctx, store.AttemptFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSubmit_ImageWriteFailure(t *testing.T) {
	f := newAttemptFixture(t)
	ctx := context.Background()
	f.svc.images = images.NewStore(unwritableDir(t), 64)

	sub := f.hub.Subscribe(2)
	defer sub.Close()

	_, err := f.svc.Submit(ctx, "student", AttemptInput{
		TaskID: 10,
		Answer: "9.8 m/s",
		Image:  &ImageUpload{Data: base64.StdEncoding.EncodeToString([]byte("sketch")), FileName: "work.png"},
	})
	require.Error(t, err)

	n, err := f.store.CountAttempts(ctx, store.AttemptFilter{})
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	select {
	case e := <-sub.Events():
		t.Fatalf("unexpected event for attempt %d", e.AttemptID)
	default:
	}
}

func TestGrade(t *testing.T) {
	f := newAttemptFixture(t)
	ctx := context.Background()
	right := f.submit(t, "student", "9.8 m/s")
	wrong := f.submit(t, "student", "nope")

	_, err := f.svc.Grade(ctx, "teacher", 999, 95)
	requireStatus(t, err, http.StatusNotFound)

	_, err = f.svc.Grade(ctx, "other", right.ID, 95)
	requireStatus(t, err, http.StatusForbidden)

	_, err = f.svc.Grade(ctx, "teacher", right.ID, 101)
	requireStatus(t, err, http.StatusBadRequest)

	_, err = f.svc.Grade(ctx, "student", right.ID, 95)
	requireStatus(t, err, http.StatusForbidden)

	low, err := f.svc.Grade(ctx, "teacher", right.ID, 89)
	require.NoError(t, err)
	assert.Equal(t, attempt.StatusGraded, low.Status)

	confirmed, err := f.svc.Grade(ctx, "teacher", right.ID, 90)
	require.NoError(t, err)
	assert.Equal(t, attempt.StatusCorrect, confirmed.Status)

	regraded, err := f.svc.Grade(ctx, "teacher", wrong.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, attempt.StatusGraded, regraded.Status, "only system-correct attempts can become correct")

	stored, err := f.store.GetAttempt(ctx, right.ID)
	require.NoError(t, err)
	assert.Equal(t, 90, *stored.TeacherGrade)

	stats, err := f.svc.TeacherStats(ctx, "teacher")
	require.NoError(t, err)
	assert.Equal(t, AttemptStats{Attempts: 2, Solved: 1}, *stats)

	stats, err = f.svc.TeacherStats(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, AttemptStats{}, *stats)
}

func TestListings_Enrichment(t *testing.T) {
	f := newAttemptFixture(t)
	ctx := context.Background()

	f.tasks.addTask(client.TaskInfo{ID: 12, Title: "No theme", ThemeID: 77, AnswerID: 1, UserID: 2})
	f.tasks.addTask(client.TaskInfo{ID: 13, Title: "Gone soon", ThemeID: 1, AnswerID: 1, UserID: 2})

	first := f.submit(t, "student", "9.8 m/s")
	second, err := f.svc.Submit(ctx, "student2", AttemptInput{TaskID: 12, Answer: "wrong"})
	require.NoError(t, err)
	gone, err := f.svc.Submit(ctx, "student", AttemptInput{TaskID: 13, Answer: "9.8 m/s"})
	require.NoError(t, err)

	f.tasks.mu.Lock()
	delete(f.tasks.tasks, 13)
	f.tasks.mu.Unlock()
	f.auth.mu.Lock()
	delete(f.auth.tokens, "student2")
	f.auth.mu.Unlock()

	all, err := f.svc.AllAttempts(ctx, "admin")
	require.NoError(t, err)
	require.Len(t, all, 2, "attempt %d has no task and is skipped", gone.Attempt.ID)

	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, "Free fall", all[0].TaskTitle)
	assert.Equal(t, "Kinematics", all[0].ThemeTitle)
	assert.Equal(t, int64(1), *all[0].ThemeID)
	assert.Equal(t, "alice", all[0].StudentUsername)
	assert.Equal(t, "newton", all[0].AuthorUsername)
	assert.Equal(t, "9.8 m/s", *all[0].SystemAnswer)

	assert.Equal(t, second.Attempt.ID, all[1].ID)
	assert.Equal(t, "-", all[1].ThemeTitle)
	assert.Nil(t, all[1].ThemeID)
	assert.Equal(t, "Unknown", all[1].StudentUsername)

	mine, err := f.svc.StudentAttempts(ctx, "student")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	pending, err := f.svc.TeacherAttempts(ctx, "teacher", true)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, first.ID, pending[0].ID)

	none, err := f.svc.TeacherAttempts(ctx, "other", false)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = f.svc.AllAttempts(ctx, "teacher")
	requireStatus(t, err, http.StatusForbidden)
}
